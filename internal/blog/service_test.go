package blog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) (*BlogService, *MemoryStore) {
	store := NewMemoryStore()
	service := NewBlogService(store)
	service.now = func() time.Time { return now }
	return service, store
}

func TestBlogService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("CreateBlogAppliesDefaults", func(t *testing.T) {
		service, _ := newTestService(now)

		slug, err := service.CreateBlog(ctx, CreateBlogRequest{Title: "Hello World!", Content: "# hi"})
		require.NoError(t, err)
		assert.Equal(t, "hello-world", slug)

		post, err := service.GetBlog(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, "Hello World!", post.Data.Title)
		assert.Equal(t, "2024-03-09", post.Data.Date)
		assert.Equal(t, DefaultReadTime, post.Data.ReadTime)
		assert.Equal(t, []string{}, post.Data.Tags)
		assert.Equal(t, "# hi", post.Content)
	})

	t.Run("CreateBlogKeepsProvidedFields", func(t *testing.T) {
		service, _ := newTestService(now)

		slug, err := service.CreateBlog(ctx, CreateBlogRequest{
			Title:    "Tagged",
			Content:  "body",
			Date:     "2023-01-02",
			ReadTime: "2 min read",
			Tags:     []string{" go ", "go", "", "cli"},
		})
		require.NoError(t, err)

		post, err := service.GetBlog(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, "2023-01-02", post.Data.Date)
		assert.Equal(t, "2 min read", post.Data.ReadTime)
		assert.Equal(t, []string{"go", "cli"}, post.Data.Tags)
	})

	t.Run("CreateBlogRequiresTitleAndContent", func(t *testing.T) {
		service, _ := newTestService(now)

		_, err := service.CreateBlog(ctx, CreateBlogRequest{Title: "  ", Content: "body"})
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = service.CreateBlog(ctx, CreateBlogRequest{Title: "title"})
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = service.CreateBlog(ctx, CreateBlogRequest{Title: "!!!", Content: "body"})
		assert.ErrorIs(t, err, ErrInvalidTitle)
	})

	t.Run("CreateBlogRejectsDuplicateSlug", func(t *testing.T) {
		service, _ := newTestService(now)

		_, err := service.CreateBlog(ctx, CreateBlogRequest{Title: "Same Title", Content: "one"})
		require.NoError(t, err)

		_, err = service.CreateBlog(ctx, CreateBlogRequest{Title: "same title?", Content: "two"})
		assert.ErrorIs(t, err, ErrSlugExists)
	})

	t.Run("GetBlogNotFound", func(t *testing.T) {
		service, _ := newTestService(now)

		_, err := service.GetBlog(ctx, "missing")
		assert.ErrorIs(t, err, ErrBlogNotFound)
	})

	t.Run("ListSlugsNewestFirst", func(t *testing.T) {
		service, store := newTestService(now)

		slugs, err := service.ListSlugs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{}, slugs)

		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.InsertBlog(ctx, &Blog{Slug: "middle", CreatedAt: base.Add(time.Hour)}))
		require.NoError(t, store.InsertBlog(ctx, &Blog{Slug: "oldest", CreatedAt: base}))
		require.NoError(t, store.InsertBlog(ctx, &Blog{Slug: "newest", CreatedAt: base.Add(2 * time.Hour)}))

		slugs, err = service.ListSlugs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"newest", "middle", "oldest"}, slugs)
	})
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{"a", "b"}, NormalizeTags([]string{"a", " b", "a ", " "}))
}
