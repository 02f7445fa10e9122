package blog

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps blogs in process. It backs tests and `serve --in-memory`.
type MemoryStore struct {
	mu    sync.RWMutex
	blogs []*Blog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertBlog(_ context.Context, blog *Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.blogs {
		if existing.Slug == blog.Slug {
			return ErrSlugExists
		}
	}

	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now

	stored := *blog
	stored.Tags = slices.Clone(blog.Tags)
	m.blogs = append(m.blogs, &stored)
	return nil
}

// ListSlugs returns slugs newest first; equal timestamps keep reverse insertion order.
func (m *MemoryStore) ListSlugs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ordered := slices.Clone(m.blogs)
	slices.Reverse(ordered)
	slices.SortStableFunc(ordered, func(a, b *Blog) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	slugs := make([]string, 0, len(ordered))
	for _, b := range ordered {
		slugs = append(slugs, b.Slug)
	}
	return slugs, nil
}

func (m *MemoryStore) GetBlogBySlug(_ context.Context, slug string) (*Blog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.blogs {
		if b.Slug == slug {
			found := *b
			found.Tags = slices.Clone(b.Tags)
			return &found, nil
		}
	}
	return nil, ErrBlogNotFound
}
