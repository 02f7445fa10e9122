package blog

import (
	"context"
	"strings"
	"time"
)

type BlogService struct {
	store Store
	now   func() time.Time
}

func NewBlogService(store Store) *BlogService {
	return &BlogService{store: store, now: time.Now}
}

// ListSlugs returns every slug, newest first. The result is never nil.
func (s *BlogService) ListSlugs(ctx context.Context) ([]string, error) {
	slugs, err := s.store.ListSlugs(ctx)
	if err != nil {
		return nil, err
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, nil
}

func (s *BlogService) GetBlog(ctx context.Context, slug string) (*BlogResponse, error) {
	blog, err := s.store.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return blog.Response(), nil
}

// CreateBlog validates req, fills in the date, read time and tags defaults, and
// stores the post under the slug derived from its title.
func (s *BlogService) CreateBlog(ctx context.Context, req CreateBlogRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Content) == "" {
		return "", ErrMissingFields
	}

	slug := Slugify(title)
	if slug == "" {
		return "", ErrInvalidTitle
	}

	blog := &Blog{
		Slug:     slug,
		Title:    title,
		Content:  req.Content,
		Date:     strings.TrimSpace(req.Date),
		ReadTime: strings.TrimSpace(req.ReadTime),
		Tags:     NormalizeTags(req.Tags),
	}
	if blog.Date == "" {
		blog.Date = s.now().Format(dateLayout)
	}
	if blog.ReadTime == "" {
		blog.ReadTime = DefaultReadTime
	}

	if err := s.store.InsertBlog(ctx, blog); err != nil {
		return "", err
	}
	return slug, nil
}

// NormalizeTags trims tags, drops empties and duplicates, and keeps first-seen order.
func NormalizeTags(tags []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
