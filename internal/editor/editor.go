package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/bthakur/termfolio/internal/blog"
)

// Draft is a post being written in the editor.
type Draft struct {
	Title    string
	Date     string
	ReadTime string
	Tags     []string
	Content  string
}

// NewDraft returns an empty draft dated on now.
func NewDraft(now time.Time) Draft {
	return Draft{
		Date:     now.Format("2006-01-02"),
		ReadTime: blog.DefaultReadTime,
		Tags:     []string{},
	}
}

// DraftFromPost loads a published post back into a draft.
func DraftFromPost(post *blog.BlogResponse) Draft {
	return Draft{
		Title:    post.Data.Title,
		Date:     post.Data.Date,
		ReadTime: post.Data.ReadTime,
		Tags:     blog.NormalizeTags(post.Data.Tags),
		Content:  post.Content,
	}
}

// ParseTags splits a comma separated tag list.
func ParseTags(raw string) []string {
	return blog.NormalizeTags(strings.Split(raw, ","))
}

// Slug is the slug the server will assign on publish.
func (d Draft) Slug() string {
	return blog.Slugify(d.Title)
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Content) == "" {
		return blog.ErrMissingFields
	}
	if d.Slug() == "" {
		return blog.ErrInvalidTitle
	}
	return nil
}

func (d Draft) Request() blog.CreateBlogRequest {
	return blog.CreateBlogRequest{
		Title:    strings.TrimSpace(d.Title),
		Content:  d.Content,
		Date:     d.Date,
		ReadTime: d.ReadTime,
		Tags:     blog.NormalizeTags(d.Tags),
	}
}

// Export encodes the draft in the same shape the API serves a post in.
func (d Draft) Export() ([]byte, error) {
	doc := blog.BlogResponse{
		Data: blog.BlogMeta{
			Title:    d.Title,
			Date:     d.Date,
			ReadTime: d.ReadTime,
			Tags:     blog.NormalizeTags(d.Tags),
		},
		Content: d.Content,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Markdown is the post as it will be read, front matter included.
func (d Draft) Markdown() string {
	var b strings.Builder
	if d.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title)
	}
	meta := []string{}
	for _, part := range []string{d.Date, d.ReadTime} {
		if part != "" {
			meta = append(meta, part)
		}
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "_%s_\n\n", strings.Join(meta, " · "))
	}
	if tags := blog.NormalizeTags(d.Tags); len(tags) > 0 {
		fmt.Fprintf(&b, "Tags: `%s`\n\n", strings.Join(tags, "` `"))
	}
	b.WriteString(d.Content)
	return b.String()
}

// Preview renders the draft for the terminal.
func (d Draft) Preview(width int) (string, error) {
	return RenderMarkdown(d.Markdown(), width)
}

// RenderMarkdown renders markdown with glamour at the given wrap width.
func RenderMarkdown(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

// Publisher creates posts on the server.
type Publisher interface {
	CreateBlog(ctx context.Context, bearer string, req blog.CreateBlogRequest) (*blog.CreateBlogResponse, error)
}

// Publish validates the draft and posts it through the gate.
func Publish(ctx context.Context, gate *Gate, publisher Publisher, d Draft) (*blog.CreateBlogResponse, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var resp *blog.CreateBlogResponse
	err := gate.Authorized(ctx, func(ctx context.Context, token string) error {
		var err error
		resp, err = publisher.CreateBlog(ctx, token, d.Request())
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
