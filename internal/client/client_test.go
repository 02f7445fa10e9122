package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bthakur/termfolio/internal/auth"
	"github.com/bthakur/termfolio/internal/blog"
	"github.com/bthakur/termfolio/internal/config"
	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/internal/server"
)

const testPassword = "client-test-password"

func setupAPI(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Auth.EditorPassword = testPassword
	cfg.Auth.JWTSecret = "client-test-secret"
	cfg.Auth.FailureDelay = 0
	cfg.Server.LoginRatePerMinute = 0

	srv := server.NewServer(
		auth.NewAuthService(cfg.Auth, nil),
		blog.NewBlogService(blog.NewMemoryStore()),
		portfolio.NewPortfolioService(nil, nil),
		cfg.Server,
		nil,
	)
	api := httptest.NewServer(srv)
	t.Cleanup(api.Close)
	return api
}

func TestClientRoundTrip(t *testing.T) {
	api := setupAPI(t)
	c := New(api.URL + "/")
	ctx := context.Background()

	slugs, err := c.ListSlugs(ctx)
	require.NoError(t, err)
	assert.Empty(t, slugs)

	_, err = c.Login(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid password", Message(err))

	tokenString, err := c.Login(ctx, testPassword)
	require.NoError(t, err)
	require.NoError(t, c.Verify(ctx, tokenString))

	err = c.Verify(ctx, "bogus")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid token", Message(err))

	_, err = c.CreateBlog(ctx, "", blog.CreateBlogRequest{Title: "First", Content: "body"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	created, err := c.CreateBlog(ctx, tokenString, blog.CreateBlogRequest{Title: "First Post", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "first-post", created.Slug)

	_, err = c.CreateBlog(ctx, tokenString, blog.CreateBlogRequest{Title: "first post", Content: "again"})
	assert.ErrorIs(t, err, blog.ErrSlugExists)

	post, err := c.GetBlog(ctx, "first-post")
	require.NoError(t, err)
	assert.Equal(t, "First Post", post.Data.Title)

	_, err = c.GetBlog(ctx, "missing")
	assert.ErrorIs(t, err, blog.ErrBlogNotFound)
	assert.Equal(t, "Blog not found", Message(err))

	slugs, err = c.ListSlugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"first-post"}, slugs)

	p, err := c.Portfolio(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bishwa Thakur", p.About.Name)
}

func TestClientTransportError(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	api.Close()

	_, err := New(api.URL).ListSlugs(context.Background())

	var clientErr *Error
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, ErrCodeTransport, clientErr.Code)
	assert.Equal(t, "could not reach the server", Message(err))
}

func TestClientTimeout(t *testing.T) {
	block := make(chan struct{})
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		api.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := New(api.URL).GetBlog(ctx, "slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "request timed out", Message(err))
}

func TestClientNonJSONError(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	t.Cleanup(api.Close)

	_, err := New(api.URL).ListSlugs(context.Background())

	var clientErr *Error
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, http.StatusBadGateway, clientErr.Status)
	assert.Equal(t, "upstream exploded", clientErr.Message)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
