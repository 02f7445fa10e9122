// Package client talks to the termfolio HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/blog"
	"github.com/bthakur/termfolio/internal/portfolio"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListSlugs returns every blog slug, newest first.
func (c *Client) ListSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := c.do(ctx, http.MethodGet, "/blogs", "", nil, &slugs); err != nil {
		return nil, err
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, nil
}

func (c *Client) GetBlog(ctx context.Context, slug string) (*blog.BlogResponse, error) {
	var post blog.BlogResponse
	if err := c.do(ctx, http.MethodGet, "/blogs/"+url.PathEscape(slug), "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreateBlog(ctx context.Context, bearer string, req blog.CreateBlogRequest) (*blog.CreateBlogResponse, error) {
	var resp blog.CreateBlogResponse
	if err := c.do(ctx, http.MethodPost, "/blogs/create", bearer, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges the editor password for a token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{"password": password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &Error{Code: ErrCodeDecode, Status: http.StatusOK, Message: "login response carried no token"}
	}
	return resp.Token, nil
}

// Verify returns nil when the server accepts tokenString.
func (c *Client) Verify(ctx context.Context, tokenString string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify", "", map[string]string{"token": tokenString}, nil)
}

func (c *Client) Portfolio(ctx context.Context) (*portfolio.Portfolio, error) {
	var p portfolio.Portfolio
	if err := c.do(ctx, http.MethodGet, "/portfolio", "", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body, target any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Code: ErrCodeEncode, Message: "failed to encode request", Cause: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Code: ErrCodeTransport, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		message := "could not reach the server"
		if errors.Is(err, context.DeadlineExceeded) {
			message = "request timed out"
		}
		c.logger.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &Error{Code: ErrCodeTransport, Message: message, Cause: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &Error{Code: ErrCodeDecode, Status: resp.StatusCode, Message: "unexpected response from server", Cause: err}
	}
	return nil
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	message := strings.TrimSpace(string(raw))
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &Error{
		Code:    ErrCodeResponse,
		Status:  resp.StatusCode,
		Message: message,
		Cause:   fmt.Errorf("%s %s: status %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode),
	}
}
