package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/auth"
	"github.com/bthakur/termfolio/internal/blog"
	"github.com/bthakur/termfolio/internal/config"
	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/internal/token"
)

// Server represents the HTTP server.
type Server struct {
	mux              *http.ServeMux
	handler          http.Handler
	authService      *auth.AuthService
	blogService      *blog.BlogService
	portfolioService *portfolio.PortfolioService
	loginLimiter     *ipRateLimiter
	allowedOrigins   []string
	logger           *zap.Logger
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// VerifyRequest is the body of POST /auth/verify.
type VerifyRequest struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a new Server instance.
func NewServer(authService *auth.AuthService, blogService *blog.BlogService, portfolioService *portfolio.PortfolioService, cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := &Server{
		mux:              http.NewServeMux(),
		authService:      authService,
		blogService:      blogService,
		portfolioService: portfolioService,
		loginLimiter:     newIPRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst),
		allowedOrigins:   cfg.AllowedOrigins,
		logger:           logger,
	}
	server.routes()
	return server
}

// routes defines the routes for the server.
func (s *Server) routes() {
	s.mux.HandleFunc("GET /status", s.handleStatus())
	s.mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Auth Endpoints
	s.mux.Handle("POST /auth/login", s.RateLimitMiddleware(s.handleLogin()))
	s.mux.HandleFunc("POST /auth/verify", s.handleVerify())

	// Blog Endpoints
	s.mux.HandleFunc("GET /blogs", s.handleListBlogs())
	s.mux.HandleFunc("GET /blogs/{slug}", s.handleGetBlog())
	s.mux.Handle("POST /blogs/create", s.AuthMiddleware(s.handleCreateBlog()))

	// Portfolio Endpoints
	s.mux.HandleFunc("GET /portfolio", s.handleGetPortfolio())
	s.mux.HandleFunc("GET /portfolio/{section}", s.handleGetPortfolioSection())

	c := cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	s.handler = c.Handler(s.mux)
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleStatus handles the status route
//
// @Summary		Status of the API
// @Description	Status of the API
// @Tags			status
// @Produce		json
// @Success		200		{object}	map[string]string
// @Router			/status [get].
func (s *Server) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleLogin exchanges the editor password for a token
// @Summary Log in to the blog editor
// @Description Exchanges the editor password for a 24h bearer token. Wrong passwords are answered after a delay.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Editor password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 401 {object} ErrorResponse "Invalid password"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Failure 500 {object} ErrorResponse "Server configuration error"
// @Router /auth/login [post].
func (s *Server) handleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := parseRequestJSON(r, &req); err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		tokenString, err := s.authService.Login(r.Context(), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidPassword):
				s.logger.Warn("rejected editor login", zap.String("remote_addr", clientIP(r)))
				s.writeError(w, http.StatusUnauthorized, "Invalid password")
			case errors.Is(err, auth.ErrNotConfigured):
				s.writeError(w, http.StatusInternalServerError, "Server configuration error")
			default:
				s.logger.Error("login failed", zap.Error(err))
				s.writeError(w, http.StatusInternalServerError, "Authentication failed")
			}
			return
		}

		s.writeJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			Token:   tokenString,
			Message: "Authentication successful",
		})
	}
}

// handleVerify checks an editor token
// @Summary Verify an editor token
// @Description Reports whether the token is still valid
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Token to verify"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 401 {object} ErrorResponse "No token provided, Token expired or Invalid token"
// @Router /auth/verify [post].
func (s *Server) handleVerify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyRequest
		if err := parseRequestJSON(r, &req); err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if err := s.authService.Verify(req.Token); err != nil {
			switch {
			case errors.Is(err, token.ErrEmptyToken):
				s.writeError(w, http.StatusUnauthorized, "No token provided")
			case errors.Is(err, token.ErrTokenExpired):
				s.writeError(w, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrNotConfigured):
				s.writeError(w, http.StatusInternalServerError, "Server configuration error")
			default:
				s.writeError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		s.writeJSON(w, http.StatusOK, VerifyResponse{Success: true})
	}
}

// handleListBlogs lists blog slugs
// @Summary List blog slugs
// @Description Returns every blog slug, newest first
// @Tags blogs
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse "Failed to fetch blogs"
// @Router /blogs [get].
func (s *Server) handleListBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugs, err := s.blogService.ListSlugs(r.Context())
		if err != nil {
			s.logger.Error("failed to list blogs", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "Failed to fetch blogs")
			return
		}
		s.writeJSON(w, http.StatusOK, slugs)
	}
}

// handleGetBlog fetches a single post
// @Summary Get a blog post
// @Description Returns the post front matter and markdown content
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} blog.BlogResponse
// @Failure 404 {object} ErrorResponse "Blog not found"
// @Failure 500 {object} ErrorResponse "Failed to fetch blog"
// @Router /blogs/{slug} [get].
func (s *Server) handleGetBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")

		post, err := s.blogService.GetBlog(r.Context(), slug)
		if err != nil {
			if errors.Is(err, blog.ErrBlogNotFound) {
				s.writeError(w, http.StatusNotFound, "Blog not found")
				return
			}
			s.logger.Error("failed to fetch blog", zap.String("slug", slug), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "Failed to fetch blog")
			return
		}
		s.writeJSON(w, http.StatusOK, post)
	}
}

// handleCreateBlog publishes a post
// @Summary Create a blog post
// @Description Creates a post whose slug is derived from its title. Requires an editor token.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body blog.CreateBlogRequest true "Post"
// @Success 200 {object} blog.CreateBlogResponse
// @Failure 400 {object} ErrorResponse "Title and content are required"
// @Failure 401 {object} ErrorResponse "Invalid or expired token"
// @Failure 409 {object} ErrorResponse "Blog with this title already exists"
// @Failure 500 {object} ErrorResponse "Failed to create blog"
// @Router /blogs/create [post].
func (s *Server) handleCreateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blog.CreateBlogRequest
		if err := parseRequestJSON(r, &req); err != nil {
			s.writeError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		slug, err := s.blogService.CreateBlog(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, blog.ErrMissingFields):
				s.writeError(w, http.StatusBadRequest, "Title and content are required")
			case errors.Is(err, blog.ErrInvalidTitle):
				s.writeError(w, http.StatusBadRequest, "Title must contain letters or digits")
			case errors.Is(err, blog.ErrSlugExists):
				s.writeError(w, http.StatusConflict, "Blog with this title already exists")
			default:
				s.logger.Error("failed to create blog", zap.Error(err))
				s.writeError(w, http.StatusInternalServerError, "Failed to create blog")
			}
			return
		}

		fields := []zap.Field{zap.String("slug", slug)}
		if claims, ok := GetClaimsFromContext(r); ok {
			fields = append(fields, zap.Int64("session_timestamp", claims.Timestamp))
		}
		s.logger.Info("blog created", fields...)
		s.writeJSON(w, http.StatusOK, blog.CreateBlogResponse{
			Message: "Blog created successfully",
			Slug:    slug,
		})
	}
}

// handleGetPortfolio returns the whole portfolio document
// @Summary Get the portfolio
// @Tags portfolio
// @Produce json
// @Success 200 {object} portfolio.Portfolio
// @Failure 500 {object} ErrorResponse "Failed to fetch portfolio"
// @Router /portfolio [get].
func (s *Server) handleGetPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.portfolioService.Portfolio(r.Context())
		if err != nil {
			s.logger.Error("failed to fetch portfolio", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "Failed to fetch portfolio")
			return
		}
		s.writeJSON(w, http.StatusOK, p)
	}
}

// handleGetPortfolioSection returns one portfolio section
// @Summary Get a portfolio section
// @Tags portfolio
// @Produce json
// @Param section path string true "about, education, skills, experience, projects, certifications, contact or resume"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse "Section not found"
// @Failure 500 {object} ErrorResponse "Failed to fetch portfolio"
// @Router /portfolio/{section} [get].
func (s *Server) handleGetPortfolioSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("section")

		section, err := s.portfolioService.Section(r.Context(), name)
		if err != nil {
			if errors.Is(err, portfolio.ErrUnknownSection) {
				s.writeError(w, http.StatusNotFound, "Section not found")
				return
			}
			s.logger.Error("failed to fetch portfolio section", zap.String("section", name), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "Failed to fetch portfolio")
			return
		}
		s.writeJSON(w, http.StatusOK, section)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
