package server

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/token"
)

type contextKey string

const (
	claimsContextKey contextKey = "claims"
)

// AuthMiddleware authenticates requests using the Authorization header.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if authHeader == "" || tokenString == "" {
			s.writeError(w, http.StatusUnauthorized, "No authentication token provided")
			return
		}
		if tokenString == authHeader {
			s.writeError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := s.authService.Authenticate(tokenString)
		if err != nil {
			s.logger.Debug("rejected editor token", zap.Error(err))
			s.writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext retrieves the editor token claims from the request context.
func GetClaimsFromContext(r *http.Request) (*token.Claims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*token.Claims)
	return claims, ok
}

// RateLimitMiddleware rejects clients that exceed the login rate.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !s.loginLimiter.Allow(ip) {
			s.logger.Warn("login rate limit exceeded", zap.String("remote_addr", ip))
			s.writeError(w, http.StatusTooManyRequests, "Too many login attempts")
			return
		}
		next.ServeHTTP(w, r)
	})
}
