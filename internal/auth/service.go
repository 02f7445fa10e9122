package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/config"
	"github.com/bthakur/termfolio/internal/token"
)

var (
	ErrNotConfigured   = errors.New("server configuration error")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService guards the blog editor with a single shared password.
type AuthService struct {
	password     string
	jwtSecret    string
	tokenTTL     time.Duration
	failureDelay time.Duration
	logger       *zap.Logger
}

func NewAuthService(cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		password:     cfg.EditorPassword,
		jwtSecret:    cfg.JWTSecret,
		tokenTTL:     ttl,
		failureDelay: cfg.FailureDelay,
		logger:       logger,
	}
}

// Login exchanges the editor password for a signed token. A wrong password is
// answered only after the failure delay, or earlier if ctx is cancelled.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if s.password == "" || s.jwtSecret == "" {
		s.logger.Error("editor password or jwt secret not configured")
		return "", ErrNotConfigured
	}

	// plain equality; the password is a shared secret, not a stored hash
	if password != s.password {
		if err := sleep(ctx, s.failureDelay); err != nil {
			return "", err
		}
		return "", ErrInvalidPassword
	}

	tokenString, err := token.GenerateJWT(s.tokenTTL, s.jwtSecret)
	if err != nil {
		return "", err
	}
	s.logger.Info("editor token issued", zap.Duration("ttl", s.tokenTTL))
	return tokenString, nil
}

// Verify reports whether tokenString is a live editor token. It returns
// token.ErrEmptyToken, token.ErrTokenExpired or token.ErrTokenInvalid on failure.
func (s *AuthService) Verify(tokenString string) error {
	_, err := s.Authenticate(tokenString)
	return err
}

// Authenticate validates tokenString and returns its claims.
func (s *AuthService) Authenticate(tokenString string) (*token.Claims, error) {
	if tokenString == "" {
		return nil, token.ErrEmptyToken
	}
	if s.jwtSecret == "" {
		return nil, ErrNotConfigured
	}
	return token.ValidateJWTToken(tokenString, s.jwtSecret)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
