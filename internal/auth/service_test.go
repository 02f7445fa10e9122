package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bthakur/termfolio/internal/config"
	"github.com/bthakur/termfolio/internal/token"
)

const (
	testPassword = "correct horse"
	testSecret   = "test-secret"
)

func newTestService(delay time.Duration) *AuthService {
	return NewAuthService(config.AuthConfig{
		EditorPassword: testPassword,
		JWTSecret:      testSecret,
		TokenTTL:       time.Hour,
		FailureDelay:   delay,
	}, nil)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		service := newTestService(0)

		tokenString, err := service.Login(ctx, testPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, tokenString)
		assert.NoError(t, service.Verify(tokenString))
	})

	t.Run("WrongPasswordWaitsForDelay", func(t *testing.T) {
		delay := 50 * time.Millisecond
		service := newTestService(delay)

		start := time.Now()
		_, err := service.Login(ctx, "wrong")
		assert.ErrorIs(t, err, ErrInvalidPassword)
		assert.GreaterOrEqual(t, time.Since(start), delay)
	})

	t.Run("WrongPasswordHonoursCancellation", func(t *testing.T) {
		service := newTestService(time.Minute)

		cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := service.Login(cctx, "wrong")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		service := NewAuthService(config.AuthConfig{JWTSecret: testSecret}, nil)

		_, err := service.Login(ctx, "")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		service := NewAuthService(config.AuthConfig{EditorPassword: testPassword}, nil)

		_, err := service.Login(ctx, testPassword)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestVerify(t *testing.T) {
	service := newTestService(0)

	assert.ErrorIs(t, service.Verify(""), token.ErrEmptyToken)
	assert.ErrorIs(t, service.Verify("not.a.token"), token.ErrTokenInvalid)

	expired, err := token.GenerateJWT(-time.Minute, testSecret)
	require.NoError(t, err)
	assert.ErrorIs(t, service.Verify(expired), token.ErrTokenExpired)

	foreign, err := token.GenerateJWT(time.Minute, "other-secret")
	require.NoError(t, err)
	assert.ErrorIs(t, service.Verify(foreign), token.ErrTokenInvalid)
}
