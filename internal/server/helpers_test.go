package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     bool
	}{
		{"Valid", "application/json", `{"password":"x"}`, false},
		{"ValidWithCharset", "application/json; charset=utf-8", `{"password":"x"}`, false},
		{"WrongContentType", "text/plain", `{"password":"x"}`, true},
		{"MissingContentType", "", `{"password":"x"}`, true},
		{"UnknownField", "application/json", `{"password":"x","admin":true}`, true},
		{"Malformed", "application/json", `{"password":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var target LoginRequest
			err := parseRequestJSON(req, &target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", target.Password)
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:4242"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientIP(req))
}

func TestIPRateLimiter(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		limiter := newIPRateLimiter(0, 0)
		for range 100 {
			assert.True(t, limiter.Allow("198.51.100.1"))
		}
	})

	t.Run("PerAddress", func(t *testing.T) {
		limiter := newIPRateLimiter(1, 2)

		assert.True(t, limiter.Allow("198.51.100.1"))
		assert.True(t, limiter.Allow("198.51.100.1"))
		assert.False(t, limiter.Allow("198.51.100.1"))
		assert.True(t, limiter.Allow("198.51.100.2"))
	})

	t.Run("PrunesIdleClients", func(t *testing.T) {
		limiter := newIPRateLimiter(60, 1)
		stale := time.Now().Add(-2 * limiterIdleTTL)
		for i := range limiterPruneSize {
			limiter.clients[string(rune('a'+i%26))+string(rune(i))] = &limiterEntry{lastSeen: stale}
		}

		assert.True(t, limiter.Allow("198.51.100.9"))
		assert.Len(t, limiter.clients, 1)
	})
}
