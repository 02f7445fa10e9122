package editor

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bthakur/termfolio/internal/client"
)

type fakeAuth struct {
	password  string
	token     string
	valid     map[string]bool
	verifyErr error
	verified  int
}

func (f *fakeAuth) Login(_ context.Context, password string) (string, error) {
	if password != f.password {
		return "", &client.Error{Code: client.ErrCodeResponse, Status: http.StatusUnauthorized, Message: "Invalid password"}
	}
	return f.token, nil
}

func (f *fakeAuth) Verify(_ context.Context, token string) error {
	f.verified++
	if f.verifyErr != nil {
		return f.verifyErr
	}
	if !f.valid[token] {
		return &client.Error{Code: client.ErrCodeResponse, Status: http.StatusUnauthorized, Message: "Token expired"}
	}
	return nil
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{password: "secret", token: "tok", valid: map[string]bool{"tok": true}}
}

func TestGateMount(t *testing.T) {
	ctx := context.Background()

	t.Run("NoStoredToken", func(t *testing.T) {
		auth := newFakeAuth()
		gate := NewGate(NewMemoryStore(), auth, nil)

		state, err := gate.Mount(ctx)
		require.NoError(t, err)
		assert.Equal(t, LoggedOut, state)
		assert.Equal(t, 0, auth.verified)
	})

	t.Run("ValidStoredToken", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(SessionKey, "tok"))
		gate := NewGate(store, newFakeAuth(), nil)

		state, err := gate.Mount(ctx)
		require.NoError(t, err)
		assert.Equal(t, LoggedIn, state)
		assert.Equal(t, LoggedIn, gate.State())
	})

	t.Run("ExpiredStoredTokenIsDeleted", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(SessionKey, "stale"))
		auth := newFakeAuth()
		gate := NewGate(store, auth, nil)

		state, err := gate.Mount(ctx)
		require.NoError(t, err)
		assert.Equal(t, LoggedOut, state)
		assert.Equal(t, 1, auth.verified, "no retry")

		_, ok, _ := store.Get(SessionKey)
		assert.False(t, ok)
	})

	t.Run("TransportFailureLogsOut", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(SessionKey, "tok"))
		auth := newFakeAuth()
		auth.verifyErr = &client.Error{Code: client.ErrCodeTransport, Message: "could not reach the server"}
		gate := NewGate(store, auth, nil)

		state, err := gate.Mount(ctx)
		require.NoError(t, err)
		assert.Equal(t, LoggedOut, state)

		_, ok, _ := store.Get(SessionKey)
		assert.False(t, ok)
	})
}

func TestGateLoginLogout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	gate := NewGate(store, newFakeAuth(), nil)

	err := gate.Login(ctx, "wrong")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Invalid password", client.Message(err))
	assert.Equal(t, LoggedOut, gate.State())

	require.NoError(t, gate.Login(ctx, "secret"))
	assert.Equal(t, LoggedIn, gate.State())
	value, ok, _ := store.Get(SessionKey)
	assert.True(t, ok)
	assert.Equal(t, "tok", value)

	require.NoError(t, gate.Logout())
	assert.Equal(t, LoggedOut, gate.State())
	_, ok, _ = store.Get(SessionKey)
	assert.False(t, ok)
}

func TestGateAuthorized(t *testing.T) {
	ctx := context.Background()

	t.Run("LoggedOut", func(t *testing.T) {
		gate := NewGate(NewMemoryStore(), newFakeAuth(), nil)
		called := false

		err := gate.Authorized(ctx, func(context.Context, string) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ErrNotLoggedIn)
		assert.False(t, called)
	})

	t.Run("PassesToken", func(t *testing.T) {
		gate := NewGate(NewMemoryStore(), newFakeAuth(), nil)
		require.NoError(t, gate.Login(ctx, "secret"))

		var got string
		err := gate.Authorized(ctx, func(_ context.Context, token string) error {
			got = token
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "tok", got)
	})

	t.Run("UnauthorizedLogsOut", func(t *testing.T) {
		store := NewMemoryStore()
		gate := NewGate(store, newFakeAuth(), nil)
		require.NoError(t, gate.Login(ctx, "secret"))

		err := gate.Authorized(ctx, func(context.Context, string) error {
			return &client.Error{Code: client.ErrCodeResponse, Status: http.StatusUnauthorized, Message: "Invalid or expired token"}
		})
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Equal(t, LoggedOut, gate.State())
		_, ok, _ := store.Get(SessionKey)
		assert.False(t, ok)
	})

	t.Run("OtherErrorsKeepSession", func(t *testing.T) {
		gate := NewGate(NewMemoryStore(), newFakeAuth(), nil)
		require.NoError(t, gate.Login(ctx, "secret"))

		conflict := &client.Error{Code: client.ErrCodeResponse, Status: http.StatusConflict, Message: "Blog with this title already exists"}
		err := gate.Authorized(ctx, func(context.Context, string) error { return conflict })
		assert.ErrorIs(t, err, conflict)
		assert.Equal(t, LoggedIn, gate.State())
	})
}
