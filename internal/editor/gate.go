// Package editor holds the password-gated blog editor: the session gate, its
// token store and the draft being written.
package editor

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/client"
)

// SessionExpiredMessage is shown when a protected call is rejected.
const SessionExpiredMessage = "Session expired. Please log in again."

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
)

type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged in"
	}
	return "logged out"
}

// AuthClient is the remote side of the gate.
type AuthClient interface {
	Login(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, token string) error
}

// Gate is the editor's LoggedOut/LoggedIn state machine.
type Gate struct {
	store  SessionStore
	auth   AuthClient
	logger *zap.Logger

	mu    sync.Mutex
	state State
	token string
}

func NewGate(store SessionStore, auth AuthClient, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{store: store, auth: auth, logger: logger}
}

// Mount restores a stored session. A token the server rejects, for any reason,
// is discarded and the gate stays logged out. No retry is attempted.
func (g *Gate) Mount(ctx context.Context) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state, g.token = LoggedOut, ""

	stored, ok, err := g.store.Get(SessionKey)
	if err != nil {
		return LoggedOut, err
	}
	if !ok || stored == "" {
		return LoggedOut, nil
	}

	if err := g.auth.Verify(ctx, stored); err != nil {
		g.logger.Info("discarding stored editor session", zap.String("reason", client.Message(err)))
		if delErr := g.store.Delete(SessionKey); delErr != nil {
			return LoggedOut, delErr
		}
		return LoggedOut, nil
	}

	g.state, g.token = LoggedIn, stored
	return LoggedIn, nil
}

// Login exchanges password for a token and persists it. The returned error
// carries the server's message on failure.
func (g *Gate) Login(ctx context.Context, password string) error {
	tokenString, err := g.auth.Login(ctx, password)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Set(SessionKey, tokenString); err != nil {
		return err
	}
	g.state, g.token = LoggedIn, tokenString
	return nil
}

// Logout forgets the token locally and in the store.
func (g *Gate) Logout() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state, g.token = LoggedOut, ""
	return g.store.Delete(SessionKey)
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Authorized runs fn with the session token. A 401 from fn logs the gate out
// and is reported as ErrSessionExpired.
func (g *Gate) Authorized(ctx context.Context, fn func(ctx context.Context, token string) error) error {
	g.mu.Lock()
	state, tokenString := g.state, g.token
	g.mu.Unlock()

	if state != LoggedIn {
		return ErrNotLoggedIn
	}

	err := fn(ctx, tokenString)
	if errors.Is(err, client.ErrUnauthorized) {
		if logoutErr := g.Logout(); logoutErr != nil {
			g.logger.Warn("failed to clear editor session", zap.Error(logoutErr))
		}
		return ErrSessionExpired
	}
	return err
}
