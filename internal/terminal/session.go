package terminal

import (
	"context"

	"github.com/bthakur/termfolio/internal/portfolio"
)

// Session bundles what one open terminal needs.
type Session struct {
	History     *History
	Interpreter *Interpreter
	Slugs       *SlugCache
	store       ContentStore
}

func NewSession(p *portfolio.Portfolio, store ContentStore, opts ...Option) *Session {
	slugs := NewSlugCache()
	history := NewHistory(WelcomeResult())
	registry := DefaultRegistry(p, store, slugs)
	return &Session{
		History:     history,
		Interpreter: NewInterpreter(history, registry, opts...),
		Slugs:       slugs,
		store:       store,
	}
}

// Mount fills the slug cache. A failure leaves autocomplete without slugs.
func (s *Session) Mount(ctx context.Context) error {
	return s.Slugs.Refresh(ctx, s.store)
}

// Complete resolves partial against the command names and cached slugs.
func (s *Session) Complete(partial string) Completion {
	return Resolve(partial, CommandNames, s.Slugs.Slugs())
}

func (s *Session) Close() {
	s.Interpreter.Close()
}
