package terminal

import (
	"context"
	"strings"
)

// MatchKind selects how a CommandDefinition compares against input.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPrefix
	MatchPredicate
)

// Action tells the interpreter what to do with an Outcome.
type Action int

const (
	ActionAppend Action = iota
	ActionClear
	ActionExit
)

// FetchFunc resolves an asynchronous command.
type FetchFunc func(ctx context.Context) Result

// Outcome is what a Handler decided. A non-nil Fetch makes the command asynchronous:
// Result is then shown as the placeholder until Fetch returns.
type Outcome struct {
	Action  Action
	Result  Result
	Section string
	Fetch   FetchFunc
}

// Handler runs a matched command. args is the text after a prefix pattern and
// the whole input otherwise.
type Handler func(input, args string) Outcome

type CommandDefinition struct {
	Kind      MatchKind
	Pattern   string
	Predicate func(input string) bool
	Handler   Handler
}

func (d CommandDefinition) matches(input string) bool {
	switch d.Kind {
	case MatchExact:
		return input == d.Pattern
	case MatchPrefix:
		return strings.HasPrefix(input, d.Pattern)
	case MatchPredicate:
		return d.Predicate != nil && d.Predicate(input)
	}
	return false
}

// Registry is an ordered list of command definitions. The first match wins.
type Registry struct {
	definitions []CommandDefinition
	fallback    Handler
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Exact(pattern string, handler Handler) *Registry {
	return r.Add(CommandDefinition{Kind: MatchExact, Pattern: pattern, Handler: handler})
}

func (r *Registry) Prefix(pattern string, handler Handler) *Registry {
	return r.Add(CommandDefinition{Kind: MatchPrefix, Pattern: pattern, Handler: handler})
}

func (r *Registry) Predicate(predicate func(string) bool, handler Handler) *Registry {
	return r.Add(CommandDefinition{Kind: MatchPredicate, Predicate: predicate, Handler: handler})
}

func (r *Registry) Add(def CommandDefinition) *Registry {
	r.definitions = append(r.definitions, def)
	return r
}

// Fallback sets the handler used when nothing matches.
func (r *Registry) Fallback(handler Handler) *Registry {
	r.fallback = handler
	return r
}

// Dispatch runs the first matching handler, or the fallback.
func (r *Registry) Dispatch(input string) Outcome {
	for _, def := range r.definitions {
		if !def.matches(input) {
			continue
		}
		args := input
		if def.Kind == MatchPrefix {
			args = input[len(def.Pattern):]
		}
		return def.Handler(input, args)
	}
	if r.fallback != nil {
		return r.fallback(input, input)
	}
	return Outcome{Result: ErrorResult(notFoundMessage(input))}
}
