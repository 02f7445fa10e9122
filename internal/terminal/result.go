// Package terminal implements the portfolio shell: the command registry and
// interpreter, the session history log and the autocomplete resolver.
package terminal

import (
	"time"

	"github.com/bthakur/termfolio/internal/blog"
)

// Kind tells a renderer how to draw a Result.
type Kind int

const (
	KindText Kind = iota
	KindPanel
	KindBlogList
	KindBlogPost
	KindLoading
	KindError
	KindWelcome
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPanel:
		return "panel"
	case KindBlogList:
		return "blog-list"
	case KindBlogPost:
		return "blog-post"
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindWelcome:
		return "welcome"
	case KindHelp:
		return "help"
	}
	return "unknown"
}

// Result is the renderable output of one command.
type Result struct {
	Kind    Kind
	Title   string
	Lines   []string
	Section string
	Post    *blog.BlogResponse
	Slugs   []string
}

// Record is one entry of the session history.
type Record struct {
	ID        string
	Input     string
	Result    Result
	CreatedAt time.Time
}

// Pending reports whether the record is still waiting for a remote response.
func (r Record) Pending() bool {
	return r.Result.Kind == KindLoading
}

func Text(lines ...string) Result {
	return Result{Kind: KindText, Lines: lines}
}

func ErrorResult(message string) Result {
	return Result{Kind: KindError, Lines: []string{message}}
}

func Loading(title string) Result {
	return Result{Kind: KindLoading, Title: title}
}
