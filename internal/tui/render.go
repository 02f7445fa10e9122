package tui

import (
	"strings"

	"github.com/bthakur/termfolio/internal/editor"
	"github.com/bthakur/termfolio/internal/terminal"
)

// bootSequence is printed above the history while the terminal starts.
var bootSequence = []string{
	"[  OK  ] Mounting portfolio filesystem",
	"[  OK  ] Loading blog index",
	"[  OK  ] Starting interactive shell",
}

// promptLine is the shell prompt, with the breadcrumb when a section is open.
func promptLine(section string) string {
	path := terminal.Prompt
	if section != "" {
		path += "/" + section
	}
	return promptStyle.Render(path) + pathStyle.Render("$") + " "
}

// renderer draws history records. Rendered blog posts are cached by record id.
type renderer struct {
	width int
	posts map[string]string
}

func newRenderer() *renderer {
	return &renderer{posts: map[string]string{}}
}

func (r *renderer) setWidth(width int) {
	if width != r.width {
		r.width = width
		clear(r.posts)
	}
}

func (r *renderer) history(records []terminal.Record, spinner string) string {
	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteString(promptLine("") + rec.Input + "\n")
		}
		b.WriteString(r.record(rec, spinner))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *renderer) record(rec terminal.Record, spinner string) string {
	res := rec.Result
	switch res.Kind {
	case terminal.KindLoading:
		return spinner + " " + mutedStyle.Render(res.Title) + "\n"
	case terminal.KindError:
		return errorStyle.Render(strings.Join(res.Lines, "\n")) + "\n"
	case terminal.KindWelcome:
		lines := res.Lines
		var b strings.Builder
		for _, line := range lines {
			if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "|") {
				b.WriteString(bannerStyle.Render(line))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		return b.String()
	case terminal.KindPanel:
		body := titleStyle.Render(res.Title) + "\n\n" + strings.Join(res.Lines, "\n")
		return panelStyle.Render(body) + "\n"
	case terminal.KindHelp, terminal.KindBlogList:
		return titleStyle.Render(res.Title) + "\n" + strings.Join(res.Lines, "\n") + "\n"
	case terminal.KindBlogPost:
		return r.post(rec)
	}
	return strings.Join(res.Lines, "\n") + "\n"
}

func (r *renderer) post(rec terminal.Record) string {
	if out, ok := r.posts[rec.ID]; ok {
		return out
	}
	post := rec.Result.Post
	if post == nil {
		return titleStyle.Render(rec.Result.Title) + "\n"
	}
	out, err := editor.DraftFromPost(post).Preview(r.width)
	if err != nil {
		out = editor.DraftFromPost(post).Markdown() + "\n"
	}
	r.posts[rec.ID] = out
	return out
}
