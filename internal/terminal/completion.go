package terminal

import "strings"

const blogPrefix = "blog "

// CommandNames are the top-level names offered by autocomplete. echo is left out
// since it is only useful with an argument.
var CommandNames = []string{
	"welcome", "about", "education", "skills", "experience", "projects", "certifications",
	"contact", "resume", "blog", "clear", "help", "whoami", "pwd", "ls", "exit",
}

type CompletionKind int

const (
	CompletionNone CompletionKind = iota
	CompletionUnique
	CompletionMultiple
)

// Completion is the resolver's answer. Value holds the full replacement line for a
// unique match; Options holds the candidates for multiple matches.
type Completion struct {
	Kind    CompletionKind
	Value   string
	Options []string
}

// Resolve completes partial against the command names, or against slugs once the
// input starts with "blog " and has something after it.
func Resolve(partial string, commands, slugs []string) Completion {
	if strings.HasPrefix(partial, blogPrefix) && len(partial) > len(blogPrefix) {
		matches := filterPrefix(slugs, partial[len(blogPrefix):])
		switch len(matches) {
		case 0:
			return Completion{Kind: CompletionNone}
		case 1:
			return Completion{Kind: CompletionUnique, Value: blogPrefix + matches[0]}
		}
		return Completion{Kind: CompletionMultiple, Options: matches}
	}

	term := strings.TrimSpace(partial)
	if term == "" {
		return Completion{Kind: CompletionNone}
	}

	matches := filterPrefix(commands, term)
	switch len(matches) {
	case 0:
		return Completion{Kind: CompletionNone}
	case 1:
		return Completion{Kind: CompletionUnique, Value: matches[0]}
	}
	return Completion{Kind: CompletionMultiple, Options: matches}
}

func filterPrefix(candidates []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, candidate := range candidates {
		if strings.HasPrefix(strings.ToLower(candidate), prefix) {
			out = append(out, candidate)
		}
	}
	return out
}

// CommonPrefix returns the longest prefix shared by every option.
func CommonPrefix(options []string) string {
	if len(options) == 0 {
		return ""
	}
	prefix := options[0]
	for _, option := range options[1:] {
		for !strings.HasPrefix(option, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
