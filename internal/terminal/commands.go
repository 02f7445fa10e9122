package terminal

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bthakur/termfolio/internal/blog"
	"github.com/bthakur/termfolio/internal/client"
	"github.com/bthakur/termfolio/internal/portfolio"
)

const (
	WelcomeMessage = "Welcome to Bishwa Thakur's portfolio! Type help to see available commands."
	Prompt         = "bishwa@portfolio ~"

	whoami = "bishwathakur"
	cwd    = "/home/bishwathakur/portfolio"
)

var banner = []string{
	"+-------------------------------------------+",
	"|  bishwa@portfolio  ::  t e r m f o l i o  |",
	"+-------------------------------------------+",
}

var helpEntries = [][2]string{
	{"welcome", "Show welcome message with Unix commands"},
	{"about", "Learn about Bishwa"},
	{"education", "View educational background"},
	{"skills", "See technical skills"},
	{"experience", "View work experience"},
	{"projects", "View projects"},
	{"certifications", "View certifications and competitions"},
	{"contact", "Get contact information"},
	{"resume", "Download my resume"},
	{"blog ls", "List blog posts"},
	{"blog <slug>", "Read a blog post"},
	{"clear", "Clear the terminal"},
	{"help", "Show this help message"},
	{"echo", "Print text to the terminal"},
	{"whoami", "Display the current user"},
	{"pwd", "Print the current working directory"},
	{"ls", "List available sections"},
	{"exit", "Close the terminal"},
}

var cowsay = []string{
	`  _______`,
	` < Hello! >`,
	`  -------`,
	`         \   ^__^`,
	`          \  (oo)\_______`,
	`             (__)       )\/\`,
	`                 ||----w |`,
	`                 ||     ||`,
}

var easterEggs = map[string]string{
	"fortune": `"The only way to do great work is to love what you do. - Steve Jobs"`,
	"sudo":    `"You have no power here!"`,
	"yes":     "yes yes yes yes yes...",
	"date":    `"It's always coding o'clock!"`,
	"weather": `"It's always night (like dark mode I like)."`,
	"motd":    `"Did you know? The first computer bug was an actual moth."`,
}

// ContentStore is the remote blog source used by the async commands.
type ContentStore interface {
	ListSlugs(ctx context.Context) ([]string, error)
	GetBlog(ctx context.Context, slug string) (*blog.BlogResponse, error)
}

// WelcomeResult is the record shown on mount and after clear.
func WelcomeResult() Result {
	lines := append([]string{}, banner...)
	lines = append(lines, "", WelcomeMessage)
	return Result{Kind: KindWelcome, Lines: lines}
}

func helpResult() Result {
	lines := make([]string, 0, len(helpEntries))
	for _, entry := range helpEntries {
		lines = append(lines, fmt.Sprintf("%-16s - %s", entry[0], entry[1]))
	}
	return Result{Kind: KindHelp, Title: "Available commands:", Lines: lines}
}

func notFoundMessage(input string) string {
	return fmt.Sprintf("Command not found: %s. Type help to see available commands.", input)
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`'`, "", `"`, "").Replace(s)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func matrix(rows, cols int) []string {
	lines := make([]string, rows)
	for r := range lines {
		var b strings.Builder
		for range cols {
			b.WriteRune(rune(0x30a0 + rand.IntN(96)))
		}
		lines[r] = b.String()
	}
	return lines
}

func text(lines ...string) Handler {
	return func(string, string) Outcome {
		return Outcome{Result: Text(lines...)}
	}
}

// DefaultRegistry wires every portfolio command. p supplies the section panels and
// store the blog commands; slugs, when not nil, is refreshed by `blog ls`.
func DefaultRegistry(p *portfolio.Portfolio, store ContentStore, slugs *SlugCache) *Registry {
	r := NewRegistry()

	r.Prefix("rev ", func(_, args string) Outcome {
		return Outcome{Result: Text(reverse(stripQuotes(args)))}
	})

	for _, greeting := range []string{`echo "bishwa thakur"`, `echo 'bishwa thakur'`, `echo bishwa thakur`} {
		r.Exact(greeting, text("BISHWA THAKUR"))
	}

	r.Exact("whoami", text(whoami))
	r.Exact("pwd", text(cwd))
	r.Exact("ls", text("about   education   skills   experience   projects   certifications   contact"))
	r.Exact("help", func(string, string) Outcome { return Outcome{Result: helpResult()} })
	r.Exact("welcome", func(string, string) Outcome { return Outcome{Result: WelcomeResult()} })

	for _, section := range portfolio.Sections {
		r.Exact(section, func(string, string) Outcome {
			outcome := Outcome{Result: Panel(p, section)}
			if section != "resume" {
				outcome.Section = section
			}
			return outcome
		})
	}

	r.Exact("blog ls", func(string, string) Outcome {
		return Outcome{
			Result: Loading("Fetching blog posts..."),
			Fetch: func(ctx context.Context) Result {
				list, err := store.ListSlugs(ctx)
				if err != nil {
					return ErrorResult("Failed to fetch blogs: " + client.Message(err))
				}
				if slugs != nil {
					slugs.Set(list)
				}
				return blogListResult(list)
			},
		}
	})
	r.Exact("blog", func(string, string) Outcome {
		return Outcome{Result: ErrorResult("Usage: blog ls | blog <slug>")}
	})
	r.Predicate(isBlogSlug, func(input, _ string) Outcome {
		slug := strings.TrimSpace(input[len(blogPrefix):])
		return Outcome{
			Result: Loading("Loading " + slug + "..."),
			Fetch: func(ctx context.Context) Result {
				post, err := store.GetBlog(ctx, slug)
				if errors.Is(err, blog.ErrBlogNotFound) {
					return ErrorResult("Blog post not found: " + slug)
				}
				if err != nil {
					return ErrorResult("Failed to fetch blog: " + client.Message(err))
				}
				return Result{Kind: KindBlogPost, Title: post.Data.Title, Post: post}
			},
		}
	})

	for name, line := range easterEggs {
		r.Exact(name, text(line))
	}
	r.Exact("cowsay", text(cowsay...))
	r.Exact("matrix", func(string, string) Outcome {
		return Outcome{Result: Text(matrix(20, 20)...)}
	})
	r.Exact("rm -rf", text(`"Nice try, but I won't let you destroy the universe."`))

	r.Exact("clear", func(string, string) Outcome { return Outcome{Action: ActionClear} })
	r.Exact("exit", func(string, string) Outcome { return Outcome{Action: ActionExit} })

	r.Prefix("echo ", func(_, args string) Outcome {
		return Outcome{Result: Text(strings.ToUpper(stripQuotes(args)))}
	})
	r.Fallback(func(input, _ string) Outcome {
		return Outcome{Result: Text(notFoundMessage(input))}
	})

	return r
}

// isBlogSlug matches "blog <slug>" for any slug other than ls.
func isBlogSlug(input string) bool {
	if !strings.HasPrefix(input, blogPrefix) {
		return false
	}
	slug := strings.TrimSpace(input[len(blogPrefix):])
	return slug != "" && slug != "ls"
}

func blogListResult(slugs []string) Result {
	if len(slugs) == 0 {
		return Result{Kind: KindBlogList, Title: "Blog posts", Lines: []string{"No blog posts yet."}, Slugs: []string{}}
	}
	lines := make([]string, 0, len(slugs)+1)
	for _, slug := range slugs {
		lines = append(lines, "  "+slug)
	}
	lines = append(lines, "", "Type blog <slug> to read a post.")
	return Result{Kind: KindBlogList, Title: "Blog posts", Lines: lines, Slugs: slugs}
}
