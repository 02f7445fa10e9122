package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bthakur/termfolio/internal/client"
	"github.com/bthakur/termfolio/internal/editor"
	"github.com/bthakur/termfolio/internal/logging"
)

type draftFlags struct {
	title    string
	date     string
	readTime string
	tags     string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "post title")
	cmd.Flags().StringVar(&f.date, "date", "", "publication date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.readTime, "read-time", "", "read time label (default \"5 min read\")")
	cmd.Flags().StringVar(&f.tags, "tags", "", "comma separated tags")
}

// draft builds a draft from the flags and the markdown file at path.
func (f *draftFlags) draft(path string) (editor.Draft, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return editor.Draft{}, fmt.Errorf("could not read %s: %w", path, err)
	}
	d := editor.NewDraft(time.Now())
	d.Title = f.title
	d.Content = string(content)
	d.Tags = editor.ParseTags(f.tags)
	if f.date != "" {
		d.Date = f.date
	}
	if f.readTime != "" {
		d.ReadTime = f.readTime
	}
	return d, nil
}

type editorEnv struct {
	api    *client.Client
	gate   *editor.Gate
	store  *editor.FileStore
	closer func()
}

func newEditorEnv() (*editorEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFile(cfg.Terminal.LogFile, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	api := client.New(cfg.Terminal.APIURL, client.WithLogger(logger))
	store := editor.NewFileStore(cfg.Terminal.SessionFile)
	return &editorEnv{
		api:    api,
		gate:   editor.NewGate(store, api, logger),
		store:  store,
		closer: func() { _ = logger.Sync() },
	}, nil
}

func newEditorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Write and publish blog posts",
	}
	cmd.AddCommand(
		newEditorLoginCmd(),
		newEditorLogoutCmd(),
		newEditorStatusCmd(),
		newEditorPreviewCmd(),
		newEditorExportCmd(),
		newEditorPublishCmd(),
	)
	return cmd
}

func newEditorLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to the blog editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEditorEnv()
			if err != nil {
				return err
			}
			defer env.closer()

			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			if err := env.gate.Login(cmd.Context(), password); err != nil {
				return errors.New(client.Message(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		},
	}
}

// readPassword reads without echo from a terminal, or one line from a pipe.
// Only the line terminator is removed; spaces are part of the password.
func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readPasswordLine(cmd.InOrStdin())
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newEditorLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored editor session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEditorEnv()
			if err != nil {
				return err
			}
			defer env.closer()

			if err := env.gate.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newEditorStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the stored editor session against the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEditorEnv()
			if err != nil {
				return err
			}
			defer env.closer()

			state, err := env.gate.Mount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", state, env.store.Path())
			return nil
		},
	}
}

func newEditorPreviewCmd() *cobra.Command {
	var flags draftFlags
	var width int

	cmd := &cobra.Command{
		Use:   "preview <file.md>",
		Short: "Render a draft the way readers will see it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.draft(args[0])
			if err != nil {
				return err
			}
			out, err := d.Preview(width)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "slug: %s\n%s", d.Slug(), out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 80, "wrap width")
	return cmd
}

func newEditorExportCmd() *cobra.Command {
	var flags draftFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export <file.md>",
		Short: "Write a draft as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.draft(args[0])
			if err != nil {
				return err
			}
			data, err := d.Export()
			if err != nil {
				return err
			}
			if output == "" {
				output = d.Slug() + ".json"
			}
			if output == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default <slug>.json)")
	return cmd
}

func newEditorPublishCmd() *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "publish <file.md>",
		Short: "Publish a draft to the blog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.draft(args[0])
			if err != nil {
				return err
			}
			env, err := newEditorEnv()
			if err != nil {
				return err
			}
			defer env.closer()

			ctx := cmd.Context()
			if _, err := env.gate.Mount(ctx); err != nil {
				return err
			}

			resp, err := editor.Publish(ctx, env.gate, env.api, d)
			switch {
			case errors.Is(err, editor.ErrNotLoggedIn):
				return errors.New("not logged in, run: termfolio editor login")
			case errors.Is(err, editor.ErrSessionExpired):
				return errors.New(editor.SessionExpiredMessage)
			case err != nil:
				return errors.New(client.Message(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.Message, resp.Slug)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
