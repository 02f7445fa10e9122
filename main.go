package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bthakur/termfolio/internal/config"
)

// Version is set at build time via -ldflags
var Version = "dev"

var configPath string

//	@title			termfolio API
//	@description	Blog, auth and portfolio API behind the termfolio terminal.

//	@contact.name	Bishwa Thakur
//	@contact.email	hello@example.com

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termfolio",
		Short:         "A portfolio you browse from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $TERMFOLIO_CONFIG)")

	root.AddCommand(
		newServeCmd(),
		newTerminalCmd(),
		newEditorCmd(),
		newSeedCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "termfolio version %s\n", Version)
			},
		},
	)
	return root
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("could not load config: %w", err)
	}
	return cfg, nil
}
