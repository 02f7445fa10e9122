package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/client"
	"github.com/bthakur/termfolio/internal/logging"
	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/internal/tui"
)

func newTerminalCmd() *cobra.Command {
	var altScreen bool

	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Open the portfolio terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFile(cfg.Terminal.LogFile, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx := cmd.Context()
			api := client.New(cfg.Terminal.APIURL, client.WithLogger(logger))

			p, err := fetchPortfolio(ctx, api, cfg.Terminal.RequestTimeout, logger)
			if err != nil {
				return err
			}

			return tui.Run(ctx, p, api, tui.Options{
				RequestTimeout: cfg.Terminal.RequestTimeout,
				Logger:         logger,
				AltScreen:      altScreen,
			})
		},
	}
	cmd.Flags().BoolVar(&altScreen, "alt-screen", true, "use the terminal's alternate screen")
	return cmd
}

// fetchPortfolio asks the API for the portfolio and falls back to the built-in
// copy when the server cannot be reached.
func fetchPortfolio(ctx context.Context, api *client.Client, timeout time.Duration, logger *zap.Logger) (*portfolio.Portfolio, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p, err := api.Portfolio(ctx)
	if err == nil {
		return p, nil
	}
	logger.Warn("using built-in portfolio", zap.String("reason", client.Message(err)))
	return portfolio.Default()
}
