package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bthakur/termfolio/internal/logging"
	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/pkg/database"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store the portfolio document in MongoDB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			p, err := loadPortfolio(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := database.InitDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
			if err != nil {
				return err
			}
			defer db.Client().Disconnect(ctx) //nolint:errcheck

			if err := portfolio.NewPortfolioRepository(db).Upsert(ctx, p); err != nil {
				logger.Error("failed to seed portfolio", zap.Error(err))
				return err
			}
			logger.Info("portfolio seeded", zap.String("database", cfg.Mongo.Database), zap.String("name", p.About.Name))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "portfolio YAML file (default built-in data)")
	return cmd
}

func loadPortfolio(path string) (*portfolio.Portfolio, error) {
	if path == "" {
		return portfolio.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return portfolio.Parse(data)
}
