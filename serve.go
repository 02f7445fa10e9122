package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bthakur/termfolio/docs"
	"github.com/bthakur/termfolio/internal/auth"
	"github.com/bthakur/termfolio/internal/blog"
	"github.com/bthakur/termfolio/internal/logging"
	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/internal/server"
	"github.com/bthakur/termfolio/pkg/database"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blog, auth and portfolio API",
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

			docs.SwaggerInfo.Title = "termfolio API"
			docs.SwaggerInfo.Version = Version

			ctx := cmd.Context()

			var (
				blogStore       blog.Store
				portfolioSource portfolio.Source
			)
			if inMemory {
				logger.Warn("serving from memory, posts are lost on exit")
				blogStore = blog.NewMemoryStore()
			} else {
				db, err := database.InitDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
				if err != nil {
					logger.Error("failed to connect to MongoDB", zap.Error(err))
					return err
				}
				defer func() {
					if err := db.Client().Disconnect(context.Background()); err != nil {
						logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
					}
				}()
				logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

				blogRepo := blog.NewBlogRepository(db)
				if err := blogRepo.EnsureIndexes(ctx); err != nil {
					logger.Error("failed to create blog indexes", zap.Error(err))
					return err
				}
				blogStore = blogRepo
				portfolioSource = portfolio.NewPortfolioRepository(db)
			}

			if cfg.Auth.EditorPassword == "" || cfg.Auth.JWTSecret == "" {
				logger.Warn("BLOG_EDITOR_PASSWORD or JWT_SECRET is unset, editor login is disabled")
			}

			srv := server.NewServer(
				auth.NewAuthService(cfg.Auth, logger),
				blog.NewBlogService(blogStore),
				portfolio.NewPortfolioService(portfolioSource, logger),
				cfg.Server,
				logger,
			)

			httpServer := &http.Server{
				Addr:              ":" + cfg.Server.Port,
				Handler:           srv,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting server", zap.String("port", cfg.Server.Port))
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped", zap.Error(err))
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep posts in memory instead of MongoDB")
	return cmd
}
