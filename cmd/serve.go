package main

import (
	"context"
	"database/sql"
	"os/signal"
	"syscall"

	"community_survey/internal/handlers"
	"community_survey/internal/repository"
	"community_survey/internal/repository/db"
	"community_survey/internal/server"
	"community_survey/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	conn, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB(conn)

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos)

	opts := handlers.Options{}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		opts.AllowedOrigin = cfg.CORS.ClientOrigin
	}
	apiHandler := handlers.NewHandler(services, log, opts)

	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("server listening", "port", cfg.Port, "db", cfg.DB.Path, "cors_origin", opts.AllowedOrigin)
		return srv.Run(cfg.Port, apiHandler.InitRoutes())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")

		// allow in-flight requests to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openDB opens the configured SQLite file with schema and default prompts in place.
func openDB(ctx context.Context) (*sql.DB, error) {
	return db.InitDB(ctx, cfg.DB.Path)
}

func closeDB(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}
