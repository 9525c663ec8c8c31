package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/ligafc/leaguehub/internal/config"
	"github.com/ligafc/leaguehub/internal/database"
	"github.com/ligafc/leaguehub/internal/migrations"
	"github.com/ligafc/leaguehub/internal/server"
	"github.com/ligafc/leaguehub/internal/sheets"
	"github.com/ligafc/leaguehub/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite cache ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Remote source + service ---
	if cfg.SheetsURL == "" {
		logger.Warn("SHEETS_URL not set, operating in local-only mode")
	}
	remote := sheets.NewClient(cfg.SheetsURL, cfg.SheetsTimeout)
	svc := server.NewService(store.NewSnapshotStore(db), remote, logger)

	// Cache renders first; a failed initial sync only logs a warning.
	if err := svc.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrapping state: %w", err)
	}

	// --- HTTP server ---
	srv := server.New(cfg.HTTPAddr, logger, svc, db)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
