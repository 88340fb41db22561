package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ScoreBot_Go/internal/bootstrap"
	"github.com/osse101/ScoreBot_Go/internal/config"
	"github.com/osse101/ScoreBot_Go/internal/database"
	"github.com/osse101/ScoreBot_Go/internal/server"
	"github.com/osse101/ScoreBot_Go/internal/worker"
)

// @title ScoreBot API
// @version 1.0
// @description Match reporting, confirmation and ELO leaderboard API
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("ScoreBot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings(config.ServerEnvVars)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	// The engine only serves requests once the ledger reflects the store
	matchService, err := bootstrap.InitializeEngine(ctx, dbPool, bootstrap.InitializeEventSystem())
	if err != nil {
		return err
	}

	auditWorker := worker.NewLedgerAuditWorker(matchService, cfg.AuditInterval)
	if err := auditWorker.Start(); err != nil {
		return err
	}

	srv := server.NewServer(cfg, dbPool, matchService)
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		AuditWorker: auditWorker,
	})
	return err
}
