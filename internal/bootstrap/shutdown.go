package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ScoreBot_Go/internal/server"
	"github.com/osse101/ScoreBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	AuditWorker *worker.LedgerAuditWorker
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Ledger audit worker (cancel a running replay)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AuditWorker != nil {
		shutdownComponent(ctx, ComponentNameAuditWorker, components.AuditWorker)
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownable interface {
	Shutdown(context.Context) error
}

func shutdownComponent(ctx context.Context, name string, c shutdownable) {
	if err := c.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgComponentShutdownFailed, "error", err)
	}
}
