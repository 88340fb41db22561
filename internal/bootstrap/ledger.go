package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ScoreBot_Go/internal/database/postgres"
	"github.com/osse101/ScoreBot_Go/internal/event"
	"github.com/osse101/ScoreBot_Go/internal/match"
)

// InitializeEngine wires the Postgres match store into a rating engine and
// seeds its ledger. The returned service is ready to serve requests.
func InitializeEngine(ctx context.Context, dbPool *pgxpool.Pool, bus event.Bus) (match.Service, error) {
	svc := match.NewService(postgres.NewMatchRepository(dbPool), bus)
	if err := InitializeLedger(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// InitializeLedger replays every confirmed match into the engine's rating
// ledger. The engine must not serve requests before this returns.
func InitializeLedger(ctx context.Context, svc match.Service) error {
	ctx, cancel := context.WithTimeout(ctx, LedgerBootstrapTimeout)
	defer cancel()

	slog.Info(LogMsgLedgerBootstrapping)
	start := time.Now()

	if err := svc.Bootstrap(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLedgerBootstrap, err)
	}

	slog.Info(LogMsgLedgerReady,
		"players", len(svc.Leaderboard()),
		"duration", time.Since(start))
	return nil
}
