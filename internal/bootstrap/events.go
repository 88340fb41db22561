package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ScoreBot_Go/internal/event"
	"github.com/osse101/ScoreBot_Go/internal/logger"
	"github.com/osse101/ScoreBot_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and registers the
// subscribers every binary needs:
// - Metrics collector (match and ledger counters)
// - Event logger (debug trail of match lifecycle events)
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range []event.Type{event.MatchReported, event.MatchConfirmed, event.LedgerRebuilt} {
		bus.Subscribe(t, logEvent)
	}
	slog.Info(LogMsgEventLoggerRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventObserved,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
