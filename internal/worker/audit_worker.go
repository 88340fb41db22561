package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/osse101/ScoreBot_Go/internal/logger"
	"github.com/osse101/ScoreBot_Go/internal/match"
	"github.com/osse101/ScoreBot_Go/internal/metrics"
)

// LedgerAuditWorker periodically replays the match store and compares the
// result with the live ledger, rebuilding it when they diverge
type LedgerAuditWorker struct {
	service  match.Service
	interval time.Duration

	mu        sync.Mutex
	scheduler gocron.Scheduler
	cancel    context.CancelFunc
}

// NewLedgerAuditWorker creates the worker. A non-positive interval disables it.
func NewLedgerAuditWorker(service match.Service, interval time.Duration) *LedgerAuditWorker {
	return &LedgerAuditWorker{
		service:  service,
		interval: interval,
	}
}

// Start schedules the audit. Runs never overlap.
func (w *LedgerAuditWorker) Start() error {
	log := logger.FromContext(context.Background())
	if w.interval <= 0 {
		log.Info(LogMsgAuditDisabled)
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf(ErrMsgCreateScheduler, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			runCtx, runCancel := context.WithTimeout(ctx, AuditTimeout)
			defer runCancel()
			_ = w.RunOnce(runCtx)
		}),
		gocron.WithName(AuditJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = scheduler.Shutdown()
		return fmt.Errorf(ErrMsgScheduleAudit, err)
	}

	w.mu.Lock()
	w.scheduler = scheduler
	w.cancel = cancel
	w.mu.Unlock()

	scheduler.Start()
	log.Info(LogMsgAuditScheduled, "interval", w.interval)
	return nil
}

// RunOnce audits the ledger and rebuilds it on divergence
func (w *LedgerAuditWorker) RunOnce(ctx context.Context) error {
	log := logger.FromContext(ctx)

	report, err := w.service.Audit(ctx)
	if err != nil {
		metrics.LedgerAudits.WithLabelValues(metrics.AuditResultError).Inc()
		log.Error(LogMsgAuditFailed, "error", err)
		return fmt.Errorf(ErrMsgAuditRunFailed, err)
	}

	if report.Consistent {
		metrics.LedgerAudits.WithLabelValues(metrics.AuditResultConsistent).Inc()
		log.Debug(LogMsgAuditConsistent, "matches", report.Matches, "players", report.Players, "in_flight", report.InFlight)
		return nil
	}

	metrics.LedgerAudits.WithLabelValues(metrics.AuditResultMismatch).Inc()
	log.Warn(LogMsgAuditMismatch, "diff", report.Diff)

	if err := w.service.Rebuild(ctx, match.RebuildReasonAudit); err != nil {
		log.Error(LogMsgAuditRebuildFailed, "error", err)
		return fmt.Errorf(ErrMsgAuditRebuildFailed, err)
	}
	return nil
}

// Shutdown stops the scheduler and cancels a running audit
func (w *LedgerAuditWorker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	scheduler, cancel := w.scheduler, w.cancel
	w.scheduler, w.cancel = nil, nil
	w.mu.Unlock()

	if scheduler == nil {
		return nil
	}

	cancel()
	err := scheduler.Shutdown()
	logger.FromContext(ctx).Info(LogMsgAuditShutdown)
	return err
}
