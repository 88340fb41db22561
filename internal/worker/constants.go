package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgPoolShuttingDown  = "Shutting down worker pool"
	LogMsgPoolShutdownDone  = "Worker pool shutdown complete"
	LogMsgPoolShutdownLimit = "Worker pool shutdown timeout"
)

// ============================================================================
// Log Messages - Ledger Audit Worker
// ============================================================================

const (
	LogMsgAuditScheduled     = "Ledger audit scheduled"
	LogMsgAuditDisabled      = "Ledger audit disabled"
	LogMsgAuditConsistent    = "Ledger audit passed"
	LogMsgAuditMismatch      = "Ledger audit found divergence, rebuilding"
	LogMsgAuditFailed        = "Ledger audit failed"
	LogMsgAuditRebuildFailed = "Ledger rebuild after audit failed"
	LogMsgAuditShutdown      = "Ledger audit worker stopped"
)

// ============================================================================
// Errors
// ============================================================================

const (
	ErrMsgPoolStopped        = "worker pool is stopped"
	ErrMsgCreateScheduler    = "failed to create scheduler: %w"
	ErrMsgScheduleAudit      = "failed to schedule ledger audit: %w"
	ErrMsgAuditRunFailed     = "ledger audit failed: %w"
	ErrMsgAuditRebuildFailed = "ledger rebuild after audit failed: %w"
)

// AuditJobName names the ledger audit in the scheduler
const AuditJobName = "ledger-audit"

// AuditTimeout bounds a single audit run including a possible rebuild
const AuditTimeout = 2 * time.Minute
