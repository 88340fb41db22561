package match

// ============================================================================
// Rebuild Reasons
// ============================================================================

// Reasons recorded when the rating ledger is rebuilt from the match store
const (
	RebuildReasonBootstrap  = "bootstrap"
	RebuildReasonOutOfOrder = "out_of_order"
	RebuildReasonAudit      = "audit"
	RebuildReasonManual     = "manual"
)

// ============================================================================
// Query Limits
// ============================================================================

// DefaultUnconfirmedLimit is used when a non-positive limit is passed to
// UnconfirmedMatches
const DefaultUnconfirmedLimit = 25

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgReportFailed        = "failed to report match: %w"
	ErrMsgConfirmFailed       = "failed to confirm match %d: %w"
	ErrMsgApplyFailed         = "failed to apply match %d to ledger: %w"
	ErrMsgListPendingFailed   = "failed to list pending matches for %s: %w"
	ErrMsgLoadHistoryFailed   = "failed to load confirmed matches: %w"
	ErrMsgReplayFailed        = "failed to replay confirmed matches: %w"
	ErrMsgNoScores            = "at least one score is required"
	ErrMsgNegativeScore       = "scores must not be negative: %d-%d"
	ErrMsgRangeOrder          = "lower bound %d is greater than upper bound %d"
	ErrMsgHandleRequired      = "player handle is required"
	ErrMsgEmptyHandleInTeam   = "team contains an empty handle"
	ErrMsgGetMatchFailed      = "failed to get match %d: %w"
	ErrMsgListMatchesFailed   = "failed to list matches: %w"
	ErrMsgPlayerHistoryFailed = "failed to list participations for %s: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMatchReported        = "Match reported"
	LogMsgParticipationFlipped = "Participation confirmed"
	LogMsgMatchFullyConfirmed  = "Match fully confirmed, ledger updated"
	LogMsgConfirmSkipped       = "Confirmation skipped"
	LogMsgOutOfOrderConfirm    = "Match confirmed out of creation order, rebuilding ledger"
	LogMsgLedgerRebuilt        = "Rating ledger rebuilt from match store"
	LogMsgAlreadyApplied       = "Match already applied by a rebuild"
	LogMsgPublishFailed        = "Failed to publish match event"
	LogMsgApplyFailed          = "Confirmed match could not be applied; replay will recover it"
	LogMsgLedgerAuditMismatch  = "Rating ledger diverged from replay"
	LogMsgAuditSkippedInFlight = "Audit left out matches still being applied"
)
