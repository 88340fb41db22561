package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeRaiseException is raised by the participation monotonic-pending trigger
	PgErrorCodeRaiseException = "P0001"
	// PgErrorCodeCheckViolation is returned when a score check constraint fails
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Match Operations
const (
	ErrMsgFailedToInsertMatch          = "failed to insert match"
	ErrMsgFailedToInsertParticipations = "failed to insert participations"
	ErrMsgFailedToGetMatch             = "failed to get match"
	ErrMsgFailedToLockMatch            = "failed to lock match"
	ErrMsgFailedToReadParticipation    = "failed to read participation"
	ErrMsgFailedToFlipParticipation    = "failed to confirm participation"
	ErrMsgFailedToListMatches          = "failed to list matches"
	ErrMsgFailedToListParticipations   = "failed to list participations"
)
