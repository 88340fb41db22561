package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of old log files kept next to the new session log
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingScoreBot    = "Starting ScoreBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerRegistered      = "Event logger registered"
	LogMsgEventObserved              = "Event observed"
)

// =============================================================================
// Ledger Startup
// =============================================================================

const (
	// LedgerBootstrapTimeout bounds the initial replay of the match store
	LedgerBootstrapTimeout = 2 * time.Minute

	LogMsgLedgerBootstrapping = "Replaying confirmed matches into rating ledger..."
	LogMsgLedgerReady         = "Rating ledger ready"
	ErrMsgLedgerBootstrap     = "failed to bootstrap rating ledger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// Component names for shutdown logging
	ComponentNameAuditWorker = "ledger audit worker"
)

// Shutdown log message format (component name will be prepended)
const (
	LogMsgComponentShutdownFailed = " shutdown failed"
)
