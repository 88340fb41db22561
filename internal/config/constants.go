package config

import "time"

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultServiceName      = "scorebot"
	DefaultDBName           = "scorebot"
	DefaultDBMaxConns       = 10
	DefaultDBMaxIdle        = 5 * time.Minute
	DefaultDBMaxLife        = time.Hour
	DefaultAuditInterval    = 15 * time.Minute
	DefaultUnconfirmedLimit = 25
	DefaultRateLimitRPS     = 5.0
	DefaultRateLimitBurst   = 20
)

// Error messages
const (
	ErrMsgAPIKeyRequired       = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPortRange     = "PORT must be between 1 and 65535, got %d"
	ErrMsgInvalidMaxConns      = "DB_MAX_CONNS must be positive, got %d"
	ErrMsgInvalidRateLimit     = "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"
	ErrMsgInvalidAuditInterval = "LEDGER_AUDIT_INTERVAL must not be negative"
)
