package discord

import "time"

// Defaults
const (
	DefaultMinStreakLength  = 3
	DefaultTimeZone         = "America/Los_Angeles"
	DefaultSendRate         = 1.0
	DefaultSendBurst        = 5
	DefaultNameCacheSize    = 512
	DefaultNameCacheTTL     = 30 * time.Minute
	DefaultUnconfirmedLimit = 25

	// MaxMessageLength is Discord's limit on message content
	MaxMessageLength = 2000

	// UnconfirmedDateFormat renders match times in the unconfirmed table (MM/DD/YY HH:MM AM)
	UnconfirmedDateFormat = "01/02/06 03:04 PM"

	commandQueueSize = 64
	jobTimeout       = 30 * time.Second
)

// API client settings
const (
	apiTimeout    = 10 * time.Second
	apiMaxRetries = 3
	apiRetryDelay = 500 * time.Millisecond
	headerAPIKey  = "X-API-Key"
)

// Log messages
const (
	LogMsgBotRunning          = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgBotReady            = "Bot is ready"
	LogMsgStatusFailed        = "Failed to set bot status"
	LogMsgCommandReceived     = "Command received"
	LogMsgCommandFailed       = "Command failed"
	LogMsgEnqueueFailed       = "Failed to queue command"
	LogMsgSendFailed          = "Failed to send message"
	LogMsgNameLookupFailed    = "Failed to resolve display name"
	LogMsgStandingFailed      = "Failed to load standing for ELO announcement"
	LogMsgRetryingRequest     = "Retrying API request"
	LogMsgRequestFailed       = "API request failed"
	LogMsgServerErrorRetry    = "Server error, will retry"
	LogMsgHTTPServerStarting  = "Starting Discord internal HTTP server"
	LogMsgHTTPServerFailed    = "Discord internal HTTP server failed"
	LogMsgHTTPServerShutdown  = "Discord internal HTTP server shutdown failed"
	LogMsgAnnouncementFailed  = "Failed to send announcement"
	LogMsgImpersonationActive = "Impersonation enabled: any user may act as another"
)

// Error messages
const (
	ErrMsgCreateSession   = "error creating Discord session: %w"
	ErrMsgOpenConnection  = "error opening connection: %w"
	ErrMsgInvalidTimeZone = "invalid time zone %q: %w"
	ErrMsgMarshalBody     = "failed to marshal body: %w"
	ErrMsgCreateRequest   = "failed to create request: %w"
	ErrMsgMaxRetries      = "max retries exceeded: %w"
	ErrMsgServerStatus    = "server error: %d"
	ErrMsgDecodeResponse  = "failed to decode response: %w"
	ErrMsgAPIStatus       = "API returned status: %d"
	ErrMsgAPIError        = "API error: %s"
)
