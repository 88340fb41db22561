package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Engine metric names
const (
	MetricNameMatchesReported       = "matches_reported_total"
	MetricNameConfirmations         = "confirmations_total"
	MetricNameMatchesFullyConfirmed = "matches_fully_confirmed_total"
	MetricNameLedgerRebuilds        = "ledger_rebuilds_total"
	MetricNameLedgerPlayers         = "ledger_players"
	MetricNameLedgerAudits          = "ledger_audits_total"
)

// Chat metric names
const (
	MetricNameChatCommands = "chat_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Engine metric help text
const (
	HelpTextMatchesReported       = "Total number of matches reported"
	HelpTextConfirmations         = "Total number of confirmation attempts by outcome"
	HelpTextMatchesFullyConfirmed = "Total number of matches that became fully confirmed"
	HelpTextLedgerRebuilds        = "Total number of rating ledger rebuilds by reason"
	HelpTextLedgerPlayers         = "Number of players in the rating ledger"
	HelpTextLedgerAudits          = "Total number of ledger replay audits by result"
)

// Chat metric help text
const (
	HelpTextChatCommands = "Total number of chat commands handled by command"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelReason  = "reason"
	LabelResult  = "result"
	LabelCommand = "command"
)

// Audit results
const (
	AuditResultConsistent = "consistent"
	AuditResultMismatch   = "mismatch"
	AuditResultError      = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

// PathUnmatched labels requests that no route matched
const PathUnmatched = "unmatched"
