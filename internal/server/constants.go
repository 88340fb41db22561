package server

import "time"

// Middleware error bodies
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertRateLimit  = "SECURITY ALERT: Client exceeded request rate"
)

const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

const (
	HeaderAPIKey                = "X-API-Key"
	HeaderAuthorization         = "Authorization"
	HeaderForwardedFor          = "X-Forwarded-For"
	HeaderRequestID             = "X-Request-ID"
	HeaderContentTypeOptions    = "X-Content-Type-Options"
	HeaderFrameOptions          = "X-Frame-Options"
	HeaderContentSecurityPolicy = "Content-Security-Policy"
	HeaderReferrerPolicy        = "Referrer-Policy"
	HeaderCacheControl          = "Cache-Control"
)

const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoContent  = "default-src 'none'; frame-ancestors 'none'"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueNoStore    = "no-store"

	// The API explorer ships its own scripts and inline bootstrap
	HeaderValueSwaggerUI = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"
)

// SwaggerPathPrefix serves the generated API documentation
const SwaggerPathPrefix = "/swagger/"

// MaxRequestIDLength bounds caller-supplied request IDs
const MaxRequestIDLength = 64

// PublicPaths bypass authentication and rate limiting
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
	"/swagger",
}

// QuietPaths are served without request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

const RedactedValue = "[REDACTED]"

const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second

	// FailedAuthAlertThreshold is the number of failed attempts per window before alerting
	FailedAuthAlertThreshold = 5
	DetectorWindow           = 5 * time.Minute

	// RateLimiterCacheSize bounds the number of client IPs tracked at once
	RateLimiterCacheSize = 4096
	RateLimiterIdleTTL   = 10 * time.Minute
)
