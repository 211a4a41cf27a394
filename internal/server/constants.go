package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple rejected session tokens"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
)

// securityHeaders are set on every response
var securityHeaders = map[string]string{
	HeaderContentType:    "nosniff",
	HeaderFrameOptions:   "SAMEORIGIN",
	HeaderXSSProtection:  "1; mode=block",
	HeaderReferrerPolicy: "strict-origin-when-cross-origin",
}

// Rate limiting: requests and rejected tokens are counted per IP over a fixed window
const (
	RateWindow           = 5 * time.Minute
	MaxRequestsPerWindow = 1000
	FailedAuthAlertAt    = 5
	FailedAuthBlockAt    = 20
)

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

const readHeaderTimeout = 5 * time.Second
