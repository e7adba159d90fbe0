package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgCORSRejected     = "CORS origin not allowed"
)

// HTTP header names
const (
	HeaderAPIKey          = "X-API-Key"
	HeaderAuthorization   = "Authorization"
	HeaderCookie          = "Cookie"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderXSSProtection   = "X-XSS-Protection"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderOrigin          = "Origin"
	HeaderVary            = "Vary"
	HeaderAllowOrigin     = "Access-Control-Allow-Origin"
	HeaderAllowMethods    = "Access-Control-Allow-Methods"
	HeaderAllowHeaders    = "Access-Control-Allow-Headers"
	HeaderAllowCreds      = "Access-Control-Allow-Credentials"
	HeaderRequestMethod   = "Access-Control-Request-Method"
	HeaderRequestHeaders  = "Access-Control-Request-Headers"
	HeaderMaxAge          = "Access-Control-Max-Age"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentEncoding = "Content-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderConnection      = "Connection"
	HeaderUpgrade         = "Upgrade"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS values
const (
	CORSAllowMethods = "GET, POST, OPTIONS"
	CORSMaxAge       = "600"
	CORSWildcard     = "*"
)

// Content encodings
const (
	EncodingZstd = "zstd"
	EncodingGzip = "gzip"
)

// Rate limiting
const (
	RateLimitRequests = 1000
	RateLimitWindow   = 5 * time.Minute
	RateLimitLogEvery = 100
)

// ReadHeaderTimeout bounds slow clients.
const ReadHeaderTimeout = 5 * time.Second

// Paths that are neither logged per request nor compressed
var QuietPaths = []string{
	"/health",
	"/healthz",
	"/readyz",
	"/metrics",
}

// Paths whose bodies are already compressed
var UncompressedPaths = []string{
	"/cards/",
	"/metrics",
	"/events",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
