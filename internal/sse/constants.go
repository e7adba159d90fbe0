package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Stream event types besides the binder event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters the stream to a comma-separated list of event types.
const QueryParamTypes = "types"

// Headers
const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderConnection   = "Connection"
	ContentTypeStream  = "text/event-stream"
	CacheControlNone   = "no-cache"
	ConnectionKeep     = "keep-alive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgFlushError         = "Failed to flush SSE response"
)

// Log field keys
const (
	LogFieldClientID     = "client_id"
	LogFieldFilters      = "filters"
	LogFieldTotalClients = "total_clients"
	LogFieldEventType    = "event_type"
	LogFieldError        = "error"
)
