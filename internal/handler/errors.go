package handler

// Generic HTTP error messages for client responses.
// Internal error details are never exposed for KindInternal failures.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingSetIDQuery    = "Missing setId/set_id query parameter"
	ErrMsgMissingCardQuery     = "Missing setId/set_id or cardId/card_id query parameter"
	ErrMsgInvalidSegment       = "Invalid set_id/card_id path segment"
	ErrMsgCardImageNotFound    = "Card image not found"
	ErrMsgCardMetadataNotFound = "Card metadata not found"

	// Body error messages
	ErrMsgMissingSetID      = "Missing setId/set_id"
	ErrMsgMissingPackResult = "Missing packResult/pack_result payload"

	// Service failures
	ErrMsgOpenPackFailed     = "openPack failed"
	ErrMsgAddCardsFailed     = "addCardsToBinder failed"
	ErrMsgGenericServerError = "Something went wrong"
)

// Health responses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgStoreUnhealthy = "binder store unavailable"
)
