package handler

import "time"

// Query parameter names. Both spellings are accepted.
const (
	QueryParamSetID      = "setId"
	QueryParamSetIDSnake = "set_id"
	QueryParamCardID     = "cardId"
	QueryParamCardSnake  = "card_id"
)

// URL parameters of the card image route.
const (
	URLParamSetID  = "setID"
	URLParamCardID = "cardID"
)

// Pack result body keys
const (
	KeySetID  = "set_id"
	KeySlots  = "slots"
	KeyCardID = "card_id"
)

// ContentTypePNG is served for card images.
const ContentTypePNG = "image/png"

// ReadyTimeout bounds the readiness probe.
const ReadyTimeout = 2 * time.Second

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgRequestRejected   = "Request rejected"
	LogMsgServiceFailed     = "Service call failed"
	LogMsgPackOpened        = "Pack opened"
	LogMsgCardsAdded        = "Cards added to binder"
	LogMsgCardImageResolved = "Card image resolved"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgMissingQueryParam = "Missing query parameter"
	LogMsgOddRequestFields  = "LogRequestFields called with odd number of arguments"
	LogMsgRequestDetails    = "Request details"
)

// Log field keys
const (
	LogFieldError      = "error"
	LogFieldOperation  = "operation"
	LogFieldKind       = "kind"
	LogFieldSetID      = "set_id"
	LogFieldCardID     = "card_id"
	LogFieldTotalCards = "total_cards"
	LogFieldPath       = "path"
	LogFieldExists     = "exists"
	LogFieldParam      = "param"
	LogFieldSlots      = "slots"
	LogFieldIgnored    = "ignored_slots"
	LogFieldWritten    = "cards_written"
)
