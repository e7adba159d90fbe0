package postgres

// StoreName labels the PostgreSQL binder store in metrics.
const StoreName = "postgres"

// DefaultBinderDocumentID keys the single-tenant binder row.
const DefaultBinderDocumentID = "default"

// Error Messages
const (
	ErrMsgFailedToLoadBinder        = "failed to load binder document"
	ErrMsgFailedToSaveBinder        = "failed to save binder document"
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Log Messages
const (
	LogMsgBinderDocumentCorrupt = "Stored binder document is corrupted, reinitializing empty binder"
)

// Log field keys
const (
	LogFieldDocumentID = "document_id"
	LogFieldError      = "error"
)
