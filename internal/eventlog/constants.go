package eventlog

// KeySeparator joins the parts of a dedup key.
const KeySeparator = ":"

// Log messages
const (
	LogMsgEventRecorded  = "Binder event recorded"
	LogMsgEventDuplicate = "Binder event already recorded, skipping"
)

// Log field keys
const (
	LogFieldKey     = "key"
	LogFieldType    = "type"
	LogFieldSetID   = "set_id"
	LogFieldDetails = "details"
)
