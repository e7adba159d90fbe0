package catalog

// File layout
const (
	PoolFileExt      = ".json"
	PoolFilePattern  = "*" + PoolFileExt
	ImageURLTemplate = "/cards/%s/%s.png"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Card catalog loaded"
	LogMsgPoolFileLoaded  = "Pool file loaded"
	LogMsgDuplicateSetID  = "Pool file redeclares a set id, later file wins"
	LogMsgPoolFileInvalid = "Pool file failed validation"
)

// Log field keys
const (
	LogFieldDir        = "dir"
	LogFieldFile       = "file"
	LogFieldSetID      = "set_id"
	LogFieldSets       = "sets"
	LogFieldCards      = "cards"
	LogFieldTotalCards = "total_cards"
	LogFieldError      = "error"
)

// Error contexts
const (
	ErrContextReadPool  = "failed to read pool file"
	ErrContextParsePool = "failed to parse pool file"
	ErrContextListPools = "failed to list pool files"
)
