package cardmeta

// Defaults
const (
	DefaultCacheSize = 1024
	MetadataFileExt  = ".json"
	ImageFileExt     = ".png"
)

// Metadata file keys
const (
	KeyName        = "name"
	KeyCategory    = "category"
	KeyDexID       = "dexId"
	KeyDescription = "description"
	KeyTypes       = "types"
	KeyWeaknesses  = "weaknesses"
	KeyRarity      = "rarity"
	KeyType        = "type"
)

// Log messages
const (
	LogMsgMetadataUnreadable = "Card metadata file unreadable, using card id as name"
	LogMsgMetadataResolved   = "Card metadata resolved"
)

// Log field keys
const (
	LogFieldSetID          = "set_id"
	LogFieldCardID         = "card_id"
	LogFieldPath           = "path"
	LogFieldError          = "error"
	LogFieldHasDescription = "has_description"
	LogFieldHasTypes       = "has_types"
	LogFieldHasWeaknesses  = "has_weaknesses"
)
