package binder

// Storage
const (
	DocumentIndent = "  "
	TempFileSuffix = ".tmp"
	DirPerm        = 0o755
	StoreFile      = "file"
	StoreMemory    = "memory"
)

// Binder document keys
const (
	KeyVersion       = "version"
	KeyCards         = "cards"
	KeyUnlockedSets  = "unlocked_sets"
	KeySetMilestones = "set_milestones"
	KeyEvents        = "events"
	KeyPackHistory   = "pack_history"

	KeyCardID           = "card_id"
	KeySetID            = "set_id"
	KeyQuantityOwned    = "quantity_owned"
	KeyFirstObtainedAt  = "first_obtained_at"
	KeyLastObtainedAt   = "last_obtained_at"
	KeyEverNewDiscovery = "ever_new_discovery"

	KeyEventKey       = "key"
	KeyEventType      = "type"
	KeyTimestamp      = "timestamp"
	KeyDetails        = "details"
	KeyCardsAdded     = "cards_added"
	KeyInvalidCardIDs = "invalid_card_ids"
)

// InitialUnlockReason is recorded on the bootstrap unlock event.
const InitialUnlockReason = "first_set_in_progression"

// Percent scales completion ratios.
const Percent = 100.0

// Record drop reasons
const (
	DropReasonNotObject     = "record is not an object"
	DropReasonCardID        = "card_id missing or empty"
	DropReasonUnknownSet    = "set_id unknown"
	DropReasonCardNotInSet  = "card not in set"
	DropReasonKeyMismatch   = "key does not match set_id::card_id"
	DropReasonQuantity      = "quantity_owned is not a non-negative integer"
	DropReasonTimestamps    = "timestamps missing"
	DropReasonDiscoveryFlag = "ever_new_discovery is not a boolean"
)

// Log messages - storage
const (
	LogMsgBinderFileMissing = "Binder file missing, initializing empty binder"
	LogMsgBinderFileCorrupt = "Binder file is unreadable or corrupted, reinitializing empty binder"
	LogMsgBinderSaved       = "Binder state saved"
	LogMsgBinderLoaded      = "Binder state loaded"
	LogMsgRecordDropped     = "Dropping invalid card record"
	LogMsgStateSanitized    = "Binder state sanitized"
	LogMsgPersistFailed     = "Failed to persist binder state"
)

// Log messages - ingestion and progression
const (
	LogMsgInvalidSlot         = "Skipping invalid card entry in pack slot"
	LogMsgUnknownCard         = "Skipping unknown card id from pack"
	LogMsgCardNotInSet        = "Skipping card id not present in pack set"
	LogMsgNewCard             = "Binder update: new card"
	LogMsgDuplicateIncrement  = "Binder update: duplicate increment"
	LogMsgProgressionUnlocked = "Progression unlocked next set"
	LogMsgUnlockUnknownSet    = "Progression names a set missing from the catalog, not unlocking"
	LogMsgCardsAdded          = "Cards added to binder"
	LogMsgSetProgressCheck    = "Set progress check"
)

// Log field keys
const (
	LogFieldPath          = "path"
	LogFieldError         = "error"
	LogFieldKey           = "key"
	LogFieldReason        = "reason"
	LogFieldSetID         = "set_id"
	LogFieldNextSetID     = "next_set_id"
	LogFieldCardID        = "card_id"
	LogFieldExpectedSet   = "expected_set"
	LogFieldCandidateSets = "candidate_sets"
	LogFieldQuantity      = "quantity_owned"
	LogFieldDropped       = "dropped_records"
	LogFieldCards         = "cards"
	LogFieldUnlocked      = "unlocked_sets"
	LogFieldNew           = "new_discoveries"
	LogFieldDuplicates    = "duplicate_increments"
	LogFieldInvalid       = "invalid_card_ids"
	LogFieldOwned         = "owned_unique"
	LogFieldTotal         = "total_available"
	LogFieldPercent       = "completion_percentage"
)

// Error contexts
const (
	ErrContextLoadState   = "failed to load binder state"
	ErrContextSaveState   = "failed to save binder state"
	ErrContextEncodeState = "failed to encode binder state"
	ErrContextDecodeState = "failed to decode binder state"
	ErrContextWriteTemp   = "failed to write temporary binder file"
	ErrContextSyncTemp    = "failed to sync temporary binder file"
	ErrContextRename      = "failed to replace binder file"
)
