package progression

// Config file keys
const (
	KeyProgressionOrder       = "progression_order"
	KeyTrackPartialMilestones = "track_partial_milestones"
	KeyMilestoneThresholds    = "milestone_thresholds"
	KeyMaintainPackHistory    = "maintain_pack_history"
)

// MaxThreshold is the highest meaningful completion percentage.
const MaxThreshold = 100

// Log messages
const (
	LogMsgConfigMissing    = "Progression config not found, using defaults"
	LogMsgConfigUnreadable = "Failed to parse progression config, using defaults"
	LogMsgConfigNotObject  = "Progression config must be an object, using defaults"
	LogMsgFieldFallback    = "Progression config field invalid, using default"
	LogMsgConfigLoaded     = "Progression config loaded"
)

// Log field keys
const (
	LogFieldPath  = "path"
	LogFieldField = "field"
	LogFieldError = "error"
	LogFieldOrder = "order"
)
