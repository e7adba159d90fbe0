package simulation

// Defaults
const (
	DefaultConfidence = 0.95
	DefaultQueueSize  = 64
)

// Log messages
const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationFinished = "Simulation finished"
)

// Log field keys
const (
	LogFieldSetID    = "set_id"
	LogFieldPacks    = "packs"
	LogFieldWorkers  = "workers"
	LogFieldBaseSeed = "base_seed"
	LogFieldHoloRate = "holo_rate"
	LogFieldDuration = "duration"
)

// Error messages
const (
	ErrMsgPacksNotPositive = "packs must be positive"
	ErrMsgDrawFailed       = "simulated draw failed"
)
