package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Binder event metric names
const (
	MetricNameBinderEventsRecorded = "binder_events_recorded_total"
	MetricNameSetsUnlocked         = "binder_sets_unlocked_total"
	MetricNameSetsCompleted        = "binder_sets_completed_total"
	MetricNameMilestonesReached    = "binder_milestones_reached_total"
)

// Business metric names
const (
	MetricNamePacksOpened    = "packs_opened_total"
	MetricNameCardsDrawn     = "cards_drawn_total"
	MetricNameHoloUpgrades   = "holo_upgrades_total"
	MetricNameCardsIngested  = "binder_cards_ingested_total"
	MetricNameInvalidCardIDs = "binder_invalid_card_ids_total"
	MetricNameBinderSaveTime = "binder_save_duration_seconds"
	MetricNameSimulatedPacks = "simulated_packs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Binder event metric help text
const (
	HelpTextBinderEventsRecorded = "Total number of binder events recorded"
	HelpTextSetsUnlocked         = "Total number of sets unlocked through progression"
	HelpTextSetsCompleted        = "Total number of sets completed"
	HelpTextMilestonesReached    = "Total number of completion milestones reached"
)

// Business metric help text
const (
	HelpTextPacksOpened    = "Total number of packs opened"
	HelpTextCardsDrawn     = "Total number of cards drawn, by rarity"
	HelpTextHoloUpgrades   = "Total number of rare slots upgraded to holo"
	HelpTextCardsIngested  = "Total number of cards written to the binder, by outcome"
	HelpTextInvalidCardIDs = "Total number of submitted card ids rejected by the binder"
	HelpTextBinderSaveTime = "Time spent persisting the binder state in seconds"
	HelpTextSimulatedPacks = "Total number of packs drawn by simulations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSetID     = "set_id"
	LabelRarity    = "rarity"
	LabelOutcome   = "outcome"
	LabelThreshold = "threshold"
	LabelStore     = "store"
)

// Ingest outcomes
const (
	OutcomeNew       = "new"
	OutcomeDuplicate = "duplicate"
)

// UnmatchedRoute labels requests that no route matched.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SaveLatencyBuckets covers local file writes through remote database round trips.
var SaveLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventDetailMissing = "Binder event is missing an expected detail"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
