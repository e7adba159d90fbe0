package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Binder Event Metrics
var (
	BinderEventsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBinderEventsRecorded,
			Help: HelpTextBinderEventsRecorded,
		},
		[]string{LabelType},
	)

	SetsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSetsUnlocked,
			Help: HelpTextSetsUnlocked,
		},
		[]string{LabelSetID},
	)

	SetsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSetsCompleted,
			Help: HelpTextSetsCompleted,
		},
		[]string{LabelSetID},
	)

	MilestonesReached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMilestonesReached,
			Help: HelpTextMilestonesReached,
		},
		[]string{LabelSetID, LabelThreshold},
	)
)

// Business Metrics
var (
	PacksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
		[]string{LabelSetID},
	)

	CardsDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsDrawn,
			Help: HelpTextCardsDrawn,
		},
		[]string{LabelRarity},
	)

	HoloUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHoloUpgrades,
			Help: HelpTextHoloUpgrades,
		},
		[]string{LabelSetID},
	)

	CardsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsIngested,
			Help: HelpTextCardsIngested,
		},
		[]string{LabelSetID, LabelOutcome},
	)

	InvalidCardIDs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInvalidCardIDs,
			Help: HelpTextInvalidCardIDs,
		},
		[]string{LabelSetID},
	)

	BinderSaveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBinderSaveTime,
			Help:    HelpTextBinderSaveTime,
			Buckets: SaveLatencyBuckets,
		},
		[]string{LabelStore},
	)

	SimulatedPacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulatedPacks,
			Help: HelpTextSimulatedPacks,
		},
	)
)
