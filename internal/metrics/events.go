package metrics

import (
	"context"
	"strconv"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// EventMetricsCollector turns recorded binder events into metrics.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// HandleEvent records metrics for one newly appended binder event.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt domain.Event) {
	log := logger.FromContext(ctx)

	BinderEventsRecorded.WithLabelValues(evt.Type).Inc()

	switch evt.Type {
	case domain.EventSetCompleted:
		SetsCompleted.WithLabelValues(evt.SetID).Inc()

	case domain.EventNewSetUnlocked:
		next, ok := evt.Details[domain.DetailNextSetID].(string)
		if !ok {
			log.Debug(LogMsgEventDetailMissing, "type", evt.Type, "detail", domain.DetailNextSetID)
			return
		}
		SetsUnlocked.WithLabelValues(next).Inc()

	case domain.EventInitialSetUnlocked:
		SetsUnlocked.WithLabelValues(evt.SetID).Inc()

	case domain.EventSetMilestoneReached:
		threshold, ok := evt.Details[domain.DetailThreshold].(int)
		if !ok {
			log.Debug(LogMsgEventDetailMissing, "type", evt.Type, "detail", domain.DetailThreshold)
			return
		}
		MilestonesReached.WithLabelValues(evt.SetID, strconv.Itoa(threshold)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
}

// RecordPack records the rarity mix of one drawn pack.
func RecordPack(res *domain.PackResult) {
	PacksOpened.WithLabelValues(res.SetID).Inc()
	for _, s := range res.Slots {
		CardsDrawn.WithLabelValues(string(s.Rarity)).Inc()
	}
	for _, roll := range res.Debug.RareSlotRolls {
		if roll.UpgradedToHolo {
			HoloUpgrades.WithLabelValues(res.SetID).Inc()
		}
	}
}

// RecordIngest records the outcome counts of one binder ingestion.
func RecordIngest(summary *domain.IngestSummary) {
	CardsIngested.WithLabelValues(summary.SetID, OutcomeNew).Add(float64(summary.NewDiscoveries))
	CardsIngested.WithLabelValues(summary.SetID, OutcomeDuplicate).Add(float64(summary.DuplicateIncrements))
	if n := len(summary.InvalidCardIDs); n > 0 {
		InvalidCardIDs.WithLabelValues(summary.SetID).Add(float64(n))
	}
}
