package bootstrap

import (
	"context"
	"log/slog"

	"github.com/special-brownies/booster-pack/internal/binder"
	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/metrics"
	"github.com/special-brownies/booster-pack/internal/sse"
)

// EventObservers returns the binder options that attach every event
// subscriber. hub may be nil when no stream is served.
func EventObservers(hub *sse.Hub) []binder.Option {
	collector := metrics.NewEventMetricsCollector()

	opts := []binder.Option{
		binder.WithEventObserver(collector.HandleEvent),
		binder.WithEventObserver(announceProgression),
	}
	if hub != nil {
		opts = append(opts, binder.WithEventObserver(hub.Publish))
	}
	slog.Info(LogMsgEventObserverWired, LogFieldObservers, len(opts))
	return opts
}

// announceProgression logs set completions and unlocks under one stable message.
func announceProgression(ctx context.Context, evt domain.Event) {
	switch evt.Type {
	case domain.EventSetCompleted, domain.EventNewSetUnlocked, domain.EventInitialSetUnlocked:
		logger.FromContext(ctx).Info(LogMsgProgressionAnnounced,
			LogFieldEventType, evt.Type,
			LogFieldSetID, evt.SetID,
			LogFieldTimestamp, evt.Timestamp)
	}
}
