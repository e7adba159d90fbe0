package eventlog

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// Log is an append-only event log that refuses a second event with the
// same dedup key. It is not safe for concurrent use; the binder serializes
// access under its own lock.
type Log struct {
	events []domain.Event
	keys   map[string]struct{}
	now    func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New creates a log seeded with previously persisted events. An event
// without a key gets one derived from its fields; a later event repeating
// an earlier key is dropped.
func New(existing []domain.Event, opts ...Option) *Log {
	l := &Log{
		events: make([]domain.Event, 0, len(existing)),
		keys:   make(map[string]struct{}, len(existing)),
		now:    time.Now,
	}
	for _, evt := range existing {
		if evt.Key == "" {
			evt.Key = Key(evt.Type, evt.SetID, evt.Details)
		}
		if l.Has(evt.Key) {
			continue
		}
		l.events = append(l.events, evt)
		l.keys[evt.Key] = struct{}{}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key derives the dedup key "{type}:{set}:{next_set}:{threshold}". The next
// set and threshold parts are empty unless details carry a string
// next_set_id or an integral threshold.
func Key(eventType, setID string, details map[string]any) string {
	var next string
	if v, ok := details[domain.DetailNextSetID].(string); ok {
		next = v
	}
	return strings.Join([]string{eventType, setID, next, thresholdPart(details[domain.DetailThreshold])}, KeySeparator)
}

// thresholdPart formats a threshold as recorded (int) or as decoded from a
// stored document (json.Number, float64).
func thresholdPart(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return strconv.FormatInt(n, 10)
		}
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
	}
	return ""
}

// Record appends an event unless one with the same key already exists.
// It reports whether the event was appended.
func (l *Log) Record(ctx context.Context, eventType, setID string, details map[string]any) (domain.Event, bool) {
	log := logger.FromContext(ctx)

	if details == nil {
		details = map[string]any{}
	}
	key := Key(eventType, setID, details)
	if l.Has(key) {
		log.Debug(LogMsgEventDuplicate, LogFieldKey, key)
		return domain.Event{}, false
	}

	evt := domain.Event{
		Key:       key,
		Type:      eventType,
		SetID:     setID,
		Timestamp: domain.FormatTimestamp(l.now()),
		Details:   details,
	}
	l.events = append(l.events, evt)
	l.keys[key] = struct{}{}

	log.Info(LogMsgEventRecorded, LogFieldKey, key, LogFieldType, eventType, LogFieldSetID, setID, LogFieldDetails, details)
	return evt, true
}

// Has reports whether an event with key is recorded.
func (l *Log) Has(key string) bool {
	_, ok := l.keys[key]
	return ok
}

// Events returns the recorded events in append order. The slice is shared;
// callers must not modify it.
func (l *Log) Events() []domain.Event {
	return l.events
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}
