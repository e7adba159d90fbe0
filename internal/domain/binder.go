package domain

import (
	"encoding/json"
	"time"
)

// BinderStateVersion is written into every persisted binder document.
const BinderStateVersion = 1

// CardKeySeparator joins set id and card id in a composite key.
const CardKeySeparator = "::"

// TimestampLayout renders UTC timestamps with a trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// CardKey returns the composite key of an ownership record.
func CardKey(setID, cardID string) string {
	return setID + CardKeySeparator + cardID
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CardRecord is the ownership record of one card in one set.
type CardRecord struct {
	CardID           string `json:"card_id"`
	SetID            string `json:"set_id"`
	QuantityOwned    int    `json:"quantity_owned"`
	FirstObtainedAt  string `json:"first_obtained_at"`
	LastObtainedAt   string `json:"last_obtained_at"`
	EverNewDiscovery bool   `json:"ever_new_discovery"`
}

// Event types recorded in the binder event log.
const (
	EventInitialSetUnlocked  = "INITIAL_SET_UNLOCKED"
	EventSetCompleted        = "SET_COMPLETED"
	EventNewSetUnlocked      = "NEW_SET_UNLOCKED"
	EventSetMilestoneReached = "SET_MILESTONE_REACHED"
)

// Event detail keys.
const (
	DetailReason               = "reason"
	DetailNextSetID            = "next_set_id"
	DetailThreshold            = "threshold"
	DetailCompletionPercentage = "completion_percentage"
)

// Event is one entry of the append-only binder event log.
type Event struct {
	Key       string         `json:"key"`
	Type      string         `json:"type"`
	SetID     string         `json:"set_id"`
	Timestamp string         `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

// PackHistoryEntry records one ingestion when pack history is enabled.
type PackHistoryEntry struct {
	Timestamp      string   `json:"timestamp"`
	SetID          string   `json:"set_id"`
	CardsAdded     []string `json:"cards_added"`
	InvalidCardIDs []string `json:"invalid_card_ids"`
}

// BinderState is the whole persisted binder document.
type BinderState struct {
	Version       int                   `json:"version"`
	Cards         map[string]CardRecord `json:"cards"`
	UnlockedSets  []string              `json:"unlocked_sets"`
	SetMilestones map[string][]int      `json:"set_milestones"`
	Events        []Event               `json:"events"`
	PackHistory   []PackHistoryEntry    `json:"pack_history"`
}

// NewBinderState returns an empty state with every collection allocated.
func NewBinderState() *BinderState {
	return &BinderState{
		Version:       BinderStateVersion,
		Cards:         make(map[string]CardRecord),
		UnlockedSets:  []string{},
		SetMilestones: make(map[string][]int),
		Events:        []Event{},
		PackHistory:   []PackHistoryEntry{},
	}
}

// Clone returns a deep copy of s.
func (s *BinderState) Clone() *BinderState {
	out := &BinderState{
		Version:       s.Version,
		Cards:         make(map[string]CardRecord, len(s.Cards)),
		UnlockedSets:  append([]string{}, s.UnlockedSets...),
		SetMilestones: make(map[string][]int, len(s.SetMilestones)),
		Events:        make([]Event, 0, len(s.Events)),
		PackHistory:   make([]PackHistoryEntry, 0, len(s.PackHistory)),
	}
	for k, rec := range s.Cards {
		out.Cards[k] = rec
	}
	for k, v := range s.SetMilestones {
		out.SetMilestones[k] = append([]int{}, v...)
	}
	for _, evt := range s.Events {
		evt.Details = cloneDetails(evt.Details)
		out.Events = append(out.Events, evt)
	}
	for _, entry := range s.PackHistory {
		entry.CardsAdded = append([]string{}, entry.CardsAdded...)
		entry.InvalidCardIDs = append([]string{}, entry.InvalidCardIDs...)
		out.PackHistory = append(out.PackHistory, entry)
	}
	return out
}

// cloneDetails copies event details through JSON so nested values are not shared.
func cloneDetails(details map[string]any) map[string]any {
	if details == nil {
		return map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		out := make(map[string]any, len(details))
		for k, v := range details {
			out[k] = v
		}
		return out
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// IngestSlot is one submitted slot after boundary normalisation.
// Malformed marks a card_id that was missing or not a string; CardID then
// holds the JSON text of the submitted value.
type IngestSlot struct {
	CardID    string
	Malformed bool
}

// IngestRequest is a pack result submitted to the binder.
// IgnoredSlots counts submitted slots that were not objects.
type IngestRequest struct {
	SetID        string
	Slots        []IngestSlot
	IgnoredSlots int
}

// IngestSummary reports the outcome of one ingestion.
type IngestSummary struct {
	SetID               string   `json:"set_id"`
	TotalSlotsProcessed int      `json:"total_slots_processed"`
	CardsWritten        int      `json:"cards_written"`
	NewDiscoveries      int      `json:"new_discoveries"`
	DuplicateIncrements int      `json:"duplicate_increments"`
	InvalidCardIDs      []string `json:"invalid_card_ids"`
	SetCompleted        bool     `json:"set_completed"`
	NewlyUnlockedSets   []string `json:"newly_unlocked_sets"`
}

// CollectionProgress is the completion report of one set.
type CollectionProgress struct {
	SetID                string  `json:"set_id"`
	OwnedUnique          int     `json:"owned_unique"`
	TotalAvailable       int     `json:"total_available"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Remaining            int     `json:"remaining"`
	IsComplete           bool    `json:"is_complete"`
}

// GlobalProgress sums CollectionProgress over every known set.
type GlobalProgress struct {
	OwnedUnique          int                           `json:"owned_unique"`
	TotalAvailable       int                           `json:"total_available"`
	CompletionPercentage float64                       `json:"completion_percentage"`
	Remaining            int                           `json:"remaining"`
	PerSet               map[string]CollectionProgress `json:"per_set"`
}
