package binder

import (
	"context"
	"sort"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/progression"
)

// sanitize builds a valid state from a raw stored document. Records that
// fail validation against the catalog are dropped, never repaired.
func sanitize(ctx context.Context, raw map[string]any, catalog Catalog, keepHistory bool) *domain.BinderState {
	log := logger.FromContext(ctx)
	state := domain.NewBinderState()
	if len(raw) == 0 {
		return state
	}

	if v, ok := progression.AsInt(raw[KeyVersion]); ok {
		state.Version = v
	}

	dropped := 0
	if cards, ok := raw[KeyCards].(map[string]any); ok {
		for key, v := range cards {
			rec, reason := cardRecord(key, v, catalog)
			if reason != "" {
				dropped++
				log.Debug(LogMsgRecordDropped, LogFieldKey, key, LogFieldReason, reason)
				continue
			}
			state.Cards[key] = rec
		}
	}

	if unlocked, ok := raw[KeyUnlockedSets].([]any); ok {
		seen := make(map[string]struct{}, len(unlocked))
		for _, v := range unlocked {
			setID, ok := v.(string)
			if !ok || !catalog.IsKnownSet(setID) {
				continue
			}
			if _, dup := seen[setID]; dup {
				continue
			}
			seen[setID] = struct{}{}
			state.UnlockedSets = append(state.UnlockedSets, setID)
		}
	}

	if milestones, ok := raw[KeySetMilestones].(map[string]any); ok {
		for setID, v := range milestones {
			values, ok := v.([]any)
			if !ok || !catalog.IsKnownSet(setID) {
				continue
			}
			state.SetMilestones[setID] = milestoneValues(values)
		}
	}

	if events, ok := raw[KeyEvents].([]any); ok {
		for _, v := range events {
			if evt, ok := event(v); ok {
				state.Events = append(state.Events, evt)
			}
		}
	}

	if keepHistory {
		if history, ok := raw[KeyPackHistory].([]any); ok {
			for _, v := range history {
				if entry, ok := historyEntry(v); ok {
					state.PackHistory = append(state.PackHistory, entry)
				}
			}
		}
	}

	log.Info(LogMsgStateSanitized,
		LogFieldCards, len(state.Cards),
		LogFieldDropped, dropped,
		LogFieldUnlocked, state.UnlockedSets)
	return state
}

// cardRecord validates one stored card record, returning a drop reason on failure.
func cardRecord(key string, v any, catalog Catalog) (domain.CardRecord, string) {
	rec, ok := v.(map[string]any)
	if !ok {
		return domain.CardRecord{}, DropReasonNotObject
	}
	cardID, ok := rec[KeyCardID].(string)
	if !ok || cardID == "" {
		return domain.CardRecord{}, DropReasonCardID
	}
	setID, ok := rec[KeySetID].(string)
	if !ok || !catalog.IsKnownSet(setID) {
		return domain.CardRecord{}, DropReasonUnknownSet
	}
	if !catalog.IsKnownCardInSet(cardID, setID) {
		return domain.CardRecord{}, DropReasonCardNotInSet
	}
	if key != domain.CardKey(setID, cardID) {
		return domain.CardRecord{}, DropReasonKeyMismatch
	}
	qty, ok := progression.AsInt(rec[KeyQuantityOwned])
	if !ok || qty < 0 {
		return domain.CardRecord{}, DropReasonQuantity
	}
	first, okFirst := rec[KeyFirstObtainedAt].(string)
	last, okLast := rec[KeyLastObtainedAt].(string)
	if !okFirst || !okLast {
		return domain.CardRecord{}, DropReasonTimestamps
	}
	discovery, ok := rec[KeyEverNewDiscovery].(bool)
	if !ok {
		return domain.CardRecord{}, DropReasonDiscoveryFlag
	}
	return domain.CardRecord{
		CardID:           cardID,
		SetID:            setID,
		QuantityOwned:    qty,
		FirstObtainedAt:  first,
		LastObtainedAt:   last,
		EverNewDiscovery: discovery,
	}, ""
}

// milestoneValues keeps integers in (0,100], sorted and unique.
func milestoneValues(values []any) []int {
	seen := make(map[int]struct{}, len(values))
	out := []int{}
	for _, v := range values {
		n, ok := progression.AsInt(v)
		if !ok || n <= 0 || n > progression.MaxThreshold {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// event keeps a stored event when its type and timestamp are strings.
func event(v any) (domain.Event, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.Event{}, false
	}
	typ, okType := m[KeyEventType].(string)
	ts, okTS := m[KeyTimestamp].(string)
	if !okType || !okTS {
		return domain.Event{}, false
	}
	key, _ := m[KeyEventKey].(string)
	setID, _ := m[KeySetID].(string)
	details, ok := m[KeyDetails].(map[string]any)
	if !ok {
		details = map[string]any{}
	}
	return domain.Event{Key: key, Type: typ, SetID: setID, Timestamp: ts, Details: details}, true
}

func historyEntry(v any) (domain.PackHistoryEntry, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.PackHistoryEntry{}, false
	}
	ts, _ := m[KeyTimestamp].(string)
	setID, _ := m[KeySetID].(string)
	return domain.PackHistoryEntry{
		Timestamp:      ts,
		SetID:          setID,
		CardsAdded:     stringList(m[KeyCardsAdded]),
		InvalidCardIDs: stringList(m[KeyInvalidCardIDs]),
	}, true
}

func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
