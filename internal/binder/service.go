package binder

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/eventlog"
	"github.com/special-brownies/booster-pack/internal/logger"
	"github.com/special-brownies/booster-pack/internal/metrics"
	"github.com/special-brownies/booster-pack/internal/progression"
	"github.com/special-brownies/booster-pack/internal/repository"
)

// Catalog is the read-only card index the binder validates against.
type Catalog interface {
	IsKnownSet(setID string) bool
	IsKnownCard(cardID string) bool
	IsKnownCardInSet(cardID, setID string) bool
	CandidateSetsForCard(cardID string) []string
	TotalCards(setID string) int
	SetIDs() []string
}

// Service owns the binder state and its progression rules.
type Service interface {
	AddCards(ctx context.Context, req domain.IngestRequest) (*domain.IngestSummary, error)
	CollectionProgress(ctx context.Context, setID string) (*domain.CollectionProgress, error)
	GlobalProgress(ctx context.Context) *domain.GlobalProgress
	IsSetComplete(ctx context.Context, setID string) bool
	IsSetUnlocked(ctx context.Context, setID string) bool
	UnlockedSets(ctx context.Context) []string
	State(ctx context.Context) *domain.BinderState
	OwnedCardIDs(ctx context.Context, setID string) ([]string, error)
}

// EventObserver is told about every event after it has been persisted.
type EventObserver func(ctx context.Context, evt domain.Event)

// Option configures the service.
type Option func(*service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithEventObserver registers fn for newly persisted events.
func WithEventObserver(fn EventObserver) Option {
	return func(s *service) { s.observers = append(s.observers, fn) }
}

// ledger is one consistent view of the binder: the state, its event log
// and the owned-card index derived from it.
type ledger struct {
	state  *domain.BinderState
	events *eventlog.Log
	owned  map[string]map[string]struct{}
}

func newLedger(state *domain.BinderState, now func() time.Time) *ledger {
	l := &ledger{
		state:  state,
		events: eventlog.New(state.Events, eventlog.WithClock(now)),
		owned:  make(map[string]map[string]struct{}),
	}
	for _, rec := range state.Cards {
		if rec.QuantityOwned > 0 {
			l.markOwned(rec.SetID, rec.CardID)
		}
	}
	return l
}

func (l *ledger) markOwned(setID, cardID string) {
	if l.owned[setID] == nil {
		l.owned[setID] = make(map[string]struct{})
	}
	l.owned[setID][cardID] = struct{}{}
}

// snapshot syncs the event log into the state and returns it.
func (l *ledger) snapshot() *domain.BinderState {
	l.state.Events = l.events.Events()
	return l.state
}

func (l *ledger) clone(now func() time.Time) *ledger {
	return newLedger(l.snapshot().Clone(), now)
}

type service struct {
	mu        sync.Mutex
	repo      repository.Binder
	catalog   Catalog
	cfg       progression.Config
	ledger    *ledger
	now       func() time.Time
	observers []EventObserver
}

// NewService loads, validates and persists the binder state, then returns
// a service ready for ingestion. The first set of the progression order is
// always unlocked.
func NewService(ctx context.Context, repo repository.Binder, catalog Catalog, cfg progression.Config, opts ...Option) (Service, error) {
	s := &service{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadState, err)
	}
	s.ledger = newLedger(sanitize(ctx, raw, catalog, cfg.MaintainPackHistory), s.now)
	before := s.ledger.events.Len()

	s.ensureInitialUnlock(ctx, s.ledger)

	if err := s.persist(ctx, s.ledger); err != nil {
		return nil, err
	}
	s.notify(ctx, s.ledger.events.Events()[before:])

	logger.FromContext(ctx).Info(LogMsgBinderLoaded,
		LogFieldCards, len(s.ledger.state.Cards),
		LogFieldUnlocked, s.ledger.state.UnlockedSets)
	return s, nil
}

func (s *service) ensureInitialUnlock(ctx context.Context, l *ledger) {
	first := s.cfg.First()
	if first == "" || slices.Contains(l.state.UnlockedSets, first) {
		return
	}
	if !s.catalog.IsKnownSet(first) {
		logger.FromContext(ctx).Warn(LogMsgUnlockUnknownSet, LogFieldSetID, first)
		return
	}
	l.state.UnlockedSets = append(l.state.UnlockedSets, first)
	l.events.Record(ctx, domain.EventInitialSetUnlocked, first, map[string]any{
		domain.DetailReason: InitialUnlockReason,
	})
}

func (s *service) persist(ctx context.Context, l *ledger) error {
	start := time.Now()
	if err := s.repo.Save(ctx, l.snapshot()); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, LogFieldError, err)
		return fmt.Errorf("%s: %w", ErrContextSaveState, err)
	}
	metrics.BinderSaveDuration.WithLabelValues(storeName(s.repo)).Observe(time.Since(start).Seconds())
	return nil
}

func (s *service) notify(ctx context.Context, events []domain.Event) {
	for _, evt := range events {
		for _, obs := range s.observers {
			obs(ctx, evt)
		}
	}
}

func storeName(repo repository.Binder) string {
	if named, ok := repo.(interface{ StoreName() string }); ok {
		return named.StoreName()
	}
	return fmt.Sprintf("%T", repo)
}

// AddCards ingests a drawn pack. Bad slots are reported in InvalidCardIDs
// and skipped; an unknown set rejects the whole call. The new state is
// persisted before it becomes visible, so a failed save changes nothing.
func (s *service) AddCards(ctx context.Context, req domain.IngestRequest) (*domain.IngestSummary, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.IsKnownSet(req.SetID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSet, req.SetID)
	}

	work := s.ledger.clone(s.now)
	before := work.events.Len()
	timestamp := domain.FormatTimestamp(s.now())

	summary := &domain.IngestSummary{
		SetID:               req.SetID,
		TotalSlotsProcessed: len(req.Slots) + req.IgnoredSlots,
		InvalidCardIDs:      []string{},
		NewlyUnlockedSets:   []string{},
	}
	updated := []string{}

	for _, slot := range req.Slots {
		if slot.Malformed || slot.CardID == "" {
			summary.InvalidCardIDs = append(summary.InvalidCardIDs, slot.CardID)
			log.Warn(LogMsgInvalidSlot, LogFieldCardID, slot.CardID)
			continue
		}

		cardID := strings.TrimSpace(slot.CardID)
		if !s.catalog.IsKnownCard(cardID) {
			summary.InvalidCardIDs = append(summary.InvalidCardIDs, cardID)
			log.Warn(LogMsgUnknownCard, LogFieldCardID, cardID)
			continue
		}
		if !s.catalog.IsKnownCardInSet(cardID, req.SetID) {
			summary.InvalidCardIDs = append(summary.InvalidCardIDs, cardID)
			log.Warn(LogMsgCardNotInSet,
				LogFieldCardID, cardID,
				LogFieldExpectedSet, req.SetID,
				LogFieldCandidateSets, s.catalog.CandidateSetsForCard(cardID))
			continue
		}

		key := domain.CardKey(req.SetID, cardID)
		rec, exists := work.state.Cards[key]
		if !exists {
			work.state.Cards[key] = domain.CardRecord{
				CardID:           cardID,
				SetID:            req.SetID,
				QuantityOwned:    1,
				FirstObtainedAt:  timestamp,
				LastObtainedAt:   timestamp,
				EverNewDiscovery: true,
			}
			summary.NewDiscoveries++
			log.Info(LogMsgNewCard, LogFieldCardID, cardID, LogFieldSetID, req.SetID)
		} else {
			rec.QuantityOwned++
			rec.LastObtainedAt = timestamp
			work.state.Cards[key] = rec
			summary.DuplicateIncrements++
			log.Info(LogMsgDuplicateIncrement, LogFieldCardID, cardID, LogFieldQuantity, rec.QuantityOwned)
		}
		work.markOwned(req.SetID, cardID)
		updated = append(updated, cardID)
	}
	summary.CardsWritten = len(updated)

	summary.NewlyUnlockedSets = s.evaluateProgression(ctx, work, req.SetID)
	if s.cfg.TrackPartialMilestones {
		s.updateMilestones(ctx, work, req.SetID)
	}
	if s.cfg.MaintainPackHistory {
		work.state.PackHistory = append(work.state.PackHistory, domain.PackHistoryEntry{
			Timestamp:      timestamp,
			SetID:          req.SetID,
			CardsAdded:     append([]string{}, updated...),
			InvalidCardIDs: append([]string{}, summary.InvalidCardIDs...),
		})
	}

	if err := s.persist(ctx, work); err != nil {
		return nil, err
	}
	s.ledger = work
	s.notify(ctx, work.events.Events()[before:])

	summary.SetCompleted = s.progress(work, req.SetID).IsComplete
	metrics.RecordIngest(summary)
	log.Info(LogMsgCardsAdded,
		LogFieldSetID, req.SetID,
		LogFieldNew, summary.NewDiscoveries,
		LogFieldDuplicates, summary.DuplicateIncrements,
		LogFieldInvalid, summary.InvalidCardIDs)
	return summary, nil
}

// evaluateProgression records a completion event for the changed set, then
// unlocks the successor of every complete set in the order. Dedup keys make
// repeated evaluation idempotent.
func (s *service) evaluateProgression(ctx context.Context, l *ledger, changedSetID string) []string {
	log := logger.FromContext(ctx)
	newly := []string{}

	for _, setID := range s.cfg.Order {
		if setID == changedSetID && s.isComplete(l, setID) {
			l.events.Record(ctx, domain.EventSetCompleted, setID, nil)
		}
	}

	for i, setID := range s.cfg.Order {
		if i+1 >= len(s.cfg.Order) || !s.isComplete(l, setID) {
			continue
		}
		next := s.cfg.Order[i+1]
		if slices.Contains(l.state.UnlockedSets, next) {
			continue
		}
		if !s.catalog.IsKnownSet(next) {
			log.Warn(LogMsgUnlockUnknownSet, LogFieldSetID, setID, LogFieldNextSetID, next)
			continue
		}
		l.state.UnlockedSets = append(l.state.UnlockedSets, next)
		newly = append(newly, next)
		l.events.Record(ctx, domain.EventNewSetUnlocked, setID, map[string]any{
			domain.DetailNextSetID: next,
		})
		log.Info(LogMsgProgressionUnlocked, LogFieldSetID, setID, LogFieldNextSetID, next)
	}
	return newly
}

// updateMilestones records every configured threshold the set has reached.
func (s *service) updateMilestones(ctx context.Context, l *ledger, setID string) {
	p := s.progress(l, setID)
	achieved := make(map[int]struct{})
	for _, v := range l.state.SetMilestones[setID] {
		achieved[v] = struct{}{}
	}

	for _, threshold := range s.cfg.MilestoneThresholds {
		if _, done := achieved[threshold]; done || p.CompletionPercentage < float64(threshold) {
			continue
		}
		achieved[threshold] = struct{}{}
		l.events.Record(ctx, domain.EventSetMilestoneReached, setID, map[string]any{
			domain.DetailThreshold:            threshold,
			domain.DetailCompletionPercentage: p.CompletionPercentage,
		})
	}

	values := make([]int, 0, len(achieved))
	for v := range achieved {
		values = append(values, v)
	}
	sort.Ints(values)
	l.state.SetMilestones[setID] = values
}

func (s *service) isComplete(l *ledger, setID string) bool {
	if !s.catalog.IsKnownSet(setID) {
		return false
	}
	return s.progress(l, setID).IsComplete
}

func (s *service) progress(l *ledger, setID string) domain.CollectionProgress {
	owned := len(l.owned[setID])
	total := s.catalog.TotalCards(setID)
	return domain.CollectionProgress{
		SetID:                setID,
		OwnedUnique:          owned,
		TotalAvailable:       total,
		CompletionPercentage: percentage(owned, total),
		Remaining:            max(total-owned, 0),
		IsComplete:           owned >= total && total > 0,
	}
}

// percentage returns owned/total as a percentage rounded to 2 decimals, 0 for an empty set.
func percentage(owned, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(owned)/float64(total)*Percent*100) / 100
}

// CollectionProgress reports completion of one known set.
func (s *service) CollectionProgress(ctx context.Context, setID string) (*domain.CollectionProgress, error) {
	if !s.catalog.IsKnownSet(setID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSetNotFound, setID)
	}

	s.mu.Lock()
	p := s.progress(s.ledger, setID)
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgSetProgressCheck,
		LogFieldSetID, setID,
		LogFieldOwned, p.OwnedUnique,
		LogFieldTotal, p.TotalAvailable,
		LogFieldPercent, p.CompletionPercentage)
	return &p, nil
}

// GlobalProgress sums progress over every catalog set.
func (s *service) GlobalProgress(_ context.Context) *domain.GlobalProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &domain.GlobalProgress{PerSet: make(map[string]domain.CollectionProgress)}
	for _, setID := range s.catalog.SetIDs() {
		p := s.progress(s.ledger, setID)
		out.PerSet[setID] = p
		out.OwnedUnique += p.OwnedUnique
		out.TotalAvailable += p.TotalAvailable
	}
	out.Remaining = max(out.TotalAvailable-out.OwnedUnique, 0)
	out.CompletionPercentage = percentage(out.OwnedUnique, out.TotalAvailable)
	return out
}

// IsSetComplete reports whether every card of setID is owned.
func (s *service) IsSetComplete(_ context.Context, setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isComplete(s.ledger, setID)
}

// IsSetUnlocked reports whether setID has been unlocked.
func (s *service) IsSetUnlocked(_ context.Context, setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.ledger.state.UnlockedSets, setID)
}

// UnlockedSets lists unlocked sets in progression order, then any others sorted.
func (s *service) UnlockedSets(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlocked := s.ledger.state.UnlockedSets
	ordered := []string{}
	inOrder := make(map[string]struct{}, len(s.cfg.Order))
	for _, setID := range s.cfg.Order {
		inOrder[setID] = struct{}{}
		if slices.Contains(unlocked, setID) && !slices.Contains(ordered, setID) {
			ordered = append(ordered, setID)
		}
	}
	var extras []string
	for _, setID := range unlocked {
		if _, ok := inOrder[setID]; !ok {
			extras = append(extras, setID)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}

// State returns a deep copy of the binder state.
func (s *service) State(_ context.Context) *domain.BinderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.snapshot().Clone()
}

// OwnedCardIDs returns the sorted ids of cards held in setID.
func (s *service) OwnedCardIDs(_ context.Context, setID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.ledger.owned[setID]))
	for id := range s.ledger.owned[setID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
