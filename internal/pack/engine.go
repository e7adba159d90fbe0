package pack

import (
	"context"
	"fmt"
	"math"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// PoolSource resolves the rarity pools of a set.
type PoolSource interface {
	Pools(setID string) (domain.RarityPools, error)
	Dir() string
}

// NameResolver turns a card id into a display name.
type NameResolver interface {
	Name(ctx context.Context, setID, cardID string) string
}

type idNames struct{}

func (idNames) Name(_ context.Context, _, cardID string) string { return cardID }

// DrawRequest describes one pack draw. A nil Config means defaults; a nil
// Seed draws from a random seed that is not echoed back.
type DrawRequest struct {
	SetID  string
	Config *domain.PackConfig
	Seed   *int64
	Owned  []string
}

// Engine draws packs. It holds no mutable state; concurrent Draw calls are
// independent.
type Engine struct {
	pools PoolSource
	names NameResolver
}

// NewEngine creates an engine. A nil names resolver uses card ids as names.
func NewEngine(pools PoolSource, names NameResolver) *Engine {
	if names == nil {
		names = idNames{}
	}
	return &Engine{pools: pools, names: names}
}

// draw holds the per-call state of one pack.
type draw struct {
	ctx   context.Context
	setID string
	cfg   domain.PackConfig
	rng   RandomSource
	owned map[string]struct{}
	used  map[string]struct{}
	names NameResolver
	slots []domain.Slot
}

// Draw opens one pack. Identical set id, config, seed and pool contents
// always produce identical slots.
func (e *Engine) Draw(ctx context.Context, req DrawRequest) (*domain.PackResult, error) {
	log := logger.FromContext(ctx)

	if req.SetID == "" {
		return nil, domain.ErrMissingSetID
	}
	cfg := domain.DefaultPackConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pools, err := e.pools.Pools(req.SetID)
	if err != nil {
		return nil, err
	}

	seed := randomSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	if cfg.PityAfterPacks != nil {
		log.Debug(LogMsgPityInactive, LogFieldPityAfterPacks, *cfg.PityAfterPacks)
	}

	d := &draw{
		ctx:   ctx,
		setID: req.SetID,
		cfg:   cfg,
		rng:   NewSeededRNG(seed),
		owned: make(map[string]struct{}, len(req.Owned)),
		used:  make(map[string]struct{}, domain.PackSize),
		names: e.names,
		slots: make([]domain.Slot, 0, domain.PackSize),
	}
	for _, id := range req.Owned {
		d.owned[id] = struct{}{}
	}

	rolls := make([]domain.RareSlotRoll, 0, cfg.RareSlots)
	for i := 0; i < cfg.RareSlots; i++ {
		roll := d.rng.Float64()
		upgraded := roll < cfg.HoloUpgradeChance && len(pools.Holo) > 0
		rarity := domain.RarityRare
		if upgraded {
			rarity = domain.RarityHolo
		}
		if err := d.pick(domain.RarityRare, rarity, pools.Bucket(rarity)); err != nil {
			return nil, err
		}
		rolled := domain.RareSlotRoll{
			RareSlotIndex:  i + 1,
			Roll:           math.Round(roll*RollPrecision) / RollPrecision,
			Threshold:      cfg.HoloUpgradeChance,
			UpgradedToHolo: upgraded,
		}
		rolls = append(rolls, rolled)
		log.Debug(LogMsgRareSlotRolled,
			LogFieldRareSlotIndex, rolled.RareSlotIndex,
			LogFieldRoll, rolled.Roll,
			LogFieldThreshold, rolled.Threshold,
			LogFieldUpgradedToHolo, upgraded,
			LogFieldCardID, d.slots[len(d.slots)-1].CardID)
	}
	for i := 0; i < cfg.UncommonSlots; i++ {
		if err := d.pick(domain.RarityUncommon, domain.RarityUncommon, pools.Uncommon); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.CommonSlots; i++ {
		if err := d.pick(domain.RarityCommon, domain.RarityCommon, pools.Common); err != nil {
			return nil, err
		}
	}

	newCards := 0
	for _, s := range d.slots {
		if s.IsNew {
			newCards++
		}
	}
	size := len(d.slots)
	if size != domain.PackSize {
		return nil, fmt.Errorf("%w: expected %d, got %d for set %s",
			domain.ErrPackSizeInvariant, domain.PackSize, size, req.SetID)
	}
	log.Info(LogMsgPackGenerated, LogFieldSetID, req.SetID, LogFieldSize, size, LogFieldSeed, req.Seed)

	return &domain.PackResult{
		SetID:  req.SetID,
		Seed:   req.Seed,
		Config: cfg,
		Debug: domain.PackDebug{
			PoolsDir:               e.pools.Dir(),
			HoloUpgradeProbability: cfg.HoloUpgradeChance,
			RareSlotRolls:          rolls,
		},
		Slots: d.slots,
		Summary: domain.PackSummary{
			TotalCards:     size,
			PackSize:       size,
			NewCards:       newCards,
			DuplicateCards: size - newCards,
		},
	}, nil
}

// pick selects one card from pool and appends the resulting slot.
func (d *draw) pick(slotType, rarity domain.Rarity, pool []string) error {
	if len(pool) == 0 {
		return fmt.Errorf("%w: '%s' in set %s", domain.ErrEmptyPool, rarity, d.setID)
	}

	var cardID string
	if d.cfg.AllowDuplicatesWithinPack {
		cardID = pool[d.rng.IntN(len(pool))]
	} else {
		available := make([]string, 0, len(pool))
		for _, id := range pool {
			if _, used := d.used[id]; !used {
				available = append(available, id)
			}
		}
		if len(available) == 0 {
			return fmt.Errorf("%w: rarity '%s' in set %s", domain.ErrPoolExhausted, rarity, d.setID)
		}
		cardID = available[d.rng.IntN(len(available))]
	}
	d.used[cardID] = struct{}{}

	_, owned := d.owned[cardID]
	slot := domain.Slot{
		SlotIndex:   len(d.slots) + 1,
		SlotType:    slotType,
		Rarity:      rarity,
		CardID:      cardID,
		CardName:    d.names.Name(d.ctx, d.setID, cardID),
		IsNew:       !owned,
		IsDuplicate: owned,
	}
	d.slots = append(d.slots, slot)

	if slotType != domain.RarityRare {
		logger.FromContext(d.ctx).Debug(LogMsgSlotChosen,
			LogFieldSlotIndex, slot.SlotIndex, LogFieldSlotType, slotType, LogFieldCardID, cardID)
	}
	return nil
}
