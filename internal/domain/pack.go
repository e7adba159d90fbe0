package domain

import "fmt"

// PackSize is the fixed number of cards in every pack.
const PackSize = 10

// Rarity is a pool bucket and the rarity tier assigned to a slot.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityHolo     Rarity = "holo"
)

// Rarities lists every bucket in pool-file order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityHolo}

// Default pack structure.
const (
	DefaultRareSlots         = 1
	DefaultUncommonSlots     = 3
	DefaultCommonSlots       = 6
	DefaultHoloUpgradeChance = 1.0 / 3.0
)

// PackConfig describes the slot layout and pull probabilities of a pack.
// PityAfterPacks is validated and echoed back but has no effect on draws.
type PackConfig struct {
	RareSlots                 int     `json:"rare_slots"`
	UncommonSlots             int     `json:"uncommon_slots"`
	CommonSlots               int     `json:"common_slots"`
	HoloUpgradeChance         float64 `json:"holo_upgrade_chance"`
	AllowDuplicatesWithinPack bool    `json:"allow_duplicates_within_pack"`
	PityAfterPacks            *int    `json:"pity_after_packs"`
}

// DefaultPackConfig returns the standard 1 rare / 3 uncommon / 6 common layout.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		RareSlots:                 DefaultRareSlots,
		UncommonSlots:             DefaultUncommonSlots,
		CommonSlots:               DefaultCommonSlots,
		HoloUpgradeChance:         DefaultHoloUpgradeChance,
		AllowDuplicatesWithinPack: true,
	}
}

// Validate reports a configuration error for an unusable layout.
func (c PackConfig) Validate() error {
	if c.RareSlots < 0 || c.UncommonSlots < 0 || c.CommonSlots < 0 {
		return ErrNegativeSlots
	}
	if total := c.RareSlots + c.UncommonSlots + c.CommonSlots; total != PackSize {
		return fmt.Errorf("%w, got %d (rare=%d, uncommon=%d, common=%d)",
			ErrPackSizeMismatch, total, c.RareSlots, c.UncommonSlots, c.CommonSlots)
	}
	if !(c.HoloUpgradeChance >= 0 && c.HoloUpgradeChance <= 1) {
		return ErrHoloChanceOutOfRange
	}
	if c.PityAfterPacks != nil && *c.PityAfterPacks <= 0 {
		return ErrPityNotPositive
	}
	return nil
}

// RarityPools holds the card ids eligible for each rarity in one set.
type RarityPools struct {
	Common   []string `json:"common"`
	Uncommon []string `json:"uncommon"`
	Rare     []string `json:"rare"`
	Holo     []string `json:"holo"`
}

// Bucket returns the pool for r.
func (p RarityPools) Bucket(r Rarity) []string {
	switch r {
	case RarityCommon:
		return p.Common
	case RarityUncommon:
		return p.Uncommon
	case RarityRare:
		return p.Rare
	case RarityHolo:
		return p.Holo
	}
	return nil
}

// Slot is one drawn card position.
type Slot struct {
	SlotIndex   int    `json:"slot_index"`
	SlotType    Rarity `json:"slot_type"`
	Rarity      Rarity `json:"rarity"`
	CardID      string `json:"card_id"`
	CardName    string `json:"card_name"`
	IsNew       bool   `json:"is_new"`
	IsDuplicate bool   `json:"is_duplicate"`
}

// RareSlotRoll records the holo-upgrade roll of one rare slot.
type RareSlotRoll struct {
	RareSlotIndex  int     `json:"rare_slot_index"`
	Roll           float64 `json:"roll"`
	Threshold      float64 `json:"threshold"`
	UpgradedToHolo bool    `json:"upgraded_to_holo"`
}

type PackDebug struct {
	PoolsDir               string         `json:"pools_dir"`
	HoloUpgradeProbability float64        `json:"holo_upgrade_probability"`
	RareSlotRolls          []RareSlotRoll `json:"rare_slot_rolls"`
}

type PackSummary struct {
	TotalCards     int `json:"total_cards"`
	PackSize       int `json:"pack_size"`
	NewCards       int `json:"new_cards"`
	DuplicateCards int `json:"duplicate_cards"`
}

// PackResult is the full output of one pack draw. Seed is nil when the
// caller did not supply one.
type PackResult struct {
	SetID   string      `json:"set_id"`
	Seed    *int64      `json:"seed"`
	Config  PackConfig  `json:"config"`
	Debug   PackDebug   `json:"debug"`
	Slots   []Slot      `json:"slots"`
	Summary PackSummary `json:"summary"`
}
