package pack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/special-brownies/booster-pack/internal/domain"
)

var knownFields = map[string]struct{}{
	FieldRareSlots:                 {},
	FieldUncommonSlots:             {},
	FieldCommonSlots:               {},
	FieldHoloUpgradeChance:         {},
	FieldAllowDuplicatesWithinPack: {},
	FieldPityAfterPacks:            {},
}

// configOverlay marks which fields the caller supplied.
type configOverlay struct {
	RareSlots                 *int     `json:"rare_slots"`
	UncommonSlots             *int     `json:"uncommon_slots"`
	CommonSlots               *int     `json:"common_slots"`
	HoloUpgradeChance         *float64 `json:"holo_upgrade_chance"`
	AllowDuplicatesWithinPack *bool    `json:"allow_duplicates_within_pack"`
	PityAfterPacks            *int     `json:"pity_after_packs"`
}

// ParseConfig builds a PackConfig from a JSON object. Absent fields keep
// their defaults; unknown field names are rejected. Empty input or JSON
// null yields the default config. The result is not validated.
func ParseConfig(raw []byte) (domain.PackConfig, error) {
	cfg := domain.DefaultPackConfig()
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return cfg, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrContextDecodeConfig, err)
	}
	var unknown []string
	for name := range fields {
		if _, ok := knownFields[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return cfg, fmt.Errorf("%w: %v", domain.ErrUnknownConfigField, unknown)
	}

	var overlay configOverlay
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&overlay); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrContextDecodeConfig, err)
	}

	if overlay.RareSlots != nil {
		cfg.RareSlots = *overlay.RareSlots
	}
	if overlay.UncommonSlots != nil {
		cfg.UncommonSlots = *overlay.UncommonSlots
	}
	if overlay.CommonSlots != nil {
		cfg.CommonSlots = *overlay.CommonSlots
	}
	if overlay.HoloUpgradeChance != nil {
		cfg.HoloUpgradeChance = *overlay.HoloUpgradeChance
	}
	if overlay.AllowDuplicatesWithinPack != nil {
		cfg.AllowDuplicatesWithinPack = *overlay.AllowDuplicatesWithinPack
	}
	cfg.PityAfterPacks = overlay.PityAfterPacks
	return cfg, nil
}

// ConfigFromMap is ParseConfig for an already-decoded key/value input.
func ConfigFromMap(m map[string]any) (domain.PackConfig, error) {
	if m == nil {
		return domain.DefaultPackConfig(), nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return domain.DefaultPackConfig(), fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrContextDecodeConfig, err)
	}
	return ParseConfig(raw)
}
