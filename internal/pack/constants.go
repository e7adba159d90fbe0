package pack

// Config field names accepted from generic input
const (
	FieldRareSlots                 = "rare_slots"
	FieldUncommonSlots             = "uncommon_slots"
	FieldCommonSlots               = "common_slots"
	FieldHoloUpgradeChance         = "holo_upgrade_chance"
	FieldAllowDuplicatesWithinPack = "allow_duplicates_within_pack"
	FieldPityAfterPacks            = "pity_after_packs"
)

// RollPrecision is the number of decimals kept for recorded rolls.
const RollPrecision = 1e6

// Log messages
const (
	LogMsgPityInactive   = "Pity system configured but not yet active"
	LogMsgRareSlotRolled = "Rare slot rolled"
	LogMsgSlotChosen     = "Slot chosen"
	LogMsgPackGenerated  = "Generated pack"
	LogMsgPackOpened     = "Open pack: success"
)

// Log field keys
const (
	LogFieldSetID          = "set_id"
	LogFieldSeed           = "seed"
	LogFieldSize           = "size"
	LogFieldSlotIndex      = "slot_index"
	LogFieldSlotType       = "slot_type"
	LogFieldRareSlotIndex  = "rare_slot_index"
	LogFieldRoll           = "roll"
	LogFieldThreshold      = "threshold"
	LogFieldUpgradedToHolo = "upgraded_to_holo"
	LogFieldCardID         = "card_id"
	LogFieldPityAfterPacks = "pity_after_packs"
	LogFieldNewCards       = "new_cards"
)

// Error contexts
const (
	ErrContextDecodeConfig = "config must be an object of known fields"
	ErrContextOwnedCards   = "failed to read owned cards"
)
