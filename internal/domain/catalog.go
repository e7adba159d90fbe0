package domain

import "regexp"

var pathSegment = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidPathSegment reports whether s may name a file under a data directory:
// letters, digits, underscore and hyphen only.
func ValidPathSegment(s string) bool {
	return pathSegment.MatchString(s)
}

// SetCatalogCard is one card of a set listing.
type SetCatalogCard struct {
	CardID   string `json:"card_id"`
	Rarity   Rarity `json:"rarity"`
	ImageURL string `json:"image_url"`
}

// SetCatalog lists every card of a set in pool order.
type SetCatalog struct {
	SetID string           `json:"set_id"`
	Cards []SetCatalogCard `json:"cards"`
}

// CardMetadata is the display subset of a card metadata file.
type CardMetadata struct {
	SetID       string   `json:"set_id"`
	CardID      string   `json:"card_id"`
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	DexID       *int     `json:"dex_id"`
	Description *string  `json:"description"`
	Types       []string `json:"types"`
	Weaknesses  []string `json:"weaknesses"`
	Rarity      *string  `json:"rarity"`
}
