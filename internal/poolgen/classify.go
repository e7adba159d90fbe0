package poolgen

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/special-brownies/booster-pack/internal/domain"
)

var folder = cases.Fold()

// Classify maps a card's rarity text and variant details to a pool bucket.
// The holo variant flag wins over the text; "uncommon" is tested before
// "common" since it contains it. ok is false when nothing matches.
func Classify(rarity string, variantDetails any) (bucket domain.Rarity, ok bool) {
	normalized := folder.String(strings.TrimSpace(rarity))

	holoVariant := false
	if details, isObject := variantDetails.(map[string]any); isObject {
		holoVariant = details[KeywordHolo] == true
	}

	switch {
	case holoVariant || strings.Contains(normalized, KeywordHolo):
		return domain.RarityHolo, true
	case strings.Contains(normalized, KeywordUncommon):
		return domain.RarityUncommon, true
	case strings.Contains(normalized, KeywordCommon):
		return domain.RarityCommon, true
	case strings.Contains(normalized, KeywordRare):
		return domain.RarityRare, true
	}
	return "", false
}
