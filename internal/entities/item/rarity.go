package item

import "github.com/KirkDiggler/rpg-inventory/internal/errors"

// Rarity is how rare an item is
type Rarity string

// Rarity values
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// String returns the string representation of the rarity
func (r Rarity) String() string {
	return string(r)
}

// IsValid checks if the rarity is one of the enumerated values
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// AllRarities returns every valid rarity, most common first
func AllRarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityEpic,
		RarityLegendary,
	}
}

// ParseRarity converts a string to a Rarity.
// An empty string is treated as common.
func ParseRarity(s string) (Rarity, error) {
	if s == "" {
		return RarityCommon, nil
	}
	r := Rarity(s)
	if !r.IsValid() {
		return "", errors.UnknownRarity(s)
	}
	return r, nil
}

// multiplierTable maps each rarity to a stat multiplier
type multiplierTable map[Rarity]float64

func (t multiplierTable) lookup(r Rarity) (float64, error) {
	m, ok := t[r]
	if !ok {
		return 0, errors.UnknownRarity(string(r))
	}
	return m, nil
}
