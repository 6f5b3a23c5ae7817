package catalog

import "github.com/vovakirdan/skillquest/internal/core"

// Rarity is the display tier of a drop, derived purely from its drop rate.
type Rarity int

const (
	RarityAlways Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityVeryRare
)

// Drop-rate thresholds, exclusive lower bounds of each tier.
const (
	veryRareAbove = 500
	rareAbove     = 125
	uncommonAbove = 40
	commonAbove   = 1
)

// RarityFromDropRate maps a drop-rate denominator to its tier.
func RarityFromDropRate(d int) Rarity {
	switch {
	case d > veryRareAbove:
		return RarityVeryRare
	case d > rareAbove:
		return RarityRare
	case d > uncommonAbove:
		return RarityUncommon
	case d > commonAbove:
		return RarityCommon
	default:
		return RarityAlways
	}
}

// String returns a human-readable tier name.
func (r Rarity) String() string {
	switch r {
	case RarityAlways:
		return "always"
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityVeryRare:
		return "very rare"
	default:
		return "unknown"
	}
}

// Color returns the narration color of the tier.
func (r Rarity) Color() core.Color {
	switch r {
	case RarityAlways:
		return core.ColorWhite
	case RarityCommon:
		return core.ColorBrown
	case RarityUncommon:
		return core.ColorYellow
	case RarityRare:
		return core.ColorOrange
	case RarityVeryRare:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}
