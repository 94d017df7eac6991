package bot

import (
	"github.com/ashxudev/terminal-poker/poker"
)

// tierBase maps a starting-hand tier to its base strength on the same 0..1
// scale made-hand strength uses.
func tierBase(tier poker.PreflopTier) float64 {
	switch tier {
	case poker.Premium:
		return 0.90
	case poker.Strong:
		return 0.75
	case poker.Playable:
		return 0.60
	case poker.Marginal:
		return 0.45
	default:
		return 0.25
	}
}

// preflopStrength scores a starting hand from its tier plus a small kicker
// bonus, so that AKs outranks KQs inside the same tier. Capped at 1.0.
func preflopStrength(hole [2]poker.Card) float64 {
	base := tierBase(poker.CategorizeHoleCards(hole[0], hole[1]))

	high, low := hole[0].Rank(), hole[1].Rank()
	if low > high {
		high, low = low, high
	}
	bonus := float64(high)/12.0*0.04 + float64(low)/12.0*0.01

	return min(base+bonus, 1.0)
}
