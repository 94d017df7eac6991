// Package classification analyzes boards and draws for the rule-based bot.
//
// Board texture drives bet sizing; draw detection feeds the equity bonus a
// drawing hand is given on the flop and turn.
package classification

import (
	"math/bits"
	"slices"

	"github.com/ashxudev/terminal-poker/poker"
)

// BoardTexture grades how coordinated the community cards are.
type BoardTexture int

const (
	Dry BoardTexture = iota
	Medium
	Wet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case Medium:
		return "medium"
	case Wet:
		return "wet"
	default:
		return "unknown"
	}
}

// AnalyzeBoardTexture scores suit concentration, rank connectivity and pairing
// into a wetness grade. An empty board is dry.
func AnalyzeBoardTexture(board []poker.Card) BoardTexture {
	if len(board) == 0 {
		return Dry
	}

	wetness := 0

	hand := poker.NewHand(board...)
	maxSuit := 0
	for suit := uint8(0); suit < 4; suit++ {
		if n := bits.OnesCount16(hand.GetSuitMask(suit)); n > maxSuit {
			maxSuit = n
		}
	}
	switch {
	case maxSuit >= 3:
		wetness += 2
	case maxSuit == 2:
		wetness++
	}

	// Each pair of neighbouring ranks within two steps of each other adds
	// connectivity, duplicates included.
	ranks := make([]int, len(board))
	for i, c := range board {
		ranks[i] = int(c.Rank())
	}
	slices.Sort(ranks)
	paired := false
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] <= 2 {
			wetness++
		}
		if ranks[i] == ranks[i-1] {
			paired = true
		}
	}
	if paired {
		wetness++
	}

	switch {
	case wetness <= 1:
		return Dry
	case wetness <= 3:
		return Medium
	default:
		return Wet
	}
}
