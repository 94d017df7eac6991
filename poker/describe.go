package poker

import (
	"fmt"
	"math/bits"
)

// HandClass describes the category a set of cards currently makes, along with
// the ranks that define it. Unlike HandRank it works on partial hands (fewer
// than five cards), which makes it suitable for live table display.
type HandClass struct {
	Type  HandType
	Ranks []uint8 // defining ranks, most significant first
}

// ClassifyHand determines the best category present in up to 7 cards.
// For five or more cards it agrees with EvaluateHand's category; for fewer it
// falls back to the pair-based categories that are possible preflop.
func ClassifyHand(hand Hand) HandClass {
	if hand == 0 {
		return HandClass{Type: HighCard}
	}

	suitMasks, rankMask := splitSuits(hand)

	// Flushes and straight flushes. Only one suit can hold five cards of a
	// seven-card hand, so the first hit wins.
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) >= 5 {
			if high := straightHigh(suitMask); high > 0 {
				return HandClass{Type: StraightFlush, Ranks: []uint8{high}}
			}
			return HandClass{Type: Flush, Ranks: descendingRanks(suitMask, 5)}
		}
	}

	quadsMask, tripsMask, pairsMask := duplicateMasks(suitMasks)

	if quad := highestRank(quadsMask); quad >= 0 {
		return HandClass{Type: FourOfAKind, Ranks: []uint8{uint8(quad)}}
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			return HandClass{Type: FullHouse, Ranks: []uint8{uint8(trip), uint8(pair)}}
		}
	}

	if high := straightHigh(rankMask); high > 0 {
		return HandClass{Type: Straight, Ranks: []uint8{high}}
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		return HandClass{Type: ThreeOfAKind, Ranks: []uint8{uint8(trip)}}
	}

	if p1 := highestRank(pairsMask); p1 >= 0 {
		if p2 := highestRank(pairsMask &^ (1 << p1)); p2 >= 0 {
			return HandClass{Type: TwoPair, Ranks: []uint8{uint8(p1), uint8(p2)}}
		}
		return HandClass{Type: Pair, Ranks: []uint8{uint8(p1)}}
	}

	top := highestRank(rankMask)
	return HandClass{Type: HighCard, Ranks: []uint8{uint8(top)}}
}

// descendingRanks lists the top n ranks of a mask, highest first.
func descendingRanks(mask uint16, n int) []uint8 {
	ranks := make([]uint8, 0, n)
	for mask != 0 && len(ranks) < n {
		top := uint8(bits.Len16(mask) - 1)
		ranks = append(ranks, top)
		mask &^= 1 << top
	}
	return ranks
}

// Describe returns the table-talk description of the class, e.g.
// "Full house, aces full of kings" or "Pair of queens".
func (c HandClass) Describe() string {
	if len(c.Ranks) == 0 {
		return "No cards"
	}

	switch c.Type {
	case StraightFlush:
		return fmt.Sprintf("%s high straight flush", RankName(c.Ranks[0]))
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s", RankName(c.Ranks[0]))
	case FullHouse:
		return fmt.Sprintf("Full house, %s full of %s", RankName(c.Ranks[0]), RankName(c.Ranks[1]))
	case Flush:
		return fmt.Sprintf("%s high flush", RankName(c.Ranks[0]))
	case Straight:
		return fmt.Sprintf("%s high straight", RankName(c.Ranks[0]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %s", RankName(c.Ranks[0]))
	case TwoPair:
		return fmt.Sprintf("Two pair, %s and %s", RankName(c.Ranks[0]), RankName(c.Ranks[1]))
	case Pair:
		return fmt.Sprintf("Pair of %s", RankName(c.Ranks[0]))
	default:
		return fmt.Sprintf("%s high", RankName(c.Ranks[0]))
	}
}

// Strength returns a normalized 0.0-1.0 estimate of how strong the made hand
// is: the category supplies the base and the lead rank a small bonus, so a
// pair of aces scores above a pair of twos but below any two pair.
func (c HandClass) Strength() float64 {
	base := float64(c.Type) / 8.0
	if len(c.Ranks) == 0 {
		return base
	}
	bonus := float64(c.Ranks[0]) / 12.0 * 0.1
	return min(base+bonus, 1.0)
}
