package poker

import (
	"math/bits"
)

// HandRank places a five card hand in the total order of all 7,462 distinct
// hand values. Lower is stronger and zero is the royal flush; equal ranks are
// exact ties, which is what showdown comparison and split pot detection rely
// on.
type HandRank uint16

// HandType enumerates the categories of poker hands ordered from weakest to
// strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Distinct values per category. Kickers come from the ranks the made part of
// the hand leaves free, so a pair has C(12,3) = 220 kicker sets per pair
// rank, and removing the ten straights from C(13,5) leaves 1277 flushes.
const (
	numStraightFlush = 10
	numFourOfAKind   = 13 * 12
	numFullHouse     = 13 * 12
	numFlush         = 1277
	numStraight      = 10
	numThreeOfAKind  = 13 * 66
	numTwoPair       = 78 * 11
	numOnePair       = 13 * 220
	numHighCard      = 1277
)

// First rank of each category block, strongest block first.
const (
	firstStraightFlush = 0
	firstFourOfAKind   = firstStraightFlush + numStraightFlush
	firstFullHouse     = firstFourOfAKind + numFourOfAKind
	firstFlush         = firstFullHouse + numFullHouse
	firstStraight      = firstFlush + numFlush
	firstThreeOfAKind  = firstStraight + numStraight
	firstTwoPair       = firstThreeOfAKind + numThreeOfAKind
	firstOnePair       = firstTwoPair + numTwoPair
	firstHighCard      = firstOnePair + numOnePair
)

// Type returns the category encoded by the rank's block.
func (hr HandRank) Type() HandType {
	switch {
	case hr < firstFourOfAKind:
		return StraightFlush
	case hr < firstFullHouse:
		return FourOfAKind
	case hr < firstFlush:
		return FullHouse
	case hr < firstStraight:
		return Flush
	case hr < firstThreeOfAKind:
		return Straight
	case hr < firstTwoPair:
		return ThreeOfAKind
	case hr < firstOnePair:
		return TwoPair
	case hr < firstHighCard:
		return Pair
	default:
		return HighCard
	}
}

// String returns a human-readable hand category name.
func (hr HandRank) String() string {
	return hr.Type().String()
}

// String returns the category name.
func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Evaluate7Cards ranks the best five card hand within exactly seven cards.
func Evaluate7Cards(hand Hand) HandRank {
	if hand.CountCards() != 7 {
		return 0
	}
	return rankHand(hand)
}

// EvaluateHand ranks the best five card hand within five, six or seven cards.
func EvaluateHand(hand Hand) HandRank {
	if n := hand.CountCards(); n < 5 || n > 7 {
		return 0
	}
	return rankHand(hand)
}

func rankHand(hand Hand) HandRank {
	suits, ranks := splitSuits(hand)

	// Seven cards can hold five of one suit at most once, and cannot pair a
	// flush with quads or a full house, so a flush hit is final either way.
	for _, sm := range suits {
		if bits.OnesCount16(sm) < 5 {
			continue
		}
		if high := straightHigh(sm); high != 0 {
			return HandRank(firstStraightFlush + 12 - int(high))
		}
		return HandRank(firstFlush + int(kickerOrder5[topRanks(sm, 5)]))
	}

	quads, trips, pairs := duplicateMasks(suits)

	if q := highestRank(quads); q >= 0 {
		k := highestRank(ranks &^ (1 << q))
		return HandRank(firstFourOfAKind + 12*(12-q) + kickerPos(1<<q, k))
	}

	if t := highestRank(trips); t >= 0 {
		// A second trip plays as the pair of a full house.
		if p := highestRank(pairs | trips&^(1<<t)); p >= 0 {
			return HandRank(firstFullHouse + 12*(12-t) + kickerPos(1<<t, p))
		}
	}

	if high := straightHigh(ranks); high != 0 {
		return HandRank(firstStraight + 12 - int(high))
	}

	if t := highestRank(trips); t >= 0 {
		kick := topRanks(ranks&^(1<<t), 2)
		return HandRank(firstThreeOfAKind + 66*(12-t) + int(kickOrder2[squeezeRank(kick, t)]))
	}

	if pp := topRanks(pairs, 2); bits.OnesCount16(pp) == 2 {
		// With three pairs the lowest pair competes as a kicker.
		k := highestRank(ranks &^ pp)
		return HandRank(firstTwoPair + 11*int(pairOrder[pp]) + kickerPos(pp, k))
	}

	if p := highestRank(pairs); p >= 0 {
		kick := topRanks(ranks&^(1<<p), 3)
		return HandRank(firstOnePair + 220*(12-p) + int(kickOrder3[squeezeRank(kick, p)]))
	}

	return HandRank(firstHighCard + int(kickerOrder5[topRanks(ranks, 5)]))
}

// splitSuits breaks a hand into its four per-suit rank masks and the union
// of ranks present.
func splitSuits(hand Hand) (suits [4]uint16, ranks uint16) {
	for suit := uint8(0); suit < 4; suit++ {
		suits[suit] = hand.GetSuitMask(suit)
		ranks |= suits[suit]
	}
	return suits, ranks
}

// duplicateMasks separates the ranks held four, exactly three and exactly
// two times. Suit mask intersections count copies without a rank loop.
func duplicateMasks(s [4]uint16) (quads, trips, pairs uint16) {
	twoPlus := s[0]&s[1] | s[2]&s[3] | (s[0]|s[1])&(s[2]|s[3])
	threePlus := s[0]&s[1]&(s[2]|s[3]) | s[2]&s[3]&(s[0]|s[1])
	quads = s[0] & s[1] & s[2] & s[3]
	return quads, threePlus &^ quads, twoPlus &^ threePlus
}

// highestRank returns the top set bit of a rank mask, or -1 when empty.
func highestRank(mask uint16) int {
	return bits.Len16(mask) - 1
}

// topRanks clears low bits until at most n ranks remain.
func topRanks(mask uint16, n int) uint16 {
	for bits.OnesCount16(mask) > n {
		mask &= mask - 1
	}
	return mask
}

// kickerPos places rank k in descending order among the ranks the made part
// of the hand leaves free.
func kickerPos(used uint16, k int) int {
	free := RankMask &^ used
	return bits.OnesCount16(free >> (k + 1))
}

// squeezeRank drops rank r from a rank mask, closing the gap so the result
// indexes the twelve remaining ranks.
func squeezeRank(mask uint16, r int) uint16 {
	low := mask & (1<<r - 1)
	return low | mask>>(r+1)<<r
}

// straightHigh returns the high rank of the best straight in a rank mask, or
// 0 when there is none. The run scan comes before the wheel check so a mask
// holding A-2-3-4-5-6 reports the six high straight rather than the wheel; a
// return of 3 (the five) always means the wheel.
func straightHigh(mask uint16) uint8 {
	mask &= RankMask
	runs := mask & mask>>1 & mask>>2 & mask>>3 & mask>>4
	if runs != 0 {
		return uint8(bits.Len16(runs) + 3)
	}
	const wheel = 1<<12 | 1<<3 | 1<<2 | 1<<1 | 1<<0
	if mask&wheel == wheel {
		return 3
	}
	return 0
}

// kickerOrder5 ranks every five card rank set by kicker order with the ten
// straight sets skipped, exactly the values the flush and high card blocks
// need. Built strongest first so the table entry is the in-block offset.
var kickerOrder5 = buildKickerOrder5()

func buildKickerOrder5() [1 << 13]uint16 {
	var table [1 << 13]uint16
	var ord, straights uint16
	for a := 12; a >= 4; a-- {
		for b := a - 1; b >= 3; b-- {
			for c := b - 1; c >= 2; c-- {
				for d := c - 1; d >= 1; d-- {
					for e := d - 1; e >= 0; e-- {
						mask := uint16(1<<a | 1<<b | 1<<c | 1<<d | 1<<e)
						if straightHigh(mask) != 0 {
							straights++
						} else {
							table[mask] = ord - straights
						}
						ord++
					}
				}
			}
		}
	}
	return table
}

// chooseOrder maps every mask of k ranks out of m to its position in
// descending kicker order, 0 being the k highest ranks.
func chooseOrder(m, k int) []uint16 {
	table := make([]uint16, 1<<m)
	var ord uint16
	var walk func(high, left int, mask uint16)
	walk = func(high, left int, mask uint16) {
		if left == 0 {
			table[mask] = ord
			ord++
			return
		}
		for r := high; r >= left-1; r-- {
			walk(r-1, left-1, mask|1<<r)
		}
	}
	walk(m-1, k, 0)
	return table
}

var (
	pairOrder  = chooseOrder(13, 2)
	kickOrder2 = chooseOrder(12, 2)
	kickOrder3 = chooseOrder(12, 3)
)

// CompareHands returns 1 if a wins, -1 if b wins and 0 for an exact tie.
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}
