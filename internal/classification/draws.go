package classification

import (
	"math/bits"

	"github.com/ashxudev/terminal-poker/poker"
)

// DrawInfo records the draws a hand holds against the current board. Made
// hands are not draws: a completed flush or straight sets none of the flags.
type DrawInfo struct {
	FlushDraw        bool
	OpenEnded        bool
	Gutshot          bool
	Overcards        int
	BackdoorFlush    bool
	BackdoorStraight bool
}

// EquityBoost converts the draws into a strength bonus. streetFactor scales
// the bonus down as fewer cards remain to come.
func (d DrawInfo) EquityBoost(streetFactor float64) float64 {
	boost := 0.0
	if d.FlushDraw {
		boost += 0.18
	}
	if d.OpenEnded {
		boost += 0.14
	} else if d.Gutshot {
		boost += 0.08
	}
	boost += float64(d.Overcards) * 0.04
	if d.BackdoorFlush {
		boost += 0.03
	}
	if d.BackdoorStraight {
		boost += 0.02
	}
	return boost * streetFactor
}

// DetectDraws inspects the hole cards against the board. Preflop there is
// nothing to draw to and the zero value comes back.
func DetectDraws(hole [2]poker.Card, board []poker.Card) DrawInfo {
	var info DrawInfo
	if len(board) == 0 {
		return info
	}

	detectFlushDraws(hole, board, &info)
	detectStraightDraws(hole, board, &info)
	info.Overcards = countOvercards(hole, board)
	return info
}

func detectFlushDraws(hole [2]poker.Card, board []poker.Card, info *DrawInfo) {
	for suit := uint8(0); suit < 4; suit++ {
		holeCount := 0
		for _, c := range hole {
			if c.Suit() == suit {
				holeCount++
			}
		}
		if holeCount == 0 {
			continue
		}
		total := holeCount
		for _, c := range board {
			if c.Suit() == suit {
				total++
			}
		}
		switch {
		case total == 4:
			info.FlushDraw = true
		case total == 3 && len(board) == 3:
			info.BackdoorFlush = true
		}
	}
}

// valueBits maps a card onto 1-14 straight values, aces set at both ends.
func valueBits(c poker.Card) uint16 {
	mask := uint16(1) << (c.Rank() + 2)
	if c.Rank() == poker.Ace {
		mask |= 1 << 1
	}
	return mask
}

// detectStraightDraws slides a five-value window across the 1-14 range. Four
// values present with a hole card involved is a straight draw; whether it is
// open-ended depends on both completing values being real ranks. Three values
// present on the flop is a backdoor draw.
func detectStraightDraws(hole [2]poker.Card, board []poker.Card, info *DrawInfo) {
	holeMask := valueBits(hole[0]) | valueBits(hole[1])
	all := holeMask
	for _, c := range board {
		all |= valueBits(c)
	}

	// A completed straight is a made hand, not a draw.
	for base := 1; base <= 10; base++ {
		if bits.OnesCount16(all&(uint16(0x1F)<<base)) == 5 {
			return
		}
	}

	for base := 1; base <= 10; base++ {
		window := uint16(0x1F) << base
		present := bits.OnesCount16(all & window)
		if present == 5 || holeMask&window == 0 {
			continue
		}

		if present == 4 {
			missing := bits.TrailingZeros16(window &^ all)
			switch missing {
			case base:
				// Missing the low end: open-ended only when a rank also
				// exists above the window.
				if base+5 <= 14 {
					info.OpenEnded = true
				} else {
					info.Gutshot = true
				}
			case base + 4:
				// Missing the high end: open-ended only when a rank also
				// exists below the window.
				if base >= 2 {
					info.OpenEnded = true
				} else {
					info.Gutshot = true
				}
			default:
				info.Gutshot = true
			}
		}

		if present == 3 && len(board) == 3 {
			info.BackdoorStraight = true
		}
	}
}

func countOvercards(hole [2]poker.Card, board []poker.Card) int {
	maxBoard := 0
	for _, c := range board {
		if r := int(c.Rank()); r > maxBoard {
			maxBoard = r
		}
	}
	count := 0
	for _, c := range hole {
		if int(c.Rank()) > maxBoard {
			count++
		}
	}
	return count
}
