// Package stats tracks playing statistics for one seat across hands and
// sessions: the standard preflop and postflop frequency stats (VPIP, PFR,
// 3-bet, c-bet), showdown stats (WTSD, W$SD), the aggression factor and the
// chip ledger. Counters accumulate; percentages are derived on read so the
// stored state can never drift from the raw counts.
package stats

import (
	"github.com/ashxudev/terminal-poker/internal/game"
)

// afCap stands in for a division by zero when a player has bets or raises
// but no calls at all.
const afCap = 99.9

// PlayerStats holds the raw lifetime counters for one seat. All fields are
// monotonic except the profit ledger, which is a signed running total.
// The struct round-trips through JSON for persistence.
type PlayerStats struct {
	TotalHands    int `json:"total_hands"`
	TotalSessions int `json:"total_sessions"`

	// Preflop.
	VPIPHands             int `json:"vpip_hands"`
	PFRHands              int `json:"pfr_hands"`
	ThreeBetOpportunities int `json:"three_bet_opportunities"`
	ThreeBetHands         int `json:"three_bet_hands"`

	// Postflop.
	CBetOpportunities       int `json:"cbet_opportunities"`
	CBetHands               int `json:"cbet_hands"`
	FoldToCBetOpportunities int `json:"fold_to_cbet_opportunities"`
	FoldToCBetHands         int `json:"fold_to_cbet_hands"`

	// Showdown. WTSD opportunities are hands that saw a flop.
	WTSDOpportunities int `json:"wtsd_opportunities"`
	WTSDHands         int `json:"wtsd_hands"`
	WSDHands          int `json:"wsd_hands"`

	// Postflop aggression.
	Bets   int `json:"bets"`
	Raises int `json:"raises"`
	Calls  int `json:"calls"`

	// Results.
	TotalProfitChips int64 `json:"total_profit_chips"`
	BiggestPotWon    int   `json:"biggest_pot_won"`
	BiggestPotLost   int   `json:"biggest_pot_lost"`
}

// VPIP returns the percentage of hands where money went in voluntarily
// preflop. Posted blinds and checks do not count; any call or raise does,
// limping the button included.
func (s *PlayerStats) VPIP() float64 {
	return percentage(s.VPIPHands, s.TotalHands)
}

// PFR returns the percentage of hands with a preflop raise.
func (s *PlayerStats) PFR() float64 {
	return percentage(s.PFRHands, s.TotalHands)
}

// ThreeBet returns the percentage of re-raises when facing a preflop raise.
func (s *PlayerStats) ThreeBet() float64 {
	return percentage(s.ThreeBetHands, s.ThreeBetOpportunities)
}

// CBet returns the percentage of flops bet after raising preflop.
func (s *PlayerStats) CBet() float64 {
	return percentage(s.CBetHands, s.CBetOpportunities)
}

// FoldToCBet returns the percentage of folds when facing a continuation bet.
func (s *PlayerStats) FoldToCBet() float64 {
	return percentage(s.FoldToCBetHands, s.FoldToCBetOpportunities)
}

// WTSD returns the percentage of flops seen that reached showdown.
func (s *PlayerStats) WTSD() float64 {
	return percentage(s.WTSDHands, s.WTSDOpportunities)
}

// WSD returns the percentage of showdowns won.
func (s *PlayerStats) WSD() float64 {
	return percentage(s.WSDHands, s.WTSDHands)
}

// AggressionFactor returns (bets + raises) / calls over postflop actions,
// capped at 99.9 when there are no calls to divide by.
func (s *PlayerStats) AggressionFactor() float64 {
	aggressive := s.Bets + s.Raises
	if s.Calls == 0 {
		if aggressive > 0 {
			return afCap
		}
		return 0
	}
	return float64(aggressive) / float64(s.Calls)
}

// WinRateBBPer100 returns the win rate in big blinds per hundred hands.
func (s *PlayerStats) WinRateBBPer100() float64 {
	if s.TotalHands == 0 {
		return 0
	}
	return float64(s.TotalProfitChips) / game.BigBlind / float64(s.TotalHands) * 100
}

// ProfitBB returns the lifetime chip result converted to big blinds.
func (s *PlayerStats) ProfitBB() float64 {
	return float64(s.TotalProfitChips) / game.BigBlind
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// StatDefinition explains one tracked stat for the help and stats views.
type StatDefinition struct {
	Abbrev      string
	Name        string
	Explanation string
}

// Definitions lists every displayed stat with a one-line reading guide.
var Definitions = []StatDefinition{
	{
		Abbrev:      "VPIP",
		Name:        "Voluntarily Put $ In Pot",
		Explanation: "% of hands where you voluntarily put money in preflop (calls or raises, not blinds)",
	},
	{
		Abbrev:      "PFR",
		Name:        "Pre-Flop Raise",
		Explanation: "% of hands where you raised preflop. Should be close to VPIP for tight-aggressive play",
	},
	{
		Abbrev:      "3Bet",
		Name:        "3-Bet Frequency",
		Explanation: "% of times you re-raised when facing a raise. 7-10% is typical",
	},
	{
		Abbrev:      "CBet",
		Name:        "Continuation Bet",
		Explanation: "% of times you bet the flop after raising preflop. 60-70% is standard",
	},
	{
		Abbrev:      "FCBet",
		Name:        "Fold to C-Bet",
		Explanation: "% of times you folded to a continuation bet. >50% is exploitable",
	},
	{
		Abbrev:      "WTSD",
		Name:        "Went to Showdown",
		Explanation: "% of hands that went to showdown when you saw the flop. 25-32% is healthy",
	},
	{
		Abbrev:      "W$SD",
		Name:        "Won $ at Showdown",
		Explanation: "% of showdowns you won. >50% means you're showing down strong hands",
	},
	{
		Abbrev:      "AF",
		Name:        "Aggression Factor",
		Explanation: "Ratio of (bets + raises) / calls. Higher = more aggressive. 2-3 is typical",
	},
}
