package bot

import (
	rand "math/rand/v2"

	"github.com/ashxudev/terminal-poker/internal/game"
)

// CallBot checks when it can and calls when it must, shoving only when a
// call would take its whole stack. It never folds and never raises.
type CallBot struct{}

// NewCallBot creates a CallBot.
func NewCallBot() *CallBot { return &CallBot{} }

func (*CallBot) Decide(v View) game.Action {
	switch {
	case v.Legal.CanCheck:
		return game.Action{Type: game.Check}
	case v.Legal.CanCall:
		return game.Action{Type: game.Call, Amount: v.Legal.CallCost}
	case v.Legal.CanAllIn:
		return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
	}
	return game.Action{Type: game.Fold}
}

// FoldBot folds to any bet and checks everything else. It exists to pin the
// lower bound of the simulator's win-rate scale.
type FoldBot struct{}

// NewFoldBot creates a FoldBot.
func NewFoldBot() *FoldBot { return &FoldBot{} }

func (*FoldBot) Decide(v View) game.Action {
	if v.Legal.CanCheck {
		return game.Action{Type: game.Check}
	}
	return game.Action{Type: game.Fold}
}

// RandomBot picks uniformly among the legal actions, with uniform sizing for
// bets and raises.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot creates a RandomBot. A nil rng falls back to the process-wide
// source.
func NewRandomBot(rng *rand.Rand) *RandomBot { return &RandomBot{rng: rng} }

func (r *RandomBot) Decide(v View) game.Action {
	la := v.Legal
	var actions []game.Action
	if la.CanCheck {
		actions = append(actions, game.Action{Type: game.Check})
	}
	if la.CanCall {
		actions = append(actions, game.Action{Type: game.Call, Amount: la.CallCost})
	}
	if la.CanBet {
		amount := la.MinBet + randIntN(r.rng, la.AllInTotal-la.MinBet+1)
		actions = append(actions, game.Action{Type: game.Bet, Amount: amount})
	}
	if la.CanRaise {
		amount := la.MinRaiseTo + randIntN(r.rng, la.AllInTotal-la.MinRaiseTo+1)
		actions = append(actions, game.Action{Type: game.Raise, Amount: amount})
	}
	if la.CanAllIn {
		actions = append(actions, game.Action{Type: game.AllIn, Amount: la.AllInTotal})
	}
	if la.CanFold {
		actions = append(actions, game.Action{Type: game.Fold})
	}
	return actions[randIntN(r.rng, len(actions))]
}

// ManiacBot escalates relentlessly: most checks become big bets and shoves,
// and it rarely folds to pressure.
type ManiacBot struct {
	rng *rand.Rand
}

// NewManiacBot creates a ManiacBot. A nil rng falls back to the process-wide
// source.
func NewManiacBot(rng *rand.Rand) *ManiacBot { return &ManiacBot{rng: rng} }

func (m *ManiacBot) Decide(v View) game.Action {
	if v.Legal.CanCheck {
		if randFloat(m.rng) < 0.85 {
			// Shove short stacks outright, otherwise bet near the top of
			// the range.
			if v.Stack <= 20*game.BigBlind || randFloat(m.rng) < 0.3 {
				return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
			}
			if v.Legal.CanBet {
				amount := v.Legal.MinBet + (v.Legal.AllInTotal-v.Legal.MinBet)*3/4
				if amount >= v.Legal.AllInTotal {
					return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
				}
				return game.Action{Type: game.Bet, Amount: amount}
			}
		}
		return game.Action{Type: game.Check}
	}

	r := randFloat(m.rng)
	if r < 0.4 {
		return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
	}
	if r < 0.8 {
		if v.Legal.CanCall {
			return game.Action{Type: game.Call, Amount: v.Legal.CallCost}
		}
		return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
	}
	return game.Action{Type: game.Fold}
}

func randFloat(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}

func randIntN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
