// Package bot implements the computer opponents. The main one is
// RuleBasedBot, a threshold ladder over hand strength with a tunable
// aggression that shifts thresholds, sizings and bluffing frequencies; the
// baseline bots in strategies.go exist as simulator opponents.
package bot

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/ashxudev/terminal-poker/internal/classification"
	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/poker"
)

// Bot decides one action from a table view. Implementations must return an
// action inside the view's legal set.
type Bot interface {
	Decide(v View) game.Action
}

type betSize int

const (
	betSmall betSize = iota
	betMedium
	betLarge
)

func (s betSize) potFraction() float64 {
	switch s {
	case betSmall:
		return 0.30
	case betMedium:
		return 0.60
	default:
		return 0.85
	}
}

// RuleBasedBot plays a fixed strategy parameterized by aggression in [0,1].
// Zero is a passive calling station, one raises and bluffs at every excuse.
type RuleBasedBot struct {
	aggression float64
	rng        *rand.Rand
	logger     *log.Logger
}

// NewRuleBasedBot creates a bot. Aggression is clamped into [0,1]. A nil rng
// falls back to the process-wide source; a nil logger discards.
func NewRuleBasedBot(aggression float64, rng *rand.Rand, logger *log.Logger) *RuleBasedBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RuleBasedBot{
		aggression: min(max(aggression, 0.0), 1.0),
		rng:        rng,
		logger:     logger.WithPrefix("bot"),
	}
}

// Aggression returns the clamped personality setting.
func (b *RuleBasedBot) Aggression() float64 { return b.aggression }

// Decide picks an action for the view.
func (b *RuleBasedBot) Decide(v View) game.Action {
	var action game.Action
	switch v.Street {
	case game.Preflop:
		action = b.decidePreflop(v)
	case game.Flop, game.Turn:
		action = b.decidePostflop(v)
	case game.River:
		action = b.decideRiver(v)
	default:
		action = game.Action{Type: game.Check}
	}

	b.logger.Info("decision made",
		"street", v.Street.String(),
		"action", action.Describe(),
		"pot", v.Pot,
		"toCall", v.ToCall)
	return action
}

func (b *RuleBasedBot) decidePreflop(v View) game.Action {
	adjusted := preflopStrength(v.Hole) + (b.aggression-0.5)*0.10 + b.noise()
	b.logger.Debug("preflop analysis",
		"hole", v.Hole[0].String()+v.Hole[1].String(),
		"adjusted", adjusted,
		"facingRaise", v.FacingRaise)

	if v.ToCall == 0 {
		// Big blind option after a limp.
		switch {
		case adjusted > 0.70 && b.aggression > 0.2:
			return b.preflopRaise(3.0, v)
		case adjusted > 0.55 && b.aggression > 0.3:
			return b.preflopRaise(2.5, v)
		case adjusted > 0.45 && b.aggression > 0.5 && b.chance(0.25):
			return b.preflopRaise(2.5, v)
		}
		return game.Action{Type: game.Check}
	}

	if !v.FacingRaise {
		// Opening from the small blind.
		if adjusted > 0.50 && b.aggression > 0.15 {
			mult := 2.5
			if adjusted > 0.80 {
				mult = 3.0
			}
			return b.preflopRaise(mult, v)
		}
		if adjusted > 0.35 {
			return b.makeCall(v)
		}
		if b.aggression > 0.7 && b.chance(0.08) {
			return b.preflopRaise(3.0, v)
		}
		return game.Action{Type: game.Fold}
	}

	// Facing a raise.
	if adjusted > 0.80 {
		if v.Legal.CanRaise {
			raiseTo := max(v.OpponentBet()*3, v.Legal.MinRaiseTo)
			if raiseTo >= v.Legal.AllInTotal {
				return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
			}
			return game.Action{Type: game.Raise, Amount: raiseTo}
		}
		return b.makeCall(v)
	}

	if adjusted > 0.65 {
		if v.Legal.CanRaise && b.aggression > 0.5 && b.chance(0.25) {
			raiseTo := max(int(float64(v.OpponentBet())*2.5), v.Legal.MinRaiseTo)
			if raiseTo < v.Legal.AllInTotal {
				return game.Action{Type: game.Raise, Amount: raiseTo}
			}
		}
		return b.makeCall(v)
	}

	if adjusted > 0.50 {
		return b.makeCall(v)
	}

	// Middling hands peel a small raise but not a big one.
	if adjusted > 0.35 && v.ToCall <= game.BigBlind*3 {
		return b.makeCall(v)
	}

	if b.aggression > 0.7 && b.chance(0.05) && v.Legal.CanRaise {
		raiseTo := max(game.BigBlind*7, v.Legal.MinRaiseTo)
		if raiseTo < v.Legal.AllInTotal {
			return game.Action{Type: game.Raise, Amount: raiseTo}
		}
	}

	return game.Action{Type: game.Fold}
}

// preflopRaise escalates to a multiple of the big blind, shoving instead
// when the target reaches the stack.
func (b *RuleBasedBot) preflopRaise(bbMultiplier float64, v View) game.Action {
	raiseTo := int(float64(game.BigBlind) * bbMultiplier)

	if v.ToCall == 0 {
		// Raising the option is a bet on top of the posted blind.
		amount := max(raiseTo, v.Legal.MinBet)
		if amount >= v.Legal.AllInTotal {
			return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
		}
		return game.Action{Type: game.Bet, Amount: amount}
	}

	amount := max(raiseTo, v.Legal.MinRaiseTo)
	if amount >= v.Legal.AllInTotal {
		return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
	}
	return game.Action{Type: game.Raise, Amount: amount}
}

func (b *RuleBasedBot) decidePostflop(v View) game.Action {
	streetFactor := 1.0
	if v.Street == game.Turn {
		streetFactor = 0.5
	}
	draws := classification.DetectDraws(v.Hole, v.Board)
	effective := madeStrength(v.Hole, v.Board) + draws.EquityBoost(streetFactor)
	adjusted := b.adjustStrength(effective, v.InPosition)
	b.logger.Debug("postflop analysis",
		"street", v.Street.String(),
		"effective", effective,
		"adjusted", adjusted)

	if v.ToCall == 0 {
		return b.postflopBetOrCheck(adjusted, classification.AnalyzeBoardTexture(v.Board), v)
	}
	return b.postflopFacingBet(adjusted, v)
}

func (b *RuleBasedBot) postflopBetOrCheck(adjusted float64, texture classification.BoardTexture, v View) game.Action {
	if adjusted > 0.45 {
		return b.makeBet(betLarge, v)
	}

	if adjusted > 0.25 {
		size := betMedium
		switch texture {
		case classification.Dry:
			size = betSmall
		case classification.Wet:
			size = betLarge
		}
		return b.makeBet(size, v)
	}

	if adjusted > 0.15 && b.aggression > 0.4 {
		return b.makeBet(betSmall, v)
	}

	// Occasional air bluff, sized down on dry boards.
	if adjusted < 0.10 && b.aggression > 0.6 && b.chance(0.20) {
		size := betMedium
		if texture == classification.Dry {
			size = betSmall
		}
		return b.makeBet(size, v)
	}

	return game.Action{Type: game.Check}
}

func (b *RuleBasedBot) decideRiver(v View) game.Action {
	// No cards to come, draws are worthless now.
	adjusted := b.adjustStrength(madeStrength(v.Hole, v.Board), v.InPosition)
	b.logger.Debug("river analysis", "adjusted", adjusted)

	if v.ToCall == 0 {
		return b.riverBetOrCheck(adjusted, v)
	}
	return b.postflopFacingBet(adjusted, v)
}

func (b *RuleBasedBot) riverBetOrCheck(adjusted float64, v View) game.Action {
	if adjusted > 0.45 {
		return b.makeBet(betLarge, v)
	}
	if adjusted > 0.20 {
		return b.makeBet(betSmall, v)
	}
	if adjusted < 0.08 && b.aggression > 0.6 && b.chance(0.15) {
		return b.makeBet(betLarge, v)
	}
	return game.Action{Type: game.Check}
}

func (b *RuleBasedBot) postflopFacingBet(adjusted float64, v View) game.Action {
	if adjusted > 0.35 {
		if v.Legal.CanRaise {
			raiseTo := b.raiseSize(v)
			if raiseTo >= v.Legal.AllInTotal {
				return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
			}
			return game.Action{Type: game.Raise, Amount: raiseTo}
		}
		return b.makeCall(v)
	}

	if adjusted > 0.20 {
		if v.Legal.CanRaise && b.aggression > 0.5 && b.chance(0.30) {
			if raiseTo := b.raiseSize(v); raiseTo < v.Legal.AllInTotal {
				return game.Action{Type: game.Raise, Amount: raiseTo}
			}
		}
		return b.makeCall(v)
	}

	if adjusted > 0.12 {
		return b.makeCall(v)
	}

	if adjusted < 0.08 && b.aggression > 0.7 && b.chance(0.10) && v.Legal.CanRaise {
		if raiseTo := b.raiseSize(v); raiseTo < v.Legal.AllInTotal {
			return game.Action{Type: game.Raise, Amount: raiseTo}
		}
	}

	return game.Action{Type: game.Fold}
}

// adjustStrength folds position, personality and a little noise into the
// effective strength.
func (b *RuleBasedBot) adjustStrength(effective float64, inPosition bool) float64 {
	position := -0.04
	if inPosition {
		position = 0.06
	}
	return effective + position + (b.aggression-0.5)*0.12 + b.noise()
}

// madeStrength scores the current made hand on the shared 0..1 scale.
func madeStrength(hole [2]poker.Card, board []poker.Card) float64 {
	hand := poker.NewHand(hole[0], hole[1])
	for _, c := range board {
		hand.AddCard(c)
	}
	return poker.ClassifyHand(hand).Strength()
}

// makeBet sizes a bet as a fraction of the pot, clamped between the minimum
// bet and the stack.
func (b *RuleBasedBot) makeBet(size betSize, v View) game.Action {
	if !v.Legal.CanBet {
		return game.Action{Type: game.Check}
	}
	raw := int(float64(v.Pot) * size.potFraction())
	amount := min(max(raw, v.Legal.MinBet), v.Legal.AllInTotal)
	if amount >= v.Legal.AllInTotal {
		return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
	}
	return game.Action{Type: game.Bet, Amount: amount}
}

func (b *RuleBasedBot) makeCall(v View) game.Action {
	if v.ToCall >= v.Stack {
		return game.Action{Type: game.AllIn, Amount: v.Legal.AllInTotal}
	}
	return game.Action{Type: game.Call, Amount: v.ToCall}
}

// raiseSize targets seventy percent of the pot on top of the chips already
// committed, clamped between the minimum raise and the stack.
func (b *RuleBasedBot) raiseSize(v View) int {
	raiseTo := int(float64(v.Pot)*0.70) + v.Bet
	return min(max(raiseTo, v.Legal.MinRaiseTo), v.Legal.AllInTotal)
}

func (b *RuleBasedBot) random() float64 {
	if b.rng != nil {
		return b.rng.Float64()
	}
	return rand.Float64()
}

func (b *RuleBasedBot) noise() float64 {
	return -0.05 + 0.10*b.random()
}

func (b *RuleBasedBot) chance(p float64) bool {
	return b.random() < p
}
