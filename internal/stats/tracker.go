package stats

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/ashxudev/terminal-poker/internal/game"
)

// Tracker derives statistics for one seat from the table's event stream.
// Subscribe it to the table's event bus; delivery is synchronous and
// single-goroutine, and so is the tracker.
//
// Lifetime counters accumulate into the PlayerStats it was created with, so
// loading persisted stats and handing them to a Tracker continues the
// lifetime totals. Session counters start at zero and live only as long as
// the process.
type Tracker struct {
	stats  *PlayerStats
	seat   int
	clock  quartz.Clock
	logger *log.Logger

	sessionStart       time.Time
	sessionHands       int
	sessionProfitChips int64

	hand handState
}

// handState is per-hand scratch, reset on every hand start.
type handState struct {
	active      bool
	stackBefore int

	commits       [2]int // chips committed this street, blinds included
	preflopRaises int
	lastAggressor int // seat of the last preflop raise, or -1

	countedVPIP       bool
	countedPFR        bool
	counted3Bet       bool
	countedCBet       bool
	countedFoldToCBet bool

	trackedMayCBet bool
	oppMayCBet     bool
	oppCBetPending bool
}

// NewTracker creates a tracker for the given seat. A nil clock uses real
// time; a nil logger discards.
func NewTracker(stats *PlayerStats, seat int, clock quartz.Clock, logger *log.Logger) *Tracker {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		stats:        stats,
		seat:         seat,
		clock:        clock,
		logger:       logger.WithPrefix("stats"),
		sessionStart: clock.Now(),
	}
}

// Stats returns the underlying counters. Callers must not mutate them.
func (t *Tracker) Stats() *PlayerStats { return t.stats }

// SessionHands returns the number of hands dealt this process.
func (t *Tracker) SessionHands() int { return t.sessionHands }

// SessionProfitBB returns this process's running result in big blinds.
func (t *Tracker) SessionProfitBB() float64 {
	return float64(t.sessionProfitChips) / game.BigBlind
}

// SessionDuration returns the time elapsed since the tracker was created.
func (t *Tracker) SessionDuration() time.Duration {
	return t.clock.Since(t.sessionStart)
}

// EndSession closes out one sitting. Call it when a stack busts or the user
// quits; lifetime counters are unaffected beyond the session count.
func (t *Tracker) EndSession() {
	t.stats.TotalSessions++
	t.logger.Debug("session ended",
		"hands", t.sessionHands,
		"profit_bb", t.SessionProfitBB())
}

// OnEvent dispatches one table event into the counters.
func (t *Tracker) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.HandStartEvent:
		t.onHandStart(e)
	case game.PlayerActionEvent:
		t.onAction(e)
	case game.StreetChangeEvent:
		t.onStreetChange(e)
	case game.HandEndEvent:
		t.onHandEnd(e)
	}
}

func (t *Tracker) onHandStart(e game.HandStartEvent) {
	t.stats.TotalHands++
	t.sessionHands++

	t.hand = handState{
		active:        true,
		stackBefore:   e.Stacks[t.seat],
		lastAggressor: -1,
	}
	t.hand.commits[e.Button] = game.SmallBlind
	t.hand.commits[1-e.Button] = game.BigBlind
}

func (t *Tracker) onAction(e game.PlayerActionEvent) {
	if !t.hand.active {
		return
	}

	// The seat's committed chips after this action. Bet, raise and all-in
	// amounts are street totals; a call adds what it was facing.
	newTotal := t.hand.commits[e.Seat]
	switch e.Action.Type {
	case game.Call:
		newTotal += e.ToCall
	case game.Bet, game.Raise, game.AllIn:
		newTotal = e.Action.Amount
	}

	// An all-in is only a raise when it goes past the opponent's committed
	// chips; a short all-in is a call.
	isRaise := e.Action.Type == game.Bet || e.Action.Type == game.Raise ||
		(e.Action.Type == game.AllIn && newTotal > t.hand.commits[1-e.Seat])

	switch e.Street {
	case game.Preflop:
		t.onPreflopAction(e, isRaise)
	case game.Flop:
		t.onFlopAction(e, isRaise)
		t.countAggression(e, isRaise)
	default:
		t.countAggression(e, isRaise)
	}

	t.hand.commits[e.Seat] = newTotal
	if e.Street == game.Preflop && isRaise {
		t.hand.preflopRaises++
		t.hand.lastAggressor = e.Seat
	}
}

func (t *Tracker) onPreflopAction(e game.PlayerActionEvent, isRaise bool) {
	if e.Seat != t.seat {
		return
	}

	// Any preflop call or raise is voluntary money, a limp included. Only the
	// posted blinds and a check behind are free.
	if !t.hand.countedVPIP && e.Action.Type != game.Fold && e.Action.Type != game.Check {
		t.stats.VPIPHands++
		t.hand.countedVPIP = true
	}

	if !t.hand.countedPFR && isRaise {
		t.stats.PFRHands++
		t.hand.countedPFR = true
	}

	// Facing exactly one raise, made by the opponent: the 3-bet spot.
	if !t.hand.counted3Bet && t.hand.preflopRaises == 1 && t.hand.lastAggressor == 1-t.seat {
		t.stats.ThreeBetOpportunities++
		t.hand.counted3Bet = true
		if isRaise {
			t.stats.ThreeBetHands++
		}
	}
}

func (t *Tracker) onFlopAction(e game.PlayerActionEvent, isRaise bool) {
	if e.Seat != t.seat {
		// A first-in flop bet by the preflop aggressor is a continuation
		// bet the tracked seat will have to answer.
		if t.hand.oppMayCBet && e.ToCall == 0 &&
			(e.Action.Type == game.Bet || e.Action.Type == game.AllIn) {
			t.hand.oppCBetPending = true
		}
		return
	}

	if t.hand.oppCBetPending && !t.hand.countedFoldToCBet {
		t.stats.FoldToCBetOpportunities++
		t.hand.countedFoldToCBet = true
		if e.Action.Type == game.Fold {
			t.stats.FoldToCBetHands++
		}
	}

	// The c-bet chance is the aggressor's first flop decision with no bet in
	// front; a donk bet takes it away.
	if t.hand.trackedMayCBet && !t.hand.countedCBet && e.ToCall == 0 {
		t.stats.CBetOpportunities++
		t.hand.countedCBet = true
		if e.Action.Type == game.Bet || e.Action.Type == game.AllIn {
			t.stats.CBetHands++
		}
	}
}

// countAggression feeds the postflop aggression factor.
func (t *Tracker) countAggression(e game.PlayerActionEvent, isRaise bool) {
	if e.Seat != t.seat {
		return
	}
	switch e.Action.Type {
	case game.Bet:
		t.stats.Bets++
	case game.Raise:
		t.stats.Raises++
	case game.Call:
		t.stats.Calls++
	case game.AllIn:
		if isRaise {
			t.stats.Raises++
		} else {
			t.stats.Calls++
		}
	}
}

func (t *Tracker) onStreetChange(e game.StreetChangeEvent) {
	if !t.hand.active {
		return
	}
	t.hand.commits = [2]int{}

	if e.Street == game.Flop {
		t.stats.WTSDOpportunities++
		aggressor := t.hand.lastAggressor
		t.hand.trackedMayCBet = aggressor == t.seat
		t.hand.oppMayCBet = aggressor == 1-t.seat
	}
}

func (t *Tracker) onHandEnd(e game.HandEndEvent) {
	if !t.hand.active {
		return
	}
	t.hand.active = false

	delta := int64(e.Stacks[t.seat] - t.hand.stackBefore)
	t.stats.TotalProfitChips += delta
	t.sessionProfitChips += delta

	if e.Result.Showdown {
		t.stats.WTSDHands++
		if e.Result.Winner == t.seat {
			t.stats.WSDHands++
		}
	}

	switch e.Result.Winner {
	case t.seat:
		if e.Result.Pot > t.stats.BiggestPotWon {
			t.stats.BiggestPotWon = e.Result.Pot
		}
	case 1 - t.seat:
		if e.Result.Pot > t.stats.BiggestPotLost {
			t.stats.BiggestPotLost = e.Result.Pot
		}
	}

	t.logger.Debug("hand tracked",
		"hand", e.HandNumber,
		"profit_chips", delta,
		"showdown", e.Result.Showdown)
}
