package stats

import (
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/internal/randutil"
)

// script replays a fixed event sequence into a tracker for seat 0.
func script(t *testing.T, events ...game.GameEvent) *Tracker {
	t.Helper()
	tr := NewTracker(&PlayerStats{}, 0, nil, nil)
	for _, e := range events {
		tr.OnEvent(e)
	}
	return tr
}

func TestLimpingTheButtonIsVPIP(t *testing.T) {
	t.Parallel()
	// Completing the small blind is a choice, not a posting: the button could
	// fold instead. The big blind checking its option stays free.
	tr := script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 1}, game.Preflop, 1, 4),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Preflop, 0, 4),
	)

	s := tr.Stats()
	if s.VPIPHands != 1 {
		t.Errorf("A limp is voluntary money, got VPIP %d", s.VPIPHands)
	}
	if s.PFRHands != 0 {
		t.Error("No raise happened")
	}
}

func TestBigBlindCheckIsNotVPIP(t *testing.T) {
	t.Parallel()
	// Seat 1 has the button and limps; seat 0 checks its big blind option.
	tr := script(t,
		game.NewHandStartEvent(1, 1, [2]int{200, 200}),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Call, Amount: 1}, game.Preflop, 1, 4),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Check}, game.Preflop, 0, 4),
	)

	if got := tr.Stats().VPIPHands; got != 0 {
		t.Errorf("Checking behind puts no voluntary money in, got VPIP %d", got)
	}
}

func TestRaiseCountsVPIPAndPFROnce(t *testing.T) {
	t.Parallel()
	tr := script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 18}, game.Preflop, 4, 24),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 44}, game.Preflop, 12, 62),
	)

	s := tr.Stats()
	if s.VPIPHands != 1 {
		t.Errorf("VPIP should count once per hand, got %d", s.VPIPHands)
	}
	if s.PFRHands != 1 {
		t.Errorf("PFR should count once per hand, got %d", s.PFRHands)
	}
}

func TestCallingARaiseIsVPIP(t *testing.T) {
	t.Parallel()
	// Seat 1 has the button; seat 0 defends the big blind.
	tr := script(t,
		game.NewHandStartEvent(1, 1, [2]int{200, 200}),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 4}, game.Preflop, 4, 12),
	)

	s := tr.Stats()
	if s.VPIPHands != 1 {
		t.Errorf("Calling a raise is voluntary money, got VPIP %d", s.VPIPHands)
	}
	if s.PFRHands != 0 {
		t.Error("A call is not a preflop raise")
	}
}

func TestThreeBetOpportunityAndConversion(t *testing.T) {
	t.Parallel()
	// Facing the button's open raise is the 3-bet spot.
	tr := script(t,
		game.NewHandStartEvent(1, 1, [2]int{200, 200}),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 18}, game.Preflop, 4, 24),
	)
	s := tr.Stats()
	if s.ThreeBetOpportunities != 1 || s.ThreeBetHands != 1 {
		t.Errorf("Expected a converted 3-bet spot, got %d/%d", s.ThreeBetHands, s.ThreeBetOpportunities)
	}

	// Folding still burns the opportunity.
	tr = script(t,
		game.NewHandStartEvent(1, 1, [2]int{200, 200}),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Fold}, game.Preflop, 4, 8),
	)
	s = tr.Stats()
	if s.ThreeBetOpportunities != 1 || s.ThreeBetHands != 0 {
		t.Errorf("Expected a missed 3-bet spot, got %d/%d", s.ThreeBetHands, s.ThreeBetOpportunities)
	}

	// The tracked seat opening the pot is not a 3-bet spot.
	tr = script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
	)
	if tr.Stats().ThreeBetOpportunities != 0 {
		t.Error("Opening the pot is not a 3-bet opportunity")
	}
}

func TestCBetTracking(t *testing.T) {
	t.Parallel()
	flop := game.NewStreetChangeEvent(game.Flop, nil)

	// Seat 0 raised preflop, got called, and bets the flop first in.
	tr := script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Call, Amount: 4}, game.Preflop, 4, 12),
		flop,
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Flop, 0, 12),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Bet, Amount: 8}, game.Flop, 0, 20),
	)
	s := tr.Stats()
	if s.CBetOpportunities != 1 || s.CBetHands != 1 {
		t.Errorf("Expected a converted c-bet spot, got %d/%d", s.CBetHands, s.CBetOpportunities)
	}

	// Checking back burns the chance.
	tr = script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Call, Amount: 4}, game.Preflop, 4, 12),
		flop,
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Flop, 0, 12),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Check}, game.Flop, 0, 12),
	)
	s = tr.Stats()
	if s.CBetOpportunities != 1 || s.CBetHands != 0 {
		t.Errorf("Expected a missed c-bet spot, got %d/%d", s.CBetHands, s.CBetOpportunities)
	}

	// A donk bet in front takes the clean c-bet spot away.
	tr = script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Call, Amount: 4}, game.Preflop, 4, 12),
		flop,
		game.NewPlayerActionEvent(1, game.Action{Type: game.Bet, Amount: 6}, game.Flop, 0, 18),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 6}, game.Flop, 6, 24),
	)
	if tr.Stats().CBetOpportunities != 0 {
		t.Error("A donk bet should erase the c-bet opportunity")
	}

	// Without the preflop raise there is no c-bet to make.
	tr = script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 1}, game.Preflop, 1, 4),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Preflop, 0, 4),
		flop,
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Flop, 0, 4),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Bet, Amount: 2}, game.Flop, 0, 6),
	)
	if tr.Stats().CBetOpportunities != 0 {
		t.Error("A limped pot has no c-bet opportunity")
	}
}

func TestFoldToCBetTracking(t *testing.T) {
	t.Parallel()
	flop := game.NewStreetChangeEvent(game.Flop, nil)

	// Seat 1 raised preflop and fires the flop after seat 0 checks.
	base := []game.GameEvent{
		game.NewHandStartEvent(1, 1, [2]int{200, 200}),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 4}, game.Preflop, 4, 12),
		flop,
		game.NewPlayerActionEvent(0, game.Action{Type: game.Check}, game.Flop, 0, 12),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Bet, Amount: 8}, game.Flop, 0, 20),
	}

	tr := script(t, append(base,
		game.NewPlayerActionEvent(0, game.Action{Type: game.Fold}, game.Flop, 8, 20))...)
	s := tr.Stats()
	if s.FoldToCBetOpportunities != 1 || s.FoldToCBetHands != 1 {
		t.Errorf("Expected a fold to the c-bet, got %d/%d", s.FoldToCBetHands, s.FoldToCBetOpportunities)
	}

	tr = script(t, append(base,
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 8}, game.Flop, 8, 28))...)
	s = tr.Stats()
	if s.FoldToCBetOpportunities != 1 || s.FoldToCBetHands != 0 {
		t.Errorf("Expected a defended c-bet, got %d/%d", s.FoldToCBetHands, s.FoldToCBetOpportunities)
	}
}

func TestShowdownAndLedgerTracking(t *testing.T) {
	t.Parallel()
	flop := game.NewStreetChangeEvent(game.Flop, nil)
	won := game.HandResult{Winner: 0, Pot: 24, Showdown: true}

	tr := script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Call, Amount: 4}, game.Preflop, 4, 12),
		flop,
		game.NewHandEndEvent(1, won, [2]int{212, 188}),
	)

	s := tr.Stats()
	if s.WTSDOpportunities != 1 || s.WTSDHands != 1 || s.WSDHands != 1 {
		t.Errorf("Expected a won showdown after seeing the flop, got %d/%d/%d",
			s.WTSDOpportunities, s.WTSDHands, s.WSDHands)
	}
	if s.TotalProfitChips != 12 {
		t.Errorf("Profit should be +12 chips, got %d", s.TotalProfitChips)
	}
	if s.BiggestPotWon != 24 || s.BiggestPotLost != 0 {
		t.Errorf("Pot records wrong: won %d lost %d", s.BiggestPotWon, s.BiggestPotLost)
	}
	if tr.SessionProfitBB() != 6.0 {
		t.Errorf("Session profit should be 6 BB, got %g", tr.SessionProfitBB())
	}

	// A preflop fold never reaches the showdown counters.
	tr = script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Fold}, game.Preflop, 1, 3),
		game.NewHandEndEvent(1, game.HandResult{Winner: 1, Pot: 3}, [2]int{199, 201}),
	)
	s = tr.Stats()
	if s.WTSDOpportunities != 0 || s.WTSDHands != 0 {
		t.Error("Folding preflop should not touch the showdown counters")
	}
	if s.TotalProfitChips != -1 {
		t.Errorf("Losing the small blind is -1 chip, got %d", s.TotalProfitChips)
	}
	if s.BiggestPotLost != 3 {
		t.Errorf("Biggest pot lost should be 3, got %d", s.BiggestPotLost)
	}
}

func TestShortAllInCallIsNotARaise(t *testing.T) {
	t.Parallel()
	// Seat 0 shoves a short stack over a raise without covering it. The
	// all-in is a call for aggression purposes and not a 3-bet.
	tr := script(t,
		game.NewHandStartEvent(1, 1, [2]int{10, 200}),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 20}, game.Preflop, 1, 22),
		game.NewPlayerActionEvent(0, game.Action{Type: game.AllIn, Amount: 10}, game.Preflop, 18, 30),
	)
	s := tr.Stats()
	if s.ThreeBetHands != 0 {
		t.Error("A short all-in below the raise is a call, not a 3-bet")
	}
	if s.ThreeBetOpportunities != 1 {
		t.Error("Facing the raise is still the opportunity")
	}
	if s.VPIPHands != 1 {
		t.Error("The shove is voluntary money")
	}
}

func TestAggressionCounters(t *testing.T) {
	t.Parallel()
	flop := game.NewStreetChangeEvent(game.Flop, nil)
	turn := game.NewStreetChangeEvent(game.Turn, nil)

	tr := script(t,
		game.NewHandStartEvent(1, 0, [2]int{200, 200}),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 1}, game.Preflop, 1, 4),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Preflop, 0, 4),
		flop,
		game.NewPlayerActionEvent(1, game.Action{Type: game.Check}, game.Flop, 0, 4),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Bet, Amount: 2}, game.Flop, 0, 6),
		game.NewPlayerActionEvent(1, game.Action{Type: game.Raise, Amount: 6}, game.Flop, 2, 12),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Call, Amount: 4}, game.Flop, 4, 16),
		turn,
		game.NewPlayerActionEvent(1, game.Action{Type: game.Bet, Amount: 8}, game.Turn, 0, 24),
		game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 20}, game.Turn, 8, 44),
	)

	s := tr.Stats()
	if s.Bets != 1 || s.Raises != 1 || s.Calls != 1 {
		t.Errorf("Expected 1 bet, 1 raise, 1 call for seat 0, got %d/%d/%d",
			s.Bets, s.Raises, s.Calls)
	}
	// Preflop actions stay out of the aggression factor.
	if got := s.AggressionFactor(); got != 2.0 {
		t.Errorf("AF should be 2.0, got %g", got)
	}
}

func TestSessionClockAndLifetimeCounters(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	lifetime := &PlayerStats{TotalHands: 40, VPIPHands: 10}
	tr := NewTracker(lifetime, 0, clock, nil)

	clock.Advance(90 * time.Second)
	if got := tr.SessionDuration(); got != 90*time.Second {
		t.Errorf("Session duration should be 90s, got %s", got)
	}

	tr.OnEvent(game.NewHandStartEvent(1, 0, [2]int{200, 200}))
	tr.OnEvent(game.NewPlayerActionEvent(0, game.Action{Type: game.Raise, Amount: 6}, game.Preflop, 1, 8))
	tr.OnEvent(game.NewHandEndEvent(1, game.HandResult{Winner: 0, Pot: 8}, [2]int{202, 198}))

	if lifetime.TotalHands != 41 {
		t.Errorf("Lifetime hands should continue from the loaded counters, got %d", lifetime.TotalHands)
	}
	if lifetime.VPIPHands != 11 {
		t.Errorf("Lifetime VPIP should continue, got %d", lifetime.VPIPHands)
	}
	if tr.SessionHands() != 1 {
		t.Errorf("Session hands start at zero, got %d", tr.SessionHands())
	}

	sessions := lifetime.TotalSessions
	tr.EndSession()
	if lifetime.TotalSessions != sessions+1 {
		t.Error("EndSession should bump the session count")
	}
}

func TestTrackerCountsLiveLimp(t *testing.T) {
	t.Parallel()
	bus := game.NewEventBus()
	tr := NewTracker(&PlayerStats{}, 0, nil, nil)
	bus.Subscribe(tr)

	g := game.NewGame(100, randutil.New(0), bus)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	if err := g.Apply(0, game.Action{Type: game.Call, Amount: 1}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got := tr.Stats().VPIPHands; got != 1 {
		t.Errorf("The button's limp should count as VPIP, got %d", got)
	}
}

func TestTrackerFollowsLiveGame(t *testing.T) {
	t.Parallel()
	bus := game.NewEventBus()
	tr := NewTracker(&PlayerStats{}, 0, nil, nil)
	bus.Subscribe(tr)

	g := game.NewGame(100, randutil.New(21), bus)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	apply := func(seat int, a game.Action) {
		t.Helper()
		if err := g.Apply(seat, a); err != nil {
			t.Fatalf("Apply(%d, %s): %v", seat, a.Describe(), err)
		}
	}

	// Button raise, call, c-bet, call, then checks to showdown.
	apply(0, game.Action{Type: game.Raise, Amount: 6})
	apply(1, game.Action{Type: game.Call, Amount: 4})
	apply(1, game.Action{Type: game.Check})
	apply(0, game.Action{Type: game.Bet, Amount: 8})
	apply(1, game.Action{Type: game.Call, Amount: 8})
	apply(1, game.Action{Type: game.Check})
	apply(0, game.Action{Type: game.Check})
	apply(1, game.Action{Type: game.Check})
	apply(0, game.Action{Type: game.Check})

	if g.Street() != game.Showdown {
		t.Fatalf("Expected a showdown, got %s", g.Street())
	}

	s := tr.Stats()
	if s.TotalHands != 1 || s.VPIPHands != 1 || s.PFRHands != 1 {
		t.Errorf("Preflop counters wrong: hands %d vpip %d pfr %d",
			s.TotalHands, s.VPIPHands, s.PFRHands)
	}
	if s.CBetOpportunities != 1 || s.CBetHands != 1 {
		t.Errorf("C-bet counters wrong: %d/%d", s.CBetHands, s.CBetOpportunities)
	}
	if s.WTSDOpportunities != 1 || s.WTSDHands != 1 {
		t.Errorf("Showdown counters wrong: %d/%d", s.WTSDHands, s.WTSDOpportunities)
	}

	wantProfit := int64(g.Player(0).Stack - 200)
	if s.TotalProfitChips != wantProfit {
		t.Errorf("Ledger disagrees with the table: %d vs %d", s.TotalProfitChips, wantProfit)
	}
	won := g.Result().Winner == 0
	if won != (s.WSDHands == 1) {
		t.Errorf("W$SD disagrees with the table result: winner %d, WSD %d",
			g.Result().Winner, s.WSDHands)
	}
}
