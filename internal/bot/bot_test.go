package bot

import (
	"testing"

	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/internal/randutil"
	"github.com/ashxudev/terminal-poker/poker"
)

// playOut runs full hands with both seats driven by the given bots and fails
// the test on the first illegal decision. Returns the number of hands played.
func playOut(t *testing.T, bots [2]Bot, hands int, seed int64) int {
	t.Helper()
	g := game.NewGame(50, randutil.New(seed), nil)

	played := 0
	for ; played < hands; played++ {
		if err := g.StartHand(); err != nil {
			break
		}
		for !g.Street().IsTerminal() {
			seat := g.ToAct()
			v := ViewFor(g, seat)
			a := bots[seat].Decide(v)
			if !v.Legal.Permits(a) {
				t.Fatalf("Seat %d chose %s outside the legal set %+v (street %s)",
					seat, a.Describe(), v.Legal, g.Street())
			}
			if err := g.Apply(seat, a); err != nil {
				t.Fatalf("Apply(%d, %s): %v", seat, a.Describe(), err)
			}
		}
	}
	return played
}

func TestRuleBasedBotStaysLegal(t *testing.T) {
	t.Parallel()
	for _, aggression := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		for seed := int64(1); seed <= 4; seed++ {
			rng := randutil.New(seed * 100)
			bots := [2]Bot{
				NewRuleBasedBot(aggression, rng, nil),
				NewRandomBot(rng),
			}
			playOut(t, bots, 200, seed)
		}
	}
}

func TestBaselineBotsStayLegal(t *testing.T) {
	t.Parallel()
	rng := randutil.New(42)
	pairs := [][2]Bot{
		{NewCallBot(), NewManiacBot(rng)},
		{NewFoldBot(), NewRandomBot(rng)},
		{NewManiacBot(rng), NewRandomBot(rng)},
	}
	for _, bots := range pairs {
		playOut(t, bots, 150, 7)
	}
}

func TestAggressionClamped(t *testing.T) {
	t.Parallel()
	if got := NewRuleBasedBot(-0.3, nil, nil).Aggression(); got != 0.0 {
		t.Errorf("Aggression below zero should clamp to 0, got %g", got)
	}
	if got := NewRuleBasedBot(1.7, nil, nil).Aggression(); got != 1.0 {
		t.Errorf("Aggression above one should clamp to 1, got %g", got)
	}
	if got := NewRuleBasedBot(0.35, nil, nil).Aggression(); got != 0.35 {
		t.Errorf("In-range aggression should pass through, got %g", got)
	}
}

func TestPreflopStrengthOrdering(t *testing.T) {
	t.Parallel()
	stronger := [][2]string{
		{"As Ad", "Ks Kd"}, // higher pair
		{"As Ks", "As Kd"}, // suited beats offsuit
		{"As Kd", "Js Td"}, // premium beats playable
		{"Js Td", "Js 4d"}, // connected beats junk
		{"Ks Kd", "As Ks"}, // big pair beats big ace
	}
	for _, pair := range stronger {
		a, b := holePair(t, pair[0]), holePair(t, pair[1])
		if preflopStrength(a) <= preflopStrength(b) {
			t.Errorf("%s (%.3f) should outrank %s (%.3f)",
				pair[0], preflopStrength(a), pair[1], preflopStrength(b))
		}
	}
}

func TestPreflopStrengthKickerBonus(t *testing.T) {
	t.Parallel()
	// Aces sit at the tier base 0.90 plus the full kicker bonus.
	aces := holePair(t, "As Ad")
	if got := preflopStrength(aces); got != 0.95 {
		t.Errorf("Aces should score 0.95, got %g", got)
	}
	// Trash stays near its 0.25 base.
	junk := holePair(t, "7s 2d")
	if got := preflopStrength(junk); got < 0.25 || got > 0.30 {
		t.Errorf("72o should stay near the trash base, got %g", got)
	}
}

func TestFoldsTrashToBigRaise(t *testing.T) {
	t.Parallel()
	// The noise band is 0.05 wide, far short of what 72o needs to continue
	// against a large raise, so every sample must fold.
	b := NewRuleBasedBot(0.5, randutil.New(1), nil)
	v := facingRaiseView(t, "7s 2d", 20)
	for i := 0; i < 50; i++ {
		if a := b.Decide(v); a.Type != game.Fold {
			t.Fatalf("72o facing a 10BB raise should fold, got %s", a.Describe())
		}
	}
}

func TestReraisesPremiumHands(t *testing.T) {
	t.Parallel()
	b := NewRuleBasedBot(0.5, randutil.New(1), nil)
	v := facingRaiseView(t, "As Ad", 10)
	for i := 0; i < 50; i++ {
		if a := b.Decide(v); !a.IsAggressive() {
			t.Fatalf("Aces facing a raise should reraise, got %s", a.Describe())
		}
	}
}

func TestAggressionRaisesMoreOften(t *testing.T) {
	t.Parallel()
	passive := NewRuleBasedBot(0.1, randutil.New(3), nil)
	maniac := NewRuleBasedBot(0.9, randutil.New(4), nil)

	deals := randutil.New(99)
	raised := func(b *RuleBasedBot) int {
		count := 0
		for i := 0; i < 2000; i++ {
			deck := poker.NewDeck(deals)
			cards := deck.Deal(2)
			v := openView([2]poker.Card{cards[0], cards[1]})
			if b.Decide(v).IsAggressive() {
				count++
			}
		}
		return count
	}

	low, high := raised(passive), raised(maniac)
	if high <= low {
		t.Errorf("Aggression 0.9 raised %d of 2000, aggression 0.1 raised %d; expected more",
			high, low)
	}
}

func TestViewForProjectsActingSeat(t *testing.T) {
	t.Parallel()
	g := game.NewGame(100, randutil.New(5), nil)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	// Seat 0 has the button and the small blind.
	v := ViewFor(g, 0)
	if v.Street != game.Preflop {
		t.Errorf("Expected preflop, got %s", v.Street)
	}
	if !v.InPosition {
		t.Error("The button is in position")
	}
	if v.ToCall != game.BigBlind-game.SmallBlind {
		t.Errorf("The small blind owes %d, got %d", game.BigBlind-game.SmallBlind, v.ToCall)
	}
	if v.FacingRaise {
		t.Error("An unraised pot is not a raised pot")
	}
	if v.Hole != g.Player(0).HoleCards {
		t.Error("View must carry the seat's own hole cards")
	}

	if err := g.Apply(0, game.Action{Type: game.Raise, Amount: 6}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	v = ViewFor(g, 1)
	if !v.FacingRaise {
		t.Error("The big blind now faces a raise")
	}
	if v.InPosition {
		t.Error("The big blind is out of position heads-up")
	}
	if v.OpponentBet() != 6 {
		t.Errorf("Opponent street total should be 6, got %d", v.OpponentBet())
	}
}

// holePair parses exactly two cards.
func holePair(t *testing.T, s string) [2]poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	if err != nil || len(cards) != 2 {
		t.Fatalf("Bad hole cards %q: %v", s, err)
	}
	return [2]poker.Card{cards[0], cards[1]}
}

// facingRaiseView builds a preflop spot where the big blind faces a raise to
// the given street total.
func facingRaiseView(t *testing.T, hole string, raiseTo int) View {
	t.Helper()
	g := game.NewGame(100, randutil.New(1), nil)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	if err := g.Apply(0, game.Action{Type: game.Raise, Amount: raiseTo}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	v := ViewFor(g, 1)
	v.Hole = holePair(t, hole)
	return v
}

// openView builds the small blind's opening spot with the given hole cards.
func openView(hole [2]poker.Card) View {
	return View{
		Street:      game.Preflop,
		Hole:        hole,
		Pot:         game.SmallBlind + game.BigBlind,
		Stack:       200 - game.SmallBlind,
		Bet:         game.SmallBlind,
		ToCall:      game.BigBlind - game.SmallBlind,
		InPosition:  true,
		FacingRaise: false,
		Legal: game.LegalActions{
			CanFold:    true,
			CanCall:    true,
			CallCost:   game.BigBlind - game.SmallBlind,
			CanRaise:   true,
			MinRaiseTo: 2 * game.BigBlind,
			CanAllIn:   true,
			AllInTotal: 200,
		},
	}
}
