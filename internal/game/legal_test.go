package game

import (
	"testing"
)

func TestLegalActionsUnopened(t *testing.T) {
	t.Parallel()
	la := legalActions(0, 4, 0, 100)

	if la.CanFold {
		t.Error("Folding should not be allowed when checking is free")
	}
	if !la.CanCheck {
		t.Error("Check should be available with nothing to call")
	}
	if la.CanCall {
		t.Error("Call should not be available with nothing to call")
	}
	if !la.CanBet || la.MinBet != BigBlind {
		t.Errorf("Expected min bet %d, got CanBet=%v MinBet=%d", BigBlind, la.CanBet, la.MinBet)
	}
	if la.CanRaise {
		t.Error("Raise should not be available before a bet")
	}
	if !la.CanAllIn || la.AllInTotal != 100 {
		t.Errorf("Expected all-in for 100, got CanAllIn=%v AllInTotal=%d", la.CanAllIn, la.AllInTotal)
	}
}

func TestLegalActionsFacingBet(t *testing.T) {
	t.Parallel()
	// Facing a bet of 6 with 2 already committed and 98 behind.
	la := legalActions(4, 10, 2, 98)

	if !la.CanFold {
		t.Error("Fold should be available facing a bet")
	}
	if la.CanCheck {
		t.Error("Check should not be available facing a bet")
	}
	if !la.CanCall || la.CallCost != 4 {
		t.Errorf("Expected call for 4, got CanCall=%v CallCost=%d", la.CanCall, la.CallCost)
	}
	if la.CanBet {
		t.Error("Bet should not be available facing a bet")
	}
	if !la.CanRaise || la.MinRaiseTo != 10 {
		t.Errorf("Expected min raise to 10, got CanRaise=%v MinRaiseTo=%d", la.CanRaise, la.MinRaiseTo)
	}
	if !la.CanAllIn || la.AllInTotal != 100 {
		t.Errorf("Expected all-in for 100, got AllInTotal=%d", la.AllInTotal)
	}
}

func TestLegalActionsShortStack(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		toCall     int
		minRaiseTo int
		bet        int
		stack      int
		wantCall   bool
		wantRaise  bool
		wantAllIn  int
	}{
		{"call exactly all-in", 10, 22, 2, 10, false, false, 12},
		{"call more than stack", 10, 22, 2, 7, false, false, 9},
		{"raise would be all-in", 4, 10, 2, 8, true, false, 10},
		{"min raise just reachable", 4, 10, 2, 9, true, true, 11},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			la := legalActions(tc.toCall, tc.minRaiseTo, tc.bet, tc.stack)
			if la.CanCall != tc.wantCall {
				t.Errorf("CanCall = %v, want %v", la.CanCall, tc.wantCall)
			}
			if la.CanRaise != tc.wantRaise {
				t.Errorf("CanRaise = %v, want %v", la.CanRaise, tc.wantRaise)
			}
			if !la.CanAllIn || la.AllInTotal != tc.wantAllIn {
				t.Errorf("AllInTotal = %d, want %d", la.AllInTotal, tc.wantAllIn)
			}
			if !la.CanFold {
				t.Error("Fold should always be available facing a bet")
			}
		})
	}
}

func TestLegalActionsShortBet(t *testing.T) {
	t.Parallel()
	// A stack below the big blind can still open for its whole stack.
	la := legalActions(0, 4, 0, 1)
	if !la.CanBet || la.MinBet != 1 {
		t.Errorf("Expected min bet 1 for a one-chip stack, got CanBet=%v MinBet=%d", la.CanBet, la.MinBet)
	}
	if la.AllInTotal != 1 {
		t.Errorf("Expected all-in total 1, got %d", la.AllInTotal)
	}
}

func TestLegalActionsBigBlindOption(t *testing.T) {
	t.Parallel()
	// Big blind after a limp: 2 committed, nothing to call. The smallest
	// "bet" must put the total to two big blinds, a real raise over the limp.
	la := legalActions(0, 4, 2, 98)
	if !la.CanCheck {
		t.Error("Big blind should keep the checking option")
	}
	if !la.CanBet || la.MinBet != 4 {
		t.Errorf("Expected min bet total 4 over the limp, got CanBet=%v MinBet=%d", la.CanBet, la.MinBet)
	}
}

func TestPermits(t *testing.T) {
	t.Parallel()
	la := legalActions(4, 10, 2, 98) // facing a bet of 6 with 100 total

	allowed := []Action{
		{Type: Fold},
		{Type: Call, Amount: 4},
		{Type: Raise, Amount: 10},
		{Type: Raise, Amount: 50},
		{Type: Raise, Amount: 100},
		{Type: AllIn, Amount: 100},
	}
	for _, a := range allowed {
		if !la.Permits(a) {
			t.Errorf("Expected %s to be legal", a.Describe())
		}
	}

	rejected := []Action{
		{Type: Check},
		{Type: Bet, Amount: 10},
		{Type: Call, Amount: 3},
		{Type: Call, Amount: 5},
		{Type: Raise, Amount: 9},
		{Type: Raise, Amount: 101},
		{Type: AllIn, Amount: 99},
	}
	for _, a := range rejected {
		if la.Permits(a) {
			t.Errorf("Expected %s to be rejected", a.Describe())
		}
	}
}

func TestActionDescribe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		action   Action
		expected string
	}{
		{Action{Type: Fold}, "folds"},
		{Action{Type: Check}, "checks"},
		{Action{Type: Call, Amount: 4}, "calls 4"},
		{Action{Type: Bet, Amount: 6}, "bets 6"},
		{Action{Type: Raise, Amount: 18}, "raises to 18"},
		{Action{Type: AllIn, Amount: 77}, "all-in for 77"},
	}

	for _, tc := range tests {
		if got := tc.action.Describe(); got != tc.expected {
			t.Errorf("Describe() = %q, want %q", got, tc.expected)
		}
	}
}

func TestActionIsAggressive(t *testing.T) {
	t.Parallel()
	aggressive := []ActionType{Bet, Raise, AllIn}
	passive := []ActionType{Fold, Check, Call}

	for _, at := range aggressive {
		if !(Action{Type: at, Amount: 10}).IsAggressive() {
			t.Errorf("%s should be aggressive", at)
		}
	}
	for _, at := range passive {
		if (Action{Type: at}).IsAggressive() {
			t.Errorf("%s should not be aggressive", at)
		}
	}
}
