package statistics

import (
	"math"
	"strings"
	"testing"

	"github.com/ashxudev/terminal-poker/internal/game"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestEmptyStatistics(t *testing.T) {
	t.Parallel()
	s := &Statistics{}

	for name, got := range map[string]float64{
		"Mean":       s.Mean(),
		"Variance":   s.Variance(),
		"StdDev":     s.StdDev(),
		"StdError":   s.StdError(),
		"Median":     s.Median(),
		"Percentile": s.Percentile(0.5),
	} {
		if got != 0 {
			t.Errorf("%s of no hands should be 0, got %g", name, got)
		}
	}
}

func TestAddSingleHand(t *testing.T) {
	t.Parallel()
	s := &Statistics{}
	s.Add(HandResult{
		NetBB:          2.5,
		Seed:           12345,
		OnButton:       true,
		WentToShowdown: true,
		FinalPotChips:  20,
		StreetReached:  game.River,
	})

	if s.Hands != 1 {
		t.Fatalf("Expected 1 hand, got %d", s.Hands)
	}
	if !almost(s.Mean(), 2.5) || s.Variance() != 0 || !almost(s.Median(), 2.5) {
		t.Errorf("Single hand summary wrong: mean %g var %g median %g",
			s.Mean(), s.Variance(), s.Median())
	}
	if s.ShowdownWins != 1 || s.NonShowdownWins != 0 {
		t.Errorf("Win split wrong: %d/%d", s.ShowdownWins, s.NonShowdownWins)
	}
	if s.Button.Hands != 1 || s.OffButton.Hands != 0 {
		t.Errorf("Positional split wrong: %d/%d", s.Button.Hands, s.OffButton.Hands)
	}
	if !s.IsLedgerBalanced() {
		t.Error("Ledger should balance")
	}
}

func TestAddManyHands(t *testing.T) {
	t.Parallel()
	s := &Statistics{}
	results := []HandResult{
		{NetBB: 1.0, OnButton: true, FinalPotChips: 4},
		{NetBB: -2.0, OnButton: false, WentToShowdown: true, FinalPotChips: 8},
		{NetBB: 3.0, OnButton: true, WentToShowdown: true, FinalPotChips: 12},
		{NetBB: 0.0, OnButton: false, FinalPotChips: 2},
		{NetBB: -1.0, OnButton: true, FinalPotChips: 6},
	}
	for _, r := range results {
		s.Add(r)
	}

	if !almost(s.Mean(), 0.2) {
		t.Errorf("Mean should be 0.2, got %g", s.Mean())
	}
	// Sorted results: -2 -1 0 1 3.
	if !almost(s.Median(), 0.0) {
		t.Errorf("Median should be 0, got %g", s.Median())
	}
	if s.ShowdownWins != 1 || s.NonShowdownWins != 1 {
		t.Errorf("Win split wrong: %d/%d", s.ShowdownWins, s.NonShowdownWins)
	}
	if s.Button.Hands != 3 || s.OffButton.Hands != 2 {
		t.Errorf("Positional split wrong: %d/%d", s.Button.Hands, s.OffButton.Hands)
	}
	if !almost(s.Button.Mean(), 1.0) {
		t.Errorf("Button mean should be 1.0, got %g", s.Button.Mean())
	}
	if !almost(s.OffButton.Mean(), -1.0) {
		t.Errorf("Off-button mean should be -1.0, got %g", s.OffButton.Mean())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestVarianceAndStdDev(t *testing.T) {
	t.Parallel()
	s := &Statistics{}
	for _, v := range []float64{1, 3, 5} {
		s.Add(HandResult{NetBB: v})
	}

	if !almost(s.Variance(), 4.0) {
		t.Errorf("Sample variance of 1,3,5 is 4, got %g", s.Variance())
	}
	if !almost(s.StdDev(), 2.0) {
		t.Errorf("StdDev should be 2, got %g", s.StdDev())
	}
}

func TestPercentiles(t *testing.T) {
	t.Parallel()
	s := &Statistics{}
	for i := 1; i <= 5; i++ {
		s.Add(HandResult{NetBB: float64(i)})
	}

	cases := []struct{ p, want float64 }{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
	}
	for _, tc := range cases {
		if got := s.Percentile(tc.p); !almost(got, tc.want) {
			t.Errorf("Percentile(%g) = %g, want %g", tc.p, got, tc.want)
		}
	}
}

func TestConfidenceInterval(t *testing.T) {
	t.Parallel()
	s := &Statistics{}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Add(HandResult{NetBB: v})
	}

	low, high := s.ConfidenceInterval95()
	if !almost((low+high)/2, s.Mean()) {
		t.Errorf("CI should center on the mean: [%g, %g] around %g", low, high, s.Mean())
	}
	if high <= low {
		t.Errorf("CI should have positive width, got [%g, %g]", low, high)
	}
}

func TestPotTracking(t *testing.T) {
	t.Parallel()
	s := &Statistics{}
	s.Add(HandResult{NetBB: 1.0, FinalPotChips: 20})   // 10 BB
	s.Add(HandResult{NetBB: 5.0, FinalPotChips: 200})  // 100 BB, a big pot
	s.Add(HandResult{NetBB: -1.0, FinalPotChips: 4})   // 2 BB

	if s.MaxPotChips != 200 || !almost(s.MaxPotBB, 100.0) {
		t.Errorf("Max pot wrong: %d chips, %g BB", s.MaxPotChips, s.MaxPotBB)
	}
	if s.BigPots != 1 || !almost(s.BigPotsBB, 5.0) {
		t.Errorf("Big pot tracking wrong: %d pots, %g BB", s.BigPots, s.BigPotsBB)
	}
}

func TestMergeMatchesSequential(t *testing.T) {
	t.Parallel()
	results := []HandResult{
		{NetBB: 2.0, OnButton: true, WentToShowdown: true, FinalPotChips: 30},
		{NetBB: -1.5, OnButton: false, FinalPotChips: 10},
		{NetBB: 0.5, OnButton: true, FinalPotChips: 6},
		{NetBB: -3.0, OnButton: false, WentToShowdown: true, FinalPotChips: 120},
		{NetBB: 4.0, OnButton: true, WentToShowdown: true, FinalPotChips: 140},
	}

	sequential := &Statistics{}
	for _, r := range results {
		sequential.Add(r)
	}

	a, b := &Statistics{}, &Statistics{}
	for i, r := range results {
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}
	merged := &Statistics{}
	merged.Merge(a)
	merged.Merge(b)

	if merged.Hands != sequential.Hands {
		t.Fatalf("Hands differ: %d vs %d", merged.Hands, sequential.Hands)
	}
	if !almost(merged.Mean(), sequential.Mean()) ||
		!almost(merged.Variance(), sequential.Variance()) ||
		!almost(merged.Median(), sequential.Median()) {
		t.Errorf("Summary differs after merge: mean %g/%g var %g/%g median %g/%g",
			merged.Mean(), sequential.Mean(),
			merged.Variance(), sequential.Variance(),
			merged.Median(), sequential.Median())
	}
	if merged.MaxPotChips != sequential.MaxPotChips {
		t.Errorf("Max pot differs: %d vs %d", merged.MaxPotChips, sequential.MaxPotChips)
	}
	if merged.Button.Hands != sequential.Button.Hands ||
		merged.OffButton.Hands != sequential.OffButton.Hands {
		t.Errorf("Positional split differs after merge")
	}
	if err := merged.Validate(); err != nil {
		t.Errorf("Validate after merge: %v", err)
	}
}

func TestValidateCatchesCorruption(t *testing.T) {
	t.Parallel()

	t.Run("ledger mismatch", func(t *testing.T) {
		t.Parallel()
		s := &Statistics{Hands: 1, SumBB: 1, Values: []float64{1}}
		s.AllBB = 1.0
		s.ShowdownBB = 0.5
		s.NonShowdownBB = 0.6
		s.Button.Hands = 1

		err := s.Validate()
		if err == nil || !strings.Contains(err.Error(), "ledger mismatch") {
			t.Errorf("Expected a ledger mismatch, got %v", err)
		}
	})

	t.Run("no hands", func(t *testing.T) {
		t.Parallel()
		err := (&Statistics{}).Validate()
		if err == nil || !strings.Contains(err.Error(), "invalid hands count") {
			t.Errorf("Expected an invalid hands count, got %v", err)
		}
	})

	t.Run("values length", func(t *testing.T) {
		t.Parallel()
		s := &Statistics{Hands: 2, Values: []float64{1}}
		s.AllBB = 1.0
		s.NonShowdownBB = 1.0

		err := s.Validate()
		if err == nil || !strings.Contains(err.Error(), "values length") {
			t.Errorf("Expected a values length error, got %v", err)
		}
	})

	t.Run("too many wins", func(t *testing.T) {
		t.Parallel()
		s := &Statistics{Hands: 2, Values: []float64{1, 1}}
		s.AllBB = 2.0
		s.NonShowdownBB = 2.0
		s.ShowdownWins = 2
		s.NonShowdownWins = 2
		s.Button.Hands = 2

		err := s.Validate()
		if err == nil || !strings.Contains(err.Error(), "total wins") {
			t.Errorf("Expected a win count error, got %v", err)
		}
	})

	t.Run("positional mismatch", func(t *testing.T) {
		t.Parallel()
		s := &Statistics{Hands: 2, Values: []float64{1, 1}}
		s.AllBB = 2.0
		s.NonShowdownBB = 2.0
		s.Button.Hands = 1

		err := s.Validate()
		if err == nil || !strings.Contains(err.Error(), "positional hands total") {
			t.Errorf("Expected a positional mismatch, got %v", err)
		}
	})
}
