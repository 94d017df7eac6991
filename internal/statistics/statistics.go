// Package statistics accumulates per-hand simulation results and derives the
// summary numbers the simulator reports: mean win rate, spread, confidence
// interval and the showdown/fold-equity split. Results are kept per hand so
// medians and percentiles stay exact.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/ashxudev/terminal-poker/internal/game"
)

// bigPotBB marks the high-action pot threshold.
const bigPotBB = 50

// HandResult is one simulated hand from the tracked seat's point of view.
type HandResult struct {
	NetBB          float64 // big blinds won or lost
	Seed           int64   // per-hand seed, kept so a hand can be replayed
	OnButton       bool    // tracked seat had the button
	WentToShowdown bool
	FinalPotChips  int
	StreetReached  game.Street
}

// SeatStats is one positional bucket (button or out of position).
type SeatStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Mean returns the bucket's average result in big blinds per hand.
func (ps SeatStats) Mean() float64 {
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// Statistics aggregates hand results. The zero value is ready to use; workers
// fill separate instances and Merge them.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64   // sum of squares for the variance
	Values []float64 // every per-hand result, for median and percentiles

	// Wins and chips split by how the hand ended. The BB buckets carry
	// losses too, so they sum to AllBB.
	ShowdownWins    int
	NonShowdownWins int
	ShowdownBB      float64
	NonShowdownBB   float64
	AllBB           float64

	// Heads-up positional split.
	Button    SeatStats
	OffButton SeatStats

	// Pot size tracking.
	MaxPotChips int
	MaxPotBB    float64
	BigPots     int     // pots of at least 50 big blinds
	BigPotsBB   float64 // net result from those pots
}

// Add incorporates one hand result.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if netBB > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	bucket := &s.OffButton
	if result.OnButton {
		bucket = &s.Button
	}
	bucket.Hands++
	bucket.SumBB += netBB
	bucket.SumBB2 += netBB * netBB

	potBB := float64(result.FinalPotChips) / game.BigBlind
	if result.FinalPotChips > s.MaxPotChips {
		s.MaxPotChips = result.FinalPotChips
		s.MaxPotBB = potBB
	}
	if potBB >= bigPotBB {
		s.BigPots++
		s.BigPotsBB += netBB
	}
}

// Merge folds another instance into this one. Used to combine per-worker
// results after a parallel run; summaries are identical to a sequential run
// up to Values ordering.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.Values = append(s.Values, other.Values...)

	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.AllBB += other.AllBB

	s.Button.Hands += other.Button.Hands
	s.Button.SumBB += other.Button.SumBB
	s.Button.SumBB2 += other.Button.SumBB2
	s.OffButton.Hands += other.OffButton.Hands
	s.OffButton.SumBB += other.OffButton.SumBB
	s.OffButton.SumBB2 += other.OffButton.SumBB2

	if other.MaxPotChips > s.MaxPotChips {
		s.MaxPotChips = other.MaxPotChips
		s.MaxPotBB = other.MaxPotBB
	}
	s.BigPots += other.BigPots
	s.BigPotsBB += other.BigPotsBB
}

// Mean returns the average result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the middle result.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at p in [0,1], linearly interpolated.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sortedValues() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// IsLedgerBalanced reports whether the showdown split sums back to the total.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate cross-checks the internal accounting. A failure means a simulator
// bug, not bad luck.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if totalWins := s.ShowdownWins + s.NonShowdownWins; totalWins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", totalWins, s.Hands)
	}
	if positional := s.Button.Hands + s.OffButton.Hands; positional != s.Hands {
		return fmt.Errorf("positional hands total (%d) does not match total hands (%d)",
			positional, s.Hands)
	}
	return nil
}
