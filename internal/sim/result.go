package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/ashxudev/terminal-poker/internal/statistics"
)

// Result bundles the outcome of a simulation run.
type Result struct {
	Stats    *statistics.Statistics
	Opponent string
	Elapsed  time.Duration
}

// HandsPerSecond reports the run's throughput.
func (r *Result) HandsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Stats.Hands) / r.Elapsed.Seconds()
}

// WriteSummary renders the human-readable report for a finished run.
func (r *Result) WriteSummary(w io.Writer) {
	stats := r.Stats
	if stats == nil || stats.Hands == 0 {
		fmt.Fprintln(w, "No hands played.")
		return
	}
	hands := float64(stats.Hands)
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS vs %s ===\n", r.Opponent)
	fmt.Fprintf(w, "Hands: %d (%d deals, each replayed with seats swapped)\n",
		stats.Hands, stats.Hands/2)
	fmt.Fprintf(w, "Elapsed: %s (%.0f hands/s)\n",
		r.Elapsed.Round(time.Millisecond), r.HandsPerSecond())
	fmt.Fprintf(w, "Net: %+.1f BB\n", stats.SumBB)

	fmt.Fprintf(w, "\n=== WIN RATE ===\n")
	fmt.Fprintf(w, "Mean: %+.4f BB/hand (%+.1f BB/100)\n", stats.Mean(), stats.Mean()*100)
	fmt.Fprintf(w, "Median: %+.4f BB/hand\n", stats.Median())
	fmt.Fprintf(w, "Std dev: %.4f BB, std error: %.4f BB\n", stats.StdDev(), stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%+.4f, %+.4f] BB/hand\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5 %+.2f, P25 %+.2f, P75 %+.2f, P95 %+.2f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== PROFIT SOURCE ===\n")
	totalWins := stats.ShowdownWins + stats.NonShowdownWins
	if totalWins > 0 {
		fmt.Fprintf(w, "Hands won: %d at showdown (%.1f%%), %d without (%.1f%%)\n",
			stats.ShowdownWins, 100*float64(stats.ShowdownWins)/float64(totalWins),
			stats.NonShowdownWins, 100*float64(stats.NonShowdownWins)/float64(totalWins))
	}
	fmt.Fprintf(w, "Showdown:     %+.4f BB/hand\n", stats.ShowdownBB/hands)
	fmt.Fprintf(w, "Non-showdown: %+.4f BB/hand\n", stats.NonShowdownBB/hands)

	fmt.Fprintf(w, "\n=== POSITION ===\n")
	fmt.Fprintf(w, "On button:  %d hands, %+.4f BB/hand\n",
		stats.Button.Hands, stats.Button.Mean())
	fmt.Fprintf(w, "Off button: %d hands, %+.4f BB/hand\n",
		stats.OffButton.Hands, stats.OffButton.Mean())

	fmt.Fprintf(w, "\n=== POT SIZES ===\n")
	fmt.Fprintf(w, "Biggest pot: %.1f BB\n", stats.MaxPotBB)
	fmt.Fprintf(w, "Pots of 50+ BB: %d (net %+.1f BB)\n", stats.BigPots, stats.BigPotsBB)
}
