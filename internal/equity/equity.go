// Package equity estimates hold'em hand strength with Monte Carlo rollouts.
// The hero's hole cards are fixed, the opponent draws from a configurable
// range, and the remaining board runs out at random. Rollouts are split into
// fixed seed blocks so an estimate depends only on the seed and sample count,
// never on how many workers ran it.
package equity

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ashxudev/terminal-poker/internal/randutil"
	"github.com/ashxudev/terminal-poker/poker"
)

// fullDeck has all 52 card bits set.
const fullDeck poker.Hand = (1 << 52) - 1

// blockSize is the number of rollouts per seed block.
const blockSize = 4096

// Range describes the opponent's possible hole cards.
type Range interface {
	// SampleHole draws two hole cards outside blocked. ok is false when the
	// deck cannot satisfy the range.
	SampleHole(blocked poker.Hand, rng *rand.Rand) (poker.Card, poker.Card, bool)
}

// RandomRange deals any two remaining cards.
type RandomRange struct{}

func (RandomRange) SampleHole(blocked poker.Hand, rng *rand.Rand) (poker.Card, poker.Card, bool) {
	avail := fullDeck &^ blocked
	n := avail.CountCards()
	if n < 2 {
		return 0, 0, false
	}
	first := nthCard(avail, rng.IntN(n))
	avail &^= poker.Hand(first)
	second := nthCard(avail, rng.IntN(n-1))
	return first, second, true
}

// TierRange deals only starting hands at or above a preflop tier. After too
// many rejections it falls back to any two cards rather than spinning on a
// deck that cannot satisfy the tier.
type TierRange struct {
	Min poker.PreflopTier
}

func (r TierRange) SampleHole(blocked poker.Hand, rng *rand.Rand) (poker.Card, poker.Card, bool) {
	for attempt := 0; attempt < 200; attempt++ {
		c1, c2, ok := RandomRange{}.SampleHole(blocked, rng)
		if !ok {
			return 0, 0, false
		}
		if poker.CategorizeHoleCards(c1, c2) >= r.Min {
			return c1, c2, true
		}
	}
	return RandomRange{}.SampleHole(blocked, rng)
}

// namedRanges maps the CLI range names onto sampling strategies.
var namedRanges = map[string]Range{
	"random": RandomRange{},
	"loose":  TierRange{Min: poker.Marginal},
	"medium": TierRange{Min: poker.Playable},
	"tight":  TierRange{Min: poker.Strong},
}

// ParseRange resolves a range name.
func ParseRange(name string) (Range, error) {
	r, ok := namedRanges[name]
	if !ok {
		return nil, fmt.Errorf("unknown range %q (want one of %v)", name, RangeNames())
	}
	return r, nil
}

// RangeNames lists the accepted range names, sorted.
func RangeNames() []string {
	names := make([]string, 0, len(namedRanges))
	for name := range namedRanges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options tunes an estimate. Zero values pick defaults.
type Options struct {
	Samples int // rollouts to run, default 10000
	Workers int // parallel workers, default one per CPU capped at eight
	Seed    int64
}

// Estimate returns the hero's equity against opp: the fraction of rollouts
// the hero wins, counting split pots as half.
func Estimate(ctx context.Context, hole [2]poker.Card, board []poker.Card, opp Range, opts Options) (float64, error) {
	blocked, err := blockedCards(hole, board)
	if err != nil {
		return 0, err
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = 10000
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	blocks := (samples + blockSize - 1) / blockSize
	if workers > blocks {
		workers = blocks
	}

	parts := make([]tally, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		first := w
		eg.Go(func() error {
			var t tally
			for b := first; b < blocks; b += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				n := blockSize
				if b == blocks-1 {
					n = samples - b*blockSize
				}
				rng := randutil.New(randutil.Derive(opts.Seed, int64(b)))
				t.merge(runBlock(hole, board, blocked, opp, n, rng))
			}
			parts[first] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var total tally
	for _, part := range parts {
		total.merge(part)
	}
	if total.samples == 0 {
		return 0, fmt.Errorf("opponent range produced no hands")
	}
	return (float64(total.wins) + float64(total.ties)/2) / float64(total.samples), nil
}

// tally counts rollout outcomes from the hero's side.
type tally struct {
	wins    int
	ties    int
	samples int
}

func (t *tally) merge(o tally) {
	t.wins += o.wins
	t.ties += o.ties
	t.samples += o.samples
}

// runBlock plays n rollouts from one seed block.
func runBlock(hole [2]poker.Card, board []poker.Card, blocked poker.Hand, opp Range, n int, rng *rand.Rand) tally {
	var t tally
	boardHand := poker.NewHand(board...)
	heroBase := poker.NewHand(hole[0], hole[1]) | boardHand
	need := 5 - len(board)

	for i := 0; i < n; i++ {
		c1, c2, ok := opp.SampleHole(blocked, rng)
		if !ok {
			continue
		}
		used := blocked | poker.Hand(c1) | poker.Hand(c2)
		runout := dealRunout(used, need, rng)

		hero := poker.Evaluate7Cards(heroBase | runout)
		villain := poker.Evaluate7Cards(poker.NewHand(c1, c2) | boardHand | runout)
		switch cmp := poker.CompareHands(hero, villain); {
		case cmp > 0:
			t.wins++
		case cmp == 0:
			t.ties++
		}
		t.samples++
	}
	return t
}

// dealRunout draws need distinct cards outside used.
func dealRunout(used poker.Hand, need int, rng *rand.Rand) poker.Hand {
	var runout poker.Hand
	avail := fullDeck &^ used
	remaining := avail.CountCards()
	for i := 0; i < need; i++ {
		card := nthCard(avail, rng.IntN(remaining))
		runout.AddCard(card)
		avail &^= poker.Hand(card)
		remaining--
	}
	return runout
}

// nthCard returns the n-th card of h counting from the lowest bit.
func nthCard(h poker.Hand, n int) poker.Card {
	rest := uint64(h)
	for ; n > 0; n-- {
		rest &= rest - 1
	}
	return poker.Card(rest & -rest)
}

// blockedCards validates the input cards and folds them into one bitset.
func blockedCards(hole [2]poker.Card, board []poker.Card) (poker.Hand, error) {
	if hole[0] == 0 || hole[1] == 0 {
		return 0, fmt.Errorf("two hole cards required")
	}
	if len(board) > 5 {
		return 0, fmt.Errorf("board has %d cards, at most 5 allowed", len(board))
	}
	var blocked poker.Hand
	for _, c := range append([]poker.Card{hole[0], hole[1]}, board...) {
		if blocked.HasCard(c) {
			return 0, fmt.Errorf("duplicate card %s", c)
		}
		blocked.AddCard(c)
	}
	return blocked, nil
}
