// Package sim plays bot versus bot heads-up matches and aggregates the
// results. Every deal is derived from the session seed and replayed twice
// with the seats swapped, so both bots see both sides of each deck and
// positional luck cancels out of the win rate.
package sim

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/ashxudev/terminal-poker/internal/bot"
	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/internal/randutil"
	"github.com/ashxudev/terminal-poker/internal/statistics"
)

// Opponent strategies the simulator can seat across from the hero bot.
const (
	OpponentRule   = "rule"
	OpponentCall   = "call"
	OpponentFold   = "fold"
	OpponentRandom = "random"
	OpponentManiac = "maniac"
)

// OpponentTypes lists the accepted opponent names.
func OpponentTypes() []string {
	return []string{OpponentRule, OpponentCall, OpponentFold, OpponentRandom, OpponentManiac}
}

// RNG streams per hand: the table deal uses the hand seed itself, the bots
// draw their decision noise from derived streams so a duplicate replay deals
// the identical deck.
const (
	heroStream = 1
	oppStream  = 2
)

// Config configures a simulation run.
type Config struct {
	Hands          int    // deals to play; each is replayed with seats swapped
	StackBB        int    // starting stacks in big blinds, fresh every hand
	HeroAggression float64
	Opponent       string  // one of OpponentTypes, empty means rule
	OppAggression  float64 // aggression for the rule opponent
	Seed           int64
	Workers        int // 0 picks a sensible default
	Logger         *log.Logger
	Clock          quartz.Clock
}

// Simulator runs heads-up matches per its Config.
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a simulator. Zero-value config fields fall back to defaults:
// 100 BB stacks, one worker per CPU capped at eight, discarded logs, real
// time.
func New(config Config) *Simulator {
	if config.StackBB <= 0 {
		config.StackBB = 100
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("sim"),
		clock:  clock,
	}
}

// Run plays the configured number of deals across the worker pool and
// returns the merged statistics. Deterministic for a given Config regardless
// of worker count.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("nothing to simulate: %d deals", s.config.Hands)
	}
	if _, err := s.newOpponent(nil); err != nil {
		return nil, err
	}

	s.logger.Info("simulation starting",
		"deals", s.config.Hands,
		"opponent", s.opponentDesc(),
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	start := s.clock.Now()
	workers := s.config.Workers
	parts := make([]*statistics.Statistics, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		part := &statistics.Statistics{}
		parts[w] = part
		first := w
		eg.Go(func() error {
			for deal := first; deal < s.config.Hands; deal += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				seed := randutil.Derive(s.config.Seed, int64(deal))
				for heroSeat := 0; heroSeat < 2; heroSeat++ {
					result, err := s.playHand(seed, heroSeat)
					if err != nil {
						return fmt.Errorf("deal %d (seed %d): %w", deal, seed, err)
					}
					part.Add(result)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, part := range parts {
		stats.Merge(part)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Since(start)
	s.logger.Info("simulation finished",
		"hands", stats.Hands,
		"mean_bb", stats.Mean(),
		"elapsed", elapsed)

	return &Result{
		Stats:    stats,
		Opponent: s.opponentDesc(),
		Elapsed:  elapsed,
	}, nil
}

// playHand plays one complete hand with fresh stacks and returns the hero's
// result. The same seed deals the same deck; heroSeat picks which side of it
// the hero plays.
func (s *Simulator) playHand(handSeed int64, heroSeat int) (statistics.HandResult, error) {
	table := game.NewGame(s.config.StackBB, randutil.New(handSeed), nil)

	hero := bot.NewRuleBasedBot(s.config.HeroAggression,
		randutil.New(randutil.Derive(handSeed, heroStream)), s.logger)
	opponent, err := s.newOpponent(randutil.New(randutil.Derive(handSeed, oppStream)))
	if err != nil {
		return statistics.HandResult{}, err
	}

	var bots [2]bot.Bot
	bots[heroSeat] = hero
	bots[1-heroSeat] = opponent

	if err := table.StartHand(); err != nil {
		return statistics.HandResult{}, err
	}
	for !table.Street().IsTerminal() {
		seat := table.ToAct()
		action := bots[seat].Decide(bot.ViewFor(table, seat))
		if err := table.Apply(seat, action); err != nil {
			return statistics.HandResult{}, fmt.Errorf("seat %d played %s: %w", seat, action.Describe(), err)
		}
	}

	result := table.Result()
	return statistics.HandResult{
		NetBB:          table.ProfitBB(heroSeat),
		Seed:           handSeed,
		OnButton:       table.Button() == heroSeat,
		WentToShowdown: result.Showdown,
		FinalPotChips:  result.Pot,
		StreetReached:  streetReached(result),
	}, nil
}

// newOpponent builds the configured opponent. A nil rng is accepted for the
// validation call before the workers start.
func (s *Simulator) newOpponent(rng *rand.Rand) (bot.Bot, error) {
	switch s.config.Opponent {
	case OpponentRule, "":
		return bot.NewRuleBasedBot(s.config.OppAggression, rng, s.logger), nil
	case OpponentCall:
		return bot.NewCallBot(), nil
	case OpponentFold:
		return bot.NewFoldBot(), nil
	case OpponentRandom:
		return bot.NewRandomBot(rng), nil
	case OpponentManiac:
		return bot.NewManiacBot(rng), nil
	}
	return nil, fmt.Errorf("unknown opponent type %q", s.config.Opponent)
}

func (s *Simulator) opponentDesc() string {
	switch s.config.Opponent {
	case OpponentRule, "":
		return fmt.Sprintf("rule(aggression=%.2f)", s.config.OppAggression)
	}
	return s.config.Opponent
}

// streetReached reports how far a finished hand got from its final board.
func streetReached(result *game.HandResult) game.Street {
	switch len(result.Board) {
	case 0:
		return game.Preflop
	case 3:
		return game.Flop
	case 4:
		return game.Turn
	default:
		return game.River
	}
}
