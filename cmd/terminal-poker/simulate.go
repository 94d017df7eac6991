package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ashxudev/terminal-poker/internal/config"
	"github.com/ashxudev/terminal-poker/internal/sim"
)

type SimulateCmd struct {
	Hands          int      `kong:"default='10000',help='Deals to play (each is replayed with seats swapped)'"`
	StackBB        int      `kong:"help='Starting stacks in big blinds (overrides config)'"`
	HeroAggression *float64 `kong:"help='Hero aggression between 0 and 1 (overrides config)'"`
	Opponent       string   `kong:"default='rule',help='Opponent type: rule, call, fold, random, maniac'"`
	OppAggression  float64  `kong:"default='0.5',help='Rule opponent aggression'"`
	Seed           *int64   `kong:"help='Deterministic session seed (optional)'"`
	Workers        int      `kong:"help='Worker goroutines (default all cores, capped at 8)'"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg, cli.Debug)

	stackBB := cfg.Game.StartingStackBB
	if c.StackBB > 0 {
		stackBB = c.StackBB
	}
	heroAggression := cfg.BotAggression()
	if c.HeroAggression != nil {
		heroAggression = *c.HeroAggression
	}
	if heroAggression < 0 || heroAggression > 1 {
		return &config.ConfigError{
			Setting: "bot.aggression",
			Problem: fmt.Sprintf("must be between 0 and 1, got %g", heroAggression),
		}
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simulator := sim.New(sim.Config{
		Hands:          c.Hands,
		StackBB:        stackBB,
		HeroAggression: heroAggression,
		Opponent:       c.Opponent,
		OppAggression:  c.OppAggression,
		Seed:           seed,
		Workers:        c.Workers,
		Logger:         logger,
	})

	result, err := simulator.Run(ctx)
	if err != nil {
		return err
	}

	result.WriteSummary(os.Stdout)
	return nil
}
