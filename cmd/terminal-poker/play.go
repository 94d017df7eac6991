package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashxudev/terminal-poker/internal/config"
	"github.com/ashxudev/terminal-poker/internal/stats"
	"github.com/ashxudev/terminal-poker/internal/tui"
)

type PlayCmd struct {
	StackBB    int      `kong:"help='Starting stacks in big blinds (overrides config)'"`
	Aggression *float64 `kong:"help='Bot aggression between 0 and 1 (overrides config)'"`
	BotName    string   `kong:"help='Bot display name (overrides config)'"`
	Seed       *int64   `kong:"help='Deterministic deal seed (optional)'"`
	StatsFile  string   `kong:"help='Stats file location',type='path'"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger(cfg, cli.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	stackBB := cfg.Game.StartingStackBB
	if c.StackBB > 0 {
		stackBB = c.StackBB
	}
	aggression := cfg.BotAggression()
	if c.Aggression != nil {
		aggression = *c.Aggression
	}
	if aggression < 0 || aggression > 1 {
		return &config.ConfigError{
			Setting: "bot.aggression",
			Problem: fmt.Sprintf("must be between 0 and 1, got %g", aggression),
		}
	}
	botName := cfg.Bot.Name
	if c.BotName != "" {
		botName = c.BotName
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	statsPath := c.StatsFile
	if statsPath == "" {
		statsPath, err = stats.DefaultStatsPath()
		if err != nil {
			return fmt.Errorf("resolving stats path: %w", err)
		}
	}
	store := stats.OpenStore(statsPath, logger)

	logger.Info("starting session",
		"stack_bb", stackBB,
		"aggression", aggression,
		"opponent", botName,
		"seed", seed)

	model := tui.New(tui.Config{
		StackBB:    stackBB,
		Aggression: aggression,
		BotName:    botName,
		Seed:       seed,
		Store:      store,
		Logger:     logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}

	fmt.Print(model.Summary())
	return nil
}
