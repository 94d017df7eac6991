package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/ashxudev/terminal-poker/internal/equity"
	"github.com/ashxudev/terminal-poker/poker"
)

type OddsCmd struct {
	Hole    string `arg:"" help:"Hero hole cards, e.g. 'AsKh'"`
	Board   string `kong:"short='b',help='Community board cards, e.g. Td7s8h'"`
	Range   string `kong:"default='random',help='Opponent range: random, loose, medium, tight'"`
	Samples int    `kong:"short='n',default='100000',help='Monte Carlo samples'"`
	Seed    *int64 `kong:"help='Random seed for reproducible results'"`
	Workers int    `kong:"help='Worker goroutines (default all cores, capped at 8)'"`
}

func (c *OddsCmd) Run(cli *CLI) error {
	cards, err := poker.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}
	if len(cards) != 2 {
		return fmt.Errorf("need exactly 2 hole cards, got %d", len(cards))
	}
	hole := [2]poker.Card{cards[0], cards[1]}

	var board []poker.Card
	if c.Board != "" {
		board, err = poker.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("parsing board: %w", err)
		}
	}

	opponent, err := equity.ParseRange(c.Range)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	eq, err := equity.Estimate(ctx, hole, board, opponent, equity.Options{
		Samples: c.Samples,
		Workers: c.Workers,
		Seed:    seed,
	})
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if len(board) > 0 {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("board"), formatCards(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("equity"),
		headerStyle.Render("vs"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		handStyle.Render(formatCards(hole[:])),
		winStyle.Render(fmt.Sprintf("%.1f%%", eq*100)),
		c.Range)
	w.Flush()

	fmt.Printf("\n%d samples in %v\n", c.Samples, duration.Truncate(time.Millisecond))
	return nil
}
