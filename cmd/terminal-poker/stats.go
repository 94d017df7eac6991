package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/internal/stats"
)

type StatsCmd struct {
	StatsFile string `kong:"help='Stats file location',type='path'"`
}

func (c *StatsCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	logger := stderrLogger(cfg, cli.Debug)

	path := c.StatsFile
	if path == "" {
		path, err = stats.DefaultStatsPath()
		if err != nil {
			return fmt.Errorf("resolving stats path: %w", err)
		}
	}
	store := stats.OpenStore(path, logger)
	st := store.Stats()

	if st.TotalHands == 0 {
		fmt.Println("No hands on record yet. Play some with: terminal-poker play")
		return nil
	}

	fmt.Printf("%s  %s\n\n", headerStyle.Render("lifetime"), dimStyle.Render(store.Path()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hands\t%d\n", st.TotalHands)
	fmt.Fprintf(w, "sessions\t%d\n", st.TotalSessions)
	fmt.Fprintf(w, "profit\t%+.1f BB\n", st.ProfitBB())
	fmt.Fprintf(w, "win rate\t%+.1f BB/100\n", st.WinRateBBPer100())
	fmt.Fprintf(w, "biggest pot won\t%.1f BB\n", float64(st.BiggestPotWon)/game.BigBlind)
	fmt.Fprintf(w, "biggest pot lost\t%.1f BB\n", float64(st.BiggestPotLost)/game.BigBlind)
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, d := range stats.Definitions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			headerStyle.Render(d.Abbrev),
			statValue(st, d.Abbrev),
			d.Name,
			dimStyle.Render(d.Explanation))
	}
	w.Flush()
	return nil
}

// statValue renders the current value for one stat abbreviation.
func statValue(st *stats.PlayerStats, abbrev string) string {
	switch abbrev {
	case "VPIP":
		return fmt.Sprintf("%.1f%%", st.VPIP())
	case "PFR":
		return fmt.Sprintf("%.1f%%", st.PFR())
	case "3Bet":
		return fmt.Sprintf("%.1f%%", st.ThreeBet())
	case "CBet":
		return fmt.Sprintf("%.1f%%", st.CBet())
	case "FCBet":
		return fmt.Sprintf("%.1f%%", st.FoldToCBet())
	case "WTSD":
		return fmt.Sprintf("%.1f%%", st.WTSD())
	case "W$SD":
		return fmt.Sprintf("%.1f%%", st.WSD())
	case "AF":
		return fmt.Sprintf("%.1f", st.AggressionFactor())
	default:
		return "-"
	}
}
