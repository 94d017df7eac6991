package game

import (
	"github.com/ashxudev/terminal-poker/poker"
)

// SeatView is one seat's public state inside a Snapshot.
type SeatView struct {
	Name      string
	Stack     int
	Bet       int
	HoleCards [2]poker.Card
	HasButton bool
}

// Snapshot is a read-only projection of the table for renderers. It shares
// nothing with the live Game, so callers can hold it across Apply calls.
type Snapshot struct {
	HandNumber int
	Street     Street
	Board      []poker.Card
	Pot        int
	Seats      [2]SeatView

	ToAct int
	Legal LegalActions

	LastAction    *TakenAction
	Result        *HandResult
	Uncalled      *UncalledReturn
	PotOddsRatio  float64
	EquityNeeded  float64
	FacingBet     bool
	StartingStack int
}

// Snapshot captures the current table state. Legal actions and pot odds are
// filled only while a hand is running.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		HandNumber:    g.handNumber,
		Street:        g.street,
		Board:         g.boardCopy(),
		Pot:           g.pot,
		ToAct:         g.toAct,
		StartingStack: g.startingStack,
	}

	for seat, p := range g.players {
		s.Seats[seat] = SeatView{
			Name:      p.Name,
			Stack:     p.Stack,
			Bet:       p.Bet,
			HoleCards: p.HoleCards,
			HasButton: seat == g.button,
		}
	}

	if g.lastAction != nil {
		la := *g.lastAction
		s.LastAction = &la
	}
	if g.result != nil {
		r := *g.result
		r.Board = append([]poker.Card(nil), r.Board...)
		s.Result = &r
	}
	s.Uncalled = g.Uncalled()

	if !g.street.IsTerminal() {
		s.Legal = g.Legal()
		s.PotOddsRatio, s.EquityNeeded, s.FacingBet = g.PotOdds()
	}

	return s
}
