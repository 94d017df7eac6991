package bot

import (
	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/poker"
)

// View is the slice of the table a bot is allowed to decide from: its own
// cards and chips plus everything public. It never exposes the opponent's
// hole cards or the deck.
type View struct {
	Street      game.Street
	Hole        [2]poker.Card
	Board       []poker.Card
	Pot         int
	Stack       int // chips behind
	Bet         int // chips already committed this street
	ToCall      int
	InPosition  bool // acting seat has the button
	FacingRaise bool // the blind has been raised this hand
	Legal       game.LegalActions
}

// OpponentBet returns the street total the opponent currently has in.
func (v View) OpponentBet() int {
	return v.Bet + v.ToCall
}

// ViewFor projects the table state for the given seat. The seat must be the
// one due to act, otherwise the legal action set is meaningless.
func ViewFor(g *game.Game, seat int) View {
	p := g.Player(seat)
	toCall := g.ToCall(seat)
	return View{
		Street:      g.Street(),
		Hole:        p.HoleCards,
		Board:       g.Board(),
		Pot:         g.Pot(),
		Stack:       p.Stack,
		Bet:         p.Bet,
		ToCall:      toCall,
		InPosition:  g.Button() == seat,
		FacingRaise: p.Bet+toCall > game.BigBlind,
		Legal:       g.Legal(),
	}
}
