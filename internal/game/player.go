package game

import (
	"github.com/ashxudev/terminal-poker/poker"
)

// Player holds one seat's chips and cards.
type Player struct {
	Name      string
	Stack     int
	Bet       int // chips committed this street, already counted in the pot
	HoleCards [2]poker.Card
}

// StreetTotal returns the highest street total this seat can reach.
func (p *Player) StreetTotal() int {
	return p.Bet + p.Stack
}
