package game

// Street represents the phase of a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	HandComplete
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "complete"}[s]
}

// IsTerminal reports whether the hand has been resolved. Showdown means both
// seats revealed their cards; HandComplete means the hand ended on a fold.
func (s Street) IsTerminal() bool {
	return s == Showdown || s == HandComplete
}
