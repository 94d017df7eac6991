package game

import "fmt"

// ActionType identifies a betting action.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (t ActionType) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[t]
}

// Action is a betting action together with its amount. Call carries the chips
// added to match the current bet; Bet, Raise and AllIn carry the street total
// the seat moves to ("raise to"). Fold and Check carry zero.
type Action struct {
	Type   ActionType
	Amount int
}

// IsAggressive reports whether the action puts chips in beyond a call.
func (a Action) IsAggressive() bool {
	return a.Type == Bet || a.Type == Raise || a.Type == AllIn
}

// Describe renders the action the way the table log shows it.
func (a Action) Describe() string {
	switch a.Type {
	case Fold:
		return "folds"
	case Check:
		return "checks"
	case Call:
		return fmt.Sprintf("calls %d", a.Amount)
	case Bet:
		return fmt.Sprintf("bets %d", a.Amount)
	case Raise:
		return fmt.Sprintf("raises to %d", a.Amount)
	default:
		return fmt.Sprintf("all-in for %d", a.Amount)
	}
}

// TakenAction pairs a seat with the action it took.
type TakenAction struct {
	Seat   int
	Action Action
}
