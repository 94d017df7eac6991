package game

// LegalActions describes what the acting seat may do, with the amount bounds
// the table enforces. Bet, raise and all-in amounts are street totals.
type LegalActions struct {
	CanFold  bool
	CanCheck bool

	CanCall  bool
	CallCost int // chips to add for a full call

	CanBet bool
	MinBet int // smallest legal bet total

	CanRaise   bool
	MinRaiseTo int // smallest legal raise total

	CanAllIn   bool
	AllInTotal int // street total when the whole stack goes in
}

// legalActions computes the action set from the acting seat's numbers. The
// all-in is always available to a seat with chips behind; it covers both the
// short call and the below-minimum raise, so CanCall and CanRaise describe
// only the moves that leave chips behind.
func legalActions(toCall, minRaiseTo, bet, stack int) LegalActions {
	la := LegalActions{
		CanFold:    toCall > 0,
		CanCheck:   toCall == 0,
		CanAllIn:   stack > 0,
		AllInTotal: bet + stack,
	}

	if toCall > 0 && toCall < stack {
		la.CanCall = true
		la.CallCost = toCall
	}

	if toCall == 0 && stack > 0 {
		la.CanBet = true
		la.MinBet = bet + min(BigBlind, stack)
	}

	if toCall > 0 && minRaiseTo < bet+stack {
		la.CanRaise = true
		la.MinRaiseTo = minRaiseTo
	}

	return la
}

// Permits reports whether the action, including its amount, is in the legal
// set.
func (la LegalActions) Permits(a Action) bool {
	switch a.Type {
	case Fold:
		return la.CanFold
	case Check:
		return la.CanCheck
	case Call:
		return la.CanCall && a.Amount == la.CallCost
	case Bet:
		return la.CanBet && a.Amount >= la.MinBet && a.Amount <= la.AllInTotal
	case Raise:
		return la.CanRaise && a.Amount >= la.MinRaiseTo && a.Amount <= la.AllInTotal
	case AllIn:
		return la.CanAllIn && a.Amount == la.AllInTotal
	default:
		return false
	}
}
