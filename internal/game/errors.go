package game

import (
	"errors"
	"fmt"
)

// ErrOutOfTurn is returned when an action arrives for a seat that is not due
// to act.
var ErrOutOfTurn = errors.New("not this seat's turn")

// ErrHandOver is returned when an action arrives after the hand has ended.
var ErrHandOver = errors.New("hand is already complete")

// ErrHandInProgress is returned by StartHand while a hand is still running.
var ErrHandInProgress = errors.New("hand still in progress")

// ErrBustedStack is returned by StartHand when a seat has no chips left.
var ErrBustedStack = errors.New("a seat has no chips left")

// IllegalActionError reports an action outside the legal set for the current
// betting state. The table state is unchanged when it is returned.
type IllegalActionError struct {
	Seat   int
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action by seat %d: %s (%s)", e.Seat, e.Action.Describe(), e.Reason)
}
