package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/ashxudev/terminal-poker/poker"
)

// Blind sizes in chips. Stakes are fixed; stack depth is configured in big
// blinds.
const (
	SmallBlind = 1
	BigBlind   = 2
)

// noSeat marks the absence of an aggressor or winner.
const noSeat = -1

// HandResult records how a hand ended.
type HandResult struct {
	Winner   int // winning seat, or -1 for a split pot
	Pot      int // chips awarded, both halves for a split
	Showdown bool
	Board    []poker.Card
	Hands    [2]poker.HandClass // revealed hands, only set at showdown
}

// UncalledReturn records the refund of the unmatched part of a bet, kept
// for the rest of the hand so renderers can report it.
type UncalledReturn struct {
	Seat   int
	Amount int
}

// Game is a heads-up no-limit hold'em table. Stacks persist across hands and
// the button alternates every hand. The table advances only through StartHand
// and Apply; both are synchronous and single-goroutine.
type Game struct {
	rng *rand.Rand
	bus EventBus

	street  Street
	deck    *poker.Deck
	board   []poker.Card
	players [2]*Player
	pot     int

	button            int
	toAct             int
	aggressor         int // seat of the last bet or raise this street, or -1
	lastRaiseSize     int
	lastAction        *TakenAction
	actionsThisStreet int

	handNumber    int
	startingStack int
	result        *HandResult
	uncalled      *UncalledReturn
}

// NewGame creates a table with both stacks at startingStackBB big blinds.
// A nil rng falls back to the process-wide source; a nil bus gets a private
// one. The first StartHand gives seat 0 the button.
func NewGame(startingStackBB int, rng *rand.Rand, bus EventBus) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if bus == nil {
		bus = NewEventBus()
	}
	stack := startingStackBB * BigBlind
	g := &Game{
		rng:           rng,
		bus:           bus,
		street:        HandComplete,
		button:        1,
		aggressor:     noSeat,
		lastRaiseSize: BigBlind,
		startingStack: stack,
	}
	g.players[0] = &Player{Name: "Player 1", Stack: stack}
	g.players[1] = &Player{Name: "Player 2", Stack: stack}
	return g
}

// StartHand rotates the button, shuffles, deals and posts the blinds. The
// button posts the small blind and acts first preflop. A blind that covers a
// short stack puts it all-in; if that already closes the betting the hand is
// run out immediately.
func (g *Game) StartHand() error {
	if !g.street.IsTerminal() {
		return ErrHandInProgress
	}
	if g.players[0].Stack <= 0 || g.players[1].Stack <= 0 {
		return ErrBustedStack
	}

	g.handNumber++
	g.button = opponent(g.button)
	g.street = Preflop
	g.deck = poker.NewDeck(g.rng)
	g.board = g.board[:0]
	g.pot = 0
	g.aggressor = noSeat
	g.lastRaiseSize = BigBlind
	g.lastAction = nil
	g.result = nil
	g.uncalled = nil
	g.actionsThisStreet = 0

	stacksBefore := g.stacks()
	for _, p := range g.players {
		p.Bet = 0
		cards := g.deck.Deal(2)
		p.HoleCards = [2]poker.Card{cards[0], cards[1]}
	}

	g.addChips(g.button, SmallBlind)
	g.addChips(opponent(g.button), BigBlind)
	g.toAct = g.button

	g.bus.Publish(NewHandStartEvent(g.handNumber, g.button, stacksBefore))

	// A short stack can be all-in from the blinds alone.
	g.returnUncalledBet()
	if g.bettingComplete() {
		g.advanceStreet()
	}

	g.assertConservation()
	return nil
}

// Apply validates and applies one action for the given seat, advancing the
// hand as far as it can without further input. Rejected actions leave the
// table unchanged.
func (g *Game) Apply(seat int, a Action) error {
	if g.street.IsTerminal() {
		return ErrHandOver
	}
	if seat != g.toAct {
		return ErrOutOfTurn
	}
	if la := g.Legal(); !la.Permits(a) {
		return &IllegalActionError{Seat: seat, Action: a, Reason: "outside the legal action set"}
	}

	toCall := g.ToCall(seat)
	g.lastAction = &TakenAction{Seat: seat, Action: a}
	g.actionsThisStreet++

	switch a.Type {
	case Fold:
		g.bus.Publish(NewPlayerActionEvent(seat, a, g.street, toCall, g.pot))
		g.resolveFold(seat)
		g.assertConservation()
		return nil
	case Check:
		// No chips move.
	case Call:
		g.addChips(seat, a.Amount)
	case Bet, Raise:
		prevMax := g.maxBet()
		g.addChips(seat, a.Amount-g.players[seat].Bet)
		g.aggressor = seat
		g.lastRaiseSize = a.Amount - prevMax
	case AllIn:
		prevMax := g.maxBet()
		g.addChips(seat, a.Amount-g.players[seat].Bet)
		// A short all-in below the current bet is a call, not a raise, and
		// does not reopen the betting.
		if a.Amount > prevMax {
			g.aggressor = seat
			g.lastRaiseSize = a.Amount - prevMax
		}
	}

	g.returnUncalledBet()
	g.bus.Publish(NewPlayerActionEvent(seat, a, g.street, toCall, g.pot))

	if g.bettingComplete() {
		g.advanceStreet()
	} else {
		g.toAct = opponent(seat)
	}

	g.assertConservation()
	return nil
}

// Legal returns the action set for the seat currently due to act.
func (g *Game) Legal() LegalActions {
	p := g.players[g.toAct]
	toCall := g.ToCall(g.toAct)
	minRaiseTo := g.maxBet() + max(g.lastRaiseSize, BigBlind)
	return legalActions(toCall, minRaiseTo, p.Bet, p.Stack)
}

// ToCall returns the chips the seat must add to match the current bet.
func (g *Game) ToCall(seat int) int {
	diff := g.maxBet() - g.players[seat].Bet
	if diff < 0 {
		return 0
	}
	return diff
}

// PotOdds returns the price the acting seat faces: the pot odds ratio
// ("pot after call" to "call") and the equity needed to break even. ok is
// false when there is nothing to call.
func (g *Game) PotOdds() (ratio, equity float64, ok bool) {
	if g.street.IsTerminal() {
		return 0, 0, false
	}
	toCall := g.ToCall(g.toAct)
	if toCall == 0 {
		return 0, 0, false
	}
	total := float64(g.pot + toCall)
	return total / float64(toCall), float64(toCall) / total, true
}

// ProfitBB returns the seat's session profit in big blinds.
func (g *Game) ProfitBB(seat int) float64 {
	return float64(g.players[seat].Stack-g.startingStack) / BigBlind
}

// Street returns the current phase of the hand.
func (g *Game) Street() Street { return g.street }

// Pot returns the chips in the middle, live bets included.
func (g *Game) Pot() int { return g.pot }

// Button returns the seat currently on the button.
func (g *Game) Button() int { return g.button }

// ToAct returns the seat due to act.
func (g *Game) ToAct() int { return g.toAct }

// HandNumber returns the 1-based number of the current hand.
func (g *Game) HandNumber() int { return g.handNumber }

// StartingStack returns the chips each seat started the session with.
func (g *Game) StartingStack() int { return g.startingStack }

// Player returns the seat's player. Callers outside the table must treat it
// as read-only.
func (g *Game) Player(seat int) *Player { return g.players[seat] }

// Board returns a copy of the community cards dealt so far.
func (g *Game) Board() []poker.Card { return g.boardCopy() }

// Result returns the outcome of the last completed hand, or nil while a hand
// is still running.
func (g *Game) Result() *HandResult { return g.result }

// Uncalled returns the refund of the current hand's unmatched bet, or nil
// when every bet was matched.
func (g *Game) Uncalled() *UncalledReturn {
	if g.uncalled == nil {
		return nil
	}
	u := *g.uncalled
	return &u
}

// LastAction returns the most recent action of the current hand.
func (g *Game) LastAction() (TakenAction, bool) {
	if g.lastAction == nil {
		return TakenAction{}, false
	}
	return *g.lastAction, true
}

func (g *Game) addChips(seat, amount int) {
	p := g.players[seat]
	actual := min(amount, p.Stack)
	p.Stack -= actual
	p.Bet += actual
	g.pot += actual
}

func (g *Game) maxBet() int {
	return max(g.players[0].Bet, g.players[1].Bet)
}

// returnUncalledBet refunds the part of a bet the opponent can no longer
// match. It fires only when the lower bettor is all-in; until then the
// opponent still has the full amount to act on.
func (g *Game) returnUncalledBet() {
	loSeat, hiSeat := 0, 1
	if g.players[loSeat].Bet > g.players[hiSeat].Bet {
		loSeat, hiSeat = hiSeat, loSeat
	}
	lo, hi := g.players[loSeat], g.players[hiSeat]
	if lo.Bet == hi.Bet || lo.Stack > 0 {
		return
	}
	excess := hi.Bet - lo.Bet
	hi.Bet = lo.Bet
	hi.Stack += excess
	g.pot -= excess
	g.uncalled = &UncalledReturn{Seat: hiSeat, Amount: excess}
}

func (g *Game) bettingComplete() bool {
	a, b := g.players[0], g.players[1]

	// Once a stack is empty no further action is possible; the round closes
	// as soon as the bets match.
	if a.Stack == 0 || b.Stack == 0 {
		return a.Bet == b.Bet
	}

	if a.Bet != b.Bet {
		return false
	}

	// Unraised preflop pot: the big blind keeps the option and the round
	// closes only on its check.
	if g.street == Preflop && g.aggressor == noSeat {
		bb := opponent(g.button)
		return g.lastAction != nil && g.lastAction.Seat == bb && g.lastAction.Action.Type == Check
	}

	// No aggressor postflop: both seats must have checked.
	if g.aggressor == noSeat {
		return g.actionsThisStreet >= 2
	}

	// With an aggressor, matched bets mean the other seat called.
	return true
}

// advanceStreet deals the next street and hands the action to the seat out of
// position. With a stack already empty there is no more betting, so the
// remaining streets run out to showdown.
func (g *Game) advanceStreet() {
	for {
		g.players[0].Bet = 0
		g.players[1].Bet = 0
		g.aggressor = noSeat
		g.lastRaiseSize = BigBlind
		g.actionsThisStreet = 0

		switch g.street {
		case Preflop:
			g.board = append(g.board, g.deck.Deal(3)...)
			g.street = Flop
		case Flop:
			g.board = append(g.board, g.deck.Deal(1)...)
			g.street = Turn
		case Turn:
			g.board = append(g.board, g.deck.Deal(1)...)
			g.street = River
		case River:
			g.resolveShowdown()
			return
		default:
			return
		}

		g.bus.Publish(NewStreetChangeEvent(g.street, g.boardCopy()))

		if g.players[0].Stack > 0 && g.players[1].Stack > 0 {
			break
		}
	}

	g.toAct = opponent(g.button)
}

func (g *Game) resolveFold(folder int) {
	winner := opponent(folder)
	pot := g.pot
	g.players[winner].Stack += pot
	g.pot = 0
	g.street = HandComplete
	g.result = &HandResult{
		Winner: winner,
		Pot:    pot,
		Board:  g.boardCopy(),
	}
	g.bus.Publish(NewHandEndEvent(g.handNumber, *g.result, g.stacks()))
}

func (g *Game) resolveShowdown() {
	var ranks [2]poker.HandRank
	var classes [2]poker.HandClass
	for seat, p := range g.players {
		hand := poker.NewHand(p.HoleCards[0], p.HoleCards[1])
		for _, c := range g.board {
			hand.AddCard(c)
		}
		ranks[seat] = poker.Evaluate7Cards(hand)
		classes[seat] = poker.ClassifyHand(hand)
	}

	winner := noSeat
	switch poker.CompareHands(ranks[0], ranks[1]) {
	case 1:
		winner = 0
	case -1:
		winner = 1
	}

	pot := g.pot
	if winner != noSeat {
		g.players[winner].Stack += pot
	} else {
		// Split pot; the odd chip goes to the button.
		half := pot / 2
		g.players[g.button].Stack += half + pot%2
		g.players[opponent(g.button)].Stack += half
	}

	g.pot = 0
	g.street = Showdown
	g.result = &HandResult{
		Winner:   winner,
		Pot:      pot,
		Showdown: true,
		Board:    g.boardCopy(),
		Hands:    classes,
	}
	g.bus.Publish(NewHandEndEvent(g.handNumber, *g.result, g.stacks()))
}

func (g *Game) boardCopy() []poker.Card {
	board := make([]poker.Card, len(g.board))
	copy(board, g.board)
	return board
}

func (g *Game) stacks() [2]int {
	return [2]int{g.players[0].Stack, g.players[1].Stack}
}

// assertConservation panics when chips leak. A failure here is a table bug,
// never a caller error.
func (g *Game) assertConservation() {
	total := g.players[0].Stack + g.players[1].Stack + g.pot
	if total != 2*g.startingStack {
		panic(fmt.Sprintf("chip conservation broken: %d chips in play, expected %d", total, 2*g.startingStack))
	}
}

func opponent(seat int) int {
	return 1 - seat
}
