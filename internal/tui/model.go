// Package tui renders an interactive heads-up table with Bubble Tea. The
// human sits in seat 0, the bot in seat 1. The model owns the table, applies
// both seats' actions and redraws from snapshots; bot actions are paced with
// a short delay so the hand is readable.
package tui

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ashxudev/terminal-poker/internal/bot"
	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/internal/randutil"
	"github.com/ashxudev/terminal-poker/internal/stats"
)

const (
	humanSeat = 0
	botSeat   = 1

	heroName = "Hero"

	defaultStackBB  = 100
	defaultBotDelay = 900 * time.Millisecond
	maxLogLines     = 500

	botStream = 1
)

// mode tracks what the table is waiting for.
type mode int

const (
	modePlaying    mode = iota // hand running, a seat is to act
	modeRaiseEntry             // human typing a raise amount
	modeHandEnd                // hand resolved, waiting to deal the next
	modeSessionEnd             // a stack hit zero
)

// overlay replaces the table pane when active.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayStats
)

// botMoveMsg fires one bot action. Stale messages from an earlier session or
// hand are dropped by comparing generation and hand number.
type botMoveMsg struct {
	generation int
	hand       int
}

// Config carries the session settings for an interactive table.
type Config struct {
	StackBB    int     // starting stacks in big blinds
	Aggression float64 // bot aggression in [0, 1]
	BotName    string
	Seed       int64
	BotDelay   time.Duration // pause before each bot action
	Store      *stats.Store  // lifetime stats, saved after every hand
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a session against the bot. Hands chain
// until a stack hits zero or the user quits; a new session redeals fresh
// stacks and keeps the lifetime stats.
type Model struct {
	config Config
	logger *log.Logger

	game    *game.Game
	bus     game.EventBus
	villain bot.Bot
	tracker *stats.Tracker
	store   *stats.Store
	rng     *rand.Rand

	mode          mode
	overlay       overlay
	generation    int
	sessionClosed bool
	quitting      bool

	raiseInput textinput.Model
	raiseMin   int // chip totals for the open entry
	raiseMax   int

	logView  viewport.Model
	logLines []string

	width  int
	height int
	notice string // last rejected input, shown in the action bar
}

// New builds the model and deals the first hand.
func New(config Config) *Model {
	if config.StackBB <= 0 {
		config.StackBB = defaultStackBB
	}
	if config.BotName == "" {
		config.BotName = "Villain"
	}
	if config.BotDelay <= 0 {
		config.BotDelay = defaultBotDelay
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("tui")

	lifetime := &stats.PlayerStats{}
	if config.Store != nil {
		lifetime = config.Store.Stats()
	}

	ti := textinput.New()
	ti.Prompt = "raise to "
	ti.Placeholder = "BB"
	ti.CharLimit = 4
	ti.Width = 6

	m := &Model{
		config:     config,
		logger:     logger,
		bus:        game.NewEventBus(),
		tracker:    stats.NewTracker(lifetime, humanSeat, nil, logger),
		store:      config.Store,
		rng:        randutil.New(config.Seed),
		villain:    bot.NewRuleBasedBot(config.Aggression, randutil.New(randutil.Derive(config.Seed, botStream)), logger),
		raiseInput: ti,
		logView:    viewport.New(10, 5),
	}
	m.bus.Subscribe(m.tracker)
	m.bus.Subscribe(m)

	m.game = m.newTable()
	m.startHand()
	return m
}

// newTable creates a fresh table on the session bus with both seats named.
func (m *Model) newTable() *game.Game {
	g := game.NewGame(m.config.StackBB, m.rng, m.bus)
	g.Player(humanSeat).Name = heroName
	g.Player(botSeat).Name = m.config.BotName
	return g
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleBot())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(1, msg.Width-4)
		m.logView.Height = max(3, msg.Height-21)
		m.refreshLog()
		return m, nil

	case botMoveMsg:
		return m.updateBotMove(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Mouse wheel and the rest scroll the log.
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// startHand deals the next hand. Blind all-ins can resolve the whole hand
// inside StartHand, so the terminal check runs immediately after.
func (m *Model) startHand() tea.Cmd {
	if err := m.game.StartHand(); err != nil {
		m.logger.Error("start hand", "err", err)
		return nil
	}
	m.mode = modePlaying
	m.notice = ""
	if m.game.Street().IsTerminal() {
		m.finishHand()
		return nil
	}
	return m.scheduleBot()
}

// scheduleBot arms a paced bot move when the bot is to act.
func (m *Model) scheduleBot() tea.Cmd {
	if m.game.Street().IsTerminal() || m.game.ToAct() != botSeat {
		return nil
	}
	msg := botMoveMsg{generation: m.generation, hand: m.game.HandNumber()}
	return tea.Tick(m.config.BotDelay, func(time.Time) tea.Msg {
		return msg
	})
}

func (m *Model) updateBotMove(msg botMoveMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || msg.hand != m.game.HandNumber() {
		return m, nil
	}
	if m.mode != modePlaying || m.game.Street().IsTerminal() || m.game.ToAct() != botSeat {
		return m, nil
	}

	action := m.villain.Decide(bot.ViewFor(m.game, botSeat))
	if err := m.game.Apply(botSeat, action); err != nil {
		m.logger.Error("bot action rejected", "action", action.Type, "err", err)
		fallback := game.Action{Type: game.Fold}
		if m.game.Legal().CanCheck {
			fallback = game.Action{Type: game.Check}
		}
		if err := m.game.Apply(botSeat, fallback); err != nil {
			m.logger.Error("bot fallback rejected", "err", err)
			return m, nil
		}
	}

	if m.game.Street().IsTerminal() {
		m.finishHand()
		return m, nil
	}
	// After a street change the bot can be first to act again.
	return m, m.scheduleBot()
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.overlay != overlayNone {
		m.overlay = overlayNone
		return m, nil
	}

	if m.mode == modeRaiseEntry {
		return m.updateRaiseEntry(msg)
	}

	switch key {
	case "q":
		return m.quit()
	case "?":
		m.overlay = overlayHelp
		return m, nil
	case "s":
		m.overlay = overlayStats
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	switch m.mode {
	case modePlaying:
		return m.updatePlayKey(key)
	case modeHandEnd:
		if key == "enter" || key == " " || key == "n" {
			return m, m.dealNext()
		}
	case modeSessionEnd:
		if key == "n" {
			return m.newSession()
		}
	}
	return m, nil
}

func (m *Model) updatePlayKey(key string) (tea.Model, tea.Cmd) {
	if m.game.ToAct() != humanSeat {
		return m, nil
	}
	legal := m.game.Legal()

	switch key {
	case "f":
		if legal.CanFold {
			return m, m.applyHuman(game.Action{Type: game.Fold})
		}
	case "c":
		switch {
		case legal.CanCheck:
			return m, m.applyHuman(game.Action{Type: game.Check})
		case legal.CanCall:
			return m, m.applyHuman(game.Action{Type: game.Call, Amount: legal.CallCost})
		case legal.CanAllIn:
			// The call is for the whole stack.
			return m, m.applyHuman(game.Action{Type: game.AllIn, Amount: legal.AllInTotal})
		}
	case "r", "b":
		if legal.CanBet || legal.CanRaise {
			m.openRaiseEntry(legal)
			return m, textinput.Blink
		}
	case "a":
		if legal.CanAllIn {
			return m, m.applyHuman(game.Action{Type: game.AllIn, Amount: legal.AllInTotal})
		}
	}
	return m, nil
}

func (m *Model) applyHuman(a game.Action) tea.Cmd {
	if err := m.game.Apply(humanSeat, a); err != nil {
		m.notice = err.Error()
		m.logger.Warn("action rejected", "action", a.Type, "err", err)
		return nil
	}
	m.notice = ""
	if m.game.Street().IsTerminal() {
		m.finishHand()
		return nil
	}
	return m.scheduleBot()
}

func (m *Model) openRaiseEntry(legal game.LegalActions) {
	m.raiseMin = legal.MinRaiseTo
	if legal.CanBet {
		m.raiseMin = legal.MinBet
	}
	m.raiseMax = legal.AllInTotal
	m.raiseInput.SetValue(strconv.Itoa(ceilBB(m.raiseMin)))
	m.raiseInput.CursorEnd()
	m.raiseInput.Focus()
	m.mode = modeRaiseEntry
}

func (m *Model) closeRaiseEntry() {
	m.raiseInput.Blur()
	m.raiseInput.SetValue("")
	m.mode = modePlaying
}

func (m *Model) updateRaiseEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeRaiseEntry()
		return m, nil
	case "enter":
		return m, m.confirmRaise()
	case "up", "down":
		n, _ := strconv.Atoi(m.raiseInput.Value())
		if msg.String() == "up" {
			n++
		} else {
			n--
		}
		// Stepping stays inside the legal range; typing can still go below
		// and gets clamped on confirm.
		n = clamp(n, ceilBB(m.raiseMin), ceilBB(m.raiseMax))
		m.raiseInput.SetValue(strconv.Itoa(n))
		m.raiseInput.CursorEnd()
		return m, nil
	}

	// Only digits reach the input; backspace and cursor keys pass through.
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.raiseInput, cmd = m.raiseInput.Update(msg)
	return m, cmd
}

// confirmRaise turns the typed big-blind amount into a bet or raise, clamped
// to the legal bounds. An amount at or above the stack becomes the all-in.
func (m *Model) confirmRaise() tea.Cmd {
	n, err := strconv.Atoi(m.raiseInput.Value())
	if err != nil {
		return nil
	}
	total := clamp(n*game.BigBlind, m.raiseMin, m.raiseMax)
	m.closeRaiseEntry()

	legal := m.game.Legal()
	var a game.Action
	switch {
	case total >= legal.AllInTotal:
		a = game.Action{Type: game.AllIn, Amount: legal.AllInTotal}
	case legal.CanBet:
		a = game.Action{Type: game.Bet, Amount: total}
	default:
		a = game.Action{Type: game.Raise, Amount: total}
	}
	return m.applyHuman(a)
}

// finishHand records the resolved hand and routes to the hand-end or
// session-end screen. Stats go to disk after every hand.
func (m *Model) finishHand() {
	m.mode = modeHandEnd
	if m.game.Player(humanSeat).Stack == 0 || m.game.Player(botSeat).Stack == 0 {
		m.mode = modeSessionEnd
		m.closeSession()
	}
	m.saveStats()
}

// dealNext starts the next hand, or ends the session when a stack is empty.
func (m *Model) dealNext() tea.Cmd {
	if m.game.Player(humanSeat).Stack == 0 || m.game.Player(botSeat).Stack == 0 {
		m.mode = modeSessionEnd
		m.closeSession()
		return nil
	}
	return m.startHand()
}

// newSession redeals fresh stacks on the same bus. Lifetime stats carry over.
func (m *Model) newSession() (tea.Model, tea.Cmd) {
	m.generation++
	m.sessionClosed = false
	m.game = m.newTable()
	m.appendLog("")
	m.appendLog(SeparatorStyle.Render("═══ new session ═══"))
	m.logger.Info("new session", "stack_bb", m.config.StackBB)
	return m, m.startHand()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.closeSession()
	m.saveStats()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) closeSession() {
	if m.sessionClosed {
		return
	}
	m.tracker.EndSession()
	m.sessionClosed = true
}

func (m *Model) saveStats() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(); err != nil {
		m.logger.Warn("save stats", "err", err)
	}
}

// Summary is printed by the command after the program exits.
func (m *Model) Summary() string {
	lifetime := m.tracker.Stats()
	var b strings.Builder
	fmt.Fprintf(&b, "Session: %d hands, %+.1f BB in %s\n",
		m.tracker.SessionHands(),
		m.tracker.SessionProfitBB(),
		m.tracker.SessionDuration().Round(time.Second))
	fmt.Fprintf(&b, "Lifetime: %d hands, %+.1f BB (%+.1f BB/100)\n",
		lifetime.TotalHands, lifetime.ProfitBB(), lifetime.WinRateBBPer100())
	if m.store != nil {
		fmt.Fprintf(&b, "Stats saved to %s\n", m.store.Path())
	}
	return b.String()
}

func (m *Model) seatName(seat int) string {
	return m.game.Player(seat).Name
}

// bbAmount formats a chip amount in big blinds.
func bbAmount(chips int) string {
	return fmt.Sprintf("%g BB", float64(chips)/game.BigBlind)
}

// ceilBB converts a chip total to whole big blinds, rounding up so the
// resulting amount is never below the total it came from.
func ceilBB(chips int) int {
	return (chips + game.BigBlind - 1) / game.BigBlind
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
