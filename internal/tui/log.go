package tui

import (
	"fmt"
	"strings"

	"github.com/ashxudev/terminal-poker/internal/game"
)

// OnEvent turns table events into action log lines. The model is subscribed
// to the same bus as the stats tracker.
func (m *Model) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.HandStartEvent:
		m.appendLog("")
		m.appendLog(SeparatorStyle.Render(fmt.Sprintf("─── hand #%d ───", e.HandNumber)))
		m.appendLog(InfoStyle.Render(fmt.Sprintf("%s posts %s, %s posts %s",
			m.seatName(e.Button), bbAmount(game.SmallBlind),
			m.seatName(1-e.Button), bbAmount(game.BigBlind))))

	case game.PlayerActionEvent:
		line := fmt.Sprintf("%s %s", m.seatName(e.Seat), describeBB(e.Action))
		if e.Action.IsAggressive() {
			line = ActionsStyle.Render(line)
		}
		m.appendLog(line)

	case game.StreetChangeEvent:
		label := SeparatorStyle.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(e.Street.String())))
		m.appendLog(label + "  " + cardGlyphs(e.Board))

	case game.HandEndEvent:
		m.logHandEnd(e)
	}
}

func (m *Model) logHandEnd(e game.HandEndEvent) {
	r := e.Result
	if r.Showdown {
		for seat := 0; seat < 2; seat++ {
			hole := m.game.Player(seat).HoleCards
			m.appendLog(fmt.Sprintf("%s shows %s (%s)",
				m.seatName(seat), cardGlyphs(hole[:]), r.Hands[seat].Describe()))
		}
	}

	switch {
	case r.Winner < 0:
		m.appendLog(InfoStyle.Render(fmt.Sprintf("split pot, %s back to each", bbAmount(r.Pot/2))))
	case r.Winner == humanSeat:
		m.appendLog(SuccessStyle.Render(fmt.Sprintf("%s wins %s", m.seatName(r.Winner), bbAmount(r.Pot))))
	default:
		m.appendLog(ErrorStyle.Render(fmt.Sprintf("%s wins %s", m.seatName(r.Winner), bbAmount(r.Pot))))
	}
}

// describeBB renders an action with its amount in big blinds, matching the
// rest of the interface. Action.Describe speaks in chips.
func describeBB(a game.Action) string {
	switch a.Type {
	case game.Fold:
		return "folds"
	case game.Check:
		return "checks"
	case game.Call:
		return "calls " + bbAmount(a.Amount)
	case game.Bet:
		return "bets " + bbAmount(a.Amount)
	case game.Raise:
		return "raises to " + bbAmount(a.Amount)
	default:
		return "is all-in for " + bbAmount(a.Amount)
	}
}

func (m *Model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logView.SetContent(strings.Join(m.logLines, "\n"))
	if m.logView.Height > 0 {
		m.logView.GotoBottom()
	}
}
