package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashxudev/terminal-poker/internal/game"
	"github.com/ashxudev/terminal-poker/internal/stats"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	var center string
	switch m.overlay {
	case overlayHelp:
		center = m.renderHelp()
	case overlayStats:
		center = m.renderStats()
	default:
		center = m.renderTable()
	}

	return lipgloss.JoinVertical(lipgloss.Left, center, m.renderLogPane(), m.renderActionBar())
}

// pane wraps content in a full-width rounded border.
func (m *Model) pane(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(1, m.width-2)).
		Padding(0, 1)
}

func (m *Model) innerWidth() int {
	return max(1, m.width-4)
}

func (m *Model) renderTable() string {
	snap := m.game.Snapshot()
	innerW := m.innerWidth()

	header := spread(
		HandInfoStyle.Render(fmt.Sprintf("hand #%d", snap.HandNumber)),
		InfoStyle.Render(snap.Street.String()),
		innerW)

	botHole := faceDownGlyphs(2)
	if snap.Result != nil && snap.Result.Showdown {
		botHole = cardGlyphs(snap.Seats[botSeat].HoleCards[:])
	}
	heroHole := cardGlyphs(snap.Seats[humanSeat].HoleCards[:])

	lines := []string{
		header,
		m.seatLine(snap, botSeat, botHole, innerW),
		"",
		lipgloss.PlaceHorizontal(innerW, lipgloss.Center, boardGlyphs(snap.Board)),
		lipgloss.PlaceHorizontal(innerW, lipgloss.Center, PotStyle.Render("pot "+bbAmount(snap.Pot))),
		"",
		m.seatLine(snap, humanSeat, heroHole, innerW),
	}
	if snap.Result != nil {
		lines = append(lines, m.resultLines(snap, innerW)...)
	}

	return m.pane(DimBorder).Render(strings.Join(lines, "\n"))
}

// seatLine shows one seat: act marker, button marker, name, cards on the
// left; bet and stack on the right.
func (m *Model) seatLine(snap game.Snapshot, seat int, hole string, width int) string {
	s := snap.Seats[seat]

	arrow := " "
	if !snap.Street.IsTerminal() && snap.ToAct == seat {
		arrow = ActionsStyle.Render("▸")
	}
	marker := " "
	if s.HasButton {
		marker = ButtonMarkerStyle.Render("●")
	}
	name := fmt.Sprintf("%-8s", s.Name)
	if seat == humanSeat {
		name = HandInfoStyle.Render(name)
	}
	left := fmt.Sprintf("%s%s %s %s", arrow, marker, name, hole)

	right := "stack " + bbAmount(s.Stack)
	if s.Bet > 0 {
		right = "bet " + bbAmount(s.Bet) + "   " + right
	}
	return spread(left, InfoStyle.Render(right), width)
}

func (m *Model) resultLines(snap game.Snapshot, width int) []string {
	r := snap.Result
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var verdict string
	switch {
	case r.Winner < 0:
		verdict = InfoStyle.Render(fmt.Sprintf("split pot, %s back to each", bbAmount(r.Pot/2)))
	case r.Winner == humanSeat:
		verdict = SuccessStyle.Render(fmt.Sprintf("%s wins %s", m.seatName(r.Winner), bbAmount(r.Pot)))
	default:
		verdict = ErrorStyle.Render(fmt.Sprintf("%s wins %s", m.seatName(r.Winner), bbAmount(r.Pot)))
	}
	if !r.Showdown && r.Winner >= 0 {
		verdict += InfoStyle.Render(fmt.Sprintf("  (%s folded)", m.seatName(1-r.Winner)))
	}

	lines := []string{"", center(verdict)}
	if r.Showdown {
		for seat := 0; seat < 2; seat++ {
			lines = append(lines, center(InfoStyle.Render(
				fmt.Sprintf("%s: %s", m.seatName(seat), r.Hands[seat].Describe()))))
		}
	}
	if u := snap.Uncalled; u != nil {
		lines = append(lines, center(InfoStyle.Render(
			fmt.Sprintf("%s returned to %s", bbAmount(u.Amount), m.seatName(u.Seat)))))
	}

	switch m.mode {
	case modeSessionEnd:
		bust := SuccessStyle.Render(m.config.BotName + " is out of chips.")
		if m.game.Player(humanSeat).Stack == 0 {
			bust = ErrorStyle.Render("You are out of chips.")
		}
		lines = append(lines, "", center(bust),
			center(WarningStyle.Render("n: new session   q: quit")))
	case modeHandEnd:
		lines = append(lines, "", center(InfoStyle.Render("enter: next hand")))
	}
	return lines
}

func (m *Model) renderLogPane() string {
	return m.pane(DimBorder).Render(m.logView.View())
}

func (m *Model) renderActionBar() string {
	border := DimBorder
	if m.mode == modeRaiseEntry || m.humanTurn() {
		border = FocusedBorder
	}

	lines := []string{m.statusLine(), m.keyHints()}
	if m.notice != "" {
		lines = append(lines, ErrorStyle.Render(m.notice))
	}
	return m.pane(border).Render(strings.Join(lines, "\n"))
}

func (m *Model) humanTurn() bool {
	return m.mode == modePlaying && !m.game.Street().IsTerminal() && m.game.ToAct() == humanSeat
}

func (m *Model) statusLine() string {
	switch m.mode {
	case modeRaiseEntry:
		return m.raiseInput.View() + InfoStyle.Render(fmt.Sprintf(
			"  min %s · all-in %s · ↑/↓ adjust · enter confirm · esc cancel",
			bbAmount(m.raiseMin), bbAmount(m.raiseMax)))
	case modeHandEnd:
		return InfoStyle.Render("hand complete")
	case modeSessionEnd:
		return WarningStyle.Render("session over")
	}

	if m.game.ToAct() == botSeat {
		return InfoStyle.Render(m.config.BotName + " is thinking...")
	}
	if ratio, equity, ok := m.game.PotOdds(); ok {
		return fmt.Sprintf("to call %s · pot odds %.1f:1 · need %.0f%% equity",
			bbAmount(m.game.ToCall(humanSeat)), ratio, equity*100)
	}
	return "your action"
}

func (m *Model) keyHints() string {
	switch m.mode {
	case modeRaiseEntry:
		return InfoStyle.Render("digits set the amount in big blinds")
	case modeHandEnd:
		return ActionsStyle.Render("[enter] next hand  [s] stats  [?] help  [q] quit")
	case modeSessionEnd:
		return ActionsStyle.Render("[n] new session  [s] stats  [q] quit")
	}

	if !m.humanTurn() {
		return ActionsStyle.Render("[s] stats  [?] help  [q] quit")
	}

	legal := m.game.Legal()
	var hints []string
	if legal.CanFold {
		hints = append(hints, "[f] fold")
	}
	switch {
	case legal.CanCheck:
		hints = append(hints, "[c] check")
	case legal.CanCall:
		hints = append(hints, "[c] call "+bbAmount(legal.CallCost))
	case legal.CanAllIn:
		hints = append(hints, "[c] call all-in")
	}
	if legal.CanBet {
		hints = append(hints, "[r] bet")
	}
	if legal.CanRaise {
		hints = append(hints, "[r] raise")
	}
	if legal.CanAllIn {
		hints = append(hints, "[a] all-in "+bbAmount(legal.AllInTotal))
	}
	hints = append(hints, "[?] help", "[q] quit")
	return ActionsStyle.Render(strings.Join(hints, "  "))
}

func (m *Model) renderHelp() string {
	rows := []string{
		TitleStyle.Render("controls"),
		"",
		"  f          fold",
		"  c          check or call",
		"  r          bet or raise, amount typed in big blinds",
		"  a          move all-in",
		"  s          statistics overlay",
		"  ?          this help",
		"  q          quit with a session summary",
		"  pgup/pgdn  scroll the action log",
		"",
		InfoStyle.Render("Blinds are 0.5/1 BB. The button posts the small blind and acts first"),
		InfoStyle.Render("preflop; the big blind acts first on every later street."),
		"",
		InfoStyle.Render("Press any key to close."),
	}
	return m.pane(FocusedBorder).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderStats() string {
	st := m.tracker.Stats()
	rows := []string{
		TitleStyle.Render("statistics"),
		"",
		fmt.Sprintf("  session   %5d hands   %+9.1f BB", m.tracker.SessionHands(), m.tracker.SessionProfitBB()),
		fmt.Sprintf("  lifetime  %5d hands   %+9.1f BB   %+.1f BB/100",
			st.TotalHands, st.ProfitBB(), st.WinRateBBPer100()),
		"",
		fmt.Sprintf("  VPIP %5.1f%%   PFR %5.1f%%   3Bet %5.1f%%   AF %.1f",
			st.VPIP(), st.PFR(), st.ThreeBet(), st.AggressionFactor()),
		fmt.Sprintf("  CBet %5.1f%%   FCBet %5.1f%%   WTSD %5.1f%%   W$SD %5.1f%%",
			st.CBet(), st.FoldToCBet(), st.WTSD(), st.WSD()),
		"",
	}
	for _, d := range stats.Definitions {
		rows = append(rows, fmt.Sprintf("  %-5s %-24s %s", d.Abbrev, d.Name, InfoStyle.Render(d.Explanation)))
	}
	rows = append(rows, "", InfoStyle.Render("Press any key to close."))
	return m.pane(FocusedBorder).Render(strings.Join(rows, "\n"))
}

// spread left-aligns one string and right-aligns the other inside width.
// Widths are measured after styling.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
