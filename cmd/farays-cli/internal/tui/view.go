package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfrund/farays/internal/reservation"
)

func (m Model) View() string {
	if m.quitting && m.wizard.Step() != reservation.StepConfirmed {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Reserve a Table"))
	b.WriteString("\n")

	switch m.wizard.Step() {
	case reservation.StepDate:
		b.WriteString(m.dateView())
	case reservation.StepTimeAndParty:
		b.WriteString(m.timeAndPartyView())
	case reservation.StepContact:
		b.WriteString(m.contactView())
	case reservation.StepConfirmed:
		b.WriteString(m.confirmationView())
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
	}
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) dateView() string {
	draft := m.wizard.Draft()
	lines := []string{headingStyle.Render("Select a Date")}
	for i, d := range m.dates {
		selected := draft.Date != nil && draft.Date.Equal(d)
		lines = append(lines, option(i == m.dateCursor, selected, d.Format("Mon Jan 2, 2006")))
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("Closed on %ss.", reservation.ClosedWeekday)))
	return strings.Join(lines, "\n")
}

func (m Model) timeAndPartyView() string {
	draft := m.wizard.Draft()

	slots := []string{heading("Time", !m.partyColumn)}
	for i, s := range m.slots {
		slots = append(slots, option(!m.partyColumn && i == m.slotCursor, draft.Time == s, s.Label()))
	}
	sizes := []string{heading("Party Size", m.partyColumn)}
	for i, p := range m.sizes {
		sizes = append(sizes, option(m.partyColumn && i == m.sizeCursor, draft.PartySize == p, p.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(18).Render(strings.Join(slots, "\n")),
		strings.Join(sizes, "\n"),
	)
}

func (m Model) contactView() string {
	labels := []string{"Name", "Email", "Phone"}
	lines := []string{headingStyle.Render("Your Details")}
	for i, in := range m.inputs {
		lines = append(lines, mutedStyle.Render(labels[i]), in.View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) confirmationView() string {
	conf, ok := m.wizard.Confirmation()
	if !ok {
		return ""
	}
	return boxStyle.Render(strings.Join(conf.Lines(), "\n"))
}

func (m Model) footerView() string {
	status := fmt.Sprintf("%s  ·  %s", m.wizard.DateCaption(), m.wizard.Progress())
	var help string
	switch m.wizard.Step() {
	case reservation.StepDate:
		help = "↑/↓ move · enter select · ctrl+n next · esc quit"
	case reservation.StepTimeAndParty:
		help = "tab switch list · ↑/↓ move · enter select · ctrl+n next · ctrl+b back"
	case reservation.StepContact:
		help = "tab next field · enter on phone to confirm · ctrl+b back"
	case reservation.StepConfirmed:
		help = "enter quit"
	}
	return footerStyle.Render(status + "\n" + mutedStyle.Render(help))
}

func heading(label string, active bool) string {
	if active {
		return cursorStyle.Render(label)
	}
	return headingStyle.Render(label)
}

func option(cursor, selected bool, label string) string {
	prefix := "  "
	if cursor {
		prefix = cursorStyle.Render("> ")
	}
	mark := "( )"
	if selected {
		mark = selectedStyle.Render("(•)")
	}
	return prefix + mark + " " + label
}
