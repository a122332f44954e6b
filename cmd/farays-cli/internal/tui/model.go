// Package tui is the terminal version of the reservation panel. It drives the
// same step flow as the website, one keystroke at a time.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nfrund/farays/internal/reservation"
)

// DateChoices is how many upcoming open dates the date step lists.
const DateChoices = 14

var contactFields = []reservation.Field{
	reservation.FieldName,
	reservation.FieldEmail,
	reservation.FieldPhone,
}

// Model is the bubbletea model for the reservation wizard.
type Model struct {
	wizard *reservation.Wizard
	dates  []time.Time
	slots  []reservation.TimeSlot
	sizes  []reservation.PartySize

	dateCursor  int
	slotCursor  int
	sizeCursor  int
	partyColumn bool // on step two, the party size list has the cursor

	inputs []textinput.Model
	focus  int

	err      string
	quitting bool
}

// New creates a wizard model over cal.
func New(cal reservation.Calendar) Model {
	inputs := make([]textinput.Model, len(contactFields))
	placeholders := []string{"Full name", "you@example.com", "(555) 555-0100"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 80
		ti.Width = 32
		inputs[i] = ti
	}
	return Model{
		wizard: reservation.NewWizard(cal),
		dates:  cal.Upcoming(DateChoices),
		slots:  reservation.TimeSlots(),
		sizes:  reservation.PartySizes(),
		inputs: inputs,
	}
}

// Confirmation returns the acknowledgment once the wizard is complete.
func (m Model) Confirmation() (reservation.Confirmation, bool) {
	return m.wizard.Confirmation()
}

// Step returns the wizard's current step.
func (m Model) Step() reservation.Step {
	return m.wizard.Step()
}

// Draft returns a copy of the draft entered so far.
func (m Model) Draft() reservation.Draft {
	return m.wizard.Draft()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = ""

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+n":
		return m.advance()
	case "ctrl+b":
		m.back()
		return m, nil
	}

	switch m.wizard.Step() {
	case reservation.StepDate:
		m.updateDate(key)
	case reservation.StepTimeAndParty:
		m.updateTimeAndParty(key)
	case reservation.StepContact:
		return m.updateContact(key)
	case reservation.StepConfirmed:
		switch key.String() {
		case "enter", "q":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) updateDate(key tea.KeyMsg) {
	switch key.String() {
	case "up", "k":
		m.dateCursor = wrap(m.dateCursor-1, len(m.dates))
	case "down", "j":
		m.dateCursor = wrap(m.dateCursor+1, len(m.dates))
	case "enter", " ":
		if len(m.dates) == 0 {
			return
		}
		m.set(reservation.FieldDate, m.dates[m.dateCursor].Format(reservation.DateLayout))
	}
}

func (m *Model) updateTimeAndParty(key tea.KeyMsg) {
	switch key.String() {
	case "tab", "left", "right", "h", "l":
		m.partyColumn = !m.partyColumn
	case "up", "k":
		if m.partyColumn {
			m.sizeCursor = wrap(m.sizeCursor-1, len(m.sizes))
		} else {
			m.slotCursor = wrap(m.slotCursor-1, len(m.slots))
		}
	case "down", "j":
		if m.partyColumn {
			m.sizeCursor = wrap(m.sizeCursor+1, len(m.sizes))
		} else {
			m.slotCursor = wrap(m.slotCursor+1, len(m.slots))
		}
	case "enter", " ":
		if m.partyColumn {
			m.set(reservation.FieldPartySize, m.sizes[m.sizeCursor].String())
		} else {
			m.set(reservation.FieldTime, string(m.slots[m.slotCursor]))
		}
	}
}

func (m Model) updateContact(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab", "down":
		return m, m.focusInput(m.focus + 1)
	case "shift+tab", "up":
		return m, m.focusInput(m.focus - 1)
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m.advance()
		}
		return m, m.focusInput(m.focus + 1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	m.set(contactFields[m.focus], strings.TrimSpace(m.inputs[m.focus].Value()))
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	from := m.wizard.Step()
	if !m.wizard.Advance() {
		m.err = missingMessage(from)
		return m, nil
	}
	if m.wizard.Step() == reservation.StepContact {
		return m, m.focusInput(0)
	}
	m.blurInputs()
	return m, nil
}

func (m *Model) back() {
	if m.wizard.Back() && m.wizard.Step() != reservation.StepContact {
		m.blurInputs()
	}
}

// set applies a field change. Rejected input leaves the draft as it was.
func (m *Model) set(field reservation.Field, value string) {
	if err := m.wizard.Update(field, value); err != nil {
		m.err = inputMessage(err)
	}
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.focus = wrap(i, len(m.inputs))
	m.blurInputs()
	return m.inputs[m.focus].Focus()
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func missingMessage(step reservation.Step) string {
	switch step {
	case reservation.StepDate:
		return "Choose a date first."
	case reservation.StepTimeAndParty:
		return "Choose a time and a party size first."
	case reservation.StepContact:
		return "Name, email and phone are all required."
	}
	return ""
}

func inputMessage(err error) string {
	switch {
	case errors.Is(err, reservation.ErrDateUnavailable):
		return "That date is not available."
	case errors.Is(err, reservation.ErrFinalized):
		return "This reservation is already confirmed."
	}
	return fmt.Sprintf("Input rejected: %v", err)
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}
