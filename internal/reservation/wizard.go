package reservation

import (
	"fmt"
	"strings"
)

// Step is the wizard position. Steps are numbered from 1 as shown to guests.
type Step int

const (
	StepDate Step = iota + 1
	StepTimeAndParty
	StepContact
	StepConfirmed
)

// StepCount is the number of steps, the confirmation included.
const StepCount = int(StepConfirmed)

func (s Step) String() string {
	switch s {
	case StepDate:
		return "date"
	case StepTimeAndParty:
		return "time_and_party"
	case StepContact:
		return "contact"
	case StepConfirmed:
		return "confirmed"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Wizard is the reservation step flow. It is not safe for concurrent use;
// Panel adds locking and the open/close lifecycle on top of it.
type Wizard struct {
	cal   Calendar
	step  Step
	draft Draft
}

// NewWizard returns a wizard on the first step with an empty draft.
func NewWizard(cal Calendar) *Wizard {
	return &Wizard{cal: cal, step: StepDate}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() Draft {
	return w.draft.clone()
}

// Calendar returns the calendar used to vet dates.
func (w *Wizard) Calendar() Calendar {
	return w.cal
}

// CanAdvance reports whether the current step's guard holds.
func (w *Wizard) CanAdvance() bool {
	return w.step < StepConfirmed && w.draft.Satisfies(w.step)
}

// CanRetreat reports whether there is a previous step to go back to.
func (w *Wizard) CanRetreat() bool {
	return w.step > StepDate
}

// Advance moves to the next step if the current step's guard holds.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// Back moves to the previous step. Entered data is kept.
func (w *Wizard) Back() bool {
	if !w.CanRetreat() {
		return false
	}
	w.step--
	return true
}

// Update sets a draft field from its wire value. Only fields of the current step
// can be changed, and nothing can change once the reservation is confirmed.
func (w *Wizard) Update(field Field, value string) error {
	if w.step == StepConfirmed {
		return ErrFinalized
	}
	owner, ok := fieldSteps[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	if owner != w.step {
		return fmt.Errorf("%w: %s on step %s", ErrFieldNotEditable, field, w.step)
	}
	next := w.draft.clone()
	if err := next.apply(w.cal, field, value); err != nil {
		return err
	}
	w.draft = next
	return nil
}

// Reset returns the wizard to step one with an empty draft.
func (w *Wizard) Reset() {
	w.step = StepDate
	w.draft = Draft{}
}

// Progress renders the footer counter, e.g. "Step 2 of 4".
func (w *Wizard) Progress() string {
	return fmt.Sprintf("Step %d of %d", int(w.step), StepCount)
}

// DateCaption renders the selected date, or a prompt when none is chosen.
func (w *Wizard) DateCaption() string {
	if w.draft.Date == nil {
		return "Select a date"
	}
	return FormatDate(*w.draft.Date)
}

// Confirmation is the acknowledgment shown once the wizard reaches the last step.
type Confirmation struct {
	Name      string
	DateLabel string
	TimeLabel string
	PartySize PartySize
}

// Lines returns the acknowledgment as displayed, one sentence per line.
func (c Confirmation) Lines() []string {
	return []string{
		fmt.Sprintf("Thank you for your reservation, %s.", c.Name),
		fmt.Sprintf("%s at %s", c.DateLabel, c.TimeLabel),
		fmt.Sprintf("Party of %d", int(c.PartySize)),
	}
}

func (c Confirmation) String() string {
	return strings.Join(c.Lines(), " ")
}

// Confirmation returns the acknowledgment, or false before the last step.
func (w *Wizard) Confirmation() (Confirmation, bool) {
	if w.step != StepConfirmed || w.draft.Date == nil {
		return Confirmation{}, false
	}
	return Confirmation{
		Name:      w.draft.Name,
		DateLabel: FormatDate(*w.draft.Date),
		TimeLabel: w.draft.Time.Label(),
		PartySize: w.draft.PartySize,
	}, true
}
