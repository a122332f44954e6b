package reservation

import (
	"sync"
	"time"
)

// DefaultResetDelay matches the panel's closing transition. The form is emptied
// only after it has faded out.
const DefaultResetDelay = 500 * time.Millisecond

// EventKind identifies a panel lifecycle event.
type EventKind string

const (
	EventOpened      EventKind = "opened"
	EventClosed      EventKind = "closed"
	EventStepChanged EventKind = "step_changed"
	EventConfirmed   EventKind = "confirmed"
	EventReset       EventKind = "reset"
)

// Event describes a change observed on a panel.
type Event struct {
	Kind  EventKind
	Step  Step
	Draft Draft
}

// Observer is notified of panel events. It is called without the panel lock held.
type Observer func(Event)

// View is a consistent snapshot of a panel, taken under its lock.
type View struct {
	Open         bool
	Step         Step
	Draft        Draft
	CanAdvance   bool
	CanRetreat   bool
	Progress     string
	DateCaption  string
	Confirmation Confirmation
	Confirmed    bool
}

// Panel is the reservation modal: a wizard plus its open/close lifecycle.
// It is safe for concurrent use.
type Panel struct {
	mu         sync.Mutex
	wizard     *Wizard
	open       bool
	disposed   bool
	resetDelay time.Duration
	resetTimer *time.Timer

	// resetGen invalidates timers that were stopped too late to be cancelled.
	resetGen uint64
	observer Observer
}

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// WithResetDelay sets how long after closing the draft is emptied.
func WithResetDelay(d time.Duration) PanelOption {
	return func(p *Panel) {
		p.resetDelay = d
	}
}

// WithObserver registers a callback for panel events.
func WithObserver(o Observer) PanelOption {
	return func(p *Panel) {
		p.observer = o
	}
}

// NewPanel creates a closed panel with an empty draft.
func NewPanel(cal Calendar, opts ...PanelOption) *Panel {
	p := &Panel{
		wizard:     NewWizard(cal),
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open shows the panel. A reset still pending from a previous close is applied
// right away, so a reopened panel always starts empty at step one.
func (p *Panel) Open() error {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return ErrPanelDisposed
	}
	var events []Event
	if p.cancelResetLocked() {
		p.wizard.Reset()
		events = append(events, p.eventLocked(EventReset))
	}
	wasOpen := p.open
	p.open = true
	if !wasOpen {
		events = append(events, p.eventLocked(EventOpened))
	}
	p.mu.Unlock()

	p.notify(events...)
	return nil
}

// Close hides the panel and schedules the reset of the draft.
func (p *Panel) Close() error {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return ErrPanelDisposed
	}
	if !p.open {
		p.mu.Unlock()
		return nil
	}
	p.open = false
	p.cancelResetLocked()
	p.resetGen++
	gen := p.resetGen
	p.resetTimer = time.AfterFunc(p.resetDelay, func() { p.fireReset(gen) })
	ev := p.eventLocked(EventClosed)
	p.mu.Unlock()

	p.notify(ev)
	return nil
}

// Dispose tears the panel down. A pending reset is cancelled and will not run.
func (p *Panel) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelResetLocked()
	p.disposed = true
	p.open = false
}

// IsOpen reports whether the panel is currently shown.
func (p *Panel) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// ResetPending reports whether a post-close reset is scheduled.
func (p *Panel) ResetPending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resetTimer != nil
}

// Update applies a field change. See Wizard.Update.
func (p *Panel) Update(field Field, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return ErrPanelDisposed
	}
	return p.wizard.Update(field, value)
}

// Advance moves forward if the current step's guard holds.
func (p *Panel) Advance() bool {
	p.mu.Lock()
	if p.disposed || !p.wizard.Advance() {
		p.mu.Unlock()
		return false
	}
	events := []Event{p.eventLocked(EventStepChanged)}
	if p.wizard.Step() == StepConfirmed {
		events = append(events, p.eventLocked(EventConfirmed))
	}
	p.mu.Unlock()

	p.notify(events...)
	return true
}

// Back moves to the previous step.
func (p *Panel) Back() bool {
	p.mu.Lock()
	if p.disposed || !p.wizard.Back() {
		p.mu.Unlock()
		return false
	}
	ev := p.eventLocked(EventStepChanged)
	p.mu.Unlock()

	p.notify(ev)
	return true
}

// Snapshot returns the panel state for rendering.
func (p *Panel) Snapshot() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	w := p.wizard
	conf, ok := w.Confirmation()
	return View{
		Open:         p.open,
		Step:         w.Step(),
		Draft:        w.Draft(),
		CanAdvance:   w.CanAdvance(),
		CanRetreat:   w.CanRetreat(),
		Progress:     w.Progress(),
		DateCaption:  w.DateCaption(),
		Confirmation: conf,
		Confirmed:    ok,
	}
}

// Calendar returns the calendar the panel's picker is built from.
func (p *Panel) Calendar() Calendar {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wizard.Calendar()
}

func (p *Panel) fireReset(gen uint64) {
	p.mu.Lock()
	if p.disposed || gen != p.resetGen || p.open {
		p.mu.Unlock()
		return
	}
	p.resetTimer = nil
	p.wizard.Reset()
	ev := p.eventLocked(EventReset)
	p.mu.Unlock()

	p.notify(ev)
}

// cancelResetLocked stops a pending reset and reports whether one was pending.
func (p *Panel) cancelResetLocked() bool {
	if p.resetTimer == nil {
		return false
	}
	p.resetTimer.Stop()
	p.resetTimer = nil
	p.resetGen++
	return true
}

func (p *Panel) eventLocked(kind EventKind) Event {
	return Event{Kind: kind, Step: p.wizard.Step(), Draft: p.wizard.Draft()}
}

func (p *Panel) notify(events ...Event) {
	if p.observer == nil {
		return
	}
	for _, ev := range events {
		p.observer(ev)
	}
}
