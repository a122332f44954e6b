package reservations

import (
	"context"
	"log/slog"

	"github.com/nfrund/farays/internal/pubsub"
	"github.com/nfrund/farays/internal/reservation"
)

// PanelEvent is the payload of every reservation topic. It carries no
// contact details.
type PanelEvent struct {
	PanelID   string `json:"panel_id"`
	Step      string `json:"step"`
	StepIndex int    `json:"step_index"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	PartySize int    `json:"party_size,omitempty"`
}

var (
	PanelOpened      = pubsub.NewEvent[PanelEvent]("reservations.panel.opened", "A visitor opened the reservation panel")
	PanelClosed      = pubsub.NewEvent[PanelEvent]("reservations.panel.closed", "A visitor closed the reservation panel")
	PanelStepChanged = pubsub.NewEvent[PanelEvent]("reservations.panel.step_changed", "The reservation wizard moved to another step")
	PanelReset       = pubsub.NewEvent[PanelEvent]("reservations.panel.reset", "A closed panel was emptied")
	RequestConfirmed = pubsub.NewEvent[PanelEvent]("reservations.request.confirmed", "A visitor reached the confirmation step")
)

var eventsByKind = map[reservation.EventKind]pubsub.Event[PanelEvent]{
	reservation.EventOpened:      PanelOpened,
	reservation.EventClosed:      PanelClosed,
	reservation.EventStepChanged: PanelStepChanged,
	reservation.EventReset:       PanelReset,
	reservation.EventConfirmed:   RequestConfirmed,
}

func newPanelEvent(panelID string, ev reservation.Event) PanelEvent {
	return PanelEvent{
		PanelID:   panelID,
		Step:      ev.Step.String(),
		StepIndex: int(ev.Step),
		Date:      ev.Draft.Value(reservation.FieldDate),
		Time:      string(ev.Draft.Time),
		PartySize: int(ev.Draft.PartySize),
	}
}

// publishingObserver forwards panel events to the bus. Resets fire from a
// timer, so no request context is available and Background is used.
func publishingObserver(pub pubsub.Publisher, logger *slog.Logger, panelID string) reservation.Observer {
	return func(ev reservation.Event) {
		event, ok := eventsByKind[ev.Kind]
		if !ok {
			return
		}
		if err := pubsub.Publish(context.Background(), pub, event, panelID, newPanelEvent(panelID, ev)); err != nil {
			logger.Warn("Failed to publish reservation event", "topic", event.Name(), "error", err)
		}
	}
}

// Journal logs reservation activity. Nothing is stored.
type Journal struct {
	sub    pubsub.Subscriber
	logger *slog.Logger
}

func NewJournal(sub pubsub.Subscriber, logger *slog.Logger) *Journal {
	return &Journal{sub: sub, logger: logger}
}

// Start subscribes to every reservation topic. Subscriptions end with ctx.
func (j *Journal) Start(ctx context.Context) error {
	for _, event := range []pubsub.Event[PanelEvent]{PanelOpened, PanelClosed, PanelStepChanged, PanelReset, RequestConfirmed} {
		name := event.Name()
		level := slog.LevelDebug
		if event.Name() == RequestConfirmed.Name() {
			level = slog.LevelInfo
		}
		err := pubsub.Subscribe(ctx, j.sub, event, func(ctx context.Context, sessionID string, ev PanelEvent) error {
			j.logger.Log(ctx, level, "Reservation event",
				"topic", name,
				"panel_id", ev.PanelID,
				"step", ev.Step,
				"date", ev.Date,
				"time", ev.Time,
				"party_size", ev.PartySize,
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
