package registry

import (
	"log/slog"

	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/pubsub"
	"github.com/nfrund/farays/internal/reservation"
)

// Shared service keys. Modules look these up in Register or Boot.
var (
	LoggerKey     = Key[*slog.Logger]("core.logger")
	ContentKey    = Key[*content.Provider]("core.content")
	PublisherKey  = Key[pubsub.Publisher]("core.publisher")
	SubscriberKey = Key[pubsub.Subscriber]("core.subscriber")
	CalendarKey   = Key[reservation.Calendar]("reservations.calendar")
)
