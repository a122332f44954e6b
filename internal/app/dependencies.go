package app

import (
	"log/slog"

	"github.com/nfrund/farays/internal/config"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/modules/gallery"
	"github.com/nfrund/farays/internal/modules/menu"
	"github.com/nfrund/farays/internal/modules/reservations"
	"github.com/nfrund/farays/internal/modules/testimonials"
	"github.com/nfrund/farays/internal/pubsub"
	"github.com/nfrund/farays/internal/rendering"
	"github.com/nfrund/farays/internal/reservation"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the server to wire up the modules.
type Dependencies struct {
	Config     *config.Config
	Logger     *slog.Logger
	Content    *content.Provider
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Calendar   reservation.Calendar
}

// reservationsDeps creates the dependency struct for the reservations module.
func reservationsDeps(deps Dependencies) reservations.Dependencies {
	d := reservations.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Calendar:   deps.Calendar,
		Logger:     deps.Logger,
	}
	if deps.Config != nil {
		d.ResetDelay = deps.Config.ResetDelay
		d.IdleTTL = deps.Config.IdleTTL
		d.RateLimitPerMinute = deps.Config.RateLimitPerMinute
	}
	return d
}

// menuDeps creates the dependency struct for the menu module.
func menuDeps(deps Dependencies) menu.Dependencies {
	return menu.Dependencies{Content: deps.Content}
}

// galleryDeps creates the dependency struct for the gallery module.
func galleryDeps(deps Dependencies) gallery.Dependencies {
	return gallery.Dependencies{Content: deps.Content}
}

// testimonialsDeps creates the dependency struct for the testimonials module.
func testimonialsDeps(deps Dependencies) testimonials.Dependencies {
	d := testimonials.Dependencies{
		Content:  deps.Content,
		Renderer: deps.Renderer,
		Logger:   deps.Logger,
	}
	if deps.Config != nil {
		d.Interval = deps.Config.TestimonialInterval
	}
	return d
}
