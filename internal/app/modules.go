package app

import (
	"github.com/nfrund/farays/internal/module"
	"github.com/nfrund/farays/internal/modules/gallery"
	"github.com/nfrund/farays/internal/modules/menu"
	"github.com/nfrund/farays/internal/modules/reservations"
	"github.com/nfrund/farays/internal/modules/testimonials"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		reservations.New(reservationsDeps(deps)),
		menu.New(menuDeps(deps)),
		gallery.New(galleryDeps(deps)),
		testimonials.New(testimonialsDeps(deps)),
	}
}
