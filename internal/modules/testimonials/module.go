// Package testimonials serves the testimonial slider: plain fragments for each
// slide and a WebSocket stream that auto-advances it.
package testimonials

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/module"
	"github.com/nfrund/farays/internal/registry"
	"github.com/nfrund/farays/internal/rendering"
	"github.com/nfrund/farays/web/src/templates/components"
)

type Dependencies struct {
	Content  *content.Provider
	Renderer rendering.Renderer
	Interval time.Duration
	Logger   *slog.Logger
}

type Module struct {
	module.BaseModule
	deps Dependencies
}

func New(deps Dependencies) *Module {
	if deps.Interval <= 0 {
		deps.Interval = carousel.DefaultInterval
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Module{
		BaseModule: module.NewBase("testimonials"),
		deps:       deps,
	}
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	if m.deps.Content == nil {
		m.deps.Content = registry.MustGet(reg, registry.ContentKey)
	}
	if m.deps.Renderer == nil {
		m.deps.Renderer = rendering.NewUniversalRenderer(m.deps.Logger)
	}
	stream := NewStream(m.deps.Content, m.deps.Renderer, m.deps.Interval, m.deps.Logger.With("module", m.Name()))

	group.GET("/slide/:index", m.Slide)
	group.GET("/ws", stream.Serve)
	return nil
}

// Slide renders the testimonial at :index with fragment-fetching controls.
func (m *Module) Slide(c echo.Context) error {
	items := m.deps.Content.Catalog().Testimonials.Items
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid slide index").SetInternal(err)
	}
	sel, ok := carousel.At(len(items), index)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No such testimonial")
	}
	return c.Render(http.StatusOK, "", components.TestimonialSlide(items, sel, false))
}
