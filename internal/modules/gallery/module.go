// Package gallery serves the lightbox fragments for the home page gallery.
package gallery

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/module"
	"github.com/nfrund/farays/internal/registry"
	"github.com/nfrund/farays/web/src/templates/components"
	g "maragu.dev/gomponents"
)

type Dependencies struct {
	Content *content.Provider
}

type Module struct {
	module.BaseModule
	content *content.Provider
}

func New(deps Dependencies) *Module {
	return &Module{
		BaseModule: module.NewBase("gallery"),
		content:    deps.Content,
	}
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	if m.content == nil {
		m.content = registry.MustGet(reg, registry.ContentKey)
	}
	group.GET("/lightbox/close", m.Close)
	group.GET("/lightbox/:index", m.Lightbox)
	return nil
}

// Lightbox opens the image at :index. Out-of-range indexes are not found.
func (m *Module) Lightbox(c echo.Context) error {
	images := m.content.Catalog().Gallery.Images
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image index").SetInternal(err)
	}
	sel, ok := carousel.At(len(images), index)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No such image")
	}
	return c.Render(http.StatusOK, "", components.Lightbox(images, sel))
}

// Close empties the modal slot.
func (m *Module) Close(c echo.Context) error {
	return c.Render(http.StatusOK, "", g.Group{})
}
