package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/view"
	"github.com/nfrund/farays/web/src/templates/layouts"
	"github.com/nfrund/farays/web/src/templates/pages"
)

// PageHandler serves the full pages that do not belong to a module.
type PageHandler struct {
	content *content.Provider
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(p *content.Provider) *PageHandler {
	return &PageHandler{content: p}
}

// HomeGet handles the GET request for the home page.
func (h *PageHandler) HomeGet(c echo.Context) error {
	cat := h.content.Catalog()
	page := layouts.Page{
		Description: cat.Site.Slogan,
		Path:        c.Request().URL.Path,
		Site:        cat.Site,
		Flash:       view.GetFlashData(c),
	}
	return c.Render(http.StatusOK, "", layouts.Base(page, pages.Home(c.Request().Context(), cat)))
}

// Health reports that the server is up and content is loaded.
func (h *PageHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, NewHealthResponse(h.content.Catalog(), time.Now()))
}
