package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/view"
	"github.com/nfrund/farays/web/src/templates/layouts"
	"github.com/nfrund/farays/web/src/templates/pages"
)

// AboutGet renders the about page.
func (h *PageHandler) AboutGet(c echo.Context) error {
	cat := h.content.Catalog()

	page := layouts.Page{
		Title:       "About",
		Description: cat.About.Intro,
		Path:        c.Request().URL.Path,
		Site:        cat.Site,
		Flash:       view.GetFlashData(c),
	}
	return c.Render(http.StatusOK, "", layouts.Base(page, pages.About(cat)))
}
