package menu

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/view"
	"github.com/nfrund/farays/web/src/templates/components"
	"github.com/nfrund/farays/web/src/templates/layouts"
	"github.com/nfrund/farays/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// Handler serves the menu page and fragments. The catalog is read on every
// request so reloaded content shows up without a restart.
type Handler struct {
	content *content.Provider
}

func NewHandler(p *content.Provider) *Handler {
	return &Handler{content: p}
}

// Page renders the full menu, or search results when ?q= is set.
func (h *Handler) Page(c echo.Context) error {
	cat := h.content.Catalog()
	page := layouts.Page{
		Title:       "Menu",
		Description: "The full Fa-Rays menu: breakfast, lunch and dinner.",
		Path:        c.Request().URL.Path,
		Site:        cat.Site,
		Flash:       view.GetFlashData(c),
	}
	query := strings.TrimSpace(c.QueryParam("q"))
	return c.Render(http.StatusOK, "", layouts.Base(page, pages.Menu(cat, query)))
}

// Tab renders one tab of the tasting menu.
func (h *Handler) Tab(c echo.Context) error {
	tabs := h.content.Catalog().Tasting.Tabs
	id := c.Param("category")
	for i, tab := range tabs {
		if tab.ID == id {
			sel, _ := carousel.At(len(tabs), i)
			return c.Render(http.StatusOK, "", components.TastingTabs(tabs, sel))
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Unknown menu tab")
}

// Item renders the detail modal for a menu item. Outside htmx the visitor is
// sent back to the menu.
func (h *Handler) Item(c echo.Context) error {
	cat := h.content.Catalog()
	item, ok := cat.Item(c.Param("slug"))
	if !ok {
		if !isHTMX(c) {
			view.SetFlashError(c, "That dish is no longer on the menu.")
			return c.Redirect(http.StatusSeeOther, "/menu")
		}
		return echo.NewHTTPError(http.StatusNotFound, "Unknown menu item")
	}
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/menu#"+item.CategoryID)
	}
	label := item.CategoryID
	if category, ok := cat.Category(item.CategoryID); ok {
		label = category.Label
	}
	return c.Render(http.StatusOK, "", components.ItemModal(item, label))
}

// CloseItem empties the modal slot.
func (h *Handler) CloseItem(c echo.Context) error {
	return c.Render(http.StatusOK, "", g.Group{})
}

// Search renders the results list for the search box.
func (h *Handler) Search(c echo.Context) error {
	cat := h.content.Catalog()
	query := strings.TrimSpace(c.QueryParam("q"))
	return c.Render(http.StatusOK, "", components.SearchResults(query, cat.Search(query), cat.Menu))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
