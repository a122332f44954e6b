package components

import (
	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

const TastingID = "tasting"

// TastingURL is the fragment route for a tasting tab.
func TastingURL(id string) string {
	return "/menu/tabs/" + id
}

// TastingTabs renders the tab strip and the dishes of the selected tab.
// The arrow buttons step through tabs with wrap-around.
func TastingTabs(tabs []content.TastingTab, c *carousel.Carousel) g.Node {
	if c.Empty() {
		return html.Div(html.ID(TastingID))
	}
	current := tabs[c.Current()]
	strip := make([]g.Node, 0, len(tabs))
	for i, tab := range tabs {
		selected := i == c.Current()
		class := "px-5 py-2 uppercase tracking-wider text-sm text-stone-500 hover:text-stone-900"
		if selected {
			class = "px-5 py-2 uppercase tracking-wider text-sm text-stone-900 border-b-2 border-amber-700"
		}
		strip = append(strip, html.Button(html.Type("button"), html.Class(class),
			html.Role("tab"), g.Attr("aria-selected", boolAttr(selected)),
			tabLink(tab.ID),
			g.Text(tab.Name),
		))
	}
	return html.Div(html.ID(TastingID),
		html.Div(html.Class("flex items-center justify-center gap-2 mb-12"), html.Role("tablist"),
			html.Button(html.Type("button"), g.Attr("aria-label", "Previous tab"), tabLink(tabs[c.PrevIndex()].ID), Icon("chevron-left", "w-5 h-5")),
			g.Group(strip),
			html.Button(html.Type("button"), g.Attr("aria-label", "Next tab"), tabLink(tabs[c.NextIndex()].ID), Icon("chevron-right", "w-5 h-5")),
		),
		html.Div(html.Class("grid gap-8 md:grid-cols-3"), html.Role("tabpanel"),
			g.Map(current.Items, DishCard),
		),
	)
}

func tabLink(id string) g.Node {
	return g.Group{
		hx.Get(TastingURL(id)),
		hx.Target(Target(TastingID)),
		hx.Swap("outerHTML"),
	}
}

// DishCard is a photo card with name, price and description.
func DishCard(d content.Dish) g.Node {
	return html.Article(html.Class("bg-white shadow-sm overflow-hidden"),
		html.Img(html.Src(d.Image), html.Alt(d.Name), html.Loading("lazy"), html.Class("w-full h-56 object-cover")),
		html.Div(html.Class("p-6"),
			html.Div(html.Class("flex items-baseline justify-between gap-4"),
				html.H3(html.Class("font-serif text-xl text-stone-900"), g.Text(d.Name)),
				html.Span(html.Class("text-amber-700 font-semibold"), g.Text(d.PriceLabel())),
			),
			html.P(html.Class("mt-2 text-sm text-stone-600"), g.Text(d.Description)),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
