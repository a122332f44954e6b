package pages

import (
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/web/src/templates/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Menu is the full menu page. A non-empty query renders the page with search
// results in place of the category listing.
func Menu(cat *content.Catalog, query string) g.Node {
	var matches []content.MenuItem
	if query != "" {
		matches = cat.Search(query)
	}
	return html.Section(html.Class("py-16"),
		html.Div(html.Class("container mx-auto px-6 max-w-4xl"),
			components.SectionHeading("Our Menu", "Homemade, From Scratch"),
			html.Nav(html.Class("flex flex-wrap justify-center gap-4 mb-8 text-sm uppercase tracking-wider"),
				g.Attr("aria-label", "Menu categories"),
				g.Map(cat.Menu.Categories, func(c content.Category) g.Node {
					return html.A(html.Href("/menu#"+c.ID), html.Class("text-stone-600 hover:text-amber-700"), g.Text(c.Label))
				}),
			),
			components.MenuSearch(query),
			html.Div(html.ID(components.MenuResultsID), html.Class("space-y-16"),
				components.SearchResults(query, matches, cat.Menu),
			),
		),
	)
}
