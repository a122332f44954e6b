package components

import (
	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

const (
	MenuResultsID = "menu-results"
	ItemCloseURL  = "/menu/items/close"
)

// ItemURL is the fragment route for an item's detail modal.
func ItemURL(slug string) string {
	return "/menu/items/" + slug
}

// MenuCategory lists one category, split into its sub-headed groups.
func MenuCategory(cat content.Category) g.Node {
	return html.Section(html.ID(cat.ID), html.Class("scroll-mt-28"),
		html.H2(html.Class("font-serif text-3xl text-stone-900 border-b border-stone-300 pb-2"), g.Text(cat.Label)),
		g.Map(cat.Groups(), func(group content.ItemGroup) g.Node {
			return html.Div(html.Class("mt-6"),
				g.If(group.Heading != "", html.H3(html.Class("text-amber-700 uppercase tracking-wider text-sm mb-3"), g.Text(group.Heading))),
				html.Ul(html.Class("divide-y divide-stone-200"), g.Map(group.Items, MenuItemRow)),
			)
		}),
	)
}

// MenuItemRow is one clickable menu line. It opens the item modal.
func MenuItemRow(item content.MenuItem) g.Node {
	return html.Li(
		html.Button(html.Type("button"), html.Class("w-full text-left py-3 hover:bg-stone-50"),
			hx.Get(ItemURL(item.Slug)),
			hx.Target(Target(ModalID)),
			hx.Swap("innerHTML"),
			html.Div(html.Class("flex items-baseline justify-between gap-4"),
				html.Span(html.Class("font-semibold text-stone-900"),
					g.Text(item.Name),
					g.If(item.Featured, html.Span(html.Class("ml-2 text-xs uppercase text-amber-700"), g.Text("Favorite"))),
				),
				html.Span(html.Class("text-stone-700"), g.Text(item.PriceLabel())),
			),
			g.If(item.Description != "", html.P(html.Class("mt-1 text-sm text-stone-600"), g.Text(item.Description))),
		),
	)
}

// ItemModal shows a single menu item.
func ItemModal(item content.MenuItem, category string) g.Node {
	return Modal(item.Name, ItemCloseURL,
		html.Article(html.Class("bg-white p-8"),
			html.P(html.Class("text-amber-700 uppercase tracking-wider text-xs"), g.Text(category)),
			html.H2(html.Class("mt-2 font-serif text-3xl text-stone-900"), g.Text(item.Name)),
			g.If(item.Price != "", html.P(html.Class("mt-2 text-xl text-stone-800"), g.Text(item.PriceLabel()))),
			g.If(item.Description != "", html.P(html.Class("mt-4 text-stone-600"), g.Text(item.Description))),
			g.If(item.Note != "", html.P(html.Class("mt-4 text-sm italic text-stone-500"), g.Text(item.Note))),
		),
	)
}

// MenuSearch is the search box. Results replace the #menu-results slot.
func MenuSearch(query string) g.Node {
	return html.Form(html.Role("search"), html.Class("relative max-w-xl mx-auto mb-12"),
		html.Action("/menu"), html.Method("get"),
		Icon("search", "absolute left-3 top-1/2 -translate-y-1/2 w-5 h-5 text-stone-400"),
		html.Input(html.Type("search"), html.Name("q"), html.Value(query),
			html.Placeholder("Search the menu"),
			g.Attr("aria-label", "Search the menu"),
			html.Class("w-full border border-stone-300 py-3 pl-10 pr-4 focus:outline-none focus:border-amber-700"),
			hx.Get("/menu/search"),
			hx.Trigger("input changed delay:300ms, search"),
			hx.Target(Target(MenuResultsID)),
			hx.Swap("innerHTML"),
		),
	)
}

// SearchResults lists matches for query, or the whole menu when query is empty.
func SearchResults(query string, matches []content.MenuItem, menu content.Menu) g.Node {
	if query == "" {
		return g.Group{
			g.Map(menu.Categories, MenuCategory),
			g.If(menu.Disclaimer != "", html.P(html.Class("text-xs text-stone-500 italic"), g.Text(menu.Disclaimer))),
		}
	}
	if len(matches) == 0 {
		return html.P(html.Class("text-center text-stone-500"), g.Textf("No dishes match %q.", query))
	}
	return html.Div(
		html.P(html.Class("text-sm text-stone-500 mb-4"), g.Textf("%d %s for %q", len(matches), plural(len(matches), "dish", "dishes"), query)),
		html.Ul(html.Class("divide-y divide-stone-200"), g.Map(matches, MenuItemRow)),
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
