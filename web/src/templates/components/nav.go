package components

import (
	"strings"

	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Nav is the fixed header: logo, page links, online ordering and the button
// that opens the reservation panel.
func Nav(site content.Site, path string) g.Node {
	return html.Header(html.Class("fixed top-0 inset-x-0 z-30 bg-white/90 backdrop-blur border-b border-stone-200"),
		html.Nav(html.Class("container mx-auto flex items-center justify-between px-6 h-20"),
			html.A(html.Href("/"), html.Class("font-serif text-2xl tracking-widest text-stone-900"), g.Text(site.Name)),
			html.Ul(html.Class("hidden md:flex items-center gap-8 text-sm uppercase tracking-wider"),
				g.Map(site.Nav, func(link content.NavLink) g.Node {
					return html.Li(navLink(link, active(link.Path, path)))
				}),
			),
			html.Div(html.Class("flex items-center gap-3"),
				html.A(html.Href(site.OrderURL), html.Target("_blank"), html.Rel("noopener"),
					html.Class("hidden sm:inline-block border border-stone-900 px-4 py-2 text-sm uppercase tracking-wider hover:bg-stone-900 hover:text-white"),
					g.Text("Order Online"),
				),
				ReserveButton("bg-amber-700 text-white px-4 py-2 text-sm uppercase tracking-wider hover:bg-amber-800"),
			),
		),
	)
}

// ReserveButton opens the reservation panel.
func ReserveButton(class string) g.Node {
	return html.Button(html.Type("button"), html.Class(class),
		hx.Get("/reservations/panel"),
		hx.Target(Target(PanelID)),
		hx.Swap("innerHTML"),
		g.Text("Reserve a Table"),
	)
}

func navLink(link content.NavLink, current bool) g.Node {
	class := "text-stone-600 hover:text-stone-900"
	if current {
		class = "text-stone-900 border-b-2 border-amber-700 pb-1"
	}
	return html.A(html.Href(link.Path), html.Class(class),
		g.If(current, g.Attr("aria-current", "page")),
		g.Text(link.Name),
	)
}

// active reports whether the nav path matches the request path. Fragment
// links like "/#contact" are never active.
func active(linkPath, requestPath string) bool {
	if strings.Contains(linkPath, "#") {
		return false
	}
	if linkPath == "/" {
		return requestPath == "/"
	}
	return requestPath == linkPath || strings.HasPrefix(requestPath, linkPath+"/")
}
