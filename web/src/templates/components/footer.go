package components

import (
	"fmt"

	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func Footer(site content.Site) g.Node {
	return html.Footer(html.Class("bg-stone-900 text-stone-300"),
		html.Div(html.Class("container mx-auto px-6 py-12 grid gap-8 md:grid-cols-3"),
			html.Div(
				html.P(html.Class("font-serif text-2xl tracking-widest text-white"), g.Text(site.Name)),
				html.P(html.Class("mt-2 text-sm"), g.Text(site.Slogan)),
			),
			html.Address(html.Class("not-italic text-sm space-y-2"),
				html.P(html.Class("flex gap-2"), Icon("map-pin", "w-4 h-4 mt-0.5"),
					html.Span(g.Map(site.Address.Lines(), func(line string) g.Node {
						return html.Span(html.Class("block"), g.Text(line))
					})),
				),
				html.P(html.Class("flex gap-2"), Icon("phone", "w-4 h-4 mt-0.5"), html.A(html.Href(site.PhoneHref()), g.Text(site.Phone))),
				html.P(html.Class("flex gap-2"), Icon("mail", "w-4 h-4 mt-0.5"), html.A(html.Href("mailto:"+site.Email), g.Text(site.Email))),
				html.P(html.Class("flex gap-2"), Icon("clock", "w-4 h-4 mt-0.5"), g.Text(site.Hours)),
			),
			html.Ul(html.Class("text-sm space-y-2"),
				g.Map(site.Socials, func(link content.Link) g.Node {
					return html.Li(html.A(html.Href(link.URL), html.Target("_blank"), html.Rel("noopener"), html.Class("hover:text-white"), g.Text(link.Name)))
				}),
			),
		),
		html.P(html.Class("border-t border-stone-800 py-4 text-center text-xs"),
			g.Text(fmt.Sprintf("%s · Serving families since %d", site.FullName, site.Founded)),
		),
	)
}
