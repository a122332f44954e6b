package pages

import (
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/web/src/templates/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// About is the history page body: story, timeline, promise and values.
func About(cat *content.Catalog) g.Node {
	a := cat.About
	return g.Group{
		html.Section(html.Class("py-24 bg-white"),
			html.Div(html.Class("container mx-auto px-6 max-w-4xl text-center"),
				g.If(a.Eyebrow != "", html.P(html.Class("text-amber-700 uppercase tracking-[0.3em] text-sm"), g.Text(a.Eyebrow))),
				html.H1(html.Class("mt-4 font-serif text-5xl text-stone-900"),
					g.Map(a.Headline, func(line string) g.Node {
						return html.Span(html.Class("block"), g.Text(line))
					}),
				),
				html.P(html.Class("mt-8 text-lg text-stone-600"), g.Text(a.Intro)),
			),
		),
		html.Section(html.Class("py-16"),
			html.Div(html.Class("container mx-auto px-6 max-w-3xl space-y-6 text-stone-700 leading-relaxed"),
				g.Map(a.Story, func(para string) g.Node { return html.P(g.Text(para)) }),
			),
		),
		html.Section(html.ID("history"), html.Class("py-24 bg-stone-100"),
			html.Div(html.Class("container mx-auto px-6"),
				components.SectionHeading("Our History", "Through the Years"),
				components.Timeline(a.Timeline),
			),
		),
		promise(a.Promise, a.Values),
	}
}

func promise(p content.Promise, values []content.Value) g.Node {
	return html.Section(html.Class("py-24 bg-white"),
		html.Div(html.Class("container mx-auto px-6"),
			components.SectionHeading(p.Eyebrow, p.Heading),
			g.If(p.Body != "", html.P(html.Class("max-w-2xl mx-auto -mt-6 mb-12 text-center text-stone-600"), g.Text(p.Body))),
			html.Div(html.Class("grid gap-8 md:grid-cols-3"),
				g.Map(values, func(v content.Value) g.Node {
					return html.Div(html.Class("text-center p-8 bg-stone-50"),
						components.Icon(v.Icon, "mx-auto w-10 h-10 text-amber-700"),
						html.H3(html.Class("mt-4 font-serif text-xl text-stone-900"), g.Text(v.Title)),
						html.P(html.Class("mt-2 text-stone-600"), g.Text(v.Description)),
					)
				}),
			),
		),
	)
}
