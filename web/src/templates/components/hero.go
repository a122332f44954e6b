package components

import (
	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Hero is the full-bleed banner at the top of the home page.
func Hero(site content.Site, img content.Image) g.Node {
	return html.Section(html.Class("relative h-screen min-h-[600px] flex items-center justify-center text-center text-white"),
		html.Img(html.Src(img.Src), html.Alt(img.Alt), html.Class("absolute inset-0 w-full h-full object-cover")),
		html.Div(html.Class("absolute inset-0 bg-black/50")),
		html.Div(html.Class("relative px-6"),
			html.H1(html.Class("font-serif text-5xl md:text-7xl tracking-widest"), g.Text(site.FullName)),
			html.P(html.Class("mt-4 text-lg md:text-xl uppercase tracking-[0.3em]"), g.Text(site.Tagline)),
			html.Div(html.Class("mt-10 flex flex-wrap justify-center gap-4"),
				html.A(html.Href("/menu"), html.Class("border border-white px-6 py-3 uppercase tracking-wider hover:bg-white hover:text-stone-900"), g.Text("View Menu")),
				ReserveButton("bg-amber-700 px-6 py-3 uppercase tracking-wider hover:bg-amber-800"),
			),
		),
	)
}

// SectionHeading is the eyebrow and title pair used at the top of each section.
func SectionHeading(eyebrow, title string) g.Node {
	return html.Div(html.Class("text-center mb-12"),
		g.If(eyebrow != "", html.P(html.Class("text-amber-700 uppercase tracking-[0.3em] text-sm"), g.Text(eyebrow))),
		html.H2(html.Class("mt-2 font-serif text-4xl text-stone-900"), g.Text(title)),
	)
}
