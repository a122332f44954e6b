package components

import (
	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Timeline lays the history milestones out alternately left and right of a
// center line.
func Timeline(milestones []content.Milestone) g.Node {
	items := make([]g.Node, 0, len(milestones))
	for i, m := range milestones {
		items = append(items, milestone(m, i%2 == 1))
	}
	return html.Ol(html.Class("relative space-y-16 before:absolute before:inset-y-0 before:left-1/2 before:w-px before:bg-stone-300"),
		g.Group(items),
	)
}

func milestone(m content.Milestone, flipped bool) g.Node {
	row := "md:flex-row"
	if flipped {
		row = "md:flex-row-reverse"
	}
	return html.Li(html.Class("relative flex flex-col gap-8 items-center "+row),
		html.Div(html.Class("md:w-1/2 md:px-12"),
			html.Span(html.Class("text-amber-700 font-serif text-3xl"), g.Text(m.Year)),
			html.H3(html.Class("mt-2 text-xl font-semibold text-stone-900"), g.Text(m.Title)),
			html.P(html.Class("mt-2 text-stone-600"), g.Text(m.Description)),
		),
		html.Div(html.Class("md:w-1/2 md:px-12"),
			html.Img(html.Src(m.Image), html.Alt(m.Title), html.Loading("lazy"), html.Class("w-full h-64 object-cover shadow-lg")),
		),
	)
}
