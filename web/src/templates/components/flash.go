package components

import (
	"github.com/nfrund/farays/internal/view"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Flash renders the one-shot messages left by the previous request.
func Flash(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return html.Div(html.ID("flash"), html.Class("fixed top-24 inset-x-0 z-40 flex flex-col items-center gap-2 px-4"),
		g.Map(data.Success, func(msg string) g.Node {
			return html.Div(html.Role("status"), html.Class("rounded-md bg-green-50 border border-green-200 text-green-800 px-4 py-2 shadow"), g.Text(msg))
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return html.Div(html.Role("alert"), html.Class("rounded-md bg-red-50 border border-red-200 text-red-800 px-4 py-2 shadow"), g.Text(msg))
		}),
	)
}
