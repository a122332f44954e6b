package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// Modal is a dialog swapped into the #modal slot. closeURL returns the empty
// fragment that removes it.
func Modal(label, closeURL string, children ...g.Node) g.Node {
	return html.Div(html.Class("fixed inset-0 z-50 flex items-center justify-center bg-black/80 p-4"),
		html.Role("dialog"), g.Attr("aria-modal", "true"), g.Attr("aria-label", label),
		html.Div(html.Class("relative w-full max-w-3xl"),
			html.Button(html.Type("button"), html.Class("absolute -top-10 right-0 text-white"),
				g.Attr("aria-label", "Close"),
				hx.Get(closeURL),
				hx.Target(Target(ModalID)),
				hx.Swap("innerHTML"),
				Icon("x", "w-8 h-8"),
			),
			g.Group(children),
		),
	)
}
