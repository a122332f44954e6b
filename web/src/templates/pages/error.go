package pages

import (
	"net/http"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Error is the body of the error page.
func Error(code int, message string) g.Node {
	if message == "" {
		message = http.StatusText(code)
	}
	return html.Div(html.Class("min-h-screen flex flex-col items-center justify-center text-center px-6"),
		html.P(html.Class("font-serif text-7xl text-amber-700"), g.Textf("%d", code)),
		html.H1(html.Class("mt-4 text-2xl text-stone-900"), g.Text(message)),
		html.A(html.Href("/"), html.Class("mt-8 border border-stone-900 px-6 py-3 uppercase tracking-wider hover:bg-stone-900 hover:text-white"), g.Text("Back to Home")),
	)
}
