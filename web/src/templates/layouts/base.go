package layouts

import (
	"github.com/a-h/templ"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/view"
	"github.com/nfrund/farays/web/src/templates/components"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

const (
	htmxSrc   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
	tailwind  = "https://cdn.tailwindcss.com"
)

// Page carries what the layout needs besides the page body.
type Page struct {
	Title       string
	Description string
	Path        string
	Site        content.Site
	Flash       view.FlashData
}

// Base wraps a page body in the site chrome: navigation, flash messages,
// footer and the empty slots the modal and reservation panel swap into.
func Base(p Page, body ...g.Node) templ.Component {
	return view.Templ(c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(p.Title, p.Site.FullName),
		Description: p.Description,
		Language:    "en",
		Head:        head(),
		Body: []g.Node{
			html.Class("bg-stone-50 text-stone-800 antialiased"),
			components.Nav(p.Site, p.Path),
			components.Flash(p.Flash),
			html.Main(html.Class("pt-20"), g.Group(body)),
			components.Footer(p.Site),
			html.Div(html.ID(components.ModalID)),
			html.Div(html.ID(components.PanelID)),
		},
	}))
}

// Minimal is a bare document for pages rendered without site content, such as
// error pages.
func Minimal(title string, body ...g.Node) templ.Component {
	return view.Templ(c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     head(),
		Body: []g.Node{
			html.Class("bg-stone-50 text-stone-800 antialiased"),
			html.Main(g.Group(body)),
		},
	}))
}

func head() []g.Node {
	return []g.Node{
		html.Script(html.Src(tailwind)),
		html.Script(html.Src(htmxSrc)),
		html.Script(html.Src(htmxWSSrc)),
		html.Link(html.Rel("stylesheet"), html.Href("/static/css/site.css")),
	}
}
