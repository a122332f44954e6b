package pages

import (
	"context"

	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/view"
	"github.com/nfrund/farays/web/src/templates/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Home is the landing page body.
func Home(ctx context.Context, cat *content.Catalog) g.Node {
	return g.Group{
		components.Hero(cat.Site, cat.Home.Hero),
		philosophy(cat.Home.Philosophy),
		featured(cat.Home.Featured),
		html.Section(html.ID("tasting-menu"), html.Class("py-24 bg-stone-100"),
			html.Div(html.Class("container mx-auto px-6"),
				components.SectionHeading("Tasting Menu", "From Our Kitchen"),
				components.TastingTabs(cat.Tasting.Tabs, carousel.New(len(cat.Tasting.Tabs))),
			),
		),
		components.GalleryGrid(cat.Gallery.Images),
		components.Testimonials(cat.Testimonials.Items, carousel.New(len(cat.Testimonials.Items))),
		mosaic(cat.Home.Mosaic),
		contact(ctx, cat.Site),
	}
}

func philosophy(p content.Philosophy) g.Node {
	return html.Section(html.ID("philosophy"), html.Class("py-24 bg-white"),
		html.Div(html.Class("container mx-auto px-6 grid gap-12 md:grid-cols-2 items-center"),
			html.Div(
				g.If(p.Eyebrow != "", html.P(html.Class("text-amber-700 uppercase tracking-[0.3em] text-sm"), g.Text(p.Eyebrow))),
				html.H2(html.Class("mt-2 font-serif text-4xl text-stone-900"),
					g.Text(p.Heading),
					g.Map(p.Emphasis, func(line string) g.Node {
						return html.Span(html.Class("block text-amber-700"), g.Text(line))
					}),
				),
				g.Map(p.Paragraphs, func(para string) g.Node {
					return html.P(html.Class("mt-6 text-stone-600 leading-relaxed"), g.Text(para))
				}),
			),
			html.Div(html.Class("grid grid-cols-2 gap-4"),
				g.Map(p.Images, func(img content.Image) g.Node {
					return html.Img(html.Src(img.Src), html.Alt(img.Alt), html.Loading("lazy"), html.Class("w-full h-80 object-cover"))
				}),
			),
		),
	)
}

func featured(f content.Featured) g.Node {
	return html.Section(html.ID("featured"), html.Class("py-24"),
		html.Div(html.Class("container mx-auto px-6"),
			components.SectionHeading(f.Eyebrow, "Featured Dishes"),
			g.If(f.Intro != "", html.P(html.Class("max-w-2xl mx-auto -mt-6 mb-12 text-center text-stone-600"), g.Text(f.Intro))),
			html.Div(html.Class("grid gap-8 md:grid-cols-2 lg:grid-cols-3"), g.Map(f.Items, components.DishCard)),
			html.Div(html.Class("mt-12 text-center"),
				html.A(html.Href("/menu"), html.Class("inline-block border border-stone-900 px-6 py-3 uppercase tracking-wider hover:bg-stone-900 hover:text-white"), g.Text("Full Menu")),
			),
		),
	)
}

func mosaic(images []content.Image) g.Node {
	if len(images) == 0 {
		return nil
	}
	return html.Section(html.Class("grid grid-cols-2 md:grid-cols-4"),
		g.Map(images, func(img content.Image) g.Node {
			return html.Img(html.Src(img.Src), html.Alt(img.Alt), html.Loading("lazy"), html.Class("w-full h-64 object-cover"))
		}),
	)
}

func contact(ctx context.Context, site content.Site) g.Node {
	return html.Section(html.ID("contact"), html.Class("py-24 bg-white"),
		html.Div(html.Class("container mx-auto px-6 grid gap-12 md:grid-cols-2"),
			html.Div(
				components.SectionHeading("Visit Us", "Find Your Table"),
				html.Address(html.Class("not-italic space-y-3 text-stone-700"),
					g.Map(site.Address.Lines(), func(line string) g.Node { return html.P(g.Text(line)) }),
					html.P(html.A(html.Href(site.PhoneHref()), html.Class("hover:text-amber-700"), g.Text(site.Phone))),
					html.P(html.A(html.Href("mailto:"+site.Email), html.Class("hover:text-amber-700"), g.Text(site.Email))),
					html.P(g.Text(site.Hours)),
				),
				html.Div(html.Class("mt-8 flex flex-wrap gap-4"),
					components.ReserveButton("bg-amber-700 text-white px-6 py-3 uppercase tracking-wider hover:bg-amber-800"),
					html.A(html.Href(site.OrderURL), html.Target("_blank"), html.Rel("noopener"),
						html.Class("border border-stone-900 px-6 py-3 uppercase tracking-wider hover:bg-stone-900 hover:text-white"),
						g.Text("Order Online"),
					),
				),
			),
			view.Node(ctx, components.MapEmbed(site.MapEmbedURL, "Map to "+site.FullName)),
		),
	)
}
