package components

import (
	"fmt"
	"strconv"

	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

const (
	TestimonialCarouselID = "testimonial-carousel"
	TestimonialStreamURL  = "/testimonials/ws"
)

// TestimonialSlideURL is the fragment route for the slide at index.
func TestimonialSlideURL(index int) string {
	return fmt.Sprintf("/testimonials/slide/%d", index)
}

// Testimonials is the home page section. The stream connection drives autoplay;
// hovering the slider pauses it.
func Testimonials(items []content.Testimonial, c *carousel.Carousel) g.Node {
	return html.Section(html.ID("testimonials"), html.Class("py-24 bg-stone-100"),
		html.Div(html.Class("container mx-auto px-6 max-w-3xl"),
			SectionHeading("Testimonials", "What Our Guests Say"),
			html.Div(hx.Ext("ws"), g.Attr("ws-connect", TestimonialStreamURL),
				html.Div(g.Attr("ws-send"),
					hx.Trigger("mouseenter, mouseleave"),
					hx.Vals(`js:{"action": event.type}`),
					TestimonialSlide(items, c, true),
				),
			),
		),
	)
}

// TestimonialSlide renders the current testimonial with its controls. When live,
// the controls send commands over the stream; otherwise they fetch fragments.
func TestimonialSlide(items []content.Testimonial, c *carousel.Carousel, live bool) g.Node {
	if c.Empty() {
		return html.Div(html.ID(TestimonialCarouselID))
	}
	t := items[c.Current()]
	dots := make([]g.Node, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		class := "w-2.5 h-2.5 rounded-full bg-stone-300"
		if i == c.Current() {
			class = "w-2.5 h-2.5 rounded-full bg-amber-700"
		}
		dots = append(dots, html.Button(html.Type("button"), html.Class(class),
			g.Attr("aria-label", fmt.Sprintf("Show testimonial %d", i+1)),
			slideControl(live, "go", i),
		))
	}
	return html.Div(html.ID(TestimonialCarouselID), html.Class("relative text-center"),
		g.Attr("aria-live", "polite"),
		Icon("quote", "mx-auto w-10 h-10 text-amber-700/40"),
		html.BlockQuote(html.Class("mt-6 font-serif text-2xl italic text-stone-800"), g.Text(t.Quote)),
		html.P(html.Class("mt-6 font-semibold text-stone-900"), g.Text(t.Author)),
		g.If(t.Title != "", html.P(html.Class("text-sm text-stone-500"), g.Text(t.Title))),
		html.Div(html.Class("mt-8 flex items-center justify-center gap-6"),
			html.Button(html.Type("button"), g.Attr("aria-label", "Previous testimonial"), slideControl(live, "prev", c.PrevIndex()), Icon("chevron-left", "w-6 h-6")),
			html.Div(html.Class("flex gap-2"), g.Group(dots)),
			html.Button(html.Type("button"), g.Attr("aria-label", "Next testimonial"), slideControl(live, "next", c.NextIndex()), Icon("chevron-right", "w-6 h-6")),
		),
		html.Span(html.Class("sr-only"), g.Text(c.Position())),
	)
}

func slideControl(live bool, action string, index int) g.Node {
	if live {
		return g.Group{
			g.Attr("ws-send"),
			hx.Vals(fmt.Sprintf(`{"action":%q,"index":%q}`, action, strconv.Itoa(index))),
		}
	}
	return g.Group{
		hx.Get(TestimonialSlideURL(index)),
		hx.Target(Target(TestimonialCarouselID)),
		hx.Swap("outerHTML"),
	}
}
