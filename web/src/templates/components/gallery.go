package components

import (
	"fmt"

	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"
)

// LightboxURL is the fragment route for the image at index.
func LightboxURL(index int) string {
	return fmt.Sprintf("/gallery/lightbox/%d", index)
}

// LightboxCloseURL empties the modal slot.
const LightboxCloseURL = "/gallery/lightbox/close"

// GalleryGrid shows the thumbnails. Each opens the lightbox on its image.
func GalleryGrid(images []content.Image) g.Node {
	thumbs := make([]g.Node, 0, len(images))
	for i, img := range images {
		thumbs = append(thumbs, html.Button(html.Type("button"),
			html.Class("group relative overflow-hidden aspect-square"),
			g.Attr("aria-label", "View "+img.Alt),
			hx.Get(LightboxURL(i)),
			hx.Target(Target(ModalID)),
			hx.Swap("innerHTML"),
			html.Img(html.Src(img.Src), html.Alt(img.Alt), html.Loading("lazy"),
				html.Class("w-full h-full object-cover transition-transform duration-500 group-hover:scale-110")),
		))
	}
	return html.Section(html.ID("gallery"), html.Class("py-24 bg-white"),
		html.Div(html.Class("container mx-auto px-6"),
			SectionHeading("Gallery", "A Glimpse Inside"),
			html.Div(html.Class("grid grid-cols-2 md:grid-cols-3 gap-4"), g.Group(thumbs)),
		),
	)
}

// Lightbox shows the current image full size with wrap-around navigation and
// an "i of n" caption.
func Lightbox(images []content.Image, c *carousel.Carousel) g.Node {
	if c.Empty() {
		return nil
	}
	img := images[c.Current()]
	return Modal("Image gallery", LightboxCloseURL,
		html.Figure(html.Class("relative"),
			html.Img(html.Src(img.Src), html.Alt(img.Alt), html.Class("w-full max-h-[80vh] object-contain")),
			lightboxArrow("Previous image", "chevron-left", "left-2", c.PrevIndex()),
			lightboxArrow("Next image", "chevron-right", "right-2", c.NextIndex()),
			html.FigCaption(html.Class("mt-4 flex justify-between text-sm text-white/80"),
				html.Span(g.Text(img.Alt)),
				html.Span(html.ID("lightbox-position"), g.Text(c.Position())),
			),
		),
	)
}

func lightboxArrow(label, icon, side string, index int) g.Node {
	return html.Button(html.Type("button"),
		html.Class("absolute top-1/2 -translate-y-1/2 "+side+" rounded-full bg-black/50 p-2 text-white hover:bg-black/70"),
		g.Attr("aria-label", label),
		hx.Get(LightboxURL(index)),
		hx.Target(Target(ModalID)),
		hx.Swap("innerHTML"),
		Icon(icon, "w-6 h-6"),
	)
}
