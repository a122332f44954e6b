package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ wraps a gomponents node so it can be used wherever a templ.Component
// is expected, e.g. as the body of a templ layout.
func Templ(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// Node wraps a templ component so it can be placed inside a gomponents tree.
// gomponents does not pass a context down, so the component renders with ctx.
func Node(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if component == nil {
			return nil
		}
		return component.Render(ctx, w)
	})
}
