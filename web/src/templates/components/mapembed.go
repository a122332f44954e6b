package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// MapEmbed renders the location map as a lazily loaded iframe.
func MapEmbed(src, title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<iframe src="%s" title="%s" class="w-full h-80 border-0" loading="lazy" referrerpolicy="no-referrer-when-downgrade" allowfullscreen></iframe>`,
			templ.EscapeString(src), templ.EscapeString(title))
		return err
	})
}
