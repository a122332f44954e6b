package pages

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/nfrund/farays/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func catalog(t *testing.T) *content.Catalog {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := content.NewLoader(content.Embedded(), logger).Load(context.Background())
	require.NoError(t, err)
	return cat
}

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func TestHome(t *testing.T) {
	out := render(t, Home(context.Background(), catalog(t)))

	assert.Contains(t, out, `ws-connect="/testimonials/ws"`)
	assert.Contains(t, out, `id="testimonial-carousel"`)
	assert.Contains(t, out, `hx-get="/gallery/lightbox/0"`)
	assert.Contains(t, out, `hx-get="/menu/tabs/mains"`)
	assert.Contains(t, out, "<iframe src=")
	assert.Contains(t, out, "1 of 4", "testimonial position caption")
}

func TestAbout(t *testing.T) {
	cat := catalog(t)
	out := render(t, About(cat))

	assert.Contains(t, out, "The Beginning")
	for _, m := range cat.About.Timeline {
		assert.Contains(t, out, m.Year)
	}
}

func TestMenu(t *testing.T) {
	cat := catalog(t)

	out := render(t, Menu(cat, ""))
	for _, c := range cat.Menu.Categories {
		assert.Contains(t, out, `id="`+c.ID+`"`)
	}
	assert.Contains(t, out, `hx-get="/menu/items/chicken-waffle"`)

	out = render(t, Menu(cat, "zzz-no-such-dish"))
	assert.Contains(t, out, "No dishes match")
}

func TestError(t *testing.T) {
	out := render(t, Error(404, ""))
	assert.Contains(t, out, "404")
	assert.Contains(t, out, "Not Found")
}
