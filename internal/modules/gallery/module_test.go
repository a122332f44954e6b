package gallery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/registry"
	"github.com/nfrund/farays/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cat := &content.Catalog{Gallery: content.Gallery{Images: []content.Image{
		{Src: "/static/img/a.jpg", Alt: "Greens"},
		{Src: "/static/img/b.jpg", Alt: "Chef"},
		{Src: "/static/img/c.jpg", Alt: "Dessert"},
	}}}

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer(nil)
	reg := registry.New(nil)
	registry.Set(reg, registry.ContentKey, content.Static(cat))

	mod := New(Dependencies{})
	require.NoError(t, mod.Boot(context.Background(), e.Group("/gallery"), reg))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLightbox(t *testing.T) {
	e := newTestServer(t)

	rec := get(e, "/gallery/lightbox/0")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `src="/static/img/a.jpg"`)
	assert.Contains(t, body, "1 of 3")
	// Previous from the first image wraps to the last.
	assert.Contains(t, body, `hx-get="/gallery/lightbox/2"`)
	assert.Contains(t, body, `hx-get="/gallery/lightbox/1"`)

	rec = get(e, "/gallery/lightbox/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "3 of 3")
	assert.Contains(t, rec.Body.String(), `hx-get="/gallery/lightbox/0"`)
}

func TestLightboxRejectsBadIndex(t *testing.T) {
	e := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(e, "/gallery/lightbox/3").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/gallery/lightbox/-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(e, "/gallery/lightbox/first").Code)
}

func TestLightboxClose(t *testing.T) {
	e := newTestServer(t)
	rec := get(e, "/gallery/lightbox/close")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
