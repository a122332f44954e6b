package testimonials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/registry"
	"github.com/nfrund/farays/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *content.Catalog {
	return &content.Catalog{Testimonials: content.Testimonials{Items: []content.Testimonial{
		{Quote: "The best pasta in town.", Author: "Maria G."},
		{Quote: "Warm service, every time.", Author: "James T.", Title: "Regular since 2010"},
		{Quote: "A proper family table.", Author: "Priya S."},
	}}}
}

func newTestServer(t *testing.T, interval time.Duration) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer(nil)
	reg := registry.New(nil)
	registry.Set(reg, registry.ContentKey, content.Static(testCatalog()))

	mod := New(Dependencies{Interval: interval})
	require.NoError(t, mod.Boot(context.Background(), e.Group("/testimonials"), reg))
	return e
}

func dial(t *testing.T, e *echo.Echo) (context.Context, *websocket.Conn) {
	t.Helper()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	conn, _, err := websocket.Dial(ctx, "ws://"+strings.TrimPrefix(srv.URL, "http://")+"/testimonials/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return ctx, conn
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) string {
	t.Helper()
	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)
	return string(data)
}

func TestSlide(t *testing.T) {
	e := newTestServer(t, time.Hour)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/testimonials/slide/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Warm service, every time.")
	assert.Contains(t, body, "Regular since 2010")
	assert.Contains(t, body, "2 of 3")
	assert.Contains(t, body, `hx-get="/testimonials/slide/0"`)
	assert.Contains(t, body, `hx-get="/testimonials/slide/2"`)
	assert.NotContains(t, body, "ws-send")
}

func TestSlideRejectsBadIndex(t *testing.T) {
	e := newTestServer(t, time.Hour)
	for path, want := range map[string]int{
		"/testimonials/slide/3":   http.StatusNotFound,
		"/testimonials/slide/-1":  http.StatusNotFound,
		"/testimonials/slide/two": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}

func TestStreamCommands(t *testing.T) {
	e := newTestServer(t, time.Hour)
	ctx, conn := dial(t, e)

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"action": "next", "index": "1"}))
	frame := readFrame(t, ctx, conn)
	assert.Contains(t, frame, `id="testimonial-carousel"`)
	assert.Contains(t, frame, "2 of 3")
	assert.Contains(t, frame, "ws-send")

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"action": "prev"}))
	assert.Contains(t, readFrame(t, ctx, conn), "1 of 3")

	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"action": "go", "index": "2"}))
	assert.Contains(t, readFrame(t, ctx, conn), "A proper family table.")

	// Out of range and hover commands produce no frame; the next frame
	// proves the position did not move.
	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"action": "go", "index": "9"}))
	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"action": "mouseenter"}))
	require.NoError(t, wsjson.Write(ctx, conn, map[string]string{"action": "next"}))
	assert.Contains(t, readFrame(t, ctx, conn), "1 of 3")
}

func TestStreamAutoplay(t *testing.T) {
	e := newTestServer(t, 20*time.Millisecond)
	ctx, conn := dial(t, e)

	assert.Contains(t, readFrame(t, ctx, conn), "2 of 3")
	assert.Contains(t, readFrame(t, ctx, conn), "3 of 3")
	assert.Contains(t, readFrame(t, ctx, conn), "1 of 3")
}

func TestApplyHover(t *testing.T) {
	sel := carousel.New(3)
	autoplay := carousel.NewAutoplay(time.Hour, func() {})
	autoplay.Start()
	defer autoplay.Stop()

	assert.False(t, apply(command{Action: "mouseenter"}, sel, autoplay))
	assert.True(t, autoplay.Paused())

	// Navigating while hovered moves the slide but keeps autoplay paused.
	assert.True(t, apply(command{Action: "next"}, sel, autoplay))
	assert.Equal(t, 1, sel.Current())
	assert.True(t, autoplay.Paused())

	assert.False(t, apply(command{Action: "mouseleave"}, sel, autoplay))
	assert.False(t, autoplay.Paused())

	assert.False(t, apply(command{Action: "go", Index: "x"}, sel, autoplay))
	assert.False(t, apply(command{Action: "shuffle"}, sel, autoplay))
	assert.Equal(t, 1, sel.Current())
}

func TestApplyEmpty(t *testing.T) {
	sel := carousel.New(0)
	autoplay := carousel.NewAutoplay(time.Hour, func() {})
	defer autoplay.Stop()
	assert.False(t, apply(command{Action: "next"}, sel, autoplay))
}
