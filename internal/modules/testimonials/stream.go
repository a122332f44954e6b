package testimonials

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/carousel"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/rendering"
	"github.com/nfrund/farays/web/src/templates/components"
)

const writeTimeout = 5 * time.Second

// command is what htmx's ws-send posts: the element's hx-vals plus headers.
type command struct {
	Action string `json:"action"`
	Index  string `json:"index"`
}

// Stream pushes the testimonial slider over a WebSocket. Each connection owns
// its own position and autoplay timer; both end with the connection.
type Stream struct {
	content  *content.Provider
	renderer rendering.Renderer
	interval time.Duration
	logger   *slog.Logger
}

func NewStream(p *content.Provider, r rendering.Renderer, interval time.Duration, logger *slog.Logger) *Stream {
	return &Stream{content: p, renderer: r, interval: interval, logger: logger}
}

// Serve upgrades the request and runs the connection until either side closes it.
func (s *Stream) Serve(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the error response.
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return nil
	}
	defer conn.CloseNow()

	id := uuid.NewString()
	logger := s.logger.With("stream_id", id)
	logger.Debug("Testimonial stream connected")

	err = s.run(c.Request().Context(), conn, logger)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		logger.Debug("Testimonial stream closed")
	default:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Debug("Testimonial stream ended", "error", err)
		}
	}
	return nil
}

func (s *Stream) run(ctx context.Context, conn *websocket.Conn, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	items := s.content.Catalog().Testimonials.Items
	sel := carousel.New(len(items))

	// The tick only signals; the loop below does the rendering and writing.
	ticks := make(chan struct{}, 1)
	autoplay := carousel.NewAutoplay(s.interval, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer autoplay.Stop()

	commands := make(chan command)
	readErr := make(chan error, 1)
	go func() {
		readErr <- readCommands(ctx, conn, commands)
	}()

	if !sel.Empty() {
		autoplay.Start()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case <-ticks:
			sel.Next()
			if err := s.push(ctx, conn, items, sel); err != nil {
				return err
			}
		case cmd := <-commands:
			moved := apply(cmd, sel, autoplay)
			if !moved {
				logger.Debug("Testimonial command", "action", cmd.Action)
				continue
			}
			if err := s.push(ctx, conn, items, sel); err != nil {
				return err
			}
		}
	}
}

// apply carries out a client command and reports whether the slide changed.
func apply(cmd command, sel *carousel.Carousel, autoplay *carousel.Autoplay) bool {
	switch cmd.Action {
	case "next":
		sel.Next()
	case "prev":
		sel.Prev()
	case "go":
		i, err := strconv.Atoi(cmd.Index)
		if err != nil || !sel.Go(i) {
			return false
		}
	case "mouseenter", "pause":
		autoplay.Pause()
		return false
	case "mouseleave", "resume":
		autoplay.Resume()
		return false
	default:
		return false
	}
	if sel.Empty() {
		return false
	}
	// Manual navigation gives the chosen slide a full interval.
	autoplay.Restart()
	return true
}

func (s *Stream) push(ctx context.Context, conn *websocket.Conn, items []content.Testimonial, sel *carousel.Carousel) error {
	frame, err := s.renderer.RenderComponent(ctx, components.TestimonialSlide(items, sel, true))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, frame)
}

func readCommands(ctx context.Context, conn *websocket.Conn, out chan<- command) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		var cmd command
		if err := json.Unmarshal(data, &cmd); err != nil {
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
