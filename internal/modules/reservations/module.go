// Package reservations serves the reservation panel: a four-step wizard kept
// per visitor on the server and rendered as htmx fragments.
package reservations

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/middleware"
	"github.com/nfrund/farays/internal/module"
	"github.com/nfrund/farays/internal/pubsub"
	"github.com/nfrund/farays/internal/registry"
	"github.com/nfrund/farays/internal/reservation"
)

// KeyPanelStore is the type-safe key for the visitors' panels.
var KeyPanelStore = registry.Key[*Store]("reservations.Store")

type Dependencies struct {
	Publisher          pubsub.Publisher
	Subscriber         pubsub.Subscriber
	Calendar           reservation.Calendar
	Logger             *slog.Logger
	ResetDelay         time.Duration
	IdleTTL            time.Duration
	RateLimitPerMinute int
}

type Module struct {
	module.BaseModule
	deps   Dependencies
	store  *Store
	cancel context.CancelFunc
}

func New(deps Dependencies) *Module {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.ResetDelay <= 0 {
		deps.ResetDelay = reservation.DefaultResetDelay
	}
	return &Module{
		BaseModule: module.NewBase("reservations"),
		deps:       deps,
	}
}

// Register creates the panel store and shares it through the registry.
func (m *Module) Register(reg *registry.Registry) error {
	logger := m.deps.Logger.With("module", m.Name())
	m.store = NewStore(m.newPanel, m.deps.IdleTTL, logger)
	registry.Set(reg, KeyPanelStore, m.store)
	return nil
}

// Boot starts the idle sweeper and the journal, then mounts the routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	ctx, m.cancel = context.WithCancel(ctx)
	logger := m.deps.Logger.With("module", m.Name())

	if m.deps.Subscriber != nil {
		if err := NewJournal(m.deps.Subscriber, logger).Start(ctx); err != nil {
			return err
		}
	}
	go m.store.Run(ctx, sweepInterval(m.store.ttl))

	h := NewHandler(m.store, m.deps.Calendar)
	limiter := middleware.RateLimiter(m.deps.RateLimitPerMinute)

	g.GET("/panel", h.Panel)
	g.GET("/calendar", h.Calendar)
	g.POST("/close", h.Close, limiter)
	g.POST("/field", h.Field, limiter)
	g.POST("/next", h.Next, limiter)
	g.POST("/back", h.Back, limiter)
	return nil
}

// Shutdown stops the sweeper and disposes every panel, cancelling pending resets.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	if m.store != nil {
		m.store.Close()
	}
	m.deps.Logger.Info("Reservations module stopped")
	return nil
}

func (m *Module) newPanel(id string) *reservation.Panel {
	opts := []reservation.PanelOption{reservation.WithResetDelay(m.deps.ResetDelay)}
	if m.deps.Publisher != nil {
		opts = append(opts, reservation.WithObserver(publishingObserver(m.deps.Publisher, m.deps.Logger, id)))
	}
	return reservation.NewPanel(m.deps.Calendar, opts...)
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return interval
}
