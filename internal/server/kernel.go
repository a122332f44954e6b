package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/farays/internal/app"
	"github.com/nfrund/farays/internal/config"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/pubsub"
	"github.com/nfrund/farays/internal/rendering"
)

// Bootstrap wires the whole application from cfg: the event bus, the content
// catalog, the server and every module. ctx bounds the modules' background work.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	bus := pubsub.NewWatermillBridge(logger)

	loader := content.NewLoader(content.NewStore(cfg.ContentDir), logger)
	provider, err := content.NewProvider(ctx, loader, logger,
		content.WithReloadHook(reloadPublisher(bus, logger)))
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("server: load content: %w", err)
	}

	renderer := rendering.NewUniversalRenderer(logger)
	s, err := New(Dependencies{
		Config:     cfg,
		Logger:     logger,
		Content:    provider,
		Renderer:   renderer,
		Publisher:  bus,
		Subscriber: bus,
	})
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	s.bus = bus

	modules := app.NewModules(app.Dependencies{
		Config:     cfg,
		Logger:     logger,
		Content:    provider,
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
		Calendar:   s.Calendar,
	})
	if err := s.InitModules(ctx, modules); err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	s.RegisterRoutes()
	return s, nil
}
