package content

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Provider hands out the current catalog and swaps in a new one on reload.
// Readers never see a partially loaded catalog.
type Provider struct {
	loader   *Loader
	logger   *slog.Logger
	current  atomic.Pointer[Catalog]
	onReload func(*Catalog)
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithReloadHook is called after each successful reload.
func WithReloadHook(fn func(*Catalog)) ProviderOption {
	return func(p *Provider) {
		p.onReload = fn
	}
}

// NewProvider loads the initial catalog. It fails if that first load fails.
func NewProvider(ctx context.Context, loader *Loader, logger *slog.Logger, opts ...ProviderOption) (*Provider, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{loader: loader, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	c, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	p.current.Store(c)
	return p, nil
}

// Static wraps an already loaded catalog. Reload is a no-op.
func Static(c *Catalog) *Provider {
	p := &Provider{logger: slog.Default()}
	p.current.Store(c)
	return p
}

// Catalog returns the current catalog.
func (p *Provider) Catalog() *Catalog {
	return p.current.Load()
}

// Reload reads the catalog again. On failure the previous catalog stays live.
func (p *Provider) Reload(ctx context.Context) error {
	if p.loader == nil {
		return nil
	}
	c, err := p.loader.Load(ctx)
	if err != nil {
		p.logger.Warn("content reload failed, keeping previous catalog", "error", err)
		return err
	}
	p.current.Store(c)
	p.logger.Info("content reloaded", "items", c.ItemCount())
	if p.onReload != nil {
		p.onReload(c)
	}
	return nil
}
