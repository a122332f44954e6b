// Package menu serves the menu page and its fragments: tasting tabs, item
// details and search.
package menu

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/module"
	"github.com/nfrund/farays/internal/registry"
)

type Dependencies struct {
	Content *content.Provider
}

type Module struct {
	module.BaseModule
	content *content.Provider
}

func New(deps Dependencies) *Module {
	return &Module{
		BaseModule: module.NewBase("menu"),
		content:    deps.Content,
	}
}

func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	provider := m.content
	if provider == nil {
		provider = registry.MustGet(reg, registry.ContentKey)
	}
	h := NewHandler(provider)
	g.GET("", h.Page)
	g.GET("/tabs/:category", h.Tab)
	g.GET("/items/close", h.CloseItem)
	g.GET("/items/:slug", h.Item)
	g.GET("/search", h.Search)
	return nil
}
