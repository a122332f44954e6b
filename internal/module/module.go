package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/registry"
)

// Module defines the contract for a self-contained site feature. Each module
// is mounted under /<Name>.
type Module interface {
	// Name returns a unique identifier for the module. It is also its URL prefix.
	Name() string

	// Register is called during startup to publish the module's services
	// in the registry.
	Register(reg *registry.Registry) error

	// Boot is called after all modules have registered. Routes are added to
	// router here and background work is started.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown is called during graceful shutdown to stop background work.
	Shutdown(ctx context.Context) error
}

// BaseModule provides the name and no-op lifecycle methods.
// Modules embed it and override what they need.
type BaseModule struct {
	name string
}

// NewBase returns a BaseModule with the given name.
func NewBase(name string) BaseModule {
	return BaseModule{name: name}
}

func (m *BaseModule) Name() string { return m.name }

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }

func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}

func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }
