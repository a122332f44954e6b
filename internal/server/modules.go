package server

import (
	"context"
	"fmt"

	"github.com/nfrund/farays/internal/module"
)

// InitModules registers every module, then boots each one on its own route
// group, /<name>. Registration completes for all modules before any boots, so
// a module can rely on services another module registered.
func (s *Server) InitModules(ctx context.Context, modules []module.Module) error {
	for _, m := range modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("server: register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range modules {
		group := s.E.Group("/" + m.Name())
		if err := m.Boot(ctx, group, s.Registry); err != nil {
			return fmt.Errorf("server: boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
		s.Logger.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// Modules returns the booted modules in boot order.
func (s *Server) Modules() []module.Module {
	return s.modules
}
