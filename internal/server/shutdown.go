package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown returns a context that is cancelled on an interrupt or
// terminate signal, or when parent is done.
func waitForShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Shutdown stops accepting requests, shuts the modules down in reverse boot
// order, then closes the event bus.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			s.Logger.Error("Module shutdown failed", "module", m.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	s.modules = nil
	if s.bus != nil {
		if err := s.bus.Close(); err != nil {
			errs = append(errs, err)
		}
		s.bus = nil
	}
	s.Logger.Info("Server stopped")
	return errors.Join(errs...)
}
