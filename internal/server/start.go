package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nfrund/farays/internal/content"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until ctx is done or an interrupt or terminate
// signal arrives, then shuts everything down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := waitForShutdown(ctx)
	defer stop()

	if s.Cfg.ContentDir != "" {
		watcher := content.NewWatcher(s.Cfg.ContentDir, s.Content, s.Logger)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				s.Logger.Error("Content watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("Server starting", "addr", s.Cfg.Addr, "env", s.Cfg.Env)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var startErr error
	select {
	case startErr = <-errCh:
		s.Logger.Error("Server failed", "error", startErr)
	case <-ctx.Done():
		s.Logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(startErr, s.Shutdown(shutdownCtx))
}
