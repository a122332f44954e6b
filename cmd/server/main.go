package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/farays/internal/config"
	"github.com/nfrund/farays/internal/logging"
	"github.com/nfrund/farays/internal/server"
)

func main() {
	cfg := config.New()
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx := context.Background()
	s, err := server.Bootstrap(ctx, cfg, logger)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
