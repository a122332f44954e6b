package server

import (
	"github.com/nfrund/farays/internal/handlers"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	pageHandler := handlers.NewPageHandler(s.Content)

	s.E.GET("/", pageHandler.HomeGet)
	s.E.GET("/about", pageHandler.AboutGet)
	s.E.GET("/health", pageHandler.Health)
}
