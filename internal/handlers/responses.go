package handlers

import (
	"time"

	"github.com/nfrund/farays/internal/content"
)

// ErrorResponse is the standard format for JSON error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	MenuItems int       `json:"menu_items"`
	CheckedAt time.Time `json:"checked_at"`
}

// NewHealthResponse reports the service as up along with the size of the
// loaded menu, which shows content was loaded.
func NewHealthResponse(cat *content.Catalog, now time.Time) *HealthResponse {
	return &HealthResponse{
		Status:    "ok",
		MenuItems: cat.ItemCount(),
		CheckedAt: now.UTC(),
	}
}
