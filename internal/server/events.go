package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/pubsub"
)

// CatalogReloaded is the payload published after CONTENT_DIR changes were loaded.
type CatalogReloaded struct {
	MenuItems  int       `json:"menu_items"`
	Categories int       `json:"categories"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

var CatalogReloadedEvent = pubsub.NewEvent[CatalogReloaded](
	"content.catalog.reloaded",
	"Published after the content directory was edited and the catalog reloaded",
)

// reloadPublisher returns a content reload hook that announces the new catalog.
func reloadPublisher(pub pubsub.Publisher, logger *slog.Logger) func(*content.Catalog) {
	return func(cat *content.Catalog) {
		payload := CatalogReloaded{
			MenuItems:  cat.ItemCount(),
			Categories: len(cat.Menu.Categories),
			ReloadedAt: time.Now().UTC(),
		}
		if err := pubsub.Publish(context.Background(), pub, CatalogReloadedEvent, "", payload); err != nil {
			logger.Warn("Failed to publish catalog reload", "error", err)
		}
	}
}
