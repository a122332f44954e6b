package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/farays/internal/storage"
	"gopkg.in/yaml.v3"
)

type section struct {
	file   string
	target any
}

func (c *Catalog) sections() []section {
	return []section{
		{"site.yaml", &c.Site},
		{"home.yaml", &c.Home},
		{"menu.yaml", &c.Menu},
		{"tasting.yaml", &c.Tasting},
		{"gallery.yaml", &c.Gallery},
		{"testimonials.yaml", &c.Testimonials},
		{"about.yaml", &c.About},
	}
}

// Files lists the files a catalog is assembled from.
func Files() []string {
	var c Catalog
	secs := c.sections()
	out := make([]string, len(secs))
	for i, s := range secs {
		out[i] = s.file
	}
	return out
}

// Loader reads and validates a Catalog from a store.
type Loader struct {
	store  storage.Store
	logger *slog.Logger
}

// NewLoader creates a loader over store.
func NewLoader(store storage.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{store: store, logger: logger}
}

// Load decodes every section file, indexes the menu and validates the result.
// Unknown YAML keys are rejected so typos do not silently drop content.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	c := &Catalog{}
	for _, s := range c.sections() {
		if err := l.decode(ctx, s.file, s.target); err != nil {
			return nil, err
		}
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	l.logger.Debug("content loaded",
		"categories", len(c.Menu.Categories),
		"items", c.ItemCount(),
		"testimonials", len(c.Testimonials.Items),
		"gallery_images", len(c.Gallery.Images),
	)
	return c, nil
}

func (l *Loader) decode(ctx context.Context, file string, target any) error {
	r, err := l.store.Open(ctx, file)
	if err != nil {
		return fmt.Errorf("content: open %s: %w", file, err)
	}
	defer r.Close()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("content: decode %s: %w", file, err)
	}
	return nil
}
