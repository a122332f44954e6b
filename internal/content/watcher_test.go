package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nfrund/farays/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := storage.Copy(ctx, storage.NewDirStore(dir), Embedded(), "*.yaml")
	require.NoError(t, err)

	p, err := NewProvider(ctx, NewLoader(NewStore(dir), nil), nil)
	require.NoError(t, err)
	require.Len(t, p.Catalog().Testimonials.Items, 4)

	w := NewWatcher(dir, p, nil)
	w.debounce = 10 * time.Millisecond
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	body := []byte("testimonials:\n  - quote: Worth the drive.\n    author: Lee\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testimonials.yaml"), body, 0o644))

	require.Eventually(t, func() bool {
		return len(p.Catalog().Testimonials.Items) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
