package storage

import (
	"context"
	"io"
)

// Store defines the interface for a content file backend.
type Store interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	List(ctx context.Context, pattern string) ([]string, error)
}
