package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// ErrReadOnly is returned when saving to a store backed by embedded files.
var ErrReadOnly = errors.New("storage: store is read-only")

// AferoStore implements Store on top of an afero filesystem, so the same code
// serves embedded assets, a directory on disk and in-memory test fixtures.
type AferoStore struct {
	fs       afero.Fs
	readOnly bool
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDirStore roots a store at dir on the local disk.
func NewDirStore(dir string) *AferoStore {
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewReadOnlyStore wraps an io/fs filesystem, typically an embed.FS.
func NewReadOnlyStore(fsys fs.FS) *AferoStore {
	return &AferoStore{fs: afero.FromIOFS{FS: fsys}, readOnly: true}
}

// Fs exposes the underlying filesystem.
func (s *AferoStore) Fs() afero.Fs {
	return s.fs
}

// Open opens a file for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Save writes the content of the reader to the given path, creating parent
// directories as needed.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if s.readOnly {
		return 0, ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// List returns the sorted paths matching a glob pattern.
func (s *AferoStore) List(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := afero.Glob(s.fs, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// Copy saves every file matching pattern in src into dst under the same path.
func Copy(ctx context.Context, dst, src Store, pattern string) ([]string, error) {
	paths, err := src.List(ctx, pattern)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := copyOne(ctx, dst, src, p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func copyOne(ctx context.Context, dst, src Store, path string) error {
	r, err := src.Open(ctx, path)
	if err != nil {
		return err
	}
	defer r.Close()
	_, err = dst.Save(ctx, path, r)
	return err
}
