package storage

import (
	"bytes"
	"context"
	"io"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// An in-memory filesystem keeps the test off the disk.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "content/menu.yaml"
	fileContent := "categories: []\n"

	t.Run("Save", func(t *testing.T) {
		n, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))
		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), n)

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.True(t, exists, "file should exist after saving")
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("List", func(t *testing.T) {
		_, err := store.Save(ctx, "content/about.yaml", bytes.NewReader(nil))
		require.NoError(t, err)
		_, err = store.Save(ctx, "content/notes.txt", bytes.NewReader(nil))
		require.NoError(t, err)

		paths, err := store.List(ctx, "content/*.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"content/about.yaml", "content/menu.yaml"}, paths)
	})

	t.Run("Open missing", func(t *testing.T) {
		_, err := store.Open(ctx, "content/missing.yaml")
		assert.Error(t, err)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Open(cctx, filePath)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadOnlyStore(t *testing.T) {
	ctx := context.Background()
	src := NewReadOnlyStore(fstest.MapFS{
		"site.yaml": {Data: []byte("name: FA-RAYS\n")},
		"menu.yaml": {Data: []byte("categories: []\n")},
	})

	r, err := src.Open(ctx, "site.yaml")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	assert.Equal(t, "name: FA-RAYS\n", string(data))

	_, err = src.Save(ctx, "site.yaml", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrReadOnly)

	t.Run("Copy", func(t *testing.T) {
		dst := NewAferoStore(afero.NewMemMapFs())
		copied, err := Copy(ctx, dst, src, "*.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"menu.yaml", "site.yaml"}, copied)

		got, err := afero.ReadFile(dst.Fs(), "menu.yaml")
		require.NoError(t, err)
		assert.Equal(t, "categories: []\n", string(got))
	})
}
