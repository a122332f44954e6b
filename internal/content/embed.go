package content

import (
	"embed"
	"io/fs"

	"github.com/nfrund/farays/internal/storage"
)

//go:embed data/*.yaml
var embedded embed.FS

// Embedded returns a read-only store over the content compiled into the binary.
func Embedded() *storage.AferoStore {
	// Sub only fails for an invalid path, and "data" is valid.
	sub, _ := fs.Sub(embedded, "data")
	return storage.NewReadOnlyStore(sub)
}

// NewStore returns a store rooted at dir, or the embedded content when dir is empty.
func NewStore(dir string) storage.Store {
	if dir == "" {
		return Embedded()
	}
	return storage.NewDirStore(dir)
}
