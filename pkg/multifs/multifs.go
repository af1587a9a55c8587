package multifs

import (
	"io/fs"
	"net/http"

	"github.com/benbjohnson/hashfs"
)

// FS serves files from the first hashed filesystem that contains them.
type FS struct {
	instances []*hashfs.FS
}

func New(instances ...*hashfs.FS) http.FileSystem {
	return &FS{instances: instances}
}

func (m *FS) Open(name string) (http.File, error) {
	var lastErr error
	for _, instance := range m.instances {
		f, err := http.FS(instance).Open(name)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fs.ErrNotExist
	}
	return nil, lastErr
}
