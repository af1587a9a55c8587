// Package assets embeds the static files served under /assets/ and exposes
// them through a content-hashed filesystem so far-future cache headers are
// safe.
package assets

import (
	"embed"
	"io/fs"

	"github.com/benbjohnson/hashfs"
)

//go:embed static
var embedded embed.FS

var FS = hashfs.NewFS(sub(embedded, "static"))

func sub(f embed.FS, dir string) fs.FS {
	out, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return out
}

// Path returns the hashed URL path for a static asset, e.g.
// Path("css/main.css") -> "/assets/css/main-<hash>.css".
func Path(name string) string {
	return "/assets/" + FS.HashName(name)
}
