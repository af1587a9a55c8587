package controllers

import (
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/multifs"
)

// StaticFilesController serves the hash-named assets of every registered
// module under /assets/.
type StaticFilesController struct {
	fsInstances []*hashfs.FS
}

func NewStaticFilesController(fsInstances ...*hashfs.FS) application.Controller {
	return &StaticFilesController{fsInstances: fsInstances}
}

func (c *StaticFilesController) Key() string {
	return "/assets"
}

func (c *StaticFilesController) Register(r *mux.Router) {
	fileServer := http.FileServer(multifs.New(c.fsInstances...))
	handler := http.StripPrefix("/assets/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hash-named files never change, so they can be cached forever.
		// Anything requested under its plain name gets revalidated.
		if base, _ := hashfs.ParseName(r.URL.Path); base != r.URL.Path {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}
		if strings.HasSuffix(r.URL.Path, ".css") {
			w.Header().Set("Content-Type", "text/css")
		}
		fileServer.ServeHTTP(w, r)
	}))
	r.PathPrefix("/assets/").Handler(handler).Methods(http.MethodGet)
}
