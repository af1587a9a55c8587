package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/httpapi"
)

// HealthController answers liveness probes. The dataset is embedded, so a
// running process is a healthy process.
type HealthController struct {
	path string
}

func NewHealthController() application.Controller {
	return &HealthController{path: "/health"}
}

func (c *HealthController) Key() string {
	return c.path
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc(c.path, c.health).Methods(http.MethodGet)
}

func (c *HealthController) health(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteOK(w, map[string]string{"status": "ok"})
}
