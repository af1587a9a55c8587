package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stablewatch/regmap/pkg/application"
)

// StateViews counts detail-panel resolutions per state, split by whether the
// record came from the dataset or was synthesized.
var StateViews = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "regmap_state_views_total",
	Help: "State detail panel resolutions by state and record origin.",
}, []string{"state", "origin"})

type PrometheusController struct {
	path string
}

func NewPrometheusController(path string) application.Controller {
	if path == "" {
		path = "/debug/prometheus"
	}
	return &PrometheusController{path: path}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.Handler()).Methods(http.MethodGet)
}
