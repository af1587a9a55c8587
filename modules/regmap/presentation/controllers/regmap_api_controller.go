package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/geo"
	"github.com/stablewatch/regmap/modules/regmap/services"
	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/composables"
	"github.com/stablewatch/regmap/pkg/httpapi"
)

// RegmapAPIController exposes the resolved dataset as JSON under /api/v1.
type RegmapAPIController struct {
	service  *services.RegulationService
	tiles    *geo.TileSet
	basePath string
}

func NewRegmapAPIController(app application.Application) application.Controller {
	return &RegmapAPIController{
		service:  app.Service(services.RegulationService{}).(*services.RegulationService),
		tiles:    app.Service(geo.TileSet{}).(*geo.TileSet),
		basePath: "/api/v1/regmap",
	}
}

func (c *RegmapAPIController) Key() string {
	return c.basePath
}

func (c *RegmapAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/states", c.states).Methods(http.MethodGet)
	router.HandleFunc("/states/{abbr}", c.state).Methods(http.MethodGet)
	router.HandleFunc("/federal", c.federal).Methods(http.MethodGet)
}

type timelineEntryResponse struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

type stateResponse struct {
	Abbr               string                  `json:"abbr"`
	Name               string                  `json:"name"`
	Status             string                  `json:"status"`
	StatusLabel        string                  `json:"statusLabel"`
	Summary            string                  `json:"summary"`
	KeyLaws            []string                `json:"keyLaws"`
	RecentDevelopments string                  `json:"recentDevelopments,omitempty"`
	Sources            []string                `json:"sources"`
	LastUpdated        string                  `json:"lastUpdated"`
	Timeline           []timelineEntryResponse `json:"timeline,omitempty"`
	RegulatoryBody     string                  `json:"regulatoryBody,omitempty"`
	Synthesized        bool                    `json:"synthesized"`
}

type statesResponse struct {
	States      []stateResponse `json:"states"`
	LastUpdated string          `json:"lastUpdated"`
}

type federalContextResponse struct {
	Headline    string   `json:"headline"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}

type federalBillResponse struct {
	Name    string   `json:"name"`
	Chamber string   `json:"chamber"`
	Status  string   `json:"status"`
	Summary string   `json:"summary"`
	Sources []string `json:"sources"`
}

type stablecoinResponse struct {
	State    string `json:"state"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Status   string `json:"status"`
	Detail   string `json:"detail"`
	Launched string `json:"launched,omitempty"`
}

type federalResponse struct {
	Context     *federalContextResponse `json:"context"`
	Bills       []federalBillResponse   `json:"pendingBills"`
	Stablecoins []stablecoinResponse    `json:"stateIssuedStablecoins"`
}

func toStateResponse(rec regulation.DisplayRecord) stateResponse {
	out := stateResponse{
		Abbr:               rec.Abbr,
		Name:               rec.Name,
		Status:             string(rec.Status),
		StatusLabel:        rec.Status.Meta().Label,
		Summary:            rec.Summary,
		KeyLaws:            rec.KeyLaws,
		RecentDevelopments: rec.RecentDevelopments,
		Sources:            rec.Sources,
		LastUpdated:        rec.LastUpdated,
		RegulatoryBody:     rec.RegulatoryBody,
		Synthesized:        rec.Synthesized,
	}
	for _, entry := range rec.Timeline {
		out.Timeline = append(out.Timeline, timelineEntryResponse{
			Date:   entry.Date,
			Label:  entry.Label,
			Detail: entry.Detail,
		})
	}
	return out
}

func (c *RegmapAPIController) states(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gridTiles := c.tiles.Tiles()
	abbrs := make([]string, 0, len(gridTiles))
	for _, t := range gridTiles {
		abbrs = append(abbrs, t.Abbr)
	}
	records := c.service.StatesOverview(ctx, abbrs)

	out := statesResponse{
		States:      make([]stateResponse, 0, len(gridTiles)),
		LastUpdated: c.service.LatestUpdate(ctx),
	}
	for _, t := range gridTiles {
		out.States = append(out.States, toStateResponse(records[t.Abbr]))
	}
	if err := httpapi.WriteOK(w, out); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("writing states response")
	}
}

func (c *RegmapAPIController) state(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	abbr := strings.ToUpper(mux.Vars(r)["abbr"])
	rec := c.service.DisplayRecord(ctx, abbr)
	if err := httpapi.WriteOK(w, toStateResponse(rec)); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("writing state response")
	}
}

func (c *RegmapAPIController) federal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out := federalResponse{
		Bills:       make([]federalBillResponse, 0),
		Stablecoins: make([]stablecoinResponse, 0),
	}
	if fc := c.service.FederalContext(ctx); fc != nil {
		out.Context = &federalContextResponse{
			Headline:    fc.Headline,
			Summary:     fc.Summary,
			KeyPoints:   fc.KeyPoints,
			LastUpdated: fc.LastUpdated,
		}
	}
	for _, b := range c.service.PendingFederalBills(ctx) {
		out.Bills = append(out.Bills, federalBillResponse{
			Name:    b.Name,
			Chamber: b.Chamber,
			Status:  b.Status,
			Summary: b.Summary,
			Sources: b.Sources,
		})
	}
	for _, coin := range c.service.StateIssuedStablecoins(ctx) {
		out.Stablecoins = append(out.Stablecoins, stablecoinResponse{
			State:    coin.State,
			Name:     coin.Name,
			Symbol:   coin.Symbol,
			Status:   coin.Status,
			Detail:   coin.Detail,
			Launched: coin.Launched,
		})
	}
	if err := httpapi.WriteOK(w, out); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("writing federal response")
	}
}
