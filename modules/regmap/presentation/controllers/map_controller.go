package controllers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/stablewatch/regmap/internal/assets"
	"github.com/stablewatch/regmap/modules/regmap/domain/selection"
	"github.com/stablewatch/regmap/modules/regmap/domain/status"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/geo"
	"github.com/stablewatch/regmap/modules/regmap/presentation/mappers"
	"github.com/stablewatch/regmap/modules/regmap/presentation/templates"
	"github.com/stablewatch/regmap/modules/regmap/presentation/viewmodels"
	"github.com/stablewatch/regmap/modules/regmap/services"
	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/composables"
	"github.com/stablewatch/regmap/pkg/configuration"
	"github.com/stablewatch/regmap/pkg/htmx"
	"github.com/stablewatch/regmap/pkg/middleware"
)

const (
	tileSize = 58
	cellSize = 64
	gridCols = 12
	gridRows = 8

	htmxSrc = "https://unpkg.com/htmx.org@1.9.12"
)

// MapController serves the map page and the htmx partial for the detail
// panel.
type MapController struct {
	app          application.Application
	service      *services.RegulationService
	tiles        *geo.TileSet
	defaultState string
	basePath     string
}

func NewMapController(app application.Application) application.Controller {
	return &MapController{
		app:          app,
		service:      app.Service(services.RegulationService{}).(*services.RegulationService),
		tiles:        app.Service(geo.TileSet{}).(*geo.TileSet),
		defaultState: configuration.Use().DefaultState,
		basePath:     "/",
	}
}

func (c *MapController) Key() string {
	return c.basePath
}

func (c *MapController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(
		middleware.ProvideLocalizer(c.app),
		middleware.WithPageContext(),
	)
	router.HandleFunc("/", c.index).Methods(http.MethodGet)
	router.HandleFunc("/states/{abbr}", c.statePanel).Methods(http.MethodGet)
}

// selected resolves the selection from the state query parameter, falling
// back to the configured default. Unknown values stay selected; the service
// synthesizes a record for them.
func (c *MapController) selected(r *http.Request) selection.Selection {
	param := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("state")))
	if param == "" {
		return selection.From(c.defaultState)
	}
	return selection.From(param)
}

func (c *MapController) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageCtx := composables.UsePageCtx(ctx).Namespace("Regmap")
	sel := c.selected(r)

	gridTiles := c.tiles.Tiles()
	abbrs := make([]string, 0, len(gridTiles))
	for _, t := range gridTiles {
		abbrs = append(abbrs, t.Abbr)
	}
	records := c.service.StatesOverview(ctx, abbrs)

	tiles := make([]viewmodels.Tile, 0, len(gridTiles))
	for _, t := range gridTiles {
		tiles = append(tiles, mappers.Tile(t, records[t.Abbr], cellSize, tileSize, t.Abbr == sel.Abbr()))
	}

	navItems := c.app.NavItems()
	nav := make([]viewmodels.NavLink, 0, len(navItems))
	for _, item := range navItems {
		nav = append(nav, viewmodels.NavLink{Label: pageCtx.T(item.Name), Href: item.Href})
	}

	legend := make([]viewmodels.LegendItem, 0, len(status.All()))
	for _, s := range status.All() {
		meta := s.Meta()
		legend = append(legend, viewmodels.LegendItem{
			Label:       meta.Label,
			Description: meta.Description,
			Color:       meta.BaseColor,
		})
	}

	page := viewmodels.IndexPage{
		Title:           pageCtx.T("Meta.Title"),
		CSSPath:         assets.Path("css/main.css"),
		JSPath:          assets.Path("js/map.js"),
		HtmxSrc:         htmxSrc,
		Nav:             nav,
		Tiles:           tiles,
		Legend:          legend,
		Selected:        mappers.StatePanel(c.service.DisplayRecord(ctx, sel.Abbr())),
		Federal:         mappers.FederalContext(c.service.FederalContext(ctx)),
		Bills:           mappers.FederalBills(c.service.PendingFederalBills(ctx)),
		Stablecoins:     mappers.Stablecoins(c.service.StateIssuedStablecoins(ctx)),
		Developments:    mappers.Developments(c.service.MajorStateDevelopments(ctx)),
		LastUpdated:     mappers.FormatDate(c.service.LatestUpdate(ctx)),
		SectionMap:      pageCtx.T("Sections.Map"),
		SectionBills:    pageCtx.T("Sections.Bills"),
		SectionCoins:    pageCtx.T("Sections.Coins"),
		SectionActivity: pageCtx.T("Sections.Activity"),
		TileSize:        tileSize,
		CellSize:        cellSize,
		ViewBoxW:        gridCols * cellSize,
		ViewBoxH:        gridRows * cellSize,
	}
	templ.Handler(templates.Index(page)).ServeHTTP(w, r)
}

func (c *MapController) statePanel(w http.ResponseWriter, r *http.Request) {
	abbr := strings.ToUpper(mux.Vars(r)["abbr"])
	if !htmx.IsHxRequest(r) {
		// Direct navigation gets the full page with the state selected.
		http.Redirect(w, r, "/?state="+abbr, http.StatusSeeOther)
		return
	}
	rec := c.service.DisplayRecord(r.Context(), abbr)
	templ.Handler(templates.StatePanel(mappers.StatePanel(rec))).ServeHTTP(w, r)
}
