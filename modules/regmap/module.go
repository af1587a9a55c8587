package regmap

import (
	"embed"

	"github.com/sirupsen/logrus"

	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/dataset"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/geo"
	"github.com/stablewatch/regmap/modules/regmap/presentation/controllers"
	"github.com/stablewatch/regmap/modules/regmap/services"
	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/configuration"
	"github.com/stablewatch/regmap/pkg/metrics"
	"github.com/stablewatch/regmap/pkg/types"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "regmap"
}

func (m *Module) Register(app application.Application) error {
	repo, err := dataset.NewRegulationRepository()
	if err != nil {
		return err
	}
	tiles, err := geo.NewTileSet()
	if err != nil {
		return err
	}

	service := services.NewRegulationService(repo, app.EventPublisher())
	app.RegisterServices(service, tiles)
	app.RegisterLocaleFiles(&localeFiles)

	// Item names are locale keys under the Regmap namespace; the page
	// controller translates them when building the header navigation.
	app.RegisterNavItems(
		types.NavigationItem{Name: "Sections.Map", Href: "#map"},
		types.NavigationItem{Name: "Sections.Coins", Href: "#coins"},
		types.NavigationItem{Name: "Sections.Bills", Href: "#bills"},
		types.NavigationItem{Name: "Sections.Activity", Href: "#activity"},
	)

	logger := configuration.Use().Logger()
	app.EventPublisher().Subscribe(func(ev regulation.DatasetLoadedEvent) {
		logger.WithFields(logrus.Fields{
			"states":        ev.States,
			"bills":         ev.Bills,
			"stablecoins":   ev.Stablecoins,
			"developments":  ev.Developments,
			"latest-update": ev.LatestUpdate,
		}).Info("regulation dataset loaded")
	})
	app.EventPublisher().Subscribe(func(ev regulation.StateViewedEvent) {
		origin := "dataset"
		if ev.Synthesized {
			origin = "synthesized"
		}
		metrics.StateViews.WithLabelValues(ev.Abbr, origin).Inc()
	})

	app.RegisterControllers(
		controllers.NewMapController(app),
		controllers.NewRegmapAPIController(app),
	)

	data := repo.Dataset()
	app.EventPublisher().Publish(regulation.DatasetLoadedEvent{
		States:       len(data.States),
		Bills:        len(data.PendingFederalBills),
		Stablecoins:  len(data.StateIssuedStablecoins),
		Developments: len(data.MajorStateDevelopments),
		LatestUpdate: repo.LatestUpdate(),
	})
	return nil
}
