package main

import (
	"context"

	"github.com/stablewatch/regmap/internal/assets"
	"github.com/stablewatch/regmap/internal/server"
	"github.com/stablewatch/regmap/modules"
	"github.com/stablewatch/regmap/modules/regmap/presentation/controllers"
	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/configuration"
	"github.com/stablewatch/regmap/pkg/eventbus"
	"github.com/stablewatch/regmap/pkg/logging"
	"github.com/stablewatch/regmap/pkg/metrics"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		shutdown := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.Endpoint,
		)
		defer shutdown()
	}

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Bundle:   application.LoadBundle(),
	})
	if err := modules.Load(app); err != nil {
		logger.WithError(err).Fatal("loading modules")
	}

	app.RegisterHashFsAssets(assets.FS)
	app.RegisterControllers(
		controllers.NewStaticFilesController(app.HashFsAssets()...),
		controllers.NewHealthController(),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		logger.WithError(err).Fatal("building server")
	}

	logger.WithField("address", conf.Origin).Info("starting server")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
