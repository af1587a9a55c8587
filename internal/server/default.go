package server

import (
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/stablewatch/regmap/modules/regmap/presentation/controllers"
	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/configuration"
	"github.com/stablewatch/regmap/pkg/constants"
	"github.com/stablewatch/regmap/pkg/middleware"
	"github.com/stablewatch/regmap/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	var extraOrigins []string
	if conf.AllowedOrigins != "" {
		for _, origin := range strings.Split(conf.AllowedOrigins, ",") {
			extraOrigins = append(extraOrigins, strings.TrimSpace(origin))
		}
	}

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, middleware.DefaultLoggerOptions()),
		middleware.Provide(constants.AppKey, app),
		middleware.Cors(extraOrigins...),
	}

	if conf.RateLimit.Enabled {
		middlewares = append(middlewares, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.GlobalRPS,
			Store:             middleware.NewMemoryStore(),
		}))
	}

	middlewares = append(middlewares, middleware.RequestParams())
	app.RegisterMiddleware(middlewares...)

	return server.NewHTTPServer(
		app,
		controllers.NotFound(),
		controllers.MethodNotAllowed(),
	), nil
}
