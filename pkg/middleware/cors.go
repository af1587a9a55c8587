package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/stablewatch/regmap/pkg/configuration"
)

func useConf() *configuration.Configuration {
	return configuration.Use()
}

// Cors allows the given origins in addition to the configured application origin.
func Cors(allowedOrigins ...string) mux.MiddlewareFunc {
	conf := useConf()
	origins := append([]string{conf.Origin}, allowedOrigins...)
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "HX-Request", "HX-Target", "HX-Current-URL", conf.RequestIDHeader},
		AllowCredentials: false,
	})
	return c.Handler
}
