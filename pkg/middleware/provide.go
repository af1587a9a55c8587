package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stablewatch/regmap/pkg/composables"
	"github.com/stablewatch/regmap/pkg/constants"
)

// Provide stores a fixed value under the given context key for every request.
func Provide(key constants.ContextKey, value interface{}) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), key, value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestParams exposes per-request metadata to handlers via the context.
func RequestParams() mux.MiddlewareFunc {
	conf := useConf()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := &composables.Params{
				IP:        getRealIP(r, conf),
				UserAgent: r.UserAgent(),
				Request:   r,
				Writer:    w,
			}
			next.ServeHTTP(w, r.WithContext(composables.WithParams(r.Context(), params)))
		})
	}
}
