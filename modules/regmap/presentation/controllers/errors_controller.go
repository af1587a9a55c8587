package controllers

import (
	"net/http"
	"strings"

	"github.com/stablewatch/regmap/pkg/httpapi"
)

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

// NotFound is the router-level 404 handler. API paths get the JSON envelope;
// everything else a plain text response.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found", map[string]string{
				"path": r.URL.Path,
			})
			return
		}
		http.Error(w, "404 page not found", http.StatusNotFound)
	})
}

// MethodNotAllowed is the router-level 405 handler.
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", map[string]string{
				"method": r.Method,
			})
			return
		}
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
	})
}
