package http

import (
	_ "embed"
	"net/http"
)

//go:embed endpoints.json
var endpointsJSON []byte

// IndexHandler serves the endpoint catalogue at GET /api.
func IndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(endpointsJSON)
	})
}
