package gateway

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// healthHandler answers any method with success and echoes the requested
// path. Mounted outside the session gate so deployments can probe the
// process even while the MCP endpoint is unavailable.
func healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Path: r.URL.Path})
	})
}
