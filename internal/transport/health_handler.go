package transport

import (
	"encoding/json"
	"net/http"
)

const HealthPath = "/healthz"

type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports server health.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "HEALTHY"})
	})
}
