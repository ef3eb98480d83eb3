package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: healthy
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Returns healthy while the service is accepting requests
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "healthy"})
	}
}
