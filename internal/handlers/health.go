package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/musictags/tagchart/internal/dataset"
)

// HealthChecker handles health check requests
type HealthChecker struct {
	cat *dataset.Catalog
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cat *dataset.Catalog) *HealthChecker {
	return &HealthChecker{cat: cat}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Datasets  map[string]int `json:"datasets,omitempty"`
}

// HealthCheck handles the /healthz endpoint. The datasets are loaded once
// at startup, so a serving process with a non-empty catalog is healthy.
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Datasets: map[string]int{
			"artists":      h.cat.NumArtists(),
			"tags":         h.cat.NumTags(),
			"associations": h.cat.NumAssociations(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
