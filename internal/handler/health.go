package handler

import (
	"net/http"
	"time"
)

type healthHandler struct {
	environment string
}

func NewHealthHandler(environment string) *healthHandler {
	return &healthHandler{environment: environment}
}

func (h *healthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Portfolio API is running",
		Data: map[string]any{
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": h.environment,
		},
	})
}

func (h *healthHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]any{
		"name":    "Portfolio API",
		"version": "1.0.0",
		"endpoints": []string{
			"/api/health",
			"/api/portfolio",
			"/api/resume/info",
			"/api/resume/download",
			"/api/github/stats",
			"/api/github/repos",
			"/api/github/languages",
			"/api/github/projects",
			"/api/contact",
		},
	})
}

// NotFound is the JSON fallback for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Route not found")
}
