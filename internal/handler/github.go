package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanketsmane/portfolio-api/internal/service"
)

type githubHandler struct {
	githubService *service.GitHubService
}

func NewGitHubHandler(githubService *service.GitHubService) *githubHandler {
	return &githubHandler{githubService: githubService}
}

// Stats serves the aggregated profile overview. The service falls back to
// static data when GitHub is unreachable, so this never fails.
func (h *githubHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.githubService.Stats(r.Context()))
}

func (h *githubHandler) Repos(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 10)
	sortBy := r.URL.Query().Get("sort")

	repos, err := h.githubService.Repos(r.Context(), page, perPage, sortBy)
	if err != nil {
		slog.Error("failed to fetch repositories", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch repositories")
		return
	}

	respondData(w, http.StatusOK, repos)
}

func (h *githubHandler) Languages(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.githubService.Languages(r.Context())
	if err != nil {
		slog.Error("failed to fetch language statistics", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch language statistics")
		return
	}

	respondData(w, http.StatusOK, breakdown)
}

// Projects serves the curated project list derived from repositories. Like
// Stats it degrades to fallback data instead of failing.
func (h *githubHandler) Projects(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.githubService.Projects(r.Context()))
}
