package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/sanketsmane/portfolio-api/internal/service"
)

type portfolioHandler struct {
	portfolioService *service.PortfolioService
}

func NewPortfolioHandler(portfolioService *service.PortfolioService) *portfolioHandler {
	return &portfolioHandler{portfolioService: portfolioService}
}

// Public serves the active portfolio record to the public site.
func (h *portfolioHandler) Public(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolioService.Public()
	if err != nil {
		if errors.Is(err, repository.ErrPortfolioNotFound) {
			respondError(w, http.StatusNotFound, "Portfolio data not found")
			return
		}
		slog.Error("failed to load portfolio", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch portfolio data")
		return
	}

	respondData(w, http.StatusOK, data)
}
