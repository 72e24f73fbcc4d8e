package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanketsmane/portfolio-api/internal/ctxkeys"
	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/sanketsmane/portfolio-api/internal/service"
	"github.com/sanketsmane/portfolio-api/internal/validation"
)

type adminHandler struct {
	authService      *service.AuthService
	portfolioService *service.PortfolioService
	resumeService    *service.ResumeService
}

func NewAdminHandler(authService *service.AuthService, portfolioService *service.PortfolioService, resumeService *service.ResumeService) *adminHandler {
	return &adminHandler{
		authService:      authService,
		portfolioService: portfolioService,
		resumeService:    resumeService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *adminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondMessage(w, http.StatusOK, "Login successful", map[string]any{
		"token": token,
		"admin": admin,
	})
}

// Verify confirms the caller's token is still valid. The middleware has
// already loaded the admin into the context.
func (h *adminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	admin := ctxkeys.Admin(r.Context())
	respondData(w, http.StatusOK, map[string]any{"admin": admin})
}

// Portfolio serves the active record to the admin dashboard.
func (h *adminHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolioService.Active()
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

// UpdatePortfolio replaces the stored portfolio content in one write. All
// four sections must be present.
func (h *adminHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var sections service.PortfolioSections
	if err := json.NewDecoder(r.Body).Decode(&sections); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	data, err := h.portfolioService.Upsert(sections)
	if err != nil {
		if errors.Is(err, service.ErrSectionsRequired) {
			respondError(w, http.StatusBadRequest, "All portfolio sections are required")
			return
		}
		slog.Error("failed to update portfolio", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update portfolio data")
		return
	}

	respondMessage(w, http.StatusOK, "Portfolio updated successfully", data)
}

// UploadResume is the dashboard upload route. Unlike the general resume
// route it accepts PDF only.
func (h *adminHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	resume, status, message := saveResumeUpload(r, h.resumeService, validation.PDFConstraints)
	if resume == nil {
		respondError(w, status, message)
		return
	}
	respondMessage(w, http.StatusCreated, "Resume uploaded successfully", resume)
}
