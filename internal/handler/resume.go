package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/sanketsmane/portfolio-api/internal/service"
	"github.com/sanketsmane/portfolio-api/internal/validation"
)

// multipart uploads are capped at the resume size limit plus form overhead
const maxUploadMemory = 6 << 20

type resumeHandler struct {
	resumeService *service.ResumeService
}

func NewResumeHandler(resumeService *service.ResumeService) *resumeHandler {
	return &resumeHandler{resumeService: resumeService}
}

// saveResumeUpload reads the "resume" multipart field, validates it and
// stores it as the new active résumé. On failure it returns a nil resume
// with the status and message the handler should send.
func saveResumeUpload(r *http.Request, resumeService *service.ResumeService, constraints validation.FileConstraints) (*model.Resume, int, string) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, http.StatusBadRequest, "No file uploaded"
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, http.StatusBadRequest, "No file uploaded"
	}
	defer file.Close()

	if err := validation.ValidateFile(header, constraints); err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}

	meta := service.ResumeUpload{
		Description: r.FormValue("description"),
		Version:     r.FormValue("version"),
	}
	if tags := r.FormValue("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				meta.Tags = append(meta.Tags, tag)
			}
		}
	}

	resume, err := resumeService.Upload(file, header.Filename, header.Header.Get("Content-Type"), header.Size, meta)
	if err != nil {
		slog.Error("resume upload failed", "error", err)
		return nil, http.StatusInternalServerError, "Failed to upload resume"
	}

	return resume, http.StatusCreated, ""
}

// Upload stores a new résumé and makes it the active one.
func (h *resumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	resume, status, message := saveResumeUpload(r, h.resumeService, validation.DocumentConstraints)
	if resume == nil {
		respondError(w, status, message)
		return
	}
	respondMessage(w, http.StatusCreated, "Resume uploaded successfully", resume)
}

// Download streams the active résumé file and counts the download.
func (h *resumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	resume, reader, err := h.resumeService.Download()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveResume), errors.Is(err, service.ErrResumeFileMissing):
			respondError(w, http.StatusNotFound, "No resume available for download")
		default:
			slog.Error("resume download failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to download resume")
		}
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", resume.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.OriginalName))
	w.Header().Set("Content-Length", strconv.FormatInt(resume.Size, 10))
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("resume stream interrupted", "error", err)
	}
}

// Info serves metadata about the active résumé without counting a download.
func (h *resumeHandler) Info(w http.ResponseWriter, r *http.Request) {
	resume, err := h.resumeService.Active()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveResume), errors.Is(err, service.ErrResumeFileMissing):
			respondError(w, http.StatusNotFound, "No resume available")
		default:
			slog.Error("failed to load resume info", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch resume info")
		}
		return
	}

	respondData(w, http.StatusOK, resume)
}

// List pages through all résumé records, newest first.
func (h *resumeHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.resumeService.List(page, limit)
	if err != nil {
		slog.Error("failed to list resumes", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch resumes")
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"resumes": result.Items,
		"pagination": map[string]any{
			"page":  result.Page,
			"limit": result.Limit,
			"total": result.Total,
			"pages": result.Pages,
		},
	})
}

// Activate makes the given résumé the single active one.
func (h *resumeHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	resume, err := h.resumeService.Activate(id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			respondError(w, http.StatusNotFound, "Resume not found")
			return
		}
		slog.Error("failed to activate resume", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to activate resume")
		return
	}

	respondMessage(w, http.StatusOK, "Resume activated successfully", resume)
}

// Delete removes a résumé record and its file. The active résumé cannot
// be deleted.
func (h *resumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.resumeService.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrResumeNotFound):
			respondError(w, http.StatusNotFound, "Resume not found")
		case errors.Is(err, service.ErrResumeActive):
			respondError(w, http.StatusConflict, "Cannot delete the active resume")
		default:
			slog.Error("failed to delete resume", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete resume")
		}
		return
	}

	respondMessage(w, http.StatusOK, "Resume deleted successfully", nil)
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
