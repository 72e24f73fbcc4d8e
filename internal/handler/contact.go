package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/sanketsmane/portfolio-api/internal/service"
	"github.com/sanketsmane/portfolio-api/internal/validation"
)

type contactHandler struct {
	emailService *service.EmailService
}

func NewContactHandler(emailService *service.EmailService) *contactHandler {
	return &contactHandler{emailService: emailService}
}

// Submit relays a contact-form message to the site owner and sends the
// submitter an auto-reply. The auto-reply is best effort.
func (h *contactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var submission model.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if submission.Name == "" || submission.Email == "" || submission.Subject == "" || submission.Message == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := validation.ValidateEmail(submission.Email); err != nil {
		respondError(w, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	if err := h.emailService.NotifyOwner(r.Context(), submission); err != nil {
		slog.Error("contact notification failed", "error", err, "from", submission.Email)
		respondError(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	if err := h.emailService.AutoReply(r.Context(), submission); err != nil {
		slog.Warn("auto-reply failed", "error", err, "to", submission.Email)
	}

	respondMessage(w, http.StatusOK, "Message sent successfully! I'll get back to you soon.", nil)
}
