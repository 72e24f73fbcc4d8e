package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sanketsmane/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func newTestContactHandler() *contactHandler {
	// Dev mode logs instead of talking to an SMTP relay
	emailService := service.NewEmailService("localhost", 587, false, "owner@example.com", "", true)
	return NewContactHandler(emailService)
}

func postContact(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newTestContactHandler().Submit(rec, req)
	return rec
}

func TestContactSubmit(t *testing.T) {
	rec := postContact(t, `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"Hello there"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "Message sent successfully")
}

func TestContactSubmitMissingFields(t *testing.T) {
	rec := postContact(t, `{"name":"Jane","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "All fields are required", body["message"])
}

func TestContactSubmitInvalidEmail(t *testing.T) {
	rec := postContact(t, `{"name":"Jane","email":"not-an-email","subject":"Hi","message":"Hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Please provide a valid email address", body["message"])
}

func TestContactSubmitBadJSON(t *testing.T) {
	rec := postContact(t, `{broken`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
