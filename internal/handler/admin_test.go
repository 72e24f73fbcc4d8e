package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/sanketsmane/portfolio-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminHandler(t *testing.T) *adminHandler {
	t.Helper()

	database := newTestDB(t)
	authService := service.NewAuthService(
		repository.NewAdminRepository(database),
		"test-secret",
		testJWTExpiry,
		"admin@example.com",
		"bootstrap-password",
	)
	portfolioService := service.NewPortfolioService(repository.NewPortfolioRepository(database))

	return NewAdminHandler(authService, portfolioService, nil)
}

func postLogin(t *testing.T, h *adminHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestAdminLogin(t *testing.T) {
	h := newTestAdminHandler(t)

	rec := postLogin(t, h, `{"email":"admin@example.com","password":"bootstrap-password"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	h := newTestAdminHandler(t)

	// Provision the account first so the wrong password hits a real record
	rec := postLogin(t, h, `{"email":"admin@example.com","password":"bootstrap-password"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postLogin(t, h, `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestAdminLoginMissingFields(t *testing.T) {
	h := newTestAdminHandler(t)

	rec := postLogin(t, h, `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Email and password are required", body["message"])
}

func TestAdminPortfolioNotFound(t *testing.T) {
	h := newTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/portfolio", nil)
	rec := httptest.NewRecorder()
	h.Portfolio(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUpdatePortfolioRequiresAllSections(t *testing.T) {
	h := newTestAdminHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/portfolio",
		strings.NewReader(`{"personalInfo":{"name":"X"},"experience":[],"skills":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.UpdatePortfolio(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "All portfolio sections are required", body["message"])
}

func TestAdminUpdateThenReadPortfolio(t *testing.T) {
	h := newTestAdminHandler(t)

	payload := `{
		"personalInfo":{"name":"Sanket Mane","email":"contactsanket1@gmail.com"},
		"experience":[{"id":1,"company":"Formonex Solutions Pvt Ltd","position":"Software Developer Trainee"}],
		"skills":[{"name":"React","level":90,"category":"Frontend"}],
		"projects":[]
	}`

	req := httptest.NewRequest(http.MethodPut, "/api/admin/portfolio", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.UpdatePortfolio(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/portfolio", nil)
	rec = httptest.NewRecorder()
	h.Portfolio(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	info, ok := data["personalInfo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Sanket Mane", info["name"])
}
