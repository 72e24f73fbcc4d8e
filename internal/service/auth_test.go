package service

import (
	"testing"
	"time"

	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	database := newTestDB(t)
	return NewAuthService(
		repository.NewAdminRepository(database),
		"test-secret",
		time.Hour,
		"admin@example.com",
		"correct horse battery staple",
	)
}

func TestLoginCreatesBootstrapAdmin(t *testing.T) {
	svc := newTestAuthService(t)

	admin, token, err := svc.Login("admin@example.com", "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.NotEmpty(t, token)
	require.NotNil(t, admin.LastLogin)

	verified, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, verified.ID)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Login("Admin@Example.COM", "correct horse battery staple")
	require.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	require.NoError(t, svc.EnsureBootstrap())

	_, _, err := svc.Login("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, err := svc.Login("someone@else.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureBootstrapIsIdempotent(t *testing.T) {
	svc := newTestAuthService(t)

	require.NoError(t, svc.EnsureBootstrap())
	require.NoError(t, svc.EnsureBootstrap())

	_, _, err := svc.Login("admin@example.com", "correct horse battery staple")
	require.NoError(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestAuthService(t)

	database := newTestDB(t)
	other := NewAuthService(
		repository.NewAdminRepository(database),
		"other-secret",
		time.Hour,
		"admin@example.com",
		"correct horse battery staple",
	)

	admin, token, err := other.Login("admin@example.com", "correct horse battery staple")
	require.NoError(t, err)
	require.NotNil(t, admin)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetBootstrapRecreatesAccount(t *testing.T) {
	svc := newTestAuthService(t)

	require.NoError(t, svc.EnsureBootstrap())
	require.NoError(t, svc.ResetBootstrap())

	_, _, err := svc.Login("admin@example.com", "correct horse battery staple")
	require.NoError(t, err)
}
