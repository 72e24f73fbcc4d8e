package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/sanketsmane/portfolio-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService authenticates the single administrator account and issues
// bearer tokens for the admin-only routes. The account is provisioned from
// the bootstrap credential, either eagerly (EnsureBootstrap at startup, or
// cmd/seed) or lazily on the first login attempt.
type AuthService struct {
	adminRepository   repository.AdminRepository
	jwtSecret         string
	jwtExpiry         time.Duration
	bootstrapEmail    string
	bootstrapPassword string
}

func NewAuthService(adminRepository repository.AdminRepository, jwtSecret string, jwtExpiry time.Duration, bootstrapEmail, bootstrapPassword string) *AuthService {
	return &AuthService{
		adminRepository:   adminRepository,
		jwtSecret:         jwtSecret,
		jwtExpiry:         jwtExpiry,
		bootstrapEmail:    strings.ToLower(bootstrapEmail),
		bootstrapPassword: bootstrapPassword,
	}
}

// EnsureBootstrap creates the bootstrap admin account if no account with the
// bootstrap email exists yet. It never overwrites an existing account.
func (s *AuthService) EnsureBootstrap() error {
	_, err := s.adminRepository.ByEmail(s.bootstrapEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	admin, err := s.createAdmin(s.bootstrapEmail, s.bootstrapPassword)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Raced with another provisioning path; the account exists now.
			return nil
		}
		return err
	}

	slog.Info("bootstrap admin created", "email", admin.Email)
	return nil
}

// ResetBootstrap removes every admin account and recreates the bootstrap
// one. Used by the seed routine only.
func (s *AuthService) ResetBootstrap() error {
	err := s.adminRepository.DeleteAll()
	if err != nil {
		return fmt.Errorf("failed to clear admin accounts: %w", err)
	}

	_, err = s.createAdmin(s.bootstrapEmail, s.bootstrapPassword)
	return err
}

func (s *AuthService) createAdmin(email, password string) (*model.Admin, error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	err = s.adminRepository.Create(admin)
	if err != nil {
		return nil, err
	}

	return admin, nil
}

// Login authenticates the administrator and returns the account plus a signed
// bearer token. If no account exists yet and the submitted credentials match
// the bootstrap pair, the account is created on the fly.
func (s *AuthService) Login(email, password string) (*model.Admin, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	admin, err := s.adminRepository.ByEmail(email)
	if err != nil {
		if !errors.Is(err, repository.ErrAdminNotFound) {
			return nil, "", fmt.Errorf("failed to get admin: %w", err)
		}

		if email != s.bootstrapEmail || password != s.bootstrapPassword {
			return nil, "", ErrInvalidCredentials
		}

		admin, err = s.createAdmin(email, password)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create bootstrap admin: %w", err)
		}
		slog.Info("bootstrap admin created on first login", "email", email)
	}

	err = s.ComparePassword(password, admin.PasswordHash)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	err = s.adminRepository.UpdateLastLogin(admin.ID, now)
	if err != nil {
		slog.Warn("failed to update last login", "error", err, "admin_id", admin.ID)
	}
	admin.LastLogin = &now

	token, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("admin logged in", "email", admin.Email)
	return admin, token, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateJWT(admin *model.Admin) (string, error) {
	claims := jwt.MapClaims{
		"id":    admin.ID,
		"email": admin.Email,
		"exp":   time.Now().Add(s.jwtExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken validates a bearer token and loads the admin it was issued to.
func (s *AuthService) VerifyToken(tokenString string) (*model.Admin, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	admin, err := s.adminRepository.ByID(id)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !admin.IsActive {
		return nil, ErrInvalidToken
	}

	return admin, nil
}
