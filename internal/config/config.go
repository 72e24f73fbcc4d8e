package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv string
	Port   string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Bootstrap admin credential (auto-provisioned on first login or by cmd/seed)
	AdminEmail    string
	AdminPassword string

	// GitHub
	GitHubUsername string
	GitHubToken    string

	// Email (SMTP relay)
	EmailHost   string
	EmailPort   int
	EmailSecure bool
	EmailUser   string
	EmailPass   string

	// HTTP
	RateLimitWindow time.Duration
	RateLimitMax    int

	// Storage
	UploadDir string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		AppEnv: envString("APP_ENV", "development"),
		Port:   envString("PORT", "5001"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/portfolio.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 24*time.Hour),

		AdminEmail:    envString("ADMIN_EMAIL", "contactsanket1@gmail.com"),
		AdminPassword: envString("ADMIN_PASSWORD", "Sanket.patil@3030"),

		GitHubUsername: envString("GITHUB_USERNAME", "SanketsMane"),
		GitHubToken:    envString("GITHUB_TOKEN", ""),

		EmailHost:   envString("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:   envInt("EMAIL_PORT", 587),
		EmailSecure: envBool("EMAIL_SECURE", false),
		EmailUser:   envString("EMAIL_USER", ""),
		EmailPass:   envString("EMAIL_PASS", ""),

		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:    envInt("RATE_LIMIT_MAX", 100),

		UploadDir: envString("UPLOAD_DIR", "./uploads"),

		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
