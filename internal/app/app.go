package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/sanketsmane/portfolio-api/internal/config"
	"github.com/sanketsmane/portfolio-api/internal/db"
	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/sanketsmane/portfolio-api/internal/service"
	"github.com/sanketsmane/portfolio-api/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	PortfolioService *service.PortfolioService
	ResumeService    *service.ResumeService
	GitHubService    *service.GitHubService
	EmailService     *service.EmailService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	adminRepository := repository.NewAdminRepository(database)
	portfolioRepository := repository.NewPortfolioRepository(database)
	resumeRepository := repository.NewResumeRepository(database)

	// Storage
	fileStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	authService := service.NewAuthService(
		adminRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.AdminEmail,
		cfg.AdminPassword,
	)
	portfolioService := service.NewPortfolioService(portfolioRepository)
	resumeService := service.NewResumeService(resumeRepository, fileStorage)
	githubService := service.NewGitHubService(cfg.GitHubUsername, cfg.GitHubToken)
	emailService := service.NewEmailService(
		cfg.EmailHost,
		cfg.EmailPort,
		cfg.EmailSecure,
		cfg.EmailUser,
		cfg.EmailPass,
		cfg.IsDevelopment(),
	)

	// Bootstrap admin account so the dashboard is reachable on first boot
	if err := authService.EnsureBootstrap(); err != nil {
		slog.Warn("failed to bootstrap admin account", "error", err)
	}

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		PortfolioService: portfolioService,
		ResumeService:    resumeService,
		GitHubService:    githubService,
		EmailService:     emailService,
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
