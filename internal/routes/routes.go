package routes

import (
	"net/http"

	"github.com/sanketsmane/portfolio-api/internal/app"
	"github.com/sanketsmane/portfolio-api/internal/handler"
	"github.com/sanketsmane/portfolio-api/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.Cfg.AppEnv)
	portfolio := handler.NewPortfolioHandler(app.PortfolioService)
	admin := handler.NewAdminHandler(app.AuthService, app.PortfolioService, app.ResumeService)
	resume := handler.NewResumeHandler(app.ResumeService)
	github := handler.NewGitHubHandler(app.GitHubService)
	contact := handler.NewContactHandler(app.EmailService)

	requireAdmin := middleware.RequireAdmin(app.AuthService)

	mux := http.NewServeMux()

	// Root and health
	mux.HandleFunc("GET /{$}", health.Index)
	mux.HandleFunc("GET /api/health", health.Health)

	// Public portfolio content
	mux.HandleFunc("GET /api/portfolio", portfolio.Public)
	// Public alias kept for frontends built against the admin route prefix
	mux.HandleFunc("GET /api/admin/portfolio/public", portfolio.Public)

	// Resume
	mux.HandleFunc("GET /api/resume/download", resume.Download)
	mux.HandleFunc("GET /api/resume/info", resume.Info)
	mux.HandleFunc("POST /api/resume/upload", requireAdmin(resume.Upload))
	mux.HandleFunc("GET /api/resume/list", resume.List)
	mux.HandleFunc("PUT /api/resume/{id}/activate", requireAdmin(resume.Activate))
	mux.HandleFunc("DELETE /api/resume/{id}", requireAdmin(resume.Delete))

	// GitHub aggregation
	mux.HandleFunc("GET /api/github/stats", github.Stats)
	mux.HandleFunc("GET /api/github/repos", github.Repos)
	mux.HandleFunc("GET /api/github/languages", github.Languages)
	mux.HandleFunc("GET /api/github/projects", github.Projects)

	// Contact form
	mux.HandleFunc("POST /api/contact", contact.Submit)

	// Admin
	mux.HandleFunc("POST /api/admin/login", admin.Login)
	mux.HandleFunc("GET /api/admin/verify", requireAdmin(admin.Verify))
	mux.HandleFunc("GET /api/admin/portfolio", requireAdmin(admin.Portfolio))
	mux.HandleFunc("PUT /api/admin/portfolio", requireAdmin(admin.UpdatePortfolio))
	mux.HandleFunc("POST /api/admin/resume/upload", requireAdmin(admin.UploadResume))

	// JSON fallback for everything unmatched
	mux.HandleFunc("/", handler.NotFound)

	// Global middleware
	return middleware.Chain(mux,
		middleware.CORS,
		middleware.RequestLogging,
		middleware.RateLimit(app.Cfg.RateLimitMax, app.Cfg.RateLimitWindow),
	)
}
