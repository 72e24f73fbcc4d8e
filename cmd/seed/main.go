// Seed resets the portfolio content to the initial dataset and recreates
// the bootstrap admin account. Run this against a fresh database or to
// restore the defaults.
package main

import (
	"log/slog"

	"github.com/sanketsmane/portfolio-api/internal/app"
	"github.com/sanketsmane/portfolio-api/internal/config"
	"github.com/sanketsmane/portfolio-api/internal/logger"
	"github.com/sanketsmane/portfolio-api/internal/model"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), "")

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer app.Close()

	err = app.PortfolioService.Reset(initialPortfolio())
	if err != nil {
		slog.Error("failed to seed portfolio data", "error", err)
		panic(err)
	}

	err = app.AuthService.ResetBootstrap()
	if err != nil {
		slog.Error("failed to reset admin account", "error", err)
		panic(err)
	}

	slog.Info("database seeded", "admin", cfg.AdminEmail)
}

func initialPortfolio() *model.PortfolioData {
	return &model.PortfolioData{
		PersonalInfo: model.PersonalInfo{
			Name:     "Sanket Mane",
			Email:    "contactsanket1@gmail.com",
			Phone:    "+91 7310013030",
			LinkedIn: "https://linkedin.com/in/sanket-mane-b16a35238",
			GitHub:   "https://github.com/SanketsMane",
			Location: "Karad, Maharashtra, India",
			Title:    "Full Stack Developer",
			Bio:      "Passionate Full Stack Developer with expertise in React, Node.js, and modern web technologies. I love creating innovative solutions and bringing ideas to life through code.",
			Education: model.Education{
				Degree:     "BTech. Computer Science & Engineering",
				University: "Shivaji University",
				Location:   "Kolhapur",
				Duration:   "2020-2024",
				Grade:      "First Class",
			},
		},
		Experience: model.ExperienceList{
			{
				ID:           1,
				Company:      "ACME Infovision Systems Pvt Ltd",
				Position:     "Jr Full Stack Developer",
				Duration:     "June 2024 - December 2024 (6 months)",
				Description:  "Worked as a Junior Full Stack Developer, gaining hands-on experience in modern web development technologies. Contributed to various projects and enhanced my skills in both frontend and backend development.",
				Technologies: []string{"React", "Node.js", "JavaScript", "MongoDB", "Express.js", "HTML5", "CSS3"},
			},
			{
				ID:           2,
				Company:      "Formonex Solutions Pvt Ltd",
				Position:     "Software Developer Trainee",
				Duration:     "May 2024 - Present",
				Description:  "Currently working as a Software Developer Trainee, focusing on learning and implementing modern software development practices. Actively participating in code reviews and collaborative development.",
				Technologies: []string{"React", "Node.js", "JavaScript", "MongoDB", "Git", "Agile Methodology"},
			},
		},
		Skills: model.SkillList{
			{Name: "React", Level: 90, Category: "Frontend"},
			{Name: "JavaScript", Level: 85, Category: "Programming"},
			{Name: "Node.js", Level: 80, Category: "Backend"},
			{Name: "MongoDB", Level: 75, Category: "Database"},
			{Name: "Express.js", Level: 80, Category: "Backend"},
			{Name: "HTML5", Level: 95, Category: "Frontend"},
			{Name: "CSS3", Level: 90, Category: "Frontend"},
			{Name: "Tailwind CSS", Level: 85, Category: "Frontend"},
			{Name: "Git", Level: 80, Category: "Tools"},
			{Name: "Python", Level: 70, Category: "Programming"},
			{Name: "Java", Level: 75, Category: "Programming"},
			{Name: "MySQL", Level: 70, Category: "Database"},
			{Name: "Firebase", Level: 65, Category: "Backend"},
			{Name: "Bootstrap", Level: 80, Category: "Frontend"},
			{Name: "jQuery", Level: 70, Category: "Frontend"},
		},
		Projects: model.ProjectList{
			{
				ID:           1,
				Title:        "E-Commerce Platform",
				Description:  "Full-stack e-commerce solution with React frontend and Node.js backend",
				Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Tailwind CSS"},
				GitHub:       "https://github.com/SanketsMane/ecommerce-platform",
				Live:         "https://ecommerce-demo.vercel.app",
				Image:        "/api/placeholder/400/300",
			},
			{
				ID:           2,
				Title:        "Task Management App",
				Description:  "Collaborative task management application with real-time updates",
				Technologies: []string{"React", "Firebase", "Material-UI"},
				GitHub:       "https://github.com/SanketsMane/task-manager",
				Live:         "https://task-manager-demo.netlify.app",
				Image:        "/api/placeholder/400/300",
			},
			{
				ID:           3,
				Title:        "Weather Dashboard",
				Description:  "Beautiful weather dashboard with location-based forecasts",
				Technologies: []string{"React", "OpenWeather API", "Chart.js"},
				GitHub:       "https://github.com/SanketsMane/weather-dashboard",
				Live:         "https://weather-dashboard-demo.vercel.app",
				Image:        "/api/placeholder/400/300",
			},
		},
		IsActive: true,
	}
}
