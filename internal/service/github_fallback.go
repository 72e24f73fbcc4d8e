package service

import "github.com/sanketsmane/portfolio-api/internal/model"

// Static payloads served when the GitHub API is unavailable, so the public
// site always has content to render.

func fallbackStats() *model.GitHubStats {
	return &model.GitHubStats{
		Profile: model.GitHubProfile{
			Name:      "Sanket Mane",
			Bio:       "Full Stack Developer",
			Location:  "Kolhapur, Maharashtra, India",
			Followers: 25,
			Following: 50,
			HTMLURL:   "https://github.com/SanketsMane",
		},
		Stats: model.RepoTotals{
			TotalRepos:    15,
			PublicRepos:   15,
			TotalStars:    45,
			TotalForks:    12,
			TotalWatchers: 30,
			Followers:     25,
			Following:     50,
		},
		Languages: []model.LanguageCount{
			{Language: "JavaScript", Count: 8},
			{Language: "Python", Count: 3},
			{Language: "TypeScript", Count: 2},
			{Language: "HTML", Count: 4},
			{Language: "CSS", Count: 4},
		},
		RecentRepos: []model.RepoSummary{
			{
				Name:        "portfolio-website",
				Description: "My personal portfolio website built with React and Node.js",
				Language:    "JavaScript",
				Stars:       15,
				Forks:       3,
				URL:         "https://github.com/SanketsMane/portfolio-website",
				CreatedAt:   "2024-01-15T10:30:00Z",
				UpdatedAt:   "2024-01-20T14:45:00Z",
			},
			{
				Name:        "ecommerce-platform",
				Description: "Full-stack e-commerce solution with React and Node.js",
				Language:    "JavaScript",
				Stars:       12,
				Forks:       5,
				URL:         "https://github.com/SanketsMane/ecommerce-platform",
				CreatedAt:   "2023-12-01T09:15:00Z",
				UpdatedAt:   "2023-12-15T16:20:00Z",
			},
		},
		Contributions: placeholderContributions(),
	}
}

func fallbackProjects() []model.ProjectEntry {
	return []model.ProjectEntry{
		{
			ID:           1,
			Title:        "E-Commerce Platform",
			Description:  "Full-stack e-commerce solution with React frontend and Node.js backend",
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Tailwind CSS"},
			GitHub:       "https://github.com/SanketsMane/ecommerce-platform",
			Live:         "https://ecommerce-demo.vercel.app",
			Image:        "/api/placeholder/400/300",
			Stars:        12,
			Forks:        5,
			Language:     "JavaScript",
			CreatedAt:    "2023-12-01T09:15:00Z",
			UpdatedAt:    "2023-12-15T16:20:00Z",
			Topics:       []string{},
		},
		{
			ID:           2,
			Title:        "Task Management App",
			Description:  "Collaborative task management application with real-time updates",
			Technologies: []string{"React", "Firebase", "Material-UI"},
			GitHub:       "https://github.com/SanketsMane/task-manager",
			Live:         "https://task-manager-demo.netlify.app",
			Image:        "/api/placeholder/400/300",
			Stars:        8,
			Forks:        3,
			Language:     "JavaScript",
			CreatedAt:    "2023-11-01T10:20:00Z",
			UpdatedAt:    "2023-11-20T14:30:00Z",
			Topics:       []string{},
		},
	}
}
