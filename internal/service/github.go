package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/sanketsmane/portfolio-api/internal/model"
)

const (
	statsRepoLimit     = 100
	histogramRepoLimit = 20
	languageRepoLimit  = 50
	recentRepoLimit    = 6
	histogramTopN      = 10
)

// GitHubService aggregates a GitHub user's public repositories into
// display-ready statistics and portfolio projects.
//
// Stats and Projects never fail: on any upstream error they substitute a
// fixed fallback payload so the public site always has content to render.
// Repos and Languages propagate upstream errors to the caller.
//
// The contributions block in Stats carries fixed placeholder numbers; the
// contribution graph is only available through GitHub's GraphQL API, which
// this service does not query.
type GitHubService struct {
	client   *github.Client
	username string
}

func NewGitHubService(username, token string) *GitHubService {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubService{client: client, username: username}
}

// NewGitHubServiceWithClient injects a preconfigured API client. Used by
// tests to point the service at a stub server.
func NewGitHubServiceWithClient(client *github.Client, username string) *GitHubService {
	return &GitHubService{client: client, username: username}
}

func (s *GitHubService) listRepos(ctx context.Context, opts *github.RepositoryListByUserOptions) ([]*github.Repository, error) {
	repos, _, err := s.client.Repositories.ListByUser(ctx, s.username, opts)
	return repos, err
}

// Stats returns the aggregated profile statistics, or the fallback payload on
// any upstream failure.
func (s *GitHubService) Stats(ctx context.Context) *model.GitHubStats {
	user, _, err := s.client.Users.Get(ctx, s.username)
	if err != nil {
		slog.Warn("github stats fetch failed, serving fallback", "error", err, "username", s.username)
		return fallbackStats()
	}

	repos, err := s.listRepos(ctx, &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: statsRepoLimit},
	})
	if err != nil {
		slog.Warn("github repo listing failed, serving fallback", "error", err, "username", s.username)
		return fallbackStats()
	}

	totals := model.RepoTotals{
		TotalRepos: len(repos),
		Followers:  user.GetFollowers(),
		Following:  user.GetFollowing(),
	}
	for _, repo := range repos {
		if !repo.GetPrivate() {
			totals.PublicRepos++
		}
		totals.TotalStars += repo.GetStargazersCount()
		totals.TotalForks += repo.GetForksCount()
		totals.TotalWatchers += repo.GetWatchersCount()
	}

	return &model.GitHubStats{
		Profile: model.GitHubProfile{
			Name:      user.GetName(),
			Bio:       user.GetBio(),
			Location:  user.GetLocation(),
			Company:   user.GetCompany(),
			Blog:      user.GetBlog(),
			Followers: user.GetFollowers(),
			Following: user.GetFollowing(),
			CreatedAt: timestamp(user.GetCreatedAt()),
			UpdatedAt: timestamp(user.GetUpdatedAt()),
			AvatarURL: user.GetAvatarURL(),
			HTMLURL:   user.GetHTMLURL(),
		},
		Stats:         totals,
		Languages:     languageHistogram(repos),
		RecentRepos:   recentRepos(repos),
		Contributions: placeholderContributions(),
	}
}

// languageHistogram counts primary languages over the first repositories in
// scan order, keeping the top entries sorted by count descending. Ties keep
// first-encountered order.
func languageHistogram(repos []*github.Repository) []model.LanguageCount {
	counts := map[string]int{}
	var order []string

	limit := min(len(repos), histogramRepoLimit)
	for _, repo := range repos[:limit] {
		lang := repo.GetLanguage()
		if lang == "" {
			continue
		}
		if _, seen := counts[lang]; !seen {
			order = append(order, lang)
		}
		counts[lang]++
	}

	histogram := make([]model.LanguageCount, 0, len(order))
	for _, lang := range order {
		histogram = append(histogram, model.LanguageCount{Language: lang, Count: counts[lang]})
	}
	sort.SliceStable(histogram, func(i, j int) bool {
		return histogram[i].Count > histogram[j].Count
	})

	if len(histogram) > histogramTopN {
		histogram = histogram[:histogramTopN]
	}
	return histogram
}

// recentRepos returns the most recently created repositories, newest first.
func recentRepos(repos []*github.Repository) []model.RepoSummary {
	sorted := make([]*github.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GetCreatedAt().Time.After(sorted[j].GetCreatedAt().Time)
	})

	limit := min(len(sorted), recentRepoLimit)
	recent := make([]model.RepoSummary, 0, limit)
	for _, repo := range sorted[:limit] {
		recent = append(recent, model.RepoSummary{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			URL:         repo.GetHTMLURL(),
			CreatedAt:   timestamp(repo.GetCreatedAt()),
			UpdatedAt:   timestamp(repo.GetUpdatedAt()),
		})
	}
	return recent
}

// Repos returns a paginated passthrough projection of the user's
// repositories. Upstream errors propagate.
func (s *GitHubService) Repos(ctx context.Context, page, perPage int, sortBy string) ([]model.RepoListing, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if sortBy == "" {
		sortBy = "updated"
	}

	repos, err := s.listRepos(ctx, &github.RepositoryListByUserOptions{
		Sort:      sortBy,
		Direction: "desc",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	listings := make([]model.RepoListing, 0, len(repos))
	for _, repo := range repos {
		listings = append(listings, model.RepoListing{
			ID:          repo.GetID(),
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			Forks:       repo.GetForksCount(),
			Watchers:    repo.GetWatchersCount(),
			URL:         repo.GetHTMLURL(),
			Homepage:    repo.GetHomepage(),
			Topics:      topics(repo),
			CreatedAt:   timestamp(repo.GetCreatedAt()),
			UpdatedAt:   timestamp(repo.GetUpdatedAt()),
			PushedAt:    timestamp(repo.GetPushedAt()),
		})
	}
	return listings, nil
}

// Languages accumulates per-repository language byte counts across the first
// repositories of the account. Failures for individual repositories are
// logged and skipped; a failure of the repository listing itself propagates.
func (s *GitHubService) Languages(ctx context.Context) (*model.LanguageBreakdown, error) {
	repos, err := s.listRepos(ctx, &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: statsRepoLimit},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	bytesPerLanguage := map[string]int{}
	var order []string
	totalBytes := 0

	limit := min(len(repos), languageRepoLimit)
	for _, repo := range repos[:limit] {
		owner := repo.GetOwner().GetLogin()
		if owner == "" {
			owner = s.username
		}

		languages, _, err := s.client.Repositories.ListLanguages(ctx, owner, repo.GetName())
		if err != nil {
			slog.Warn("failed to fetch repository languages", "error", err, "repo", repo.GetName())
			continue
		}

		for lang, bytes := range languages {
			if _, seen := bytesPerLanguage[lang]; !seen {
				order = append(order, lang)
			}
			bytesPerLanguage[lang] += bytes
			totalBytes += bytes
		}
	}

	breakdown := make([]model.LanguageBytes, 0, len(order))
	for _, lang := range order {
		bytes := bytesPerLanguage[lang]
		pct := 0.0
		if totalBytes > 0 {
			pct = float64(bytes) / float64(totalBytes) * 100
		}
		breakdown = append(breakdown, model.LanguageBytes{
			Language:   lang,
			Bytes:      bytes,
			Percentage: strconv.FormatFloat(pct, 'f', 1, 64),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Bytes > breakdown[j].Bytes
	})

	return &model.LanguageBreakdown{
		TotalBytes: totalBytes,
		Languages:  breakdown,
	}, nil
}

// Projects maps the user's repositories into portfolio project entries, or
// returns the fallback list on any upstream failure.
func (s *GitHubService) Projects(ctx context.Context) []model.ProjectEntry {
	repos, err := s.listRepos(ctx, &github.RepositoryListByUserOptions{
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: statsRepoLimit},
	})
	if err != nil {
		slog.Warn("github projects fetch failed, serving fallback", "error", err, "username", s.username)
		return fallbackProjects()
	}

	projects := make([]model.ProjectEntry, 0, len(repos))
	for _, repo := range repos {
		if !includeAsProject(repo) {
			continue
		}
		projects = append(projects, projectFromRepo(repo))
	}
	return projects
}

// includeAsProject filters out repositories that don't present well as
// portfolio entries: forks, repos without a description, config/dotfiles
// repos and empty repos.
func includeAsProject(repo *github.Repository) bool {
	name := repo.GetName()
	return !repo.GetFork() &&
		repo.GetDescription() != "" &&
		!strings.Contains(name, "config") &&
		!strings.Contains(name, "dotfiles") &&
		repo.GetSize() > 0
}

func projectFromRepo(repo *github.Repository) model.ProjectEntry {
	technologies := []string{}
	if lang := repo.GetLanguage(); lang != "" {
		technologies = append(technologies, lang)
	}
	for _, topic := range topics(repo) {
		technologies = append(technologies, topicTechnology(topic))
	}

	live := repo.GetHomepage()
	if live == "" {
		live = fmt.Sprintf("https://%s.vercel.app", repo.GetName())
	}

	return model.ProjectEntry{
		ID:           repo.GetID(),
		Title:        titleFromRepoName(repo.GetName()),
		Description:  repo.GetDescription(),
		Technologies: technologies,
		GitHub:       repo.GetHTMLURL(),
		Live:         live,
		Image:        "/api/placeholder/400/300",
		Stars:        repo.GetStargazersCount(),
		Forks:        repo.GetForksCount(),
		Language:     repo.GetLanguage(),
		CreatedAt:    timestamp(repo.GetCreatedAt()),
		UpdatedAt:    timestamp(repo.GetUpdatedAt()),
		Topics:       topics(repo),
	}
}

// titleFromRepoName turns "task-manager-app" into "Task Manager App".
func titleFromRepoName(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// topicTechnologies maps repository topics to display names. Unmapped topics
// pass through as-is.
var topicTechnologies = map[string]string{
	"react":       "React",
	"nodejs":      "Node.js",
	"javascript":  "JavaScript",
	"typescript":  "TypeScript",
	"mongodb":     "MongoDB",
	"express":     "Express",
	"tailwindcss": "Tailwind CSS",
	"firebase":    "Firebase",
	"nextjs":      "Next.js",
	"vue":         "Vue.js",
	"angular":     "Angular",
	"python":      "Python",
	"django":      "Django",
	"flask":       "Flask",
	"postgresql":  "PostgreSQL",
	"mysql":       "MySQL",
	"redis":       "Redis",
	"docker":      "Docker",
	"aws":         "AWS",
	"vercel":      "Vercel",
	"netlify":     "Netlify",
	"golang":      "Go",
}

func topicTechnology(topic string) string {
	if tech, ok := topicTechnologies[strings.ToLower(topic)]; ok {
		return tech
	}
	return topic
}

func topics(repo *github.Repository) []string {
	if repo.Topics == nil {
		return []string{}
	}
	return repo.Topics
}

func timestamp(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}

func placeholderContributions() model.ContributionSummary {
	return model.ContributionSummary{
		TotalContributions:  150,
		WeeklyContributions: 8,
		Streak:              5,
	}
}
