package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoFixture(name, language, description string, mutate ...func(*github.Repository)) *github.Repository {
	repo := &github.Repository{
		Name:        github.Ptr(name),
		Language:    github.Ptr(language),
		Description: github.Ptr(description),
		Size:        github.Ptr(100),
		Fork:        github.Ptr(false),
	}
	for _, fn := range mutate {
		fn(repo)
	}
	return repo
}

func stubClient(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return client
}

func failingClient(t *testing.T) *github.Client {
	return stubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
}

func TestLanguageHistogramCountsAndSorts(t *testing.T) {
	repos := []*github.Repository{
		repoFixture("a", "Go", "x"),
		repoFixture("b", "JavaScript", "x"),
		repoFixture("c", "Go", "x"),
		repoFixture("d", "JavaScript", "x"),
		repoFixture("e", "Go", "x"),
		repoFixture("f", "Python", "x"),
		repoFixture("g", "", "x"),
	}

	histogram := languageHistogram(repos)
	require.Len(t, histogram, 3)
	assert.Equal(t, "Go", histogram[0].Language)
	assert.Equal(t, 3, histogram[0].Count)
	assert.Equal(t, "JavaScript", histogram[1].Language)
	assert.Equal(t, 2, histogram[1].Count)
	assert.Equal(t, "Python", histogram[2].Language)
}

func TestLanguageHistogramTiesKeepScanOrder(t *testing.T) {
	repos := []*github.Repository{
		repoFixture("a", "Rust", "x"),
		repoFixture("b", "Zig", "x"),
	}

	histogram := languageHistogram(repos)
	require.Len(t, histogram, 2)
	assert.Equal(t, "Rust", histogram[0].Language)
	assert.Equal(t, "Zig", histogram[1].Language)
}

func TestLanguageHistogramScansFirstTwentyOnly(t *testing.T) {
	var repos []*github.Repository
	for i := 0; i < 20; i++ {
		repos = append(repos, repoFixture(fmt.Sprintf("r%d", i), "Go", "x"))
	}
	repos = append(repos, repoFixture("late", "COBOL", "x"))

	histogram := languageHistogram(repos)
	require.Len(t, histogram, 1)
	assert.Equal(t, "Go", histogram[0].Language)
	assert.Equal(t, 20, histogram[0].Count)
}

func TestRecentReposNewestFirstCapped(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var repos []*github.Repository
	for i := 0; i < 8; i++ {
		created := base.AddDate(0, 0, i)
		repos = append(repos, repoFixture(fmt.Sprintf("r%d", i), "Go", "x", func(r *github.Repository) {
			r.CreatedAt = &github.Timestamp{Time: created}
		}))
	}

	recent := recentRepos(repos)
	require.Len(t, recent, 6)
	assert.Equal(t, "r7", recent[0].Name)
	assert.Equal(t, "r2", recent[5].Name)
}

func TestIncludeAsProject(t *testing.T) {
	assert.True(t, includeAsProject(repoFixture("portfolio-website", "Go", "My site")))

	fork := repoFixture("forked", "Go", "desc", func(r *github.Repository) { r.Fork = github.Ptr(true) })
	assert.False(t, includeAsProject(fork))

	assert.False(t, includeAsProject(repoFixture("no-description", "Go", "")))
	assert.False(t, includeAsProject(repoFixture("nvim-config", "Lua", "my config")))
	assert.False(t, includeAsProject(repoFixture("dotfiles", "Shell", "my dotfiles")))

	empty := repoFixture("empty", "Go", "desc", func(r *github.Repository) { r.Size = github.Ptr(0) })
	assert.False(t, includeAsProject(empty))
}

func TestTitleFromRepoName(t *testing.T) {
	assert.Equal(t, "Task Manager App", titleFromRepoName("task-manager-app"))
	assert.Equal(t, "Portfolio", titleFromRepoName("portfolio"))
	assert.Equal(t, "Weather Dashboard", titleFromRepoName("weather-dashboard"))
}

func TestProjectFromRepoTechnologiesAndLiveURL(t *testing.T) {
	repo := repoFixture("task-manager", "JavaScript", "Task app", func(r *github.Repository) {
		r.Topics = []string{"react", "mongodb", "some-unknown-topic"}
	})

	project := projectFromRepo(repo)
	assert.Equal(t, "Task Manager", project.Title)
	assert.Equal(t, []string{"JavaScript", "React", "MongoDB", "some-unknown-topic"}, project.Technologies)
	assert.Equal(t, "https://task-manager.vercel.app", project.Live)
	assert.Equal(t, "/api/placeholder/400/300", project.Image)
}

func TestProjectFromRepoPrefersHomepage(t *testing.T) {
	repo := repoFixture("my-site", "Go", "site", func(r *github.Repository) {
		r.Homepage = github.Ptr("https://example.com")
	})

	assert.Equal(t, "https://example.com", projectFromRepo(repo).Live)
}

func TestStatsFallsBackWhenUpstreamFails(t *testing.T) {
	svc := NewGitHubServiceWithClient(failingClient(t), "testuser")

	stats := svc.Stats(context.Background())
	require.NotNil(t, stats)
	assert.Equal(t, fallbackStats(), stats)
}

func TestProjectsFallBackWhenUpstreamFails(t *testing.T) {
	svc := NewGitHubServiceWithClient(failingClient(t), "testuser")

	projects := svc.Projects(context.Background())
	assert.Equal(t, fallbackProjects(), projects)
}

func TestReposPropagatesUpstreamError(t *testing.T) {
	svc := NewGitHubServiceWithClient(failingClient(t), "testuser")

	_, err := svc.Repos(context.Background(), 1, 10, "")
	assert.Error(t, err)
}

func TestLanguagesPropagatesUpstreamError(t *testing.T) {
	svc := NewGitHubServiceWithClient(failingClient(t), "testuser")

	_, err := svc.Languages(context.Background())
	assert.Error(t, err)
}

func TestStatsAggregatesProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/testuser", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":"testuser","name":"Test User","bio":"hello","followers":10,"following":3}`)
	})
	mux.HandleFunc("/users/testuser/repos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"name":"one","language":"Go","stargazers_count":5,"forks_count":2,"watchers_count":5,"private":false},
			{"name":"two","language":"Go","stargazers_count":1,"forks_count":0,"watchers_count":1,"private":false},
			{"name":"three","language":"JavaScript","stargazers_count":0,"forks_count":1,"watchers_count":0,"private":true}
		]`)
	})

	svc := NewGitHubServiceWithClient(stubClient(t, mux), "testuser")

	stats := svc.Stats(context.Background())
	require.NotNil(t, stats)
	assert.Equal(t, "Test User", stats.Profile.Name)
	assert.Equal(t, 10, stats.Profile.Followers)
	assert.Equal(t, 3, stats.Stats.TotalRepos)
	assert.Equal(t, 2, stats.Stats.PublicRepos)
	assert.Equal(t, 6, stats.Stats.TotalStars)
	assert.Equal(t, 3, stats.Stats.TotalForks)
	require.Len(t, stats.Languages, 2)
	assert.Equal(t, "Go", stats.Languages[0].Language)
	assert.Equal(t, 2, stats.Languages[0].Count)
}
