package model

// Projections of GitHub API data returned by the aggregation endpoints.

type GitHubProfile struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Company   string `json:"company,omitempty"`
	Blog      string `json:"blog,omitempty"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	AvatarURL string `json:"avatarUrl"`
	HTMLURL   string `json:"htmlUrl"`
}

type RepoTotals struct {
	TotalRepos    int `json:"totalRepos"`
	PublicRepos   int `json:"publicRepos"`
	TotalStars    int `json:"totalStars"`
	TotalForks    int `json:"totalForks"`
	TotalWatchers int `json:"totalWatchers"`
	Followers     int `json:"followers"`
	Following     int `json:"following"`
}

type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ContributionSummary carries fixed placeholder numbers. GitHub only exposes
// the contribution graph through its GraphQL API, which this service does not
// call; see the GitHubService docs.
type ContributionSummary struct {
	TotalContributions  int `json:"totalContributions"`
	WeeklyContributions int `json:"weeklyContributions"`
	Streak              int `json:"streak"`
}

type GitHubStats struct {
	Profile       GitHubProfile       `json:"profile"`
	Stats         RepoTotals          `json:"stats"`
	Languages     []LanguageCount     `json:"languages"`
	RecentRepos   []RepoSummary       `json:"recentRepos"`
	Contributions ContributionSummary `json:"contributions"`
}

// RepoListing is the flat passthrough projection used by the repos endpoint.
type RepoListing struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Watchers    int      `json:"watchers"`
	URL         string   `json:"url"`
	Homepage    string   `json:"homepage"`
	Topics      []string `json:"topics"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
	PushedAt    string   `json:"pushedAt"`
}

type LanguageBytes struct {
	Language   string `json:"language"`
	Bytes      int    `json:"bytes"`
	Percentage string `json:"percentage"`
}

type LanguageBreakdown struct {
	TotalBytes int             `json:"totalBytes"`
	Languages  []LanguageBytes `json:"languages"`
}

// ProjectEntry is a repository mapped into a portfolio-shaped project.
type ProjectEntry struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Live         string   `json:"live"`
	Image        string   `json:"image"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	Language     string   `json:"language"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
	Topics       []string `json:"topics"`
}
