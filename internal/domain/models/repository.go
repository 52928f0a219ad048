package models

// RepoRef identifies the repository a call operates on. It is passed
// explicitly through every operation instead of being held as shared
// state, so concurrent requests for different repositories never
// interfere with each other.
type RepoRef struct {
	Owner string `json:"owner"`
	Name  string `json:"repo"`
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// RepositoryInfo is a read-only snapshot of repository metadata, fetched
// fresh for every analysis call and never cached.
type RepositoryInfo struct {
	Description     string          `json:"description"`
	Languages       []string        `json:"languages"`
	Stars           int             `json:"stars"`
	Forks           int             `json:"forks"`
	Watchers        int             `json:"watchers"`
	OpenIssuesCount int             `json:"open_issues_count"`
	DefaultBranch   string          `json:"default_branch"`
	RecentCommits   []CommitSummary `json:"recent_commits"`
	OpenIssues      []IssueSummary  `json:"open_issues"`
}

// CommitSummary carries the commit fields embedded into prompts.
type CommitSummary struct {
	Message    string `json:"message"`
	AuthorName string `json:"author_name"`
}

// IssueSummary is the compact issue shape included in RepositoryInfo.
type IssueSummary struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
}
