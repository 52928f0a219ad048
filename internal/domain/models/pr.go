package models

type (
	// PullRequestInfo holds the pull request fields embedded into the
	// review prompt.
	PullRequestInfo struct {
		Number       int    `json:"number"`
		Title        string `json:"title"`
		Body         string `json:"body"`
		Author       string `json:"author"`
		CreatedAt    string `json:"created_at"`
		ChangedFiles int    `json:"changed_files"`
	}

	// Review records a submitted pull request review.
	Review struct {
		ID   int64  `json:"review_id"`
		URL  string `json:"review_url"`
		Body string `json:"review_body"`
	}

	// CreatedPullRequest records a pull request opened by the agent.
	CreatedPullRequest struct {
		Number int    `json:"number"`
		URL    string `json:"url"`
	}
)
