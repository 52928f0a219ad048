package ports

import (
	"context"

	"github.com/tensorus/repoagent/internal/domain/models"
)

// VCSClient is the capability the agents need from the source hosting
// service. Every call names its target repository explicitly.
type VCSClient interface {
	// GetRepositoryInfo fetches a fresh metadata snapshot including
	// recent commits and open issues.
	GetRepositoryInfo(ctx context.Context, ref models.RepoRef) (*models.RepositoryInfo, error)

	// ListIssues lists issues filtered by state ("open", "closed" or "all").
	ListIssues(ctx context.Context, ref models.RepoRef, state string) ([]models.Issue, error)

	// CreateIssue files a new issue and returns its number and URL.
	CreateIssue(ctx context.Context, ref models.RepoRef, title, body string) (*models.CreatedIssue, error)

	// GetPullRequest fetches the metadata of a single pull request.
	GetPullRequest(ctx context.Context, ref models.RepoRef, number int) (*models.PullRequestInfo, error)

	// CreateReview submits a review on a pull request.
	CreateReview(ctx context.Context, ref models.RepoRef, number int, body string) (*models.Review, error)

	// CreateComment adds a comment to an existing issue.
	CreateComment(ctx context.Context, ref models.RepoRef, issueNumber int, text string) error

	// CreateBranch creates a branch off the repository's default branch.
	CreateBranch(ctx context.Context, ref models.RepoRef, name string) error

	// CreatePullRequest opens a pull request from head into the default branch.
	CreatePullRequest(ctx context.Context, ref models.RepoRef, title, body, head string) (*models.CreatedPullRequest, error)
}
