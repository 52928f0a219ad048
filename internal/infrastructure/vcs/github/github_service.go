package github

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/tensorus/repoagent/internal/domain/models"
	"github.com/tensorus/repoagent/internal/domain/ports"
	"github.com/tensorus/repoagent/internal/i18n"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

const (
	recentCommitLimit = 10
	openIssueLimit    = 10
)

type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	ListLanguages(ctx context.Context, owner, repo string) (map[string]int, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type IssuesService interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
	CreateReview(ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, *github.Response, error)
}

type GitService interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref github.CreateRef) (*github.Reference, *github.Response, error)
}

// GitHubClient adapts the GitHub REST API to the VCSClient port. The
// target repository is a parameter of every call, never client state.
type GitHubClient struct {
	repoService   RepositoriesService
	issuesService IssuesService
	prService     PullRequestsService
	gitService    GitService
	trans         *i18n.Translations
}

func NewGitHubClient(token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		repoService:   client.Repositories,
		issuesService: client.Issues,
		prService:     client.PullRequests,
		gitService:    client.Git,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	repoService RepositoriesService,
	issuesService IssuesService,
	prService PullRequestsService,
	gitService GitService,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		repoService:   repoService,
		issuesService: issuesService,
		prService:     prService,
		gitService:    gitService,
		trans:         trans,
	}
}

// GetRepositoryInfo assembles a fresh metadata snapshot: repository
// record, language breakdown, the last commits and the open issues.
func (ghc *GitHubClient) GetRepositoryInfo(ctx context.Context, ref models.RepoRef) (*models.RepositoryInfo, error) {
	repo, _, err := ghc.repoService.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, ghc.repoError(ref, err)
	}

	languages, _, err := ghc.repoService.ListLanguages(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, ghc.repoError(ref, err)
	}

	commits, _, err := ghc.repoService.ListCommits(ctx, ref.Owner, ref.Name, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: recentCommitLimit},
	})
	if err != nil {
		return nil, ghc.repoError(ref, err)
	}

	openIssues, _, err := ghc.issuesService.ListByRepo(ctx, ref.Owner, ref.Name, &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: openIssueLimit},
	})
	if err != nil {
		return nil, ghc.repoError(ref, err)
	}

	description := repo.GetDescription()
	if description == "" {
		description = "No description"
	}

	info := &models.RepositoryInfo{
		Description:     description,
		Languages:       sortedLanguages(languages),
		Stars:           repo.GetStargazersCount(),
		Forks:           repo.GetForksCount(),
		Watchers:        repo.GetWatchersCount(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
		DefaultBranch:   repo.GetDefaultBranch(),
	}

	for _, c := range commits {
		info.RecentCommits = append(info.RecentCommits, models.CommitSummary{
			Message:    c.GetCommit().GetMessage(),
			AuthorName: commitAuthor(c),
		})
	}
	for _, issue := range openIssues {
		info.OpenIssues = append(info.OpenIssues, models.IssueSummary{
			Number: issue.GetNumber(),
			Title:  issue.GetTitle(),
			State:  issue.GetState(),
		})
	}
	return info, nil
}

func (ghc *GitHubClient) ListIssues(ctx context.Context, ref models.RepoRef, state string) ([]models.Issue, error) {
	if state == "" {
		state = "all"
	}
	issues, _, err := ghc.issuesService.ListByRepo(ctx, ref.Owner, ref.Name, &github.IssueListByRepoOptions{
		State: state,
	})
	if err != nil {
		return nil, ghc.repoError(ref, err)
	}

	result := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, models.Issue{
			Number:    issue.GetNumber(),
			Title:     issue.GetTitle(),
			Body:      issue.GetBody(),
			State:     issue.GetState(),
			CreatedAt: issue.GetCreatedAt().Format(time.RFC3339),
			UpdatedAt: issue.GetUpdatedAt().Format(time.RFC3339),
			Comments:  issue.GetComments(),
		})
	}
	return result, nil
}

func (ghc *GitHubClient) CreateIssue(ctx context.Context, ref models.RepoRef, title, body string) (*models.CreatedIssue, error) {
	issue, _, err := ghc.issuesService.Create(ctx, ref.Owner, ref.Name, &github.IssueRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
	})
	if err != nil {
		msg := ghc.trans.GetMessage("error_creating_issue", 0, map[string]interface{}{
			"Repo":  ref.String(),
			"Error": err.Error(),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &models.CreatedIssue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
	}, nil
}

func (ghc *GitHubClient) GetPullRequest(ctx context.Context, ref models.RepoRef, number int) (*models.PullRequestInfo, error) {
	pr, _, err := ghc.prService.Get(ctx, ref.Owner, ref.Name, number)
	if err != nil {
		msg := ghc.trans.GetMessage("error_fetching_pr", 0, map[string]interface{}{
			"Number": number,
			"Error":  err.Error(),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &models.PullRequestInfo{
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		Body:         pr.GetBody(),
		Author:       pr.GetUser().GetLogin(),
		CreatedAt:    pr.GetCreatedAt().Format(time.RFC3339),
		ChangedFiles: pr.GetChangedFiles(),
	}, nil
}

func (ghc *GitHubClient) CreateReview(ctx context.Context, ref models.RepoRef, number int, body string) (*models.Review, error) {
	review, _, err := ghc.prService.CreateReview(ctx, ref.Owner, ref.Name, number, &github.PullRequestReviewRequest{
		Body:  github.Ptr(body),
		Event: github.Ptr("COMMENT"),
	})
	if err != nil {
		msg := ghc.trans.GetMessage("error_creating_review", 0, map[string]interface{}{
			"Number": number,
			"Error":  err.Error(),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &models.Review{
		ID:   review.GetID(),
		URL:  review.GetHTMLURL(),
		Body: body,
	}, nil
}

func (ghc *GitHubClient) CreateComment(ctx context.Context, ref models.RepoRef, issueNumber int, text string) error {
	_, _, err := ghc.issuesService.CreateComment(ctx, ref.Owner, ref.Name, issueNumber, &github.IssueComment{
		Body: github.Ptr(text),
	})
	if err != nil {
		return fmt.Errorf("error commenting on issue #%d: %w", issueNumber, err)
	}
	return nil
}

// CreateBranch creates refs/heads/<name> pointing at the tip of the
// default branch.
func (ghc *GitHubClient) CreateBranch(ctx context.Context, ref models.RepoRef, name string) error {
	repo, _, err := ghc.repoService.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return ghc.repoError(ref, err)
	}

	base, _, err := ghc.gitService.GetRef(ctx, ref.Owner, ref.Name, "refs/heads/"+repo.GetDefaultBranch())
	if err != nil {
		return fmt.Errorf("error resolving default branch of %s: %w", ref, err)
	}

	_, _, err = ghc.gitService.CreateRef(ctx, ref.Owner, ref.Name, github.CreateRef{
		Ref: "refs/heads/" + name,
		SHA: base.GetObject().GetSHA(),
	})
	if err != nil {
		return fmt.Errorf("error creating branch %q in %s: %w", name, ref, err)
	}
	return nil
}

func (ghc *GitHubClient) CreatePullRequest(ctx context.Context, ref models.RepoRef, title, body, head string) (*models.CreatedPullRequest, error) {
	repo, _, err := ghc.repoService.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, ghc.repoError(ref, err)
	}

	pr, _, err := ghc.prService.Create(ctx, ref.Owner, ref.Name, &github.NewPullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
		Head:  github.Ptr(head),
		Base:  github.Ptr(repo.GetDefaultBranch()),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating pull request in %s: %w", ref, err)
	}

	return &models.CreatedPullRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
	}, nil
}

func (ghc *GitHubClient) repoError(ref models.RepoRef, err error) error {
	msg := ghc.trans.GetMessage("error_fetching_repository", 0, map[string]interface{}{
		"Repo":  ref.String(),
		"Error": err.Error(),
	})
	return fmt.Errorf("%s", msg)
}

// commitAuthor prefers the git author name and falls back to "Unknown",
// matching the prompt's commit line format.
func commitAuthor(c *github.RepositoryCommit) string {
	if name := c.GetCommit().GetAuthor().GetName(); name != "" {
		return name
	}
	return "Unknown"
}

// sortedLanguages orders languages by byte count descending, the order
// the hosting service itself reports them in.
func sortedLanguages(languages map[string]int) []string {
	keys := make([]string, 0, len(languages))
	for k := range languages {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if languages[keys[i]] != languages[keys[j]] {
			return languages[keys[i]] > languages[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
