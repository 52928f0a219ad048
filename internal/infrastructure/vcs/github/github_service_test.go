package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tensorus/repoagent/internal/domain/models"
	"github.com/tensorus/repoagent/internal/i18n"
)

type clientMocks struct {
	repo   *MockRepoService
	issues *MockIssuesService
	prs    *MockPRService
	git    *MockGitService
}

func newTestClient(t *testing.T) (*GitHubClient, *clientMocks) {
	t.Helper()
	trans, err := i18n.NewTranslations("en")
	require.NoError(t, err)

	m := &clientMocks{
		repo:   new(MockRepoService),
		issues: new(MockIssuesService),
		prs:    new(MockPRService),
		git:    new(MockGitService),
	}
	client := NewGitHubClientWithServices(m.repo, m.issues, m.prs, m.git, trans)
	return client, m
}

var testRef = models.RepoRef{Owner: "tensorus", Name: "tensorus"}

func TestGetRepositoryInfo(t *testing.T) {
	t.Run("assembles the snapshot", func(t *testing.T) {
		client, m := newTestClient(t)

		m.repo.On("Get", mock.Anything, "tensorus", "tensorus").Return(&github.Repository{
			Description:     github.Ptr("A tensor database"),
			StargazersCount: github.Ptr(120),
			ForksCount:      github.Ptr(14),
			WatchersCount:   github.Ptr(120),
			OpenIssuesCount: github.Ptr(3),
			DefaultBranch:   github.Ptr("main"),
		}, nil, nil)
		m.repo.On("ListLanguages", mock.Anything, "tensorus", "tensorus").
			Return(map[string]int{"Python": 9000, "Dockerfile": 120, "Shell": 120}, nil, nil)
		m.repo.On("ListCommits", mock.Anything, "tensorus", "tensorus", mock.Anything).
			Return([]*github.RepositoryCommit{
				{Commit: &github.Commit{
					Message: github.Ptr("Add vector index"),
					Author:  &github.CommitAuthor{Name: github.Ptr("Ada")},
				}},
				{Commit: &github.Commit{Message: github.Ptr("Fix CI")}},
			}, nil, nil)
		m.issues.On("ListByRepo", mock.Anything, "tensorus", "tensorus", mock.MatchedBy(func(opts *github.IssueListByRepoOptions) bool {
			return opts.State == "open" && opts.ListOptions.PerPage == openIssueLimit
		})).Return([]*github.Issue{
			{Number: github.Ptr(4), Title: github.Ptr("Crash on empty query"), State: github.Ptr("open")},
		}, nil, nil)

		info, err := client.GetRepositoryInfo(context.Background(), testRef)
		require.NoError(t, err)

		assert.Equal(t, "A tensor database", info.Description)
		// Descending byte count, name breaks ties.
		assert.Equal(t, []string{"Python", "Dockerfile", "Shell"}, info.Languages)
		assert.Equal(t, 120, info.Stars)
		assert.Equal(t, "main", info.DefaultBranch)
		require.Len(t, info.RecentCommits, 2)
		assert.Equal(t, "Ada", info.RecentCommits[0].AuthorName)
		assert.Equal(t, "Unknown", info.RecentCommits[1].AuthorName)
		require.Len(t, info.OpenIssues, 1)
		assert.Equal(t, 4, info.OpenIssues[0].Number)
	})

	t.Run("missing description gets a placeholder", func(t *testing.T) {
		client, m := newTestClient(t)

		m.repo.On("Get", mock.Anything, "tensorus", "tensorus").
			Return(&github.Repository{DefaultBranch: github.Ptr("main")}, nil, nil)
		m.repo.On("ListLanguages", mock.Anything, "tensorus", "tensorus").
			Return(map[string]int{}, nil, nil)
		m.repo.On("ListCommits", mock.Anything, "tensorus", "tensorus", mock.Anything).
			Return([]*github.RepositoryCommit{}, nil, nil)
		m.issues.On("ListByRepo", mock.Anything, "tensorus", "tensorus", mock.Anything).
			Return([]*github.Issue{}, nil, nil)

		info, err := client.GetRepositoryInfo(context.Background(), testRef)
		require.NoError(t, err)
		assert.Equal(t, "No description", info.Description)
		assert.Empty(t, info.Languages)
	})

	t.Run("fetch failure is reported with the repo name", func(t *testing.T) {
		client, m := newTestClient(t)
		m.repo.On("Get", mock.Anything, "tensorus", "tensorus").
			Return(nil, nil, errors.New("404"))

		_, err := client.GetRepositoryInfo(context.Background(), testRef)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tensorus/tensorus")
	})
}

func TestListIssues(t *testing.T) {
	client, m := newTestClient(t)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.issues.On("ListByRepo", mock.Anything, "tensorus", "tensorus", mock.MatchedBy(func(opts *github.IssueListByRepoOptions) bool {
		return opts.State == "all"
	})).Return([]*github.Issue{
		{
			Number:    github.Ptr(1),
			Title:     github.Ptr("bug"),
			Body:      github.Ptr("details"),
			State:     github.Ptr("open"),
			CreatedAt: &github.Timestamp{Time: created},
			UpdatedAt: &github.Timestamp{Time: created},
			Comments:  github.Ptr(2),
		},
	}, nil, nil)

	// Empty state defaults to "all".
	issues, err := client.ListIssues(context.Background(), testRef, "")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "bug", issues[0].Title)
	assert.Equal(t, "2025-03-01T12:00:00Z", issues[0].CreatedAt)
	assert.Equal(t, 2, issues[0].Comments)
}

func TestCreateIssue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, m := newTestClient(t)

		m.issues.On("Create", mock.Anything, "tensorus", "tensorus", mock.MatchedBy(func(req *github.IssueRequest) bool {
			return req.GetTitle() == "[Testing] Add e2e suite" && req.GetBody() == "body"
		})).Return(&github.Issue{
			Number:  github.Ptr(9),
			Title:   github.Ptr("[Testing] Add e2e suite"),
			HTMLURL: github.Ptr("https://github.com/tensorus/tensorus/issues/9"),
		}, nil, nil)

		issue, err := client.CreateIssue(context.Background(), testRef, "[Testing] Add e2e suite", "body")
		require.NoError(t, err)
		assert.Equal(t, 9, issue.Number)
		assert.Equal(t, "https://github.com/tensorus/tensorus/issues/9", issue.URL)
	})

	t.Run("failure", func(t *testing.T) {
		client, m := newTestClient(t)
		m.issues.On("Create", mock.Anything, "tensorus", "tensorus", mock.Anything).
			Return(nil, nil, errors.New("403"))

		_, err := client.CreateIssue(context.Background(), testRef, "t", "b")
		assert.Error(t, err)
	})
}

func TestGetPullRequest(t *testing.T) {
	client, m := newTestClient(t)

	m.prs.On("Get", mock.Anything, "tensorus", "tensorus", 5).Return(&github.PullRequest{
		Number:       github.Ptr(5),
		Title:        github.Ptr("Add cache"),
		Body:         github.Ptr("caches hot tensors"),
		User:         &github.User{Login: github.Ptr("ada")},
		ChangedFiles: github.Ptr(3),
	}, nil, nil)

	pr, err := client.GetPullRequest(context.Background(), testRef, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, pr.Number)
	assert.Equal(t, "ada", pr.Author)
	assert.Equal(t, 3, pr.ChangedFiles)
}

func TestCreateReview(t *testing.T) {
	client, m := newTestClient(t)

	m.prs.On("CreateReview", mock.Anything, "tensorus", "tensorus", 5, mock.MatchedBy(func(req *github.PullRequestReviewRequest) bool {
		return req.GetBody() == "looks good" && req.GetEvent() == "COMMENT"
	})).Return(&github.PullRequestReview{
		ID:      github.Ptr(int64(77)),
		HTMLURL: github.Ptr("https://github.com/tensorus/tensorus/pull/5#pullrequestreview-77"),
	}, nil, nil)

	review, err := client.CreateReview(context.Background(), testRef, 5, "looks good")
	require.NoError(t, err)
	assert.Equal(t, int64(77), review.ID)
	assert.Equal(t, "looks good", review.Body)
}

func TestCreateBranch(t *testing.T) {
	t.Run("branches off the default branch tip", func(t *testing.T) {
		client, m := newTestClient(t)

		m.repo.On("Get", mock.Anything, "tensorus", "tensorus").
			Return(&github.Repository{DefaultBranch: github.Ptr("main")}, nil, nil)
		m.git.On("GetRef", mock.Anything, "tensorus", "tensorus", "refs/heads/main").
			Return(&github.Reference{
				Object: &github.GitObject{SHA: github.Ptr("abc123")},
			}, nil, nil)
		m.git.On("CreateRef", mock.Anything, "tensorus", "tensorus", mock.MatchedBy(func(ref github.CreateRef) bool {
			return ref.Ref == "refs/heads/feature/cache" && ref.SHA == "abc123"
		})).Return(&github.Reference{}, nil, nil)

		err := client.CreateBranch(context.Background(), testRef, "feature/cache")
		require.NoError(t, err)
		m.git.AssertExpectations(t)
	})

	t.Run("missing base ref fails", func(t *testing.T) {
		client, m := newTestClient(t)

		m.repo.On("Get", mock.Anything, "tensorus", "tensorus").
			Return(&github.Repository{DefaultBranch: github.Ptr("main")}, nil, nil)
		m.git.On("GetRef", mock.Anything, "tensorus", "tensorus", "refs/heads/main").
			Return(nil, nil, errors.New("422"))

		err := client.CreateBranch(context.Background(), testRef, "feature/cache")
		assert.Error(t, err)
		m.git.AssertNotCalled(t, "CreateRef", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreatePullRequest(t *testing.T) {
	client, m := newTestClient(t)

	m.repo.On("Get", mock.Anything, "tensorus", "tensorus").
		Return(&github.Repository{DefaultBranch: github.Ptr("main")}, nil, nil)
	m.prs.On("Create", mock.Anything, "tensorus", "tensorus", mock.MatchedBy(func(req *github.NewPullRequest) bool {
		return req.GetHead() == "feature/cache" && req.GetBase() == "main"
	})).Return(&github.PullRequest{
		Number:  github.Ptr(8),
		HTMLURL: github.Ptr("https://github.com/tensorus/tensorus/pull/8"),
	}, nil, nil)

	pr, err := client.CreatePullRequest(context.Background(), testRef, "Add cache", "body", "feature/cache")
	require.NoError(t, err)
	assert.Equal(t, 8, pr.Number)
	assert.Equal(t, "https://github.com/tensorus/tensorus/pull/8", pr.URL)
}

func TestSortedLanguages(t *testing.T) {
	got := sortedLanguages(map[string]int{"Go": 50, "Rust": 200, "Zig": 50})
	assert.Equal(t, []string{"Rust", "Go", "Zig"}, got)
}
