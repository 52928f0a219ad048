package agent

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tensorus/repoagent/internal/domain/models"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetRepositoryInfo(ctx context.Context, ref models.RepoRef) (*models.RepositoryInfo, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepositoryInfo), args.Error(1)
}

func (m *MockVCSClient) ListIssues(ctx context.Context, ref models.RepoRef, state string) ([]models.Issue, error) {
	args := m.Called(ctx, ref, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockVCSClient) CreateIssue(ctx context.Context, ref models.RepoRef, title, body string) (*models.CreatedIssue, error) {
	args := m.Called(ctx, ref, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatedIssue), args.Error(1)
}

func (m *MockVCSClient) GetPullRequest(ctx context.Context, ref models.RepoRef, number int) (*models.PullRequestInfo, error) {
	args := m.Called(ctx, ref, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PullRequestInfo), args.Error(1)
}

func (m *MockVCSClient) CreateReview(ctx context.Context, ref models.RepoRef, number int, body string) (*models.Review, error) {
	args := m.Called(ctx, ref, number, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockVCSClient) CreateComment(ctx context.Context, ref models.RepoRef, issueNumber int, text string) error {
	args := m.Called(ctx, ref, issueNumber, text)
	return args.Error(0)
}

func (m *MockVCSClient) CreateBranch(ctx context.Context, ref models.RepoRef, name string) error {
	args := m.Called(ctx, ref, name)
	return args.Error(0)
}

func (m *MockVCSClient) CreatePullRequest(ctx context.Context, ref models.RepoRef, title, body, head string) (*models.CreatedPullRequest, error) {
	args := m.Called(ctx, ref, title, body, head)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatedPullRequest), args.Error(1)
}

type MockAIProvider struct {
	mock.Mock
}

func (m *MockAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
