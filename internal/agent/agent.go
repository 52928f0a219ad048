package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/tensorus/repoagent/internal/analysis"
	"github.com/tensorus/repoagent/internal/domain/models"
	"github.com/tensorus/repoagent/internal/domain/ports"
	"github.com/tensorus/repoagent/internal/i18n"
)

const titleMaxLen = 50

// Agent orchestrates one analysis cycle: repository snapshot, prompt,
// model call, parse, and optionally filing the results back. It holds
// no repository state; the target repo is a parameter of every call.
type Agent struct {
	vcs   ports.VCSClient
	model ports.AIProvider
	trans *i18n.Translations
}

func New(vcs ports.VCSClient, model ports.AIProvider, trans *i18n.Translations) *Agent {
	return &Agent{
		vcs:   vcs,
		model: model,
		trans: trans,
	}
}

// AnalysisResult pairs the parsed suggestions with the repository
// snapshot they were derived from.
type AnalysisResult struct {
	Suggestions *models.SuggestionMap  `json:"suggestions"`
	Repository  *models.RepositoryInfo `json:"repository_info"`
}

// RunAnalysis fetches repository metadata, asks the model for
// categorized suggestions and parses the answer. No side effects on the
// hosting service. An empty suggestion map is a valid result.
func (a *Agent) RunAnalysis(ctx context.Context, cat analysis.Category, ref models.RepoRef) (*AnalysisResult, error) {
	info, err := a.vcs.GetRepositoryInfo(ctx, ref)
	if err != nil {
		return nil, err
	}

	prompt, err := analysis.BuildPrompt(cat, info)
	if err != nil {
		return nil, err
	}

	raw, err := a.model.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	suggestions := analysis.ParseSuggestions(raw, cat.Keys())
	if suggestions.Len() == 0 {
		clog.WarnContextf(ctx, "no suggestions extracted from model output for %s analysis of %s", cat, ref)
	}

	return &AnalysisResult{Suggestions: suggestions, Repository: info}, nil
}

// RunAnalysisAndFile runs the analysis and files one issue per
// suggestion. Creations are independent: a failure is logged and
// counted against, never aborting the remaining suggestions. Returns
// the full result including suggestions that failed to file, plus the
// number of issues actually created.
func (a *Agent) RunAnalysisAndFile(ctx context.Context, cat analysis.Category, ref models.RepoRef) (*AnalysisResult, int, error) {
	result, err := a.RunAnalysis(ctx, cat, ref)
	if err != nil {
		return nil, 0, err
	}

	created := 0
	for _, key := range result.Suggestions.Keys() {
		for _, suggestion := range result.Suggestions.Get(key) {
			if _, err := a.FileSuggestion(ctx, ref, key, suggestion); err != nil {
				clog.WarnContextf(ctx, "failed to file %s suggestion in %s: %v", key, ref, err)
				continue
			}
			created++
		}
	}
	clog.InfoContext(ctx, a.trans.GetMessage("issues_filed", created, map[string]interface{}{"Count": created}))
	return result, created, nil
}

// FileSuggestion files a single suggestion as an issue, with the
// synthesized title and the category footer.
func (a *Agent) FileSuggestion(ctx context.Context, ref models.RepoRef, category, suggestion string) (*models.CreatedIssue, error) {
	title := issueTitle(category, suggestion)
	footer := a.trans.GetMessage("issue_footer", 0, map[string]interface{}{
		"Category": analysis.Label(category),
	})
	body := suggestion + "\n\n" + footer
	return a.vcs.CreateIssue(ctx, ref, title, body)
}

// CreateIssue files an issue with a caller-provided title and body.
func (a *Agent) CreateIssue(ctx context.Context, ref models.RepoRef, title, body string) (*models.CreatedIssue, error) {
	return a.vcs.CreateIssue(ctx, ref, title, body)
}

// AnalyzePullRequest runs the review analysis for one pull request.
func (a *Agent) AnalyzePullRequest(ctx context.Context, ref models.RepoRef, number int) (*models.SuggestionMap, *models.PullRequestInfo, error) {
	pr, err := a.vcs.GetPullRequest(ctx, ref, number)
	if err != nil {
		return nil, nil, err
	}

	raw, err := a.model.Generate(ctx, analysis.BuildReviewPrompt(pr))
	if err != nil {
		return nil, nil, err
	}

	suggestions := analysis.ParseSuggestions(raw, analysis.CategoryReview.Keys())
	if suggestions.Len() == 0 {
		clog.WarnContextf(ctx, "no review feedback extracted from model output for %s#%d", ref, number)
	}
	return suggestions, pr, nil
}

// CreateReview analyzes a pull request and submits the feedback as a
// single comment-style review with one section per category.
func (a *Agent) CreateReview(ctx context.Context, ref models.RepoRef, number int) (*models.Review, error) {
	suggestions, _, err := a.AnalyzePullRequest(ctx, ref, number)
	if err != nil {
		return nil, err
	}

	body := a.composeReviewBody(suggestions)
	return a.vcs.CreateReview(ctx, ref, number, body)
}

// ProposeChanges comments proposed changes on an existing issue.
func (a *Agent) ProposeChanges(ctx context.Context, ref models.RepoRef, issueNumber int, changes string) error {
	text := fmt.Sprintf("Proposed changes:\n\n%s", changes)
	return a.vcs.CreateComment(ctx, ref, issueNumber, text)
}

// CreateBranch creates a branch off the repository's default branch.
func (a *Agent) CreateBranch(ctx context.Context, ref models.RepoRef, name string) error {
	return a.vcs.CreateBranch(ctx, ref, name)
}

// CreatePullRequest opens a pull request from head into the default branch.
func (a *Agent) CreatePullRequest(ctx context.Context, ref models.RepoRef, title, body, head string) (*models.CreatedPullRequest, error) {
	return a.vcs.CreatePullRequest(ctx, ref, title, body, head)
}

// ListIssues lists the repository's issues filtered by state.
func (a *Agent) ListIssues(ctx context.Context, ref models.RepoRef, state string) ([]models.Issue, error) {
	return a.vcs.ListIssues(ctx, ref, state)
}

// RepositoryInfo returns a fresh repository metadata snapshot.
func (a *Agent) RepositoryInfo(ctx context.Context, ref models.RepoRef) (*models.RepositoryInfo, error) {
	return a.vcs.GetRepositoryInfo(ctx, ref)
}

func (a *Agent) composeReviewBody(suggestions *models.SuggestionMap) string {
	var sb strings.Builder
	sb.WriteString("# " + a.trans.GetMessage("review_header", 0, nil) + "\n")
	for _, key := range analysis.CategoryReview.Keys() {
		items := suggestions.Get(key)
		if len(items) == 0 {
			continue
		}
		sb.WriteString("\n## " + analysis.Label(key) + "\n")
		for _, item := range items {
			sb.WriteString(item)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// issueTitle synthesizes "[Category Label] first fifty chars..." from a
// suggestion.
func issueTitle(category, suggestion string) string {
	head := suggestion
	if runes := []rune(suggestion); len(runes) > titleMaxLen {
		head = string(runes[:titleMaxLen]) + "..."
	}
	return fmt.Sprintf("[%s] %s", analysis.Label(category), head)
}
