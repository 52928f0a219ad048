package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/tensorus/repoagent/internal/agent"
	"github.com/tensorus/repoagent/internal/analysis"
	"github.com/tensorus/repoagent/internal/config"
	"github.com/tensorus/repoagent/internal/domain/models"
)

type Handler struct {
	cfg   *config.Config
	agent *agent.Agent
}

func NewHandler(cfg *config.Config, ag *agent.Agent) *Handler {
	return &Handler{cfg: cfg, agent: ag}
}

type repoRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// resolveRef picks the target repository: the request's owner/repo when
// present, otherwise the configured default.
func (h *Handler) resolveRef(owner, repo string) (models.RepoRef, bool) {
	if owner != "" && repo != "" {
		return models.RepoRef{Owner: owner, Name: repo}, true
	}
	if o, n, ok := h.cfg.DefaultRepo(); ok {
		return models.RepoRef{Owner: o, Name: n}, true
	}
	return models.RepoRef{}, false
}

// Analyze runs one analysis category against a repository, optionally
// filing every suggestion as an issue.
func (h *Handler) Analyze(c fiber.Ctx) error {
	cat, err := analysis.ParseCategory(c.Params("category"))
	if err != nil || cat == analysis.CategoryReview {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown analysis category"})
	}

	var req struct {
		repoRequest
		FileIssues bool `json:"file_issues"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ref, ok := h.resolveRef(req.Owner, req.Repo)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}

	var (
		result  *agent.AnalysisResult
		created int
	)
	if req.FileIssues {
		result, created, err = h.agent.RunAnalysisAndFile(c.Context(), cat, ref)
	} else {
		result, err = h.agent.RunAnalysis(c.Context(), cat, ref)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":          "success",
		"suggestions":     result.Suggestions,
		"issues_created":  created,
		"repository_info": result.Repository,
	})
}

// ReviewPR analyzes a pull request without submitting a review.
func (h *Handler) ReviewPR(c fiber.Ctx) error {
	var req struct {
		repoRequest
		PRNumber int `json:"pr_number"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ref, ok := h.resolveRef(req.Owner, req.Repo)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}
	if req.PRNumber <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pr_number is required"})
	}

	suggestions, pr, err := h.agent.AnalyzePullRequest(c.Context(), ref, req.PRNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"suggestions":  suggestions,
		"pull_request": pr,
	})
}

// CreateReview analyzes a pull request and submits the feedback as a
// review.
func (h *Handler) CreateReview(c fiber.Ctx) error {
	var req struct {
		repoRequest
		PRNumber int `json:"pr_number"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ref, ok := h.resolveRef(req.Owner, req.Repo)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}
	if req.PRNumber <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pr_number is required"})
	}

	review, err := h.agent.CreateReview(c.Context(), ref, req.PRNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(review)
}

// CreateIssue files a single issue, either from a raw title and body or
// from a category plus suggestion pair.
func (h *Handler) CreateIssue(c fiber.Ctx) error {
	var req struct {
		repoRequest
		Title      string `json:"title"`
		Body       string `json:"body"`
		Category   string `json:"category"`
		Suggestion string `json:"suggestion"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ref, ok := h.resolveRef(req.Owner, req.Repo)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}

	var (
		issue *models.CreatedIssue
		err   error
	)
	switch {
	case req.Title != "":
		issue, err = h.agent.CreateIssue(c.Context(), ref, req.Title, req.Body)
	case req.Category != "" && req.Suggestion != "":
		issue, err = h.agent.FileSuggestion(c.Context(), ref, req.Category, req.Suggestion)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "either title+body or category+suggestion is required"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(issue)
}

// ProposeChanges comments proposed changes on an existing issue.
func (h *Handler) ProposeChanges(c fiber.Ctx) error {
	var req struct {
		repoRequest
		IssueNumber int    `json:"issue_number"`
		Changes     string `json:"changes"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ref, ok := h.resolveRef(req.Owner, req.Repo)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}
	if req.IssueNumber <= 0 || req.Changes == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "issue_number and changes are required"})
	}

	if err := h.agent.ProposeChanges(c.Context(), ref, req.IssueNumber, req.Changes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// CreateBranch creates a branch off the default branch.
func (h *Handler) CreateBranch(c fiber.Ctx) error {
	var req struct {
		repoRequest
		Branch string `json:"branch"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	ref, ok := h.resolveRef(req.Owner, req.Repo)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}
	if req.Branch == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "branch is required"})
	}

	if err := h.agent.CreateBranch(c.Context(), ref, req.Branch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "branch": req.Branch})
}

// ListIssues returns the repository's issues.
func (h *Handler) ListIssues(c fiber.Ctx) error {
	ref, ok := h.resolveRef(c.Query("owner"), c.Query("repo"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}

	issues, err := h.agent.ListIssues(c.Context(), ref, c.Query("state", "all"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return c.JSON(issues)
}

// GetRepository returns a fresh repository metadata snapshot.
func (h *Handler) GetRepository(c fiber.Ctx) error {
	ref, ok := h.resolveRef(c.Query("owner"), c.Query("repo"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "owner and repo are required"})
	}

	info, err := h.agent.RepositoryInfo(c.Context(), ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(info)
}
