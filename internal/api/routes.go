package api

import (
	"github.com/gofiber/fiber/v3"
)

func SetupRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")

	api.Post("/analyze/:category", h.Analyze)

	api.Post("/review/pr", h.ReviewPR)
	api.Post("/create/review", h.CreateReview)

	api.Post("/create_issue", h.CreateIssue)
	api.Post("/propose_changes", h.ProposeChanges)
	api.Post("/create_branch", h.CreateBranch)

	api.Get("/issues", h.ListIssues)
	api.Get("/repository", h.GetRepository)
}
