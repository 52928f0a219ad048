// Package main runs the repository triage HTTP service.
package main

import (
	"context"

	"github.com/chainguard-dev/clog"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/tensorus/repoagent/internal/agent"
	"github.com/tensorus/repoagent/internal/api"
	"github.com/tensorus/repoagent/internal/config"
	"github.com/tensorus/repoagent/internal/i18n"
	"github.com/tensorus/repoagent/internal/infrastructure/ai/gemini"
	githubvcs "github.com/tensorus/repoagent/internal/infrastructure/vcs/github"
	"github.com/tensorus/repoagent/internal/version"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		clog.FatalContextf(ctx, "loading config: %v", err)
	}

	trans, err := i18n.NewTranslations(cfg.Server.Language)
	if err != nil {
		clog.FatalContextf(ctx, "loading translations: %v", err)
	}

	model, err := gemini.NewGeminiService(ctx, cfg.AI, trans)
	if err != nil {
		clog.FatalContextf(ctx, "creating Gemini service: %v", err)
	}

	vcs := githubvcs.NewGitHubClient(cfg.GitHub.Token, trans)
	ag := agent.New(vcs, model, trans)

	app := fiber.New(fiber.Config{
		AppName: "repoagent API",
	})
	app.Use(cors.New())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "repoagent",
			"version": version.FullVersion(),
		})
	})

	api.SetupRoutes(app, api.NewHandler(cfg, ag))

	clog.InfoContextf(ctx, "starting repoagent %s on port %s (model %s)", version.FullVersion(), cfg.Server.Port, model.ModelName())
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		clog.FatalContextf(ctx, "server failed: %v", err)
	}
}
