package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type (
	// Config is the full environment-driven configuration of the service.
	Config struct {
		Server ServerConfig
		GitHub GitHubConfig
		AI     AIConfig
	}

	ServerConfig struct {
		Port     string `env:"PORT, default=8000"`
		Language string `env:"LANGUAGE, default=en"`
	}

	// GitHubConfig carries the hosting-service token and the default
	// repository used when a request does not name one.
	GitHubConfig struct {
		Token     string `env:"GITHUB_TOKEN"`
		RepoOwner string `env:"REPO_OWNER"`
		RepoName  string `env:"REPO_NAME"`
	}

	AIConfig struct {
		APIKey          string  `env:"GEMINI_API_KEY"`
		ModelName       string  `env:"GEMINI_MODEL, default=gemini-2.0-flash"`
		Temperature     float32 `env:"AI_TEMPERATURE, default=0.7"`
		MaxOutputTokens int32   `env:"AI_MAX_OUTPUT_TOKENS, default=2048"`
	}
)

// Load reads configuration from the environment, after loading a .env
// file when one is present next to the binary.
func Load(ctx context.Context) (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	return &cfg, nil
}

// DefaultRepo reports the configured fallback repository, if any.
func (c *Config) DefaultRepo() (owner, name string, ok bool) {
	if c.GitHub.RepoOwner == "" || c.GitHub.RepoName == "" {
		return "", "", false
	}
	return c.GitHub.RepoOwner, c.GitHub.RepoName, true
}
