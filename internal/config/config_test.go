package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "8000", cfg.Server.Port)
		assert.Equal(t, "en", cfg.Server.Language)
		assert.Equal(t, "gemini-2.0-flash", cfg.AI.ModelName)
		assert.Equal(t, float32(0.7), cfg.AI.Temperature)
		assert.Equal(t, int32(2048), cfg.AI.MaxOutputTokens)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("LANGUAGE", "es")
		t.Setenv("GITHUB_TOKEN", "ghp_test")
		t.Setenv("GEMINI_API_KEY", "key")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
		t.Setenv("AI_TEMPERATURE", "0.2")

		cfg, err := Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "es", cfg.Server.Language)
		assert.Equal(t, "ghp_test", cfg.GitHub.Token)
		assert.Equal(t, "key", cfg.AI.APIKey)
		assert.Equal(t, "gemini-2.5-pro", cfg.AI.ModelName)
		assert.Equal(t, float32(0.2), cfg.AI.Temperature)
	})
}

func TestDefaultRepo(t *testing.T) {
	t.Run("both parts present", func(t *testing.T) {
		cfg := &Config{}
		cfg.GitHub.RepoOwner = "tensorus"
		cfg.GitHub.RepoName = "tensorus"

		owner, name, ok := cfg.DefaultRepo()
		assert.True(t, ok)
		assert.Equal(t, "tensorus", owner)
		assert.Equal(t, "tensorus", name)
	})

	t.Run("partial configuration is no default", func(t *testing.T) {
		cfg := &Config{}
		cfg.GitHub.RepoOwner = "tensorus"

		_, _, ok := cfg.DefaultRepo()
		assert.False(t, ok)
	})
}
