package gemini

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/tensorus/repoagent/internal/config"
	"github.com/tensorus/repoagent/internal/domain/ports"
	"github.com/tensorus/repoagent/internal/i18n"
	"google.golang.org/genai"
)

var _ ports.AIProvider = (*GeminiService)(nil)

// GeminiService adapts the Gemini API to the AIProvider port.
type GeminiService struct {
	client    *genai.Client
	model     string
	genConfig *genai.GenerateContentConfig
	trans     *i18n.Translations
}

func NewGeminiService(ctx context.Context, cfg config.AIConfig, trans *i18n.Translations) (*GeminiService, error) {
	if cfg.APIKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  cfg.ModelName,
		genConfig: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(cfg.Temperature),
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
		trans: trans,
	}, nil
}

// Generate runs one synchronous generation call and returns the
// response text. No retries; a transient provider failure surfaces
// directly to the caller.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), s.genConfig)
	if err != nil {
		msg := s.trans.GetMessage("error_generating_content", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return "", fmt.Errorf("%s", msg)
	}

	if usage := resp.UsageMetadata; usage != nil {
		clog.DebugContextf(ctx, "gemini %s usage: %d prompt tokens, %d output tokens",
			s.model, usage.PromptTokenCount, usage.CandidatesTokenCount)
	}

	text := formatResponse(resp)
	if text == "" {
		msg := s.trans.GetMessage("error_empty_response", 0, nil)
		return "", fmt.Errorf("%s", msg)
	}
	return text, nil
}

// ModelName returns the configured model identifier.
func (s *GeminiService) ModelName() string {
	return s.model
}
