package llm

import (
	"context"
	"fmt"

	"resume-parser-api/config"
	"resume-parser-api/internal/domain"
)

// New returns the completer for the configured provider.
func New(ctx context.Context, cfg *config.Config) (domain.Completer, error) {
	apiKey := ""
	if cfg.HasAPIKey() {
		apiKey = cfg.LLMAPIKey
	}

	switch cfg.LLMProvider {
	case config.ProviderMistral:
		return NewMistral(apiKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout), nil
	case config.ProviderGemini:
		gemini, err := NewGemini(ctx, apiKey, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}
