package llm

import (
	"context"
	"fmt"

	"resume-parser-api/pkg/apperror"

	"google.golang.org/genai"
)

// GeminiCompleter serves completions from the Gemini API in JSON mode.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGemini creates the SDK client. Without an API key no client is created;
// Complete then fails with a configuration error.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if apiKey == "" {
		return &GeminiCompleter{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiCompleter{client: client, model: model}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", apperror.Configuration("gemini client is not configured")
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", apperror.Upstream("gemini generate content failed", err)
	}
	if resp == nil {
		return "", apperror.MalformedResponse("gemini returned a nil response", nil)
	}

	text := resp.Text()
	if text == "" {
		return "", apperror.MalformedResponse("gemini response has no text content", nil)
	}

	return text, nil
}
