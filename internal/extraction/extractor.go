package extraction

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"resume-parser-api/config"
	"resume-parser-api/internal/domain"
	"resume-parser-api/pkg/apperror"
)

// Extractor prompts the completion API with resume text and turns the reply
// into a normalized domain.ResumeExtraction. It keeps no state between calls.
type Extractor struct {
	completer domain.Completer
	apiKey    string
	timeout   time.Duration
}

func NewExtractor(completer domain.Completer, apiKey string, timeout time.Duration) *Extractor {
	return &Extractor{
		completer: completer,
		apiKey:    apiKey,
		timeout:   timeout,
	}
}

// Extract performs exactly one completion call. Credential and input checks
// run first and never touch the network.
func (e *Extractor) Extract(ctx context.Context, resumeText string) (*domain.ResumeExtraction, error) {
	if e.apiKey == "" || e.apiKey == config.PlaceholderAPIKey {
		return nil, apperror.Configuration("LLM API key is not configured")
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperror.InvalidInput("resume text is empty or not provided")
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	raw, err := e.completer.Complete(ctx, BuildPrompt(resumeText))
	if err != nil {
		if apperror.KindOf(err) == apperror.KindUnknown {
			return nil, apperror.Upstream("completion call failed", err)
		}
		return nil, err
	}

	return ParseCompletion(raw)
}

// ParseCompletion decodes completion content into a normalized extraction.
func ParseCompletion(raw string) (*domain.ResumeExtraction, error) {
	content := []byte(stripCodeFence(raw))

	var probe json.RawMessage
	if err := json.Unmarshal(content, &probe); err != nil {
		return nil, apperror.MalformedResponse("completion content is not valid JSON", err)
	}
	if err := validateShape(content); err != nil {
		return nil, apperror.MalformedResponse("completion content has an unexpected shape", err)
	}

	var extraction domain.ResumeExtraction
	if err := json.Unmarshal(content, &extraction); err != nil {
		return nil, apperror.MalformedResponse("failed to decode completion content", err)
	}
	extraction.Normalize()

	return &extraction, nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON in even
// when asked not to.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
