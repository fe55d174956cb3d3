package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-parser-api/pkg/apperror"
)

// maxDiagnosticBytes caps how much of an error body ends up in logs.
const maxDiagnosticBytes = 2048

// MistralCompleter talks to an OpenAI-style chat completions endpoint
// (Mistral by default) and asks for a JSON object response.
type MistralCompleter struct {
	apiKey     string
	url        string
	model      string
	httpClient *http.Client
}

func NewMistral(apiKey, url, model string, timeout time.Duration) *MistralCompleter {
	return &MistralCompleter{
		apiKey:     apiKey,
		url:        url,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			// Content is a string, or a list of typed chunks on newer models.
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type contentChunk struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends prompt as a single user message and returns the content of
// the first choice.
func (c *MistralCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.Upstream("completion request failed", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.Upstream("failed to read completion response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperror.Upstream(
			fmt.Sprintf("completion API returned status %d: %s", resp.StatusCode, truncate(respBytes)), nil)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", apperror.MalformedResponse("failed to decode completion response", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", apperror.MalformedResponse("completion response has no choices", nil)
	}

	return decodeContent(chatResp.Choices[0].Message.Content)
}

func decodeContent(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", apperror.MalformedResponse("completion choice has no content", nil)
	}

	if raw[0] == '[' {
		var chunks []contentChunk
		if err := json.Unmarshal(raw, &chunks); err != nil {
			return "", apperror.MalformedResponse("failed to decode content chunks", err)
		}
		var sb strings.Builder
		for _, chunk := range chunks {
			if chunk.Type == "" || chunk.Type == "text" {
				sb.WriteString(chunk.Text)
			}
		}
		return sb.String(), nil
	}

	var content string
	if err := json.Unmarshal(raw, &content); err != nil {
		return "", apperror.MalformedResponse("completion content is not a string", err)
	}
	return content, nil
}

func truncate(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxDiagnosticBytes {
		return s[:maxDiagnosticBytes] + "..."
	}
	return s
}
