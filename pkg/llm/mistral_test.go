package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume-parser-api/config"
	"resume-parser-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestMistralComplete(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistral-large-latest", req.Model)
		if assert.Len(t, req.Messages, 1) {
			assert.Equal(t, "user", req.Messages[0].Role)
			assert.Equal(t, "the prompt", req.Messages[0].Content)
		}
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"Name\":\"Jane\"}"}},{"message":{"content":"ignored"}}]}`))
	})

	c := NewMistral("secret", srv.URL, "mistral-large-latest", time.Second)
	got, err := c.Complete(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"Name":"Jane"}`, got)
}

func TestMistralChunkedContent(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":[{"type":"text","text":"{\"Name\":"},{"type":"text","text":"\"Jane\"}"}]}}]}`))
	})

	got, err := NewMistral("secret", srv.URL, "m", time.Second).Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"Jane"}`, got)
}

func TestMistralErrors(t *testing.T) {
	t.Run("Should report non-2xx status with the remote payload", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthorized","request_id":"abc"}`))
		})

		_, err := NewMistral("bad", srv.URL, "m", time.Second).Complete(context.Background(), "p")
		require.Error(t, err)
		assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "Unauthorized")
	})

	t.Run("Should report missing choices as malformed", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		_, err := NewMistral("k", srv.URL, "m", time.Second).Complete(context.Background(), "p")
		assert.Equal(t, apperror.KindMalformedResponse, apperror.KindOf(err))
	})

	t.Run("Should report an undecodable envelope as malformed", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway</html>`))
		})

		_, err := NewMistral("k", srv.URL, "m", time.Second).Complete(context.Background(), "p")
		assert.Equal(t, apperror.KindMalformedResponse, apperror.KindOf(err))
	})

	t.Run("Should report a timeout as upstream", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		})

		_, err := NewMistral("k", srv.URL, "m", 50*time.Millisecond).Complete(context.Background(), "p")
		assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
	})

	t.Run("Should report an unreachable endpoint as upstream", func(t *testing.T) {
		_, err := NewMistral("k", "http://127.0.0.1:1", "m", time.Second).Complete(context.Background(), "p")
		assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
	})
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", maxDiagnosticBytes+10)
	assert.Len(t, truncate([]byte(long)), maxDiagnosticBytes+3)
	assert.Equal(t, "short", truncate([]byte("  short\n")))
}

func TestNew(t *testing.T) {
	t.Run("Should build the mistral completer by default", func(t *testing.T) {
		cfg := &config.Config{LLMProvider: config.ProviderMistral, LLMAPIKey: "k", LLMBaseURL: "http://x", LLMModel: "m", LLMTimeout: time.Second}
		c, err := New(context.Background(), cfg)
		require.NoError(t, err)
		assert.IsType(t, &MistralCompleter{}, c)
	})

	t.Run("Should build an unconfigured gemini completer without a key", func(t *testing.T) {
		cfg := &config.Config{LLMProvider: config.ProviderGemini, LLMModel: config.DefaultGeminiModel, LLMTimeout: time.Second}
		c, err := New(context.Background(), cfg)
		require.NoError(t, err)
		require.IsType(t, &GeminiCompleter{}, c)

		_, err = c.Complete(context.Background(), "p")
		assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
	})

	t.Run("Should reject unknown providers", func(t *testing.T) {
		_, err := New(context.Background(), &config.Config{LLMProvider: "other"})
		assert.Error(t, err)
	})
}
