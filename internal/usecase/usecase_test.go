package usecase_test

import (
	"context"
	"testing"
	"time"

	"resume-parser-api/config"
	"resume-parser-api/internal/domain"
	"resume-parser-api/internal/usecase"
	"resume-parser-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Extractor
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, resumeText string) (*domain.ResumeExtraction, error) {
	args := m.Called(ctx, resumeText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeExtraction), args.Error(1)
}

func TestParseResumeBlankInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		mockExtractor := new(MockExtractor)
		uc := usecase.NewResumeUsecase(mockExtractor)

		got := uc.ParseResume(context.Background(), text)

		assert.Equal(t, domain.BlankExtraction(), got)
		mockExtractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
	}
}

func TestParseResumeSuccess(t *testing.T) {
	mockExtractor := new(MockExtractor)
	uc := usecase.NewResumeUsecase(mockExtractor)

	want := &domain.ResumeExtraction{Name: "Jane Doe", Skills: domain.TextList{"Go"}}
	want.Normalize()
	mockExtractor.On("Extract", mock.Anything, "Jane Doe, Go").Return(want, nil)

	got := uc.ParseResume(context.Background(), "Jane Doe, Go")

	assert.Same(t, want, got)
	mockExtractor.AssertExpectations(t)
}

func TestParseResumeFallsBackOnEveryErrorKind(t *testing.T) {
	errs := map[string]error{
		"configuration": apperror.Configuration("LLM API key is not configured"),
		"invalid input": apperror.InvalidInput("resume text is empty or not provided"),
		"upstream":      apperror.Upstream("completion API returned status 500: boom", nil),
		"malformed":     apperror.MalformedResponse("completion content is not valid JSON", nil),
		"context":       context.DeadlineExceeded,
	}

	for name, extractErr := range errs {
		t.Run(name, func(t *testing.T) {
			mockExtractor := new(MockExtractor)
			uc := usecase.NewResumeUsecase(mockExtractor)
			mockExtractor.On("Extract", mock.Anything, mock.Anything).Return(nil, extractErr)

			ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-1")
			got := uc.ParseResume(ctx, "some resume")

			assert.Equal(t, domain.BlankExtraction(), got)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{LLMProvider: "mistral", LLMModel: "mistral-large-latest", LLMTimeout: time.Second}
	uc := usecase.NewHealthUsecase(cfg)

	t.Run("Should report an unconfigured key", func(t *testing.T) {
		got := uc.Check(context.Background())
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "mistral", got["provider"])
		assert.Equal(t, "false", got["llm_configured"])
	})

	t.Run("Should report a configured key", func(t *testing.T) {
		cfg.LLMAPIKey = "real-key"
		assert.Equal(t, "true", uc.Check(context.Background())["llm_configured"])
	})
}
