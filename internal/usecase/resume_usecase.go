package usecase

import (
	"context"
	"strings"

	"resume-parser-api/internal/domain"
	"resume-parser-api/pkg/apperror"
	"resume-parser-api/pkg/logger"
)

type resumeUsecase struct {
	extractor domain.ResumeExtractor
}

// NewResumeUsecase creates a new resume usecase
func NewResumeUsecase(extractor domain.ResumeExtractor) domain.ResumeUsecase {
	return &resumeUsecase{
		extractor: extractor,
	}
}

// ParseResume returns the extraction for resumeText, or the blank extraction
// when the text is blank or extraction fails for any reason.
func (uc *resumeUsecase) ParseResume(ctx context.Context, resumeText string) *domain.ResumeExtraction {
	if strings.TrimSpace(resumeText) == "" {
		logger.Log.Debug("Blank resume text, returning blank extraction", "request_id", requestID(ctx))
		return domain.BlankExtraction()
	}

	extraction, err := uc.extractor.Extract(ctx, resumeText)
	if err != nil {
		logger.Log.Error("Resume extraction failed",
			"kind", string(apperror.KindOf(err)),
			"error", err,
			"request_id", requestID(ctx),
			"resume_chars", len(resumeText),
		)
		return domain.BlankExtraction()
	}

	return extraction
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
