package usecase

import (
	"context"
	"strconv"

	"resume-parser-api/config"
	"resume-parser-api/internal/domain"
)

type healthUsecase struct {
	cfg *config.Config
}

func NewHealthUsecase(cfg *config.Config) domain.HealthUsecase {
	return &healthUsecase{cfg: cfg}
}

// Check never calls the completion API.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":         "ok",
		"provider":       u.cfg.LLMProvider,
		"model":          u.cfg.LLMModel,
		"llm_configured": strconv.FormatBool(u.cfg.HasAPIKey()),
	}
}
