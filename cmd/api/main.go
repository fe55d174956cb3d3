package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-parser-api/config"
	_ "resume-parser-api/docs" // Important for Swagger
	v1 "resume-parser-api/internal/delivery/http/v1"
	"resume-parser-api/internal/extraction"
	"resume-parser-api/internal/usecase"
	"resume-parser-api/pkg/llm"
	"resume-parser-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           Resume Parser API
// @version         1.0
// @description     Extracts structured resume fields from raw resume text using an LLM completion API.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting resume parser",
		"port", cfg.Port,
		"provider", cfg.LLMProvider,
		"model", cfg.LLMModel,
		"llm_configured", cfg.HasAPIKey(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Completion Provider
	completer, err := llm.New(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to create completion provider", "error", err)
		os.Exit(1)
	}

	// 4. Setup UseCases
	extractor := extraction.NewExtractor(completer, cfg.LLMAPIKey, cfg.LLMTimeout)
	resumeUC := usecase.NewResumeUsecase(extractor)
	healthUC := usecase.NewHealthUsecase(cfg)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		HealthUC: healthUC,
		Config:   cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Send POST requests to /parse-resume", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
