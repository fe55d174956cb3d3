package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"resume-parser-api/pkg/validation"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderMistral = "mistral"
	ProviderGemini  = "gemini"

	// PlaceholderAPIKey is the value shipped in sample env files. It counts as
	// an unconfigured credential.
	PlaceholderAPIKey = "YOUR_STATIC_MISTRAL_API_KEY_HERE"

	DefaultMistralURL   = "https://api.mistral.ai/v1/chat/completions"
	DefaultMistralModel = "mistral-large-latest"
	DefaultGeminiModel  = "gemini-2.5-flash"
)

// Config is built once in main and passed to the components that need it.
type Config struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"oneof=development production test"`
	LogLevel string `validate:"oneof=debug info warn error"`

	// LLM Configuration
	LLMProvider string `validate:"oneof=mistral gemini"`
	LLMAPIKey   string
	LLMBaseURL  string        `validate:"required,url"`
	LLMModel    string        `validate:"required"`
	LLMTimeout  time.Duration `validate:"positive_duration"`

	// CORS Configuration
	CORSAllowedOrigins []string `validate:"origin_list"`
}

// fileConfig mirrors Config for the optional YAML file named by CONFIG_FILE.
type fileConfig struct {
	Port               string `yaml:"port"`
	Env                string `yaml:"env"`
	LogLevel           string `yaml:"log_level"`
	LLMProvider        string `yaml:"llm_provider"`
	LLMAPIKey          string `yaml:"llm_api_key"`
	LLMBaseURL         string `yaml:"llm_base_url"`
	LLMModel           string `yaml:"llm_model"`
	LLMTimeout         string `yaml:"llm_timeout"`
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"`
}

func LoadConfig() (*Config, error) {
	// Local development convenience; a missing .env is normal in production
	_ = godotenv.Load()

	file, err := loadFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", or(file.LLMProvider, ProviderMistral)))

	timeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", or(file.LLMTimeout, "120s")))
	if err != nil {
		return nil, fmt.Errorf("LLM_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:     getEnv("PORT", or(file.Port, "3000")),
		Env:      getEnv("APP_ENV", or(file.Env, "development")),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", or(file.LogLevel, "info"))),
		// LLM_API_KEY is provider neutral; the provider specific names are kept
		// so existing deployments keep working.
		LLMProvider: provider,
		LLMAPIKey: strings.TrimSpace(getEnv("LLM_API_KEY",
			getEnv("MISTRAL_API_KEY", getEnv("GEMINI_API_KEY", file.LLMAPIKey)))),
		LLMBaseURL:         strings.TrimSpace(getEnv("LLM_BASE_URL", or(file.LLMBaseURL, DefaultMistralURL))),
		LLMModel:           strings.TrimSpace(getEnv("LLM_MODEL", or(file.LLMModel, defaultModel(provider)))),
		LLMTimeout:         timeout,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", or(file.CORSAllowedOrigins, "*"))),
	}

	if err := validation.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if !cfg.HasAPIKey() {
		log.Println("WARNING: LLM_API_KEY is missing. Every /parse-resume call will return a blank extraction.")
	}

	return cfg, nil
}

// HasAPIKey reports whether a usable credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.LLMAPIKey != "" && c.LLMAPIKey != PlaceholderAPIKey
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultMistralModel
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
