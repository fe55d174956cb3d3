package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps config struct field names to the setting an operator edits
var FieldLabels = map[string]string{
	"Port":               "PORT",
	"Env":                "APP_ENV",
	"LogLevel":           "LOG_LEVEL",
	"LLMProvider":        "LLM_PROVIDER",
	"LLMBaseURL":         "LLM_BASE_URL",
	"LLMModel":           "LLM_MODEL",
	"LLMTimeout":         "LLM_TIMEOUT",
	"CORSAllowedOrigins": "CORS_ALLOWED_ORIGINS",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "numeric":
		return fmt.Sprintf("%s: must be numeric", label)
	case "url":
		return fmt.Sprintf("%s: must be a valid URL", label)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "positive_duration":
		return fmt.Sprintf("%s: must be a positive duration such as 120s", label)
	case "origin_list":
		return fmt.Sprintf("%s: must be * or a comma separated list of http(s) origins", label)
	default:
		return fmt.Sprintf("%s: failed %s validation", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
