package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies failures of the extraction pipeline.
type Kind string

const (
	KindUnknown           Kind = "unknown"
	KindConfiguration     Kind = "configuration"
	KindInvalidInput      Kind = "invalid_input"
	KindUpstream          Kind = "upstream"
	KindMalformedResponse Kind = "malformed_response"
)

type AppError struct {
	Kind    Kind   `json:"kind,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Kind:    KindUnknown,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Configuration reports a missing or placeholder credential.
func Configuration(message string) *AppError {
	return &AppError{Kind: KindConfiguration, Code: http.StatusInternalServerError, Message: message}
}

// InvalidInput reports resume text that is empty after trimming.
func InvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Code: http.StatusBadRequest, Message: message}
}

// Upstream reports a failed call to the completion API. The message should
// carry the remote diagnostic payload when one is available.
func Upstream(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Code: http.StatusBadGateway, Message: message, Err: err}
}

// MalformedResponse reports completion content that is not the expected JSON.
func MalformedResponse(message string, err error) *AppError {
	return &AppError{Kind: KindMalformedResponse, Code: http.StatusBadGateway, Message: message, Err: err}
}

// KindOf returns the Kind of the first AppError in err's chain.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
