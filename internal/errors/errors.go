package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeBackend     ErrorType = "backend"
	ErrorTypeGeolocation ErrorType = "geolocation"
)

// Error codes
const (
	CodeMissingField           = "MISSING_FIELD"
	CodeInvalidField           = "INVALID_FIELD"
	CodeValidation             = "VALIDATION"
	CodeBackend                = "BACKEND"
	CodeGeolocationUnavailable = "GEOLOCATION_UNAVAILABLE"
)

// AppError represents an application error with additional context
type AppError struct {
	Type     ErrorType
	Message  string
	Code     string
	Internal error
	Context  map[string]interface{}
	Source   string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Field returns the offending field name for validation errors
func (e *AppError) Field() string {
	if f, ok := e.Context["field"].(string); ok {
		return f
	}
	return ""
}

// LogFields returns structured logging fields
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{
		"error_type", e.Type,
		"error_code", e.Code,
		"error_message", e.Message,
		"source", e.Source,
	}

	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}

	for k, v := range e.Context {
		fields = append(fields, k, v)
	}

	return fields
}

// New creates a new AppError
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Source:  caller(2),
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error into AppError
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:     errorType,
		Code:     code,
		Message:  message,
		Internal: err,
		Source:   caller(2),
		Context:  make(map[string]interface{}),
	}
}

func caller(skip int) string {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}

// Handler provides error handling strategies
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a new error handler
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle processes an error according to its type
func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		h.handleAppError(ctx, appErr)
	} else {
		h.handleGenericError(ctx, err)
	}
}

// handleAppError handles AppError instances
func (h *Handler) handleAppError(ctx context.Context, err *AppError) {
	switch err.Type {
	case ErrorTypeValidation:
		h.logger.WarnContext(ctx, "Validation error", err.LogFields()...)
	case ErrorTypeGeolocation:
		h.logger.WarnContext(ctx, "Geolocation unavailable", err.LogFields()...)
	case ErrorTypeBackend:
		h.logger.ErrorContext(ctx, "Critical error", err.LogFields()...)
	default:
		h.logger.ErrorContext(ctx, "Unknown error type", err.LogFields()...)
	}
}

// handleGenericError handles generic errors
func (h *Handler) handleGenericError(ctx context.Context, err error) {
	h.logger.ErrorContext(ctx, "Unhandled error", "error", err.Error())
}

// Predefined errors, matched with errors.Is by type and code
var (
	ErrMissingField = New(ErrorTypeValidation, CodeMissingField, "Required field is missing")
	ErrInvalidField = New(ErrorTypeValidation, CodeInvalidField, "Field value is invalid")
	ErrBackend      = New(ErrorTypeBackend, CodeBackend, "Backend operation failed")
)

// NewMissingFieldError reports a required field that is empty or unparseable
func NewMissingFieldError(field string) *AppError {
	return New(ErrorTypeValidation, CodeMissingField, fmt.Sprintf("%s is required", field)).
		WithContext("field", field)
}

// NewInvalidFieldError reports a field holding an unacceptable value
func NewInvalidFieldError(field, reason string) *AppError {
	return New(ErrorTypeValidation, CodeInvalidField, fmt.Sprintf("%s %s", field, reason)).
		WithContext("field", field)
}

func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, CodeValidation, message)
}

// NewBackendError wraps a failed facade call
func NewBackendError(err error, operation string) *AppError {
	return Wrap(err, ErrorTypeBackend, CodeBackend, fmt.Sprintf("%s failed", operation)).
		WithContext("operation", operation)
}

func NewGeolocationUnavailableError(reason string) *AppError {
	return New(ErrorTypeGeolocation, CodeGeolocationUnavailable, reason)
}
