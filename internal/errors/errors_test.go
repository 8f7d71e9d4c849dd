package errors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestAppErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"missing field matches sentinel", NewMissingFieldError("blood_sugar_level"), ErrMissingField, true},
		{"invalid field is not missing field", NewInvalidFieldError("insulin_name", "is unknown"), ErrMissingField, false},
		{"backend matches sentinel", NewBackendError(fmt.Errorf("boom"), "insert reading"), ErrBackend, true},
		{"wrapped app error matches", fmt.Errorf("submit: %w", NewMissingFieldError("x")), ErrMissingField, true},
		{"internal cause is reachable", NewBackendError(context.DeadlineExceeded, "query"), context.DeadlineExceeded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	err := NewInvalidFieldError("insulin_dose", "must be a non-negative number")
	if err.Field() != "insulin_dose" {
		t.Errorf("Field() = %q, want insulin_dose", err.Field())
	}
	if got := NewBackendError(fmt.Errorf("x"), "y").Field(); got != "" {
		t.Errorf("Field() of a backend error = %q, want empty", got)
	}
}

func TestHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(slog.New(slog.NewTextHandler(&buf, nil)))

	h.Handle(context.Background(), NewGeolocationUnavailableError("no location shared"))
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("geolocation error should log at WARN, got %q", buf.String())
	}

	buf.Reset()
	h.Handle(context.Background(), NewBackendError(fmt.Errorf("connection refused"), "insert reading"))
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("backend error should log at ERROR, got %q", buf.String())
	}

	buf.Reset()
	h.Handle(context.Background(), nil)
	if buf.Len() != 0 {
		t.Errorf("nil error should not log, got %q", buf.String())
	}
}
