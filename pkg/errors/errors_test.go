package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cause := stderrors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: NewValidationError("bad input", nil), want: http.StatusBadRequest},
		{name: "processing", err: NewProcessingError("cannot read PDF", cause), want: http.StatusUnprocessableEntity},
		{name: "too large", err: NewTooLargeError("upload too large", cause), want: http.StatusRequestEntityTooLarge},
		{name: "unsupported", err: NewUnsupportedMediaError("not a pdf", nil), want: http.StatusUnsupportedMediaType},
		{name: "internal", err: NewInternalError("oops", cause), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("handler: %w", NewValidationError("bad input", nil)), want: http.StatusBadRequest},
		{name: "plain error", err: cause, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetStatusCode(tt.err); got != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewProcessingError("cannot read PDF", stderrors.New("xref corrupt")))
	if !IsType(err, ErrorTypeProcessing) {
		t.Fatalf("expected processing error type")
	}
	if IsType(err, ErrorTypeValidation) {
		t.Fatalf("did not expect validation error type")
	}
	if IsType(stderrors.New("plain"), ErrorTypeInternal) {
		t.Fatalf("plain errors have no type")
	}
}

func TestUserMessage(t *testing.T) {
	err := NewProcessingError("Could not read PDF", stderrors.New("xref corrupt"))
	if got := UserMessage(err); got != "Could not read PDF: xref corrupt" {
		t.Fatalf("unexpected message: %s", got)
	}

	internal := NewInternalError("Failed to write response", stderrors.New("secret detail"))
	if got := UserMessage(internal); got != "Failed to write response" {
		t.Fatalf("internal details must not leak, got %s", got)
	}

	if got := UserMessage(stderrors.New("raw")); got != "Internal server error" {
		t.Fatalf("unexpected message for plain error: %s", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := NewValidationError("bad input", cause)
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	if err.Details != "root cause" {
		t.Fatalf("expected details from cause, got %q", err.Details)
	}
}
