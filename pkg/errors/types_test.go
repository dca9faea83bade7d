package errors

import (
	"fmt"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "with field",
			err:  &ValidationError{Field: "connectorName", Message: "must not be empty"},
			want: "validation failed on connectorName: must not be empty",
		},
		{
			name: "without field",
			err:  &ValidationError{Message: "bad input"},
			want: "validation failed: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{
		StatusCode: 404,
		Code:       "pipeline_not_found",
		Message:    "no such pipeline",
		RequestID:  "req-123",
	}

	want := "api error [HTTP 404] (pipeline_not_found): no such pipeline (request-id: req-123)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &APIError{Message: "request failed", Cause: cause}

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestHelpers(t *testing.T) {
	notFound := fmt.Errorf("outer: %w", &NotFoundError{Resource: "project", ID: "p1"})
	if !IsNotFound(notFound) {
		t.Error("IsNotFound() = false for wrapped NotFoundError")
	}
	if IsNotFound(fmt.Errorf("plain")) {
		t.Error("IsNotFound() = true for plain error")
	}

	authErr := Wrap(&AuthError{Reason: "token expired"}, "calling api")
	if !IsAuth(authErr) {
		t.Error("IsAuth() = false for wrapped AuthError")
	}

	apiErr := fmt.Errorf("outer: %w", &APIError{StatusCode: 503, Message: "unavailable"})
	if got := StatusCode(apiErr); got != 503 {
		t.Errorf("StatusCode() = %d, want 503", got)
	}
	if got := StatusCode(fmt.Errorf("plain")); got != 0 {
		t.Errorf("StatusCode() = %d, want 0", got)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}
