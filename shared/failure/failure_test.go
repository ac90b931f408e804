package failure_test

import (
	"agrirent/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "startDate is required",
	}

	if f.Error() != "startDate is required" {
		t.Errorf("expected error message to be 'startDate is required', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
		},
		{
			name:    "SessionExpiredError",
			failure: failure.SessionExpiredError,
			code:    http.StatusUnauthorized,
		},
		{
			name:    "UpstreamUnavailableError",
			failure: failure.UpstreamUnavailableError,
			code:    http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}

			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.expected.Code || f.Message != tt.expected.Message {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestBadGateway(t *testing.T) {
	if failure.BadGateway(nil) != nil {
		t.Error("expected nil for nil error")
	}

	result := failure.BadGateway(errors.New("dial tcp: connection refused"))
	if failure.GetCode(result) != http.StatusBadGateway {
		t.Errorf("expected code to be %d, got %d", http.StatusBadGateway, failure.GetCode(result))
	}
}

func TestFromUpstream(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		message     string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "validation error keeps message",
			status:      http.StatusBadRequest,
			message:     "Equipment not found",
			wantCode:    http.StatusBadRequest,
			wantMessage: "Equipment not found",
		},
		{
			name:        "empty message falls back to status text",
			status:      http.StatusForbidden,
			message:     "",
			wantCode:    http.StatusForbidden,
			wantMessage: http.StatusText(http.StatusForbidden),
		},
		{
			name:        "server error becomes bad gateway",
			status:      http.StatusInternalServerError,
			message:     "boom",
			wantCode:    http.StatusBadGateway,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromUpstream(tt.status, tt.message)

			var f *failure.Failure
			if !errors.As(err, &f) {
				t.Fatalf("expected *failure.Failure, got %T", err)
			}

			if f.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, f.Code)
			}

			if f.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, f.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "Unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("action not allowed"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("admins cannot be blocked"), code: http.StatusForbidden},
		{name: "InternalError", err: failure.InternalError(errors.New("x")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to create booking: %w", failure.NotFound("equipment not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(fmt.Errorf("wrap: %w", failure.NotFound("x"))) {
		t.Error("expected wrapped not found to be detected")
	}

	if failure.IsNotFound(errors.New("x")) {
		t.Error("expected plain error not to be not found")
	}
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("failed to send message: %w", failure.BadRequestFromString("content is required"))

	if got := failure.Message(wrapped); got != "content is required" {
		t.Errorf("expected the failure message, got %q", got)
	}

	if got := failure.Message(errors.New("i/o timeout")); got != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected the generic message, got %q", got)
	}
}
