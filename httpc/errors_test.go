package httpc

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorUnwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{400, ErrBadRequest},
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{429, ErrRateLimited},
		{500, ErrServerError},
		{503, ErrServerError},
		{418, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := &APIError{Service: "jira", StatusCode: tt.status, Message: "boom"}
			if tt.want == nil {
				if errors.Unwrap(err) != nil {
					t.Errorf("Unwrap() = %v, want nil", errors.Unwrap(err))
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("errors.Is(%d, %v) = false", tt.status, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited sentinel", ErrRateLimited, true},
		{"server error sentinel", ErrServerError, true},
		{"wrapped rate limit", fmt.Errorf("call: %w", ErrRateLimited), true},
		{"api 500", &APIError{StatusCode: 500}, true},
		{"api 429 via unwrap", &APIError{StatusCode: 429}, true},
		{"api 404", &APIError{StatusCode: 404}, false},
		{"not found sentinel", ErrNotFound, false},
		{"plain error", errors.New("nope"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}
