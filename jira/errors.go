package jira

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/randalmurphal/branchlint/httpc"
)

// Configuration errors.
var (
	ErrConfigURLRequired       = errors.New("jira url is required")
	ErrConfigAuthTypeRequired  = errors.New("jira auth type is required")
	ErrConfigAuthTypeInvalid   = errors.New("jira auth type must be api_token, oauth2, basic, or pat")
	ErrConfigAPITokenAuth      = errors.New("api_token auth requires email and token")
	ErrConfigBasicAuth         = errors.New("basic auth requires username and password")
	ErrConfigTokenAuth         = errors.New("pat and oauth2 auth require token")
	ErrConfigAPIVersionInvalid = errors.New("api_version must be v2 or v3")
)

// Issue errors.
var (
	ErrIssueNotFound   = errors.New("jira issue not found")
	ErrIssueKeyInvalid = errors.New("invalid issue key format")
)

// APIError represents an error response from the Jira API.
type APIError struct {
	StatusCode    int               `json:"-"`
	ErrorMessages []string          `json:"errorMessages,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
	Endpoint      string            `json:"-"`
	RequestID     string            `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.ErrorMessages) > 0 {
		return fmt.Sprintf("jira api error (%d): %s", e.StatusCode, e.ErrorMessages[0])
	}
	if len(e.Errors) > 0 {
		for field, msg := range e.Errors {
			return fmt.Sprintf("jira api error (%d): %s: %s", e.StatusCode, field, msg)
		}
	}
	if e.RequestID != "" {
		return fmt.Sprintf("jira api error (%d) at %s [%s]", e.StatusCode, e.Endpoint, e.RequestID)
	}
	return fmt.Sprintf("jira api error (%d)", e.StatusCode)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return httpc.ErrBadRequest
	case http.StatusUnauthorized:
		return httpc.ErrUnauthorized
	case http.StatusForbidden:
		return httpc.ErrForbidden
	case http.StatusNotFound:
		return httpc.ErrNotFound
	case http.StatusTooManyRequests:
		return httpc.ErrRateLimited
	default:
		if e.StatusCode >= 500 {
			return httpc.ErrServerError
		}
		return nil
	}
}

// parseAPIError parses an error response from the Jira API.
func parseAPIError(resp *http.Response, endpoint string) error {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		RequestID:  resp.Header.Get("X-Request-Id"),
	}

	// Try to parse Jira error response format
	if json.Unmarshal(body, apiErr) != nil {
		// Fall back to generic message
		apiErr.ErrorMessages = []string{http.StatusText(resp.StatusCode)}
	}

	return apiErr
}

// IsNotFound reports whether the error indicates the issue was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, httpc.ErrNotFound) || errors.Is(err, ErrIssueNotFound)
}

// IsUnauthorized reports whether the error indicates authentication failed.
func IsUnauthorized(err error) bool {
	return errors.Is(err, httpc.ErrUnauthorized)
}

// IsRateLimited reports whether the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, httpc.ErrRateLimited)
}
