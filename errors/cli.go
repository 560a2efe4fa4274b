package errors

import (
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string

	// ExitCode is the process exit code for this error. Zero means
	// unset; callers should treat it as ExitUsage.
	ExitCode int
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapAuthError wraps tracker authentication errors with helpful guidance.
func WrapAuthError(err error) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "unauthenticated") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "401") {
		return &CLIError{
			Err:        ErrNotAuthenticated,
			Message:    "The ticket tracker rejected your credentials.",
			Suggestion: "Check jira.email and jira.token in your branchlint config,\nor run with --offline to skip ticket lookups.",
			ExitCode:   ExitUnavailable,
		}
	}

	if strings.Contains(errStr, "permission denied") || strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "403") {
		return &CLIError{
			Err:        ErrPermissionDenied,
			Message:    "You don't have permission to view this ticket.",
			Suggestion: "Ask a project admin for access, or run with --offline.",
			ExitCode:   ExitUnavailable,
		}
	}

	return err
}

// WrapConnectionError wraps tracker connection errors with helpful guidance.
func WrapConnectionError(err error, serverURL string) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("Cannot connect to the ticket tracker at %s", serverURL),
			Suggestion: "Check that:\n  - The URL is correct\n  - Your network connection is working\nOr run with --offline to skip ticket lookups.",
			ExitCode:   ExitUnavailable,
		}
	}

	if strings.Contains(errStr, "certificate") || strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("TLS/certificate error connecting to %s", serverURL),
			Details:    err.Error(),
			Suggestion: "Check that the server certificate is valid.",
			ExitCode:   ExitUnavailable,
		}
	}

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("Connection to %s timed out", serverURL),
			Suggestion: "The tracker may be overloaded or unreachable.\nTry again in a moment, or run with --offline.",
			ExitCode:   ExitUnavailable,
		}
	}

	return err
}

// WrapLookupError classifies a ticket lookup failure as an auth or
// connection problem and returns the guidance-carrying form. Errors it
// cannot classify come back unchanged.
func WrapLookupError(err error, serverURL string) error {
	if err == nil {
		return nil
	}
	if wrapped := WrapAuthError(err); wrapped != err {
		return wrapped
	}
	return WrapConnectionError(err, serverURL)
}

// NewNotInGitRepoError creates an error for commands that require a git repository.
func NewNotInGitRepoError() error {
	return &CLIError{
		Err:        ErrNotInGitRepo,
		Message:    "This command must be run from within a git repository.",
		Suggestion: "Run branchlint from a git repository, or pass the ref to check as an argument.",
		ExitCode:   ExitUsage,
	}
}

// NewUsageError creates an error for invalid arguments or configuration.
func NewUsageError(message, suggestion string) error {
	return &CLIError{
		Message:    message,
		Suggestion: suggestion,
		ExitCode:   ExitUsage,
	}
}
