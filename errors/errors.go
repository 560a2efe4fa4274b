package errors

import "errors"

// Common CLI errors with actionable guidance.
var (
	// ErrNotAuthenticated indicates a missing or rejected tracker credential.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotInGitRepo indicates the command requires a git repository.
	ErrNotInGitRepo = errors.New("not in a git repository")

	// ErrConnectionFailed indicates the tracker is unreachable.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrPermissionDenied indicates insufficient permissions.
	ErrPermissionDenied = errors.New("permission denied")
)

// Exit codes for the branchlint CLI.
const (
	// ExitOK means every checked ref passed.
	ExitOK = 0

	// ExitViolations means at least one ref failed a check.
	ExitViolations = 1

	// ExitUsage means invalid arguments, flags, or configuration.
	ExitUsage = 2

	// ExitUnavailable means the ticket tracker could not be reached
	// while running in strict mode.
	ExitUnavailable = 3
)
