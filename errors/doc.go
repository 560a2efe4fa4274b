// Package errors provides CLI error patterns with user-friendly messaging
// and process exit codes.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, details, and exit code
//
// Sentinel errors for common scenarios:
//   - ErrNotAuthenticated: Tracker credentials are missing or rejected
//   - ErrNotInGitRepo: Command requires a git repository
//   - ErrConnectionFailed: Tracker is unreachable
//   - ErrPermissionDenied: Insufficient permissions
//
// Exit codes:
//   - ExitOK (0): All checks passed
//   - ExitViolations (1): At least one check failed
//   - ExitUsage (2): Invalid arguments or configuration
//   - ExitUnavailable (3): Tracker unreachable in strict mode
//
// Example usage:
//
//	if err := fetchTicket(); err != nil {
//	    return errors.WrapAuthError(err)
//	}
//
//	os.Exit(errors.ExitCodeFor(err))
package errors
