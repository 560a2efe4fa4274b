// Package pr reads pull/merge request metadata from GitHub and GitLab
// so branchlint can check a PR's head branch name and commit subjects
// without a local checkout.
package pr

import (
	"context"
	"errors"
	"time"
)

// Provider errors.
var (
	// ErrUnknownProvider indicates the git remote uses an unknown provider.
	ErrUnknownProvider = errors.New("unknown git provider")

	// ErrNotFound indicates the PR does not exist.
	ErrNotFound = errors.New("pull request not found")

	// ErrTokenRequired indicates no access token was available.
	ErrTokenRequired = errors.New("access token required")
)

// PullRequest is the slice of PR metadata branchlint checks.
type PullRequest struct {
	ID        int       // PR number/IID
	URL       string    // Web URL
	Title     string    // PR title
	Head      string    // Source branch
	Base      string    // Target branch
	State     string    // open, closed, merged
	CreatedAt time.Time // Creation time
}

// Commit is one commit on a pull request.
type Commit struct {
	SHA     string
	Message string // Full commit message; first line is the subject
}

// Provider is the read-only interface over GitHub and GitLab.
type Provider interface {
	// GetPR retrieves a pull request by number.
	GetPR(ctx context.Context, id int) (*PullRequest, error)

	// ListCommits lists the commits on a pull request, oldest first.
	ListCommits(ctx context.Context, id int) ([]Commit, error)
}
