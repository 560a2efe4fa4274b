// Package ticket adapts ticket-tracker lookups behind a single
// Summarizer interface so the check pipeline never talks to Jira or the
// cache directly. Lookup failures surface as ErrUnavailable; callers
// decide whether that is fatal.
package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/randalmurphal/branchlint/cache"
	"github.com/randalmurphal/branchlint/jira"
)

// ErrUnavailable indicates the ticket summary could not be fetched.
// It wraps the underlying lookup error.
var ErrUnavailable = errors.New("ticket summary unavailable")

// ErrNotFound indicates the ticket does not exist in the tracker.
var ErrNotFound = errors.New("ticket not found")

// Summarizer resolves a ticket ID to its summary text.
type Summarizer interface {
	// Summary returns the ticket's summary text.
	Summary(ctx context.Context, id string) (string, error)
}

// jiraSummarizer looks up summaries through a Jira client.
type jiraSummarizer struct {
	client *jira.Client
}

// NewJiraSummarizer wraps a Jira client as a Summarizer.
func NewJiraSummarizer(client *jira.Client) Summarizer {
	return &jiraSummarizer{client: client}
}

// Summary implements Summarizer.
func (s *jiraSummarizer) Summary(ctx context.Context, id string) (string, error) {
	issue, err := s.client.GetIssue(ctx, id)
	if err != nil {
		if jira.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return issue.SummaryText(), nil
}

// cached decorates a Summarizer with a file-backed cache.
type cached struct {
	next  Summarizer
	store *cache.Store
}

// NewCached returns a Summarizer that serves fresh cache hits without
// calling next. Lookup results are cached; lookup failures are not.
func NewCached(next Summarizer, store *cache.Store) Summarizer {
	return &cached{next: next, store: store}
}

// Summary implements Summarizer.
func (c *cached) Summary(ctx context.Context, id string) (string, error) {
	if entry, ok := c.store.Get(id); ok {
		return entry.Summary, nil
	}

	summary, err := c.next.Summary(ctx, id)
	if err != nil {
		return "", err
	}

	if putErr := c.store.Put(id, summary); putErr != nil {
		// A broken cache must not fail the lookup.
		return summary, nil
	}
	return summary, nil
}

// Static is a fixed ID-to-summary map, used in tests and offline runs.
type Static map[string]string

// Summary implements Summarizer.
func (s Static) Summary(_ context.Context, id string) (string, error) {
	summary, ok := s[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return summary, nil
}
