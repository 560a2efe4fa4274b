// Package check runs the full pipeline for one candidate name: lexical
// format rules, ticket existence lookup, and keyword relevance scoring.
// The relevance threshold is applied here, never inside the scorer, so
// strictness is tunable without touching the algorithm.
package check

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/branchlint/relevance"
	"github.com/randalmurphal/branchlint/rules"
	"github.com/randalmurphal/branchlint/ticket"
)

// DefaultThreshold is the relevance pass threshold in percent.
const DefaultThreshold = 30

// CodeTicketNotFound flags a well-formed ticket ID that does not exist
// in the tracker.
const CodeTicketNotFound = "ticket-not-found"

// CodeRelevanceLow flags a name scoring below the relevance threshold.
const CodeRelevanceLow = "relevance-low"

// Kind identifies what sort of name was checked.
type Kind string

// Name kinds.
const (
	KindBranch Kind = "branch"
	KindCommit Kind = "commit"
)

// Result is the outcome of checking one candidate name.
type Result struct {
	// Ref is the raw name that was checked (branch name or commit
	// subject).
	Ref string `json:"ref"`

	// Kind says whether Ref is a branch name or commit subject.
	Kind Kind `json:"kind"`

	// TicketID is the ticket referenced by Ref, if any.
	TicketID string `json:"ticket_id,omitempty"`

	// Violations are the convention breaches, including ticket-not-found
	// and relevance-low when those checks ran and failed.
	Violations []rules.Violation `json:"violations,omitempty"`

	// Verdict is the relevance score, present when scoring ran.
	Verdict *relevance.Verdict `json:"verdict,omitempty"`

	// TicketUnavailable is set when the tracker could not be reached;
	// scoring was skipped but the result is not failed for it.
	TicketUnavailable bool `json:"ticket_unavailable,omitempty"`

	// LookupErr carries the lookup failure behind TicketUnavailable so
	// reporting can explain why the tracker was unreachable.
	LookupErr error `json:"-"`

	// Passed is true when there are no violations.
	Passed bool `json:"passed"`
}

// Checker wires the format rules, ticket lookup, and relevance scorer.
type Checker struct {
	// Rules is the naming convention.
	Rules rules.Config

	// Relevance configures keyword extraction and matching.
	Relevance relevance.Config

	// Tickets resolves ticket summaries. Nil disables ticket
	// verification and relevance scoring.
	Tickets ticket.Summarizer

	// Threshold is the relevance pass threshold in percent.
	// Zero means DefaultThreshold.
	Threshold int
}

func (c *Checker) threshold() int {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return DefaultThreshold
}

// Branch checks a branch name.
func (c *Checker) Branch(ctx context.Context, name string) *Result {
	result := &Result{
		Ref:        name,
		Kind:       KindBranch,
		TicketID:   rules.TicketID(name),
		Violations: c.Rules.CheckBranch(name),
	}
	c.verify(ctx, result)
	return result
}

// Commit checks a commit message. Only the subject (first line) is
// validated and scored.
func (c *Checker) Commit(ctx context.Context, message string) *Result {
	subject, _, _ := strings.Cut(message, "\n")
	result := &Result{
		Ref:        subject,
		Kind:       KindCommit,
		TicketID:   rules.TicketID(subject),
		Violations: c.Rules.CheckCommitSubject(subject),
	}
	c.verify(ctx, result)
	return result
}

// verify runs ticket lookup and relevance scoring, then settles Passed.
func (c *Checker) verify(ctx context.Context, result *Result) {
	defer func() {
		result.Passed = len(result.Violations) == 0
	}()

	if c.Tickets == nil || result.TicketID == "" {
		return
	}

	summary, err := c.Tickets.Summary(ctx, result.TicketID)
	switch {
	case err == nil:
	case errors.Is(err, ticket.ErrNotFound):
		result.Violations = append(result.Violations, rules.Violation{
			Code:    CodeTicketNotFound,
			Message: fmt.Sprintf("ticket %s does not exist in the tracker", result.TicketID),
		})
		return
	default:
		// Lookup unavailable is reported, not fatal.
		result.TicketUnavailable = true
		result.LookupErr = err
		return
	}

	keywords := c.Relevance.ExtractKeywords(summary)
	verdict := c.Relevance.Score(result.Ref, keywords, result.TicketID)
	result.Verdict = &verdict

	if verdict.MatchPercentage < c.threshold() {
		result.Violations = append(result.Violations, rules.Violation{
			Code: CodeRelevanceLow,
			Message: fmt.Sprintf("name relates to only %d%% of ticket keywords, threshold is %d%% (missing: %s)",
				verdict.MatchPercentage, c.threshold(), strings.Join(verdict.Missing, ", ")),
		})
	}
}
