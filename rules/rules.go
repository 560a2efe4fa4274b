package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultMaxSubjectLength is the commit subject length limit.
const DefaultMaxSubjectLength = 72

// DefaultPrefixes are the accepted branch category prefixes.
var DefaultPrefixes = []string{"feature", "bugfix", "hotfix", "release", "chore"}

// ticketIDRegex matches Jira-style ticket IDs (e.g., SHOP-8548).
var ticketIDRegex = regexp.MustCompile(`[A-Z][A-Z0-9]*-\d+`)

// branchBodyRegex matches the descriptive part after the ticket ID:
// lowercase alphanumeric words separated by single dashes.
var branchBodyRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// exemptSubjectRegex matches generated commit subjects that are not
// required to carry a ticket reference.
var exemptSubjectRegex = regexp.MustCompile(`^(Merge |Revert |fixup! |squash! )`)

// Violation codes.
const (
	CodePrefixMissing  = "prefix-missing"
	CodePrefixUnknown  = "prefix-unknown"
	CodeTicketMissing  = "ticket-missing"
	CodeTicketProject  = "ticket-project"
	CodeBodyFormat     = "body-format"
	CodeSubjectEmpty   = "subject-empty"
	CodeSubjectLength  = "subject-length"
	CodeSubjectTrailer = "subject-trailer"
)

// Violation describes one way a name breaks the convention.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// Config holds the convention parameters.
type Config struct {
	// Prefixes is the branch category enum. Nil means DefaultPrefixes.
	Prefixes []string

	// ProjectKeys restricts ticket IDs to these project keys.
	// Empty means any project key is accepted.
	ProjectKeys []string

	// MaxSubjectLength caps commit subject length. Zero means
	// DefaultMaxSubjectLength.
	MaxSubjectLength int
}

// DefaultConfig returns the standard convention.
func DefaultConfig() Config {
	return Config{MaxSubjectLength: DefaultMaxSubjectLength}
}

func (c Config) prefixes() []string {
	if c.Prefixes != nil {
		return c.Prefixes
	}
	return DefaultPrefixes
}

func (c Config) maxSubjectLength() int {
	if c.MaxSubjectLength > 0 {
		return c.MaxSubjectLength
	}
	return DefaultMaxSubjectLength
}

// TicketID returns the first ticket ID found in s, or "".
func TicketID(s string) string {
	return ticketIDRegex.FindString(s)
}

// TicketIDs returns all ticket IDs found in s, in order.
func TicketIDs(s string) []string {
	return ticketIDRegex.FindAllString(s, -1)
}

// CheckBranch validates a branch name against the convention
// <prefix>/<TICKET>-<lowercase-dash-body>. An empty slice means pass.
func (c Config) CheckBranch(name string) []Violation {
	var vs []Violation

	prefix, rest, found := strings.Cut(name, "/")
	if !found {
		vs = append(vs, Violation{CodePrefixMissing,
			fmt.Sprintf("branch %q has no category prefix; expected one of %s",
				name, strings.Join(c.prefixes(), ", "))})
		rest = name
	} else if !slices.Contains(c.prefixes(), prefix) {
		vs = append(vs, Violation{CodePrefixUnknown,
			fmt.Sprintf("unknown category prefix %q; expected one of %s",
				prefix, strings.Join(c.prefixes(), ", "))})
	}

	ticket := ticketIDRegex.FindString(rest)
	if ticket == "" || !strings.HasPrefix(rest, ticket) {
		vs = append(vs, Violation{CodeTicketMissing,
			fmt.Sprintf("branch %q does not start with a ticket ID after the prefix (e.g., feature/SHOP-123-short-description)", name)})
		return vs
	}

	if v := c.checkProjectKey(ticket); v != nil {
		vs = append(vs, *v)
	}

	if body := strings.TrimPrefix(rest, ticket); body != "" {
		trimmed, dashed := strings.CutPrefix(body, "-")
		if !dashed || trimmed == "" || !branchBodyRegex.MatchString(trimmed) {
			vs = append(vs, Violation{CodeBodyFormat,
				fmt.Sprintf("branch body %q must be lowercase alphanumeric words separated by single dashes", body)})
		}
	}

	return vs
}

// CheckCommitSubject validates the first line of a commit message.
// The subject must start with a ticket ID, optionally followed by a
// colon, then a non-empty description. Merge, revert, and autosquash
// subjects are exempt from the ticket requirement.
func (c Config) CheckCommitSubject(subject string) []Violation {
	var vs []Violation

	subject = strings.TrimRight(subject, "\r\n")
	if strings.TrimSpace(subject) == "" {
		return []Violation{{CodeSubjectEmpty, "commit subject is empty"}}
	}

	if n := utf8.RuneCountInString(subject); n > c.maxSubjectLength() {
		vs = append(vs, Violation{CodeSubjectLength,
			fmt.Sprintf("commit subject is %d characters, limit is %d", n, c.maxSubjectLength())})
	}

	if exemptSubjectRegex.MatchString(subject) {
		return vs
	}

	ticket := ticketIDRegex.FindString(subject)
	if ticket == "" || !strings.HasPrefix(subject, ticket) {
		vs = append(vs, Violation{CodeTicketMissing,
			fmt.Sprintf("commit subject %q must start with a ticket ID (e.g., SHOP-123: short description)", subject)})
		return vs
	}

	if v := c.checkProjectKey(ticket); v != nil {
		vs = append(vs, *v)
	}

	desc := strings.TrimPrefix(subject, ticket)
	desc = strings.TrimPrefix(desc, ":")
	if strings.TrimSpace(desc) == "" {
		vs = append(vs, Violation{CodeSubjectTrailer,
			fmt.Sprintf("commit subject %q has no description after the ticket ID", subject)})
	}

	return vs
}

// checkProjectKey validates the ticket's project key against the
// configured allowlist.
func (c Config) checkProjectKey(ticket string) *Violation {
	if len(c.ProjectKeys) == 0 {
		return nil
	}
	project, _, _ := strings.Cut(ticket, "-")
	if slices.Contains(c.ProjectKeys, project) {
		return nil
	}
	return &Violation{CodeTicketProject,
		fmt.Sprintf("ticket %q is not in the configured projects %s",
			ticket, strings.Join(c.ProjectKeys, ", "))}
}
