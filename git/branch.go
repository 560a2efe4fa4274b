package git

import (
	"regexp"
	"strings"
)

// BranchNamer generates branch names following the naming convention.
type BranchNamer struct {
	TypePrefix   string // Branch type prefix (e.g., "feature", "bugfix")
	IncludeTitle bool   // Whether to include the title slug in the name
	MaxLength    int    // Maximum branch name length
}

// DefaultBranchNamer returns a namer with default settings.
func DefaultBranchNamer() *BranchNamer {
	return &BranchNamer{
		TypePrefix:   "feature",
		IncludeTitle: true,
		MaxLength:    100,
	}
}

// ForTicket generates a branch name from a ticket ID and its summary.
// The ticket ID keeps its case so the result passes the convention.
// Example: "SHOP-8548", "POC - create app to restrict gift cards"
// -> "feature/SHOP-8548-poc-create-app-to-restrict-gift-cards"
func (n *BranchNamer) ForTicket(ticketID, title string) string {
	branch := n.TypePrefix + "/" + strings.ToUpper(ticketID)

	if n.IncludeTitle && title != "" {
		slug := Slugify(title)
		if len(slug) > 50 {
			slug = slug[:50]
			// Trim trailing hyphens after truncation
			slug = strings.TrimRight(slug, "-")
		}
		if slug != "" {
			branch += "-" + slug
		}
	}

	if n.MaxLength > 0 && len(branch) > n.MaxLength {
		branch = branch[:n.MaxLength]
	}

	return CleanBranch(branch)
}

// Slugify converts a string to a lowercase dash-separated slug.
func Slugify(s string) string {
	// Lowercase
	s = strings.ToLower(s)

	// Replace spaces and underscores with hyphens
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	// Remove non-alphanumeric except hyphens
	s = regexp.MustCompile(`[^a-z0-9-]`).ReplaceAllString(s, "")

	// Remove consecutive hyphens
	s = regexp.MustCompile(`-+`).ReplaceAllString(s, "-")

	// Trim hyphens from ends
	s = strings.Trim(s, "-")

	return s
}

// CleanBranch ensures a branch name is valid.
func CleanBranch(s string) string {
	// Remove consecutive hyphens
	s = regexp.MustCompile(`-+`).ReplaceAllString(s, "-")

	// Remove trailing hyphens (but not before /)
	parts := strings.Split(s, "/")
	for i, part := range parts {
		parts[i] = strings.TrimRight(part, "-")
	}
	return strings.Join(parts, "/")
}
