package relevance

import (
	"fmt"
	"math"
	"strings"
)

// Verdict is the immutable result of scoring one candidate name against
// one keyword set. Matched and Missing partition the keyword set and
// preserve its order.
type Verdict struct {
	// MatchPercentage is round(100 * matched / total), or 100 when the
	// keyword set is empty (nothing to miss).
	MatchPercentage int `json:"match_percentage"`

	// Matched are the keywords found in the candidate name.
	Matched []string `json:"matched_keywords,omitempty"`

	// Missing are the keywords not found in the candidate name.
	Missing []string `json:"missing_keywords,omitempty"`

	// Explanation is a display-only sentence embedding the ticket
	// summary. No logic consumes it.
	Explanation string `json:"explanation"`
}

// Score computes how many keywords the candidate name contains.
// The candidate is normalized first: lowercased, the ticket ID removed,
// category prefixes stripped, and separators treated as word boundaries.
// A keyword matches verbatim, or by its first PartialPrefixLen characters
// when it is at least that long. Pure; defined for any string input.
func (c Config) Score(candidate string, kw Keywords, ticketID string) Verdict {
	if kw.Empty() {
		return Verdict{
			MatchPercentage: 100,
			Explanation:     fmt.Sprintf("no keywords to check against ticket summary %q", kw.Summary),
		}
	}

	name := c.normalizeCandidate(candidate, ticketID)

	var matched, missing []string
	for _, word := range kw.Words {
		if c.matches(name, word) {
			matched = append(matched, word)
		} else {
			missing = append(missing, word)
		}
	}

	pct := int(math.Round(100 * float64(len(matched)) / float64(len(kw.Words))))

	return Verdict{
		MatchPercentage: pct,
		Matched:         matched,
		Missing:         missing,
		Explanation: fmt.Sprintf("name matches %d of %d keywords (%d%%) from ticket summary %q",
			len(matched), len(kw.Words), pct, kw.Summary),
	}
}

// matches reports whether the normalized name contains the keyword,
// verbatim or by partial prefix.
func (c Config) matches(name, keyword string) bool {
	if strings.Contains(name, keyword) {
		return true
	}
	if c.PartialPrefixLen > 0 {
		runes := []rune(keyword)
		if len(runes) >= c.PartialPrefixLen {
			return strings.Contains(name, string(runes[:c.PartialPrefixLen]))
		}
	}
	return false
}

// normalizeCandidate prepares a raw branch or commit string for matching.
func (c Config) normalizeCandidate(candidate, ticketID string) string {
	name := strings.ToLower(candidate)

	for _, prefix := range c.prefixes() {
		if rest, ok := strings.CutPrefix(name, prefix+"/"); ok {
			name = rest
			break
		}
	}

	if ticketID != "" {
		name = strings.ReplaceAll(name, strings.ToLower(ticketID), " ")
	}

	// Separators become word boundaries.
	name = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/':
			return ' '
		}
		return r
	}, name)

	return strings.TrimSpace(name)
}
