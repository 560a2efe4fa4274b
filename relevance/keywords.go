package relevance

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinKeywordLength is the minimum token length kept as a keyword.
const DefaultMinKeywordLength = 3

// DefaultMaxKeywords caps how many keywords are retained per summary.
const DefaultMaxKeywords = 8

// DefaultPartialPrefixLen is the prefix length used for partial keyword
// matching. Keywords at least this long also match by prefix.
const DefaultPartialPrefixLen = 4

// DefaultPrefixes are the branch category prefixes stripped from a
// candidate name before matching.
var DefaultPrefixes = []string{"feature", "bugfix", "hotfix", "release", "chore"}

// defaultStoplist contains common words excluded from keyword extraction:
// articles, prepositions, pronouns, auxiliary verbs, and ticket-summary
// filler ("poc", "wip").
var defaultStoplist = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"not": {}, "but": {}, "has": {}, "had": {}, "have": {}, "you": {},
	"all": {}, "any": {}, "can": {}, "her": {}, "his": {}, "its": {},
	"our": {}, "out": {}, "who": {}, "get": {}, "did": {}, "does": {},
	"with": {}, "from": {}, "this": {}, "that": {}, "into": {}, "should": {},
	"would": {}, "could": {}, "will": {}, "shall": {}, "been": {}, "being": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "about": {},
	"some": {}, "such": {}, "than": {}, "then": {}, "them": {}, "they": {},
	"there": {}, "these": {}, "those": {}, "very": {}, "also": {},
	"poc": {}, "wip": {}, "tbd": {}, "etc": {},
}

// ExtendedStoplist returns the default stoplist augmented with extra
// words, lowercased.
func ExtendedStoplist(extra []string) map[string]struct{} {
	stoplist := make(map[string]struct{}, len(defaultStoplist)+len(extra))
	for word := range defaultStoplist {
		stoplist[word] = struct{}{}
	}
	for _, word := range extra {
		stoplist[strings.ToLower(word)] = struct{}{}
	}
	return stoplist
}

// Config holds the tunables for keyword extraction and scoring.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// MinKeywordLength drops tokens shorter than this many runes.
	MinKeywordLength int

	// MaxKeywords caps the keyword set, keeping first-seen order.
	MaxKeywords int

	// PartialPrefixLen is the prefix length for partial matching.
	// Keywords shorter than this only match verbatim.
	PartialPrefixLen int

	// Stoplist is the set of words excluded from extraction.
	// Nil means the built-in default stoplist.
	Stoplist map[string]struct{}

	// Prefixes are category prefixes stripped from candidate names.
	// Nil means DefaultPrefixes.
	Prefixes []string
}

// DefaultConfig returns a Config with the standard tunables.
func DefaultConfig() Config {
	return Config{
		MinKeywordLength: DefaultMinKeywordLength,
		MaxKeywords:      DefaultMaxKeywords,
		PartialPrefixLen: DefaultPartialPrefixLen,
	}
}

func (c Config) stoplist() map[string]struct{} {
	if c.Stoplist != nil {
		return c.Stoplist
	}
	return defaultStoplist
}

func (c Config) prefixes() []string {
	if c.Prefixes != nil {
		return c.Prefixes
	}
	return DefaultPrefixes
}

// Keywords is the ordered, deduplicated keyword set extracted from one
// ticket summary. It carries the originating summary so verdicts can
// embed it in their explanation.
type Keywords struct {
	// Summary is the source text the keywords were extracted from.
	Summary string

	// Words are the keywords in first-seen order.
	Words []string
}

// Empty reports whether no keywords were extracted.
func (k Keywords) Empty() bool {
	return len(k.Words) == 0
}

// foldTransformer strips combining marks so accented summaries tokenize
// to plain ASCII-ish keywords ("café" -> "cafe").
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// ExtractKeywords turns free-form summary text into a ranked keyword set.
// Empty input yields an empty set; there are no error cases.
func (c Config) ExtractKeywords(summary string) Keywords {
	kw := Keywords{Summary: summary}

	folded, _, err := transform.String(foldTransformer, summary)
	if err != nil {
		folded = summary
	}

	tokens := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	stop := c.stoplist()
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < c.MinKeywordLength {
			continue
		}
		if _, stopped := stop[tok]; stopped {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		kw.Words = append(kw.Words, tok)
		if c.MaxKeywords > 0 && len(kw.Words) >= c.MaxKeywords {
			break
		}
	}

	return kw
}
