// Package relevance scores how well a branch or commit name relates to
// the summary text of the ticket it references.
//
// Keywords are extracted from the summary (lowercased, stoplist-filtered,
// deduplicated, capped at Config.MaxKeywords in source order), then the
// candidate name is checked for each keyword either verbatim or by its
// first Config.PartialPrefixLen characters. The prefix rule tolerates
// pluralization and suffix variation ("cards"/"card",
// "restrict"/"restriction") at the cost of occasional false positives on
// short shared prefixes. That trade-off is deliberate: the scorer is a
// nudge toward descriptive names, not an exact-match gate.
//
// Keyword selection is strictly first-N in source order. No frequency or
// length weighting is applied.
//
// All functions are pure: same inputs, same verdict, no I/O.
package relevance
