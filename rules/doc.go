// Package rules enforces the lexical naming convention for branch names
// and commit subjects: a category prefix from a fixed enum, a ticket ID
// of the form PROJECT-<digits>, a lowercase dash-separated body.
//
// Checks are pure string validation and run before (and independently
// of) ticket lookup and relevance scoring.
package rules
