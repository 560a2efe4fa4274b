package relevance

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExtractKeywords(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		summary string
		want    []string
	}{
		{
			name:    "gift card summary",
			summary: "POC - create app to restrict gift cards",
			want:    []string{"create", "app", "restrict", "gift", "cards"},
		},
		{
			name:    "stoplist and short tokens filtered",
			summary: "the fix for a bug in the login",
			want:    []string{"fix", "bug", "login"},
		},
		{
			name:    "duplicates kept once in first-seen order",
			summary: "cache the cache layer cache invalidation",
			want:    []string{"cache", "layer", "invalidation"},
		},
		{
			name:    "punctuation and digits split tokens",
			summary: "migrate v2:payments/api (phase1)",
			want:    []string{"migrate", "payments", "api", "phase1"},
		},
		{
			name:    "empty input",
			summary: "",
			want:    nil,
		},
		{
			name:    "only stopwords",
			summary: "this and that",
			want:    nil,
		},
		{
			name:    "diacritics fold to ascii",
			summary: "Café menü rework",
			want:    []string{"cafe", "menu", "rework"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.ExtractKeywords(tt.summary)
			if got.Summary != tt.summary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.summary)
			}
			if len(got.Words) != len(tt.want) {
				t.Fatalf("ExtractKeywords(%q) = %v, want %v", tt.summary, got.Words, tt.want)
			}
			for i := range tt.want {
				if got.Words[i] != tt.want[i] {
					t.Errorf("Words[%d] = %q, want %q", i, got.Words[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	cfg := DefaultConfig()
	summary := "rewrite payment gateway retries timeouts metrics logging tracing alerts dashboards runbooks"

	got := cfg.ExtractKeywords(summary)
	if len(got.Words) != cfg.MaxKeywords {
		t.Errorf("len(Words) = %d, want cap %d", len(got.Words), cfg.MaxKeywords)
	}
	// First-N policy: the cap keeps the earliest tokens.
	if got.Words[0] != "rewrite" || got.Words[cfg.MaxKeywords-1] != "tracing" {
		t.Errorf("cap did not preserve source order: %v", got.Words)
	}
}

func TestExtractKeywordsProperties(t *testing.T) {
	cfg := DefaultConfig()
	summaries := []string{
		"POC - create app to restrict gift cards",
		"Fix race in the session store when tokens expire",
		"a b c d ee fff gggg",
		strings.Repeat("flaky retry backoff ", 50),
		"ünïcode summary with ümlauts everywhere",
	}

	for _, summary := range summaries {
		got := cfg.ExtractKeywords(summary)

		if len(got.Words) > cfg.MaxKeywords {
			t.Errorf("%q: %d keywords exceeds cap %d", summary, len(got.Words), cfg.MaxKeywords)
		}

		seen := make(map[string]bool)
		for _, w := range got.Words {
			if utf8.RuneCountInString(w) < cfg.MinKeywordLength {
				t.Errorf("%q: keyword %q shorter than minimum %d", summary, w, cfg.MinKeywordLength)
			}
			if w != strings.ToLower(w) {
				t.Errorf("%q: keyword %q not lowercased", summary, w)
			}
			if seen[w] {
				t.Errorf("%q: duplicate keyword %q", summary, w)
			}
			seen[w] = true
		}
	}
}

func TestExtractKeywordsCustomConfig(t *testing.T) {
	cfg := Config{
		MinKeywordLength: 5,
		MaxKeywords:      2,
		Stoplist:         map[string]struct{}{"restrict": {}},
	}

	got := cfg.ExtractKeywords("POC - create app to restrict gift cards")
	want := []string{"create", "cards"}
	if len(got.Words) != len(want) {
		t.Fatalf("Words = %v, want %v", got.Words, want)
	}
	for i := range want {
		if got.Words[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got.Words[i], want[i])
		}
	}
}
