package relevance

import (
	"reflect"
	"testing"
)

// giftCardKeywords is the keyword set for the canonical gift card ticket.
func giftCardKeywords(t *testing.T) Keywords {
	t.Helper()
	kw := DefaultConfig().ExtractKeywords("POC - create app to restrict gift cards")
	want := []string{"create", "app", "restrict", "gift", "cards"}
	if !reflect.DeepEqual(kw.Words, want) {
		t.Fatalf("fixture keywords = %v, want %v", kw.Words, want)
	}
	return kw
}

func TestScore(t *testing.T) {
	cfg := DefaultConfig()
	kw := giftCardKeywords(t)

	tests := []struct {
		name        string
		candidate   string
		ticketID    string
		wantPct     int
		wantMatched []string
		wantMissing []string
	}{
		{
			// "cards" and "restrict" match via the 4-char partial rule
			// against "card" and "restriction".
			name:        "fully descriptive branch",
			candidate:   "feature/SHOP-8548-create-gift-card-restriction-app",
			ticketID:    "SHOP-8548",
			wantPct:     100,
			wantMatched: []string{"create", "app", "restrict", "gift", "cards"},
		},
		{
			name:        "partially descriptive branch",
			candidate:   "feature/SHOP-8548-gift-card-app",
			ticketID:    "SHOP-8548",
			wantPct:     60,
			wantMatched: []string{"app", "gift", "cards"},
			wantMissing: []string{"create", "restrict"},
		},
		{
			name:        "unrelated branch",
			candidate:   "feature/SHOP-8548-user-authentication",
			ticketID:    "SHOP-8548",
			wantPct:     0,
			wantMissing: []string{"create", "app", "restrict", "gift", "cards"},
		},
		{
			name:        "commit subject",
			candidate:   "SHOP-8548: restrict gift cards to one per app user",
			ticketID:    "SHOP-8548",
			wantPct:     80,
			wantMatched: []string{"app", "restrict", "gift", "cards"},
			wantMissing: []string{"create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Score(tt.candidate, kw, tt.ticketID)
			if got.MatchPercentage != tt.wantPct {
				t.Errorf("MatchPercentage = %d, want %d", got.MatchPercentage, tt.wantPct)
			}
			if !reflect.DeepEqual(got.Matched, tt.wantMatched) {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
		})
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	kw := giftCardKeywords(t)

	upper := cfg.Score("Feature/SHOP-1-Gift-Cards", kw, "SHOP-1")
	lower := cfg.Score("feature/shop-1-gift-cards", kw, "shop-1")

	if upper.MatchPercentage != lower.MatchPercentage {
		t.Errorf("case-sensitive drift: %d vs %d", upper.MatchPercentage, lower.MatchPercentage)
	}
	if !reflect.DeepEqual(upper.Matched, lower.Matched) {
		t.Errorf("Matched differs: %v vs %v", upper.Matched, lower.Matched)
	}
}

func TestScoreEmptyKeywords(t *testing.T) {
	cfg := DefaultConfig()

	for _, candidate := range []string{"", "feature/SHOP-1-anything", "random text"} {
		got := cfg.Score(candidate, Keywords{Summary: "???"}, "SHOP-1")
		if got.MatchPercentage != 100 {
			t.Errorf("Score(%q, empty) = %d%%, want vacuous 100%%", candidate, got.MatchPercentage)
		}
		if len(got.Matched) != 0 || len(got.Missing) != 0 {
			t.Errorf("Score(%q, empty) matched=%v missing=%v, want empty", candidate, got.Matched, got.Missing)
		}
	}
}

func TestScorePartition(t *testing.T) {
	cfg := DefaultConfig()
	kw := giftCardKeywords(t)

	candidates := []string{
		"feature/SHOP-8548-gift-card-app",
		"bugfix/SHOP-1-fix-cards",
		"no-ticket-at-all",
		"",
		"feature/SHOP-8548-créate-gift",
	}

	for _, candidate := range candidates {
		got := cfg.Score(candidate, kw, "SHOP-8548")

		if len(got.Matched)+len(got.Missing) != len(kw.Words) {
			t.Errorf("%q: |matched|+|missing| = %d, want %d",
				candidate, len(got.Matched)+len(got.Missing), len(kw.Words))
		}

		inMatched := make(map[string]bool)
		for _, w := range got.Matched {
			inMatched[w] = true
		}
		for _, w := range got.Missing {
			if inMatched[w] {
				t.Errorf("%q: keyword %q in both matched and missing", candidate, w)
			}
		}

		// Both lists preserve the keyword set's order.
		merged := mergeOrdered(got.Matched, got.Missing, kw.Words)
		if !reflect.DeepEqual(merged, kw.Words) {
			t.Errorf("%q: partition reorders keywords: %v + %v", candidate, got.Matched, got.Missing)
		}
	}
}

// mergeOrdered interleaves matched and missing back into keyword order.
func mergeOrdered(matched, missing, keywords []string) []string {
	inMatched := make(map[string]bool, len(matched))
	for _, w := range matched {
		inMatched[w] = true
	}
	inMissing := make(map[string]bool, len(missing))
	for _, w := range missing {
		inMissing[w] = true
	}
	var out []string
	for _, w := range keywords {
		if inMatched[w] || inMissing[w] {
			out = append(out, w)
		}
	}
	return out
}

func TestScoreIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	kw := giftCardKeywords(t)

	first := cfg.Score("feature/SHOP-8548-gift-card-app", kw, "SHOP-8548")
	second := cfg.Score("feature/SHOP-8548-gift-card-app", kw, "SHOP-8548")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("verdicts differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestScorePartialPrefixTunable(t *testing.T) {
	kw := Keywords{Summary: "restrict cards", Words: []string{"restrict", "cards"}}

	// The 4-char prefix rule is an approximation, not a law. With partial
	// matching disabled, suffix variants stop matching.
	strict := Config{MinKeywordLength: 3, MaxKeywords: 8, PartialPrefixLen: 0}
	got := strict.Score("feature/SHOP-1-card-restriction", kw, "SHOP-1")
	if got.MatchPercentage != 50 {
		t.Errorf("strict MatchPercentage = %d, want 50 (restrict only)", got.MatchPercentage)
	}

	loose := Config{MinKeywordLength: 3, MaxKeywords: 8, PartialPrefixLen: 4}
	got = loose.Score("feature/SHOP-1-card-restriction", kw, "SHOP-1")
	if got.MatchPercentage != 100 {
		t.Errorf("loose MatchPercentage = %d, want 100 (card matches cards by prefix)", got.MatchPercentage)
	}
}

func TestScoreMultibyteKeywordPrefix(t *testing.T) {
	cfg := DefaultConfig()
	kw := Keywords{Summary: "планировщик задач", Words: []string{"планировщик", "задачи"}}

	// "задание" shares the 4-rune prefix "зада" with "задачи", and
	// "планировщика" contains "планировщик" verbatim. The prefix is
	// measured in runes, not bytes.
	got := cfg.Score("feature/SCHED-12-задание-планировщика", kw, "SCHED-12")
	if got.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want 100", got.MatchPercentage)
	}

	// "запуск" shares only two runes with "задачи", below the prefix
	// length, so it does not count as a partial match.
	got = cfg.Score("feature/SCHED-12-запуск-отчетов", kw, "SCHED-12")
	if got.MatchPercentage != 0 {
		t.Errorf("MatchPercentage = %d, want 0", got.MatchPercentage)
	}
	if len(got.Matched) != 0 {
		t.Errorf("Matched = %v, want none", got.Matched)
	}
}

func TestScoreRounding(t *testing.T) {
	kw := Keywords{Summary: "one two three", Words: []string{"alpha", "beta", "gamma"}}
	cfg := DefaultConfig()

	got := cfg.Score("feature/SHOP-1-alpha", kw, "SHOP-1")
	if got.MatchPercentage != 33 {
		t.Errorf("1/3 rounds to %d, want 33", got.MatchPercentage)
	}

	got = cfg.Score("feature/SHOP-1-alpha-beta", kw, "SHOP-1")
	if got.MatchPercentage != 67 {
		t.Errorf("2/3 rounds to %d, want 67", got.MatchPercentage)
	}
}
