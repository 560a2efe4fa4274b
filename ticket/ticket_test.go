package ticket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/randalmurphal/branchlint/cache"
	"github.com/randalmurphal/branchlint/httpc"
	"github.com/randalmurphal/branchlint/jira"
)

// countingSummarizer records how many times it is called.
type countingSummarizer struct {
	inner Summarizer
	calls int
}

func (c *countingSummarizer) Summary(ctx context.Context, id string) (string, error) {
	c.calls++
	return c.inner.Summary(ctx, id)
}

func newTestCache(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.NewStore(cache.StoreConfig{Dir: t.TempDir(), TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStatic(t *testing.T) {
	src := Static{"SHOP-1": "gift cards"}

	got, err := src.Summary(context.Background(), "SHOP-1")
	if err != nil || got != "gift cards" {
		t.Errorf("Summary = %q, %v", got, err)
	}

	if _, err := src.Summary(context.Background(), "SHOP-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing ticket error = %v, want ErrNotFound", err)
	}
}

func TestJiraSummarizerKeepsAuthCause(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := jira.DefaultConfig()
	cfg.URL = srv.URL
	cfg.Auth = jira.AuthConfig{Type: jira.AuthAPIToken, Email: "me@example.com", Token: "bad"}

	client, err := jira.NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = NewJiraSummarizer(client).Summary(context.Background(), "SHOP-1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Summary error = %v, want ErrUnavailable", err)
	}
	if !errors.Is(err, httpc.ErrUnauthorized) {
		t.Errorf("Summary error = %v, want the authentication cause preserved", err)
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("Summary error = %q, want the status code in the text", err)
	}
}

func TestCachedServesFromStore(t *testing.T) {
	source := &countingSummarizer{inner: Static{"SHOP-1": "gift cards"}}
	summarizer := NewCached(source, newTestCache(t))

	for range 3 {
		got, err := summarizer.Summary(context.Background(), "SHOP-1")
		if err != nil {
			t.Fatalf("Summary: %v", err)
		}
		if got != "gift cards" {
			t.Errorf("Summary = %q", got)
		}
	}

	if source.calls != 1 {
		t.Errorf("source called %d times, want 1 (rest from cache)", source.calls)
	}
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	source := &countingSummarizer{inner: Static{}}
	summarizer := NewCached(source, newTestCache(t))

	for range 2 {
		if _, err := summarizer.Summary(context.Background(), "SHOP-404"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Summary error = %v, want ErrNotFound", err)
		}
	}

	if source.calls != 2 {
		t.Errorf("source called %d times, want 2 (failures not cached)", source.calls)
	}
}

func TestCachedPrefersFreshEntry(t *testing.T) {
	store := newTestCache(t)
	if err := store.Put("SHOP-1", "cached summary"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	source := &countingSummarizer{inner: Static{"SHOP-1": "live summary"}}
	summarizer := NewCached(source, store)

	got, err := summarizer.Summary(context.Background(), "SHOP-1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got != "cached summary" {
		t.Errorf("Summary = %q, want cached value", got)
	}
	if source.calls != 0 {
		t.Errorf("source called %d times, want 0", source.calls)
	}
}
