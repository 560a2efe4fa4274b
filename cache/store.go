// Package cache persists fetched ticket summaries as JSON files so
// repeated checks against the same ticket avoid a network round trip.
// Entries are keyed by ticket ID and expire after a TTL.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a cached summary stays fresh.
const DefaultTTL = 24 * time.Hour

// ErrKeyRequired indicates an empty ticket key was passed.
var ErrKeyRequired = errors.New("ticket key is required")

// Entry is one cached ticket summary.
type Entry struct {
	Key       string    `json:"key"`
	Summary   string    `json:"summary"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store is a file-backed ticket summary cache. One JSON file per ticket
// under the base directory. Safe for concurrent use.
type Store struct {
	dir string
	ttl time.Duration
	mu  sync.RWMutex
}

// StoreConfig holds configuration for the cache store.
type StoreConfig struct {
	// Dir is the base directory. Empty means
	// $XDG_CACHE_HOME/branchlint/tickets (or ~/.cache/...).
	Dir string

	// TTL is the entry freshness window. Zero means DefaultTTL.
	TTL time.Duration
}

// NewStore creates a file-backed cache, creating the directory if needed.
func NewStore(cfg StoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, "branchlint", "tickets")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &Store{dir: dir, ttl: ttl}, nil
}

// Dir returns the cache base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the cached summary for a ticket. A missing, corrupt, or
// expired entry is a miss, never an error.
func (s *Store) Get(key string) (Entry, bool) {
	if key == "" {
		return Entry{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}

	if time.Since(entry.FetchedAt) > s.ttl {
		return Entry{}, false
	}

	return entry, true
}

// Put stores a ticket summary, stamping it with the current time.
func (s *Store) Put(key, summary string) error {
	if key == "" {
		return ErrKeyRequired
	}

	entry := Entry{Key: key, Summary: summary, FetchedAt: time.Now()}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.entryPath(key), data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Purge removes all cached entries.
func (s *Store) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read cache dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return fmt.Errorf("remove cache entry: %w", err)
		}
	}
	return nil
}

// entryPath maps a ticket key to its file. Keys are validated upstream
// as PROJECT-<digits>, so they are safe as file names.
func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, strings.ToUpper(key)+".json")
}
