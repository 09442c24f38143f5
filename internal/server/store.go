package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mathieu/cv-analyzer/internal/types"
)

// storedResult is one held analysis: the result record plus the CV
// filename used in report headers.
type storedResult struct {
	Result   *types.MatchResult
	Filename string
	expires  time.Time
}

// ResultStore holds analysis results in memory for the duration of
// rendering and export. Entries expire after the configured TTL and
// are never written to durable storage.
type ResultStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uuid.UUID]storedResult
}

// NewResultStore creates a store whose entries live for ttl.
func NewResultStore(ttl time.Duration) *ResultStore {
	return &ResultStore{
		ttl:     ttl,
		entries: make(map[uuid.UUID]storedResult),
	}
}

// Put stores a result and returns its ID.
func (s *ResultStore) Put(result *types.MatchResult, filename string) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = storedResult{
		Result:   result,
		Filename: filename,
		expires:  time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result. Expired entries are treated as absent.
func (s *ResultStore) Get(id uuid.UUID) (storedResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok || time.Now().After(entry.expires) {
		delete(s.entries, id)
		return storedResult{}, false
	}
	return entry, true
}

// Len returns the number of live entries.
func (s *ResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Janitor removes expired entries every interval until ctx is done.
func (s *ResultStore) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purge()
		}
	}
}

func (s *ResultStore) purge() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if now.After(entry.expires) {
			delete(s.entries, id)
		}
	}
}
