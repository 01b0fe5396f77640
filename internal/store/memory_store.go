package store

import (
	"sync"

	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

// MemoryStore keeps the current snapshot and the views computed from it.
// Views are memoized per snapshot and dropped whenever a new snapshot is set.
type MemoryStore struct {
	mu      sync.RWMutex
	current *snapshots.Snapshot
	views   map[string]any
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		views: make(map[string]any),
	}
}

// Current returns the active snapshot, or false before the first successful load.
func (s *MemoryStore) Current() (*snapshots.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.current != nil
}

// Set replaces the active snapshot and clears memoized views.
func (s *MemoryStore) Set(snap snapshots.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &snap
	s.views = make(map[string]any)
}

// View returns the memoized value for key, computing it against the current snapshot on
// first use. The second return is false when no snapshot is loaded.
func (s *MemoryStore) View(key string, compute func(*snapshots.Snapshot) any) (any, bool) {
	s.mu.RLock()
	snap := s.current
	v, ok := s.views[key]
	s.mu.RUnlock()
	if snap == nil {
		return nil, false
	}
	if ok {
		return v, true
	}

	v = compute(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Only cache if the snapshot was not swapped while computing.
	if s.current == snap {
		s.views[key] = v
	}
	return v, true
}

// ViewCount reports how many views are memoized for the current snapshot.
func (s *MemoryStore) ViewCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.views)
}
