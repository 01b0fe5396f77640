package store

import (
	"sync"
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

func TestMemoryStoreEmptyBeforeSet(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no snapshot before set")
	}
	if _, ok := s.View("mvp", func(*snapshots.Snapshot) any { return 1 }); ok {
		t.Fatalf("expected view to be unavailable before set")
	}
}

func TestMemoryStoreSetAndCurrent(t *testing.T) {
	s := NewMemoryStore()
	s.Set(snapshots.Snapshot{Source: "test"})

	snap, ok := s.Current()
	if !ok || snap.Source != "test" {
		t.Fatalf("expected current snapshot, got %+v ok=%v", snap, ok)
	}
}

func TestMemoryStoreViewMemoizesPerSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.Set(snapshots.Snapshot{Source: "first"})

	calls := 0
	compute := func(snap *snapshots.Snapshot) any {
		calls++
		return snap.Source
	}

	for i := 0; i < 3; i++ {
		v, ok := s.View("source", compute)
		if !ok || v != "first" {
			t.Fatalf("unexpected view %v ok=%v", v, ok)
		}
	}
	if calls != 1 {
		t.Fatalf("expected one computation, got %d", calls)
	}

	s.Set(snapshots.Snapshot{Source: "second"})
	v, _ := s.View("source", compute)
	if v != "second" || calls != 2 {
		t.Fatalf("expected recompute after set, got %v calls=%d", v, calls)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	s.Set(snapshots.Snapshot{Source: "a"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(snapshots.Snapshot{Source: "b"})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.View("k", func(snap *snapshots.Snapshot) any { return snap.Source })
		}()
	}
	wg.Wait()

	if _, ok := s.Current(); !ok {
		t.Fatalf("expected snapshot after concurrent sets")
	}
}

func TestMemoryStoreViewCountResetsOnSet(t *testing.T) {
	s := NewMemoryStore()
	if s.ViewCount() != 0 {
		t.Fatalf("expected no views before set")
	}
	s.Set(snapshots.Snapshot{Source: "first"})
	s.View("a", func(*snapshots.Snapshot) any { return 1 })
	s.View("b", func(*snapshots.Snapshot) any { return 2 })
	s.View("a", func(*snapshots.Snapshot) any { return 3 })
	if s.ViewCount() != 2 {
		t.Fatalf("expected two memoized views, got %d", s.ViewCount())
	}

	s.Set(snapshots.Snapshot{Source: "second"})
	if s.ViewCount() != 0 {
		t.Fatalf("expected views cleared on set, got %d", s.ViewCount())
	}
}
