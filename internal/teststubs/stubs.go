package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

// StubProvider is a test double for providers.SnapshotProvider.
type StubProvider struct {
	mu     sync.Mutex
	Snap   snapshots.Snapshot
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Load returns the configured snapshot and error while tracking calls.
func (s *StubProvider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Snap, s.Err
}

// SetErr swaps the configured error under lock so running pollers observe it safely.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// StubSink is a test double for poller.SnapshotSink.
type StubSink struct {
	mu      sync.Mutex
	Written []snapshots.Snapshot
}

// Set records the snapshot for verification in tests.
func (w *StubSink) Set(snap snapshots.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Written = append(w.Written, snap)
}

// Last returns the most recent snapshot written, if any.
func (w *StubSink) Last() (snapshots.Snapshot, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.Written) == 0 {
		return snapshots.Snapshot{}, false
	}
	return w.Written[len(w.Written)-1], true
}
