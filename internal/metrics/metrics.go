package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	loads           int
	errors          int
	lastLoadLatency time.Duration
}

type viewStats struct {
	calls  int
	errors int
}

// Recorder captures lightweight, in-memory metrics about snapshot loads and view
// computations, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu           sync.Mutex
	sources      map[string]*sourceStats
	views        map[string]*viewStats
	pollerCycles int
	pollerErrors int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources: make(map[string]*sourceStats),
		views:   make(map[string]*viewStats),
		otel:    otel,
	}
}

// RecordSnapshotLoad counts one load attempt against a source and stores its latency.
func (r *Recorder) RecordSnapshotLoad(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.loads++
	stats.lastLoadLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSnapshotLoad(source, duration, err)
	}
}

// RecordView counts one view computation.
func (r *Recorder) RecordView(view string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.views[view]
	if !ok {
		stats = &viewStats{}
		r.views[view] = stats
	}
	stats.calls++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordView(view, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.pollerCycles++
	if err != nil {
		r.pollerErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPoller(duration, err)
	}
}

// SourceSnapshot is a copy of the current stats for one snapshot source.
type SourceSnapshot struct {
	Loads           int           `json:"loads"`
	Errors          int           `json:"errors"`
	LastLoadLatency time.Duration `json:"lastLoadLatency"`
}

// Source returns the stats recorded for a snapshot source.
func (r *Recorder) Source(source string) SourceSnapshot {
	if r == nil {
		return SourceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.sources[source]
	if !ok {
		return SourceSnapshot{}
	}
	return SourceSnapshot{
		Loads:           stats.loads,
		Errors:          stats.errors,
		LastLoadLatency: stats.lastLoadLatency,
	}
}

// SnapshotLoads returns the total load attempts recorded for a source.
func (r *Recorder) SnapshotLoads(source string) int {
	return r.Source(source).Loads
}

// SnapshotLoadErrors returns the failed load attempts recorded for a source.
func (r *Recorder) SnapshotLoadErrors(source string) int {
	return r.Source(source).Errors
}

// LastLoadLatency returns the last recorded load latency for a source.
func (r *Recorder) LastLoadLatency(source string) time.Duration {
	return r.Source(source).LastLoadLatency
}

// ViewCalls returns how many times a view was computed.
func (r *Recorder) ViewCalls(view string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.views[view]; ok {
		return stats.calls
	}
	return 0
}

// ViewErrors returns how many view computations failed.
func (r *Recorder) ViewErrors(view string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.views[view]; ok {
		return stats.errors
	}
	return 0
}

// PollerCycles returns the number of reload cycles recorded.
func (r *Recorder) PollerCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pollerCycles
}

// PollerErrors returns the number of failed reload cycles recorded.
func (r *Recorder) PollerErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pollerErrors
}
