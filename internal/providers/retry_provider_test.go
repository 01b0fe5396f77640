package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

type flakeyProvider struct {
	failures int
	calls    int
}

func (f *flakeyProvider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		return snapshots.Snapshot{}, errors.New("boom")
	}
	return snapshots.Snapshot{Source: "flakey"}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(fp, slog.Default(), rec, "flakey", 3, 1*time.Millisecond)

	snap, err := rp.Load(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if snap.Source != "flakey" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
	if got := rec.SnapshotLoads("flakey"); got != 3 {
		t.Fatalf("expected 3 recorded loads, got %d", got)
	}
	if got := rec.SnapshotLoadErrors("flakey"); got != 2 {
		t.Fatalf("expected 2 recorded errors, got %d", got)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, nil, "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingProviderUsesCustomBackoff(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rp := NewRetryingProvider(fp, nil, nil, "flakey", 2, time.Hour).(*retryingProvider)

	calls := 0
	rp.backoffFn = func(attempt int) time.Duration {
		calls++
		return 0
	}

	if _, err := rp.Load(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected backoff to be consulted once, got %d", calls)
	}
	if rp.Unwrap() != fp {
		t.Fatal("expected unwrap to return inner provider")
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(&flakeyProvider{}, nil, nil, "x", 0, 0).(*retryingProvider)
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	if got := rp.backoffFn(2); got != 2*defaultBackoff {
		t.Fatalf("expected linear backoff, got %s", got)
	}
}
