package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a SnapshotProvider with retry/backoff and load metrics.
// Data files may be mid-rewrite by the preprocessing job, so a failed read is retried.
type retryingProvider struct {
	inner       SnapshotProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner SnapshotProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) SnapshotProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		snap, err := r.inner.Load(ctx)
		r.metrics.RecordSnapshotLoad(r.name, time.Since(start), err)
		if err == nil {
			return snap, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "snapshot load retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return snapshots.Snapshot{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "snapshot load failed",
		"attempts", r.maxAttempts, "error", lastErr)
	return snapshots.Snapshot{}, lastErr
}

// Unwrap exposes the wrapped provider.
func (r *retryingProvider) Unwrap() SnapshotProvider {
	return r.inner
}
