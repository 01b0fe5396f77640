package providers

import (
	"context"

	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

// SnapshotProvider loads a complete input snapshot. Implementations must return either a
// fully validated snapshot or an error; partial snapshots are never returned.
type SnapshotProvider interface {
	Load(ctx context.Context) (snapshots.Snapshot, error)
}
