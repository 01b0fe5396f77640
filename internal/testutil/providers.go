package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

// GoodProvider returns the provided snapshot with no error.
type GoodProvider struct {
	Snap snapshots.Snapshot
}

func (p GoodProvider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	_ = ctx
	return p.Snap, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	_ = ctx
	return snapshots.Snapshot{}, p.Err
}

// NotifyingProvider returns its snapshot and closes Notify on the first load.
type NotifyingProvider struct {
	Snap   snapshots.Snapshot
	Notify chan struct{}
}

func (p *NotifyingProvider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Snap, nil
}
