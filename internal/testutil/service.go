package testutil

import (
	"context"
	"testing"
	"time"

	appinsights "github.com/preston-bernstein/nba-insights-service/internal/app/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

// FixtureLoadedAt is the load time stamped on fixture snapshots built by NewFixtureService.
var FixtureLoadedAt = MustParseDate("2025-03-01").Add(12 * time.Hour)

// NewFixtureService builds a view service over the fixture snapshot.
func NewFixtureService(t testing.TB) (*appinsights.Service, *store.MemoryStore) {
	t.Helper()
	snap, err := fixture.NewWithClock(NowAt(FixtureLoadedAt)).Load(context.Background())
	if err != nil {
		t.Fatalf("fixture load failed: %v", err)
	}
	return NewServiceWithSnapshot(&snap)
}

// NewServiceWithSnapshot builds a view service over snap; a nil snap leaves the store empty.
func NewServiceWithSnapshot(snap *snapshots.Snapshot) (*appinsights.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	if snap != nil {
		ms.Set(*snap)
	}
	return appinsights.NewService(ms, insights.DefaultTradeScenario(), nil, nil), ms
}
