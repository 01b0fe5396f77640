package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.SnapshotProvider {
	switch cfg.DataSource {
	case config.SourceFS, "":
		return snapshots.NewFSStore(cfg.DataDir)
	case config.SourceFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown data source, falling back to data directory", slog.String("source", cfg.DataSource))
		}
		return snapshots.NewFSStore(cfg.DataDir)
	}
}
