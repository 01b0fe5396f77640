package server

import (
	"log/slog"

	appinsights "github.com/preston-bernstein/nba-insights-service/internal/app/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

// buildViews wires the snapshot store to the view service using the configured trade scenario.
func buildViews(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *appinsights.Service, error) {
	scenario, err := config.LoadTradeScenario(cfg.TradeScenario)
	if err != nil {
		return nil, nil, err
	}
	memoryStore := store.NewMemoryStore()
	return memoryStore, appinsights.NewService(memoryStore, scenario, logger, recorder), nil
}
