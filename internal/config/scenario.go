package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/preston-bernstein/nba-insights-service/internal/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

type scenarioFile struct {
	TradeDate  string                  `toml:"trade_date"`
	Primary    *insights.PlayerPattern `toml:"primary"`
	Comparison *insights.PlayerPattern `toml:"comparison"`
	Teams      []string                `toml:"teams"`
}

// LoadTradeScenario decodes a TOML trade scenario. An empty path yields the built-in
// default; keys missing from the file keep their default values.
func LoadTradeScenario(path string) (insights.TradeScenario, error) {
	scenario := insights.DefaultTradeScenario()
	if path == "" {
		return scenario, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return insights.TradeScenario{}, fmt.Errorf("read trade scenario: %w", err)
	}
	return parseTradeScenario(raw, scenario)
}

func parseTradeScenario(raw []byte, scenario insights.TradeScenario) (insights.TradeScenario, error) {
	var file scenarioFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return insights.TradeScenario{}, fmt.Errorf("decode trade scenario: %w", err)
	}

	if file.TradeDate != "" {
		if _, err := timeutil.ParseDate(file.TradeDate); err != nil {
			return insights.TradeScenario{}, fmt.Errorf("trade scenario date %q: %w", file.TradeDate, err)
		}
		scenario.TradeDate = file.TradeDate
	}
	if file.Primary != nil {
		scenario.Primary = *file.Primary
	}
	if file.Comparison != nil {
		scenario.Comparison = *file.Comparison
	}
	switch len(file.Teams) {
	case 0:
	case 2:
		scenario.Teams = [2]string{file.Teams[0], file.Teams[1]}
	default:
		return insights.TradeScenario{}, fmt.Errorf("trade scenario needs exactly 2 teams, got %d", len(file.Teams))
	}
	return scenario, nil
}
