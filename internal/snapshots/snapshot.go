package snapshots

import (
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/trades"
)

// Snapshot is one atomic load of every input collection. It is never mutated after load.
type Snapshot struct {
	Source       string                `json:"source"`
	LoadedAt     time.Time             `json:"loadedAt"`
	MVP          []gamelogs.GameLog    `json:"-"`
	Scoring      []gamelogs.GameLog    `json:"-"`
	Bench        []gamelogs.GameLog    `json:"-"`
	Championship []teams.SeasonProfile `json:"-"`
	Trade        *trades.Input         `json:"-"`
}

// Counts reports the number of records per collection, keyed by data file kind.
func (s *Snapshot) Counts() map[Kind]int {
	if s == nil {
		return map[Kind]int{}
	}
	counts := map[Kind]int{
		KindMVP:          len(s.MVP),
		KindScoring:      len(s.Scoring),
		KindBench:        len(s.Bench),
		KindChampionship: len(s.Championship),
	}
	if s.Trade != nil {
		counts[KindTradeImpact] = len(s.Trade.PlayerStats) + len(s.Trade.TeamRecords)
	}
	return counts
}

// Validate checks every collection at the input boundary and rejects the whole snapshot
// on the first bad record.
func (s *Snapshot) Validate() error {
	if err := gamelogs.Validate(string(KindMVP), s.MVP); err != nil {
		return err
	}
	if err := gamelogs.Validate(string(KindScoring), s.Scoring); err != nil {
		return err
	}
	if err := gamelogs.Validate(string(KindBench), s.Bench); err != nil {
		return err
	}
	if err := gamelogs.ValidateEach(string(KindChampionship), s.Championship); err != nil {
		return err
	}
	if s.Trade == nil {
		return nil
	}
	if err := gamelogs.ValidateEach(string(KindTradeImpact), []trades.Input{*s.Trade}); err != nil {
		return err
	}
	if err := gamelogs.ValidateEach(string(KindTradeImpact)+".playerStats", s.Trade.PlayerStats); err != nil {
		return err
	}
	return gamelogs.ValidateEach(string(KindTradeImpact)+".teamRecords", s.Trade.TeamRecords)
}
