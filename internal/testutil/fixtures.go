package testutil

import (
	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

// SampleLog returns a game log with the given scoring line; assists and rebounds are zero.
func SampleLog(player, team, date string, minutes, points float64) gamelogs.GameLog {
	return gamelogs.GameLog{
		Player:        player,
		Team:          team,
		Date:          date,
		MinutesPlayed: minutes,
		Points:        points,
		GameScore:     points / 2,
	}
}

// SampleSnapshot builds a small snapshot with the same logs in every game-log collection.
func SampleSnapshot(logs ...gamelogs.GameLog) snapshots.Snapshot {
	return snapshots.Snapshot{
		Source:  "test",
		MVP:     logs,
		Scoring: logs,
		Bench:   logs,
	}
}
