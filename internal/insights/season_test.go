package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

func withResult(l gamelogs.GameLog, result string) gamelogs.GameLog {
	l.Result = result
	return l
}

func TestDeriveSeasonProfilesFromResults(t *testing.T) {
	logs := []gamelogs.GameLog{
		withResult(gameLog("A", "BOS", "2024-11-01", 30, 20, 0, 0, 0), "W 110-100"),
		withResult(gameLog("B", "BOS", "2024-11-01", 30, 10, 0, 0, 0), "W 110-100"),
		withResult(gameLog("A", "BOS", "2024-11-03", 30, 40, 0, 0, 0), "L"),
		withResult(gameLog("B", "BOS", "2024-11-03", 30, 20, 0, 0, 0), "L"),
		withResult(gameLog("C", "DEN", "2024-11-02", 30, 100, 0, 0, 0), "w"),
		withResult(gameLog("D", "XYZ", "2024-11-02", 30, 100, 0, 0, 0), "W"),
	}

	profiles, err := DeriveSeasonProfiles(logs)
	require.NoError(t, err)
	require.Len(t, profiles, 2, "unknown team codes are skipped")

	bos := profiles[0]
	assert.Equal(t, "BOS", bos.Team)
	assert.Equal(t, "East", bos.Conference)
	assert.Equal(t, 2, bos.Games)
	assert.Equal(t, 45.0, bos.AvgPointsScored)
	assert.Equal(t, 0.5, bos.WinPct)
	assert.Equal(t, 45.0, bos.AvgPointsAllowed)

	den := profiles[1]
	assert.Equal(t, "West", den.Conference)
	assert.Equal(t, 1.0, den.WinPct)
	assert.Equal(t, 95.0, den.AvgPointsAllowed)
}

func TestDeriveSeasonProfilesEstimatesWinPct(t *testing.T) {
	logs := []gamelogs.GameLog{
		gameLog("A", "BOS", "2024-11-01", 30, 110, 0, 0, 0),
		gameLog("B", "DEN", "2024-11-01", 30, 90, 0, 0, 0),
	}

	profiles, err := DeriveSeasonProfiles(logs)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, 0.712, profiles[0].WinPct)
	assert.Equal(t, 0.288, profiles[1].WinPct)
	assert.InDelta(t, 107.88, profiles[0].AvgPointsAllowed, 1e-9)
	assert.InDelta(t, 92.12, profiles[1].AvgPointsAllowed, 1e-9)
}

func TestDeriveSeasonProfilesEstimateIsClamped(t *testing.T) {
	single, err := DeriveSeasonProfiles([]gamelogs.GameLog{gameLog("A", "BOS", "2024-11-01", 30, 110, 0, 0, 0)})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, 0.5, single[0].WinPct, "a lone team sits at the mean")

	logs := []gamelogs.GameLog{
		gameLog("A", "BOS", "2024-11-01", 30, 200, 0, 0, 0),
		gameLog("B", "DEN", "2024-11-01", 30, 100, 0, 0, 0),
		gameLog("C", "LAL", "2024-11-01", 30, 100, 0, 0, 0),
		gameLog("D", "NYK", "2024-11-01", 30, 100, 0, 0, 0),
		gameLog("E", "MIL", "2024-11-01", 30, 100, 0, 0, 0),
		gameLog("F", "OKC", "2024-11-01", 30, 100, 0, 0, 0),
	}
	profiles, err := DeriveSeasonProfiles(logs)
	require.NoError(t, err)
	for _, p := range profiles {
		assert.GreaterOrEqual(t, p.WinPct, minEstimatedWinPct)
		assert.LessOrEqual(t, p.WinPct, maxEstimatedWinPct)
	}
	assert.Equal(t, maxEstimatedWinPct, profiles[0].WinPct)
}

func TestDeriveSeasonProfilesRequiresTeam(t *testing.T) {
	_, err := DeriveSeasonProfiles([]gamelogs.GameLog{gameLog("A", "", "2024-11-01", 30, 10, 0, 0, 0)})
	assert.ErrorIs(t, err, ErrMissingAggregationKey)
}
