package insights

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

const (
	// MinQualifyingGames is the floor on games played for the MVP and scoring charts.
	MinQualifyingGames = 5
	// MinScoringQualifiers is how many players must clear the scoring floor before it applies.
	MinScoringQualifiers = 5
)

// Qualify keeps the logs of players with at least minGames games, in input order.
func Qualify(logs []gamelogs.GameLog, minGames int) []gamelogs.GameLog {
	counts := lo.CountValuesBy(logs, byPlayer)
	return lo.Filter(logs, func(l gamelogs.GameLog, _ int) bool {
		return counts[l.Player] >= minGames
	})
}

// MVPMinGames is the adaptive qualification floor: half the 75th percentile of
// games per player, rounded down, and never below MinQualifyingGames.
func MVPMinGames(logs []gamelogs.GameLog) int {
	counts := lo.Values(lo.CountValuesBy(logs, byPlayer))
	if len(counts) == 0 {
		return MinQualifyingGames
	}
	half := int(math.Floor(quantile(counts, 0.75) / 2))
	return max(MinQualifyingGames, half)
}

// QualifyMVP applies the adaptive MVP floor.
func QualifyMVP(logs []gamelogs.GameLog) ([]gamelogs.GameLog, error) {
	if err := requireKeys(logs, keyPlayer); err != nil {
		return nil, err
	}
	return Qualify(logs, MVPMinGames(logs)), nil
}

// QualifyScoring keeps players with MinQualifyingGames games. When fewer than
// MinScoringQualifiers players clear that floor every player is kept.
func QualifyScoring(logs []gamelogs.GameLog) ([]gamelogs.GameLog, error) {
	if err := requireKeys(logs, keyPlayer); err != nil {
		return nil, err
	}
	counts := lo.CountValuesBy(logs, byPlayer)
	qualified := lo.CountBy(lo.Values(counts), func(n int) bool { return n >= MinQualifyingGames })
	if qualified < MinScoringQualifiers {
		return logs, nil
	}
	return Qualify(logs, MinQualifyingGames), nil
}

// quantile interpolates linearly between the closest ranks.
func quantile(values []int, q float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := min(lower+1, len(sorted)-1)
	frac := pos - float64(lower)
	return float64(sorted[lower]) + frac*float64(sorted[upper]-sorted[lower])
}
