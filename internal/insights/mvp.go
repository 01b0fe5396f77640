package insights

import (
	"slices"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

const (
	// MVPLimit is how many candidates the ranking returns.
	MVPLimit = 10
	// MVPRecentGames is the length of each candidate's game-score drill-down series.
	MVPRecentGames = 10

	weightPoints    = 0.4
	weightAssists   = 0.3
	weightRebounds  = 0.2
	weightGameScore = 0.1
)

// MVPCandidate is one ranked player with season averages and recent game scores.
type MVPCandidate struct {
	Player     string               `json:"player"`
	MVPScore   float64              `json:"mvpScore"`
	AvgPTS     float64              `json:"avgPTS"`
	AvgAST     float64              `json:"avgAST"`
	AvgTRB     float64              `json:"avgTRB"`
	AvgGmSc    float64              `json:"avgGmSc"`
	Games      int                  `json:"games"`
	GameScores []gamelogs.DatePoint `json:"gameScores"`
}

// CompositeScore blends per-game averages into the MVP score.
func CompositeScore(avgPTS, avgAST, avgTRB, avgGmSc float64) float64 {
	return weightPoints*avgPTS + weightAssists*avgAST + weightRebounds*avgTRB + weightGameScore*avgGmSc
}

// SummarizePlayers reduces logs to one candidate per player in first-seen order,
// unranked and with the full game-score series sorted by date.
func SummarizePlayers(logs []gamelogs.GameLog) ([]MVPCandidate, error) {
	if err := requireKeys(logs, keyPlayer); err != nil {
		return nil, err
	}

	groups := groupOrdered(logs, byPlayer)
	return lo.Map(groups, func(g group[gamelogs.GameLog], _ int) MVPCandidate {
		games := float64(len(g.items))
		c := MVPCandidate{
			Player:  g.key,
			Games:   len(g.items),
			AvgPTS:  lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.Points }) / games,
			AvgAST:  lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.Assists }) / games,
			AvgTRB:  lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.Rebounds }) / games,
			AvgGmSc: lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.GameScore }) / games,
		}
		c.MVPScore = CompositeScore(c.AvgPTS, c.AvgAST, c.AvgTRB, c.AvgGmSc)
		c.GameScores = lo.Map(g.items, func(l gamelogs.GameLog, _ int) gamelogs.DatePoint {
			return gamelogs.DatePoint{Date: l.Date, Value: l.GameScore}
		})
		sortPointsByDate(c.GameScores)
		return c
	}), nil
}

// RankMVP returns the top candidates by composite score, highest first.
// Equal scores keep first-seen order. Each candidate carries its last
// MVPRecentGames game scores in chronological order.
func RankMVP(logs []gamelogs.GameLog) ([]MVPCandidate, error) {
	candidates, err := SummarizePlayers(logs)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(candidates, func(a, b MVPCandidate) int {
		return descending(a.MVPScore, b.MVPScore)
	})
	if len(candidates) > MVPLimit {
		candidates = candidates[:MVPLimit]
	}
	for i := range candidates {
		candidates[i].GameScores = lastN(candidates[i].GameScores, MVPRecentGames)
	}
	return candidates, nil
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return slices.Clone(items[len(items)-n:])
}
