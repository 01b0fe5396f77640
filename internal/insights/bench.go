package insights

import (
	"slices"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

const (
	// BenchMinutesThreshold is the season-average minutes below which a player counts as bench.
	BenchMinutesThreshold = 25.0
	// BenchTeamLimit is how many teams the bench ranking returns.
	BenchTeamLimit = 5
)

// BenchPlayer is a bench player's per-game production for one team.
type BenchPlayer struct {
	Player  string  `json:"player"`
	AvgPTS  float64 `json:"avgPTS"`
	AvgGmSc float64 `json:"avgGmSc"`
	Games   int     `json:"games"`
}

// TeamBenchProfile splits a team's points into bench and starter contributions.
type TeamBenchProfile struct {
	Team                 string        `json:"team"`
	BenchContributionPct float64       `json:"benchContributionPct"`
	BenchPTS             float64       `json:"benchPTS"`
	StarterPTS           float64       `json:"starterPTS"`
	TotalPTS             float64       `json:"totalPTS"`
	BenchPlayers         []BenchPlayer `json:"benchPlayers"`
}

// ClassifyBench labels every player as bench (true) or starter (false) from their
// average minutes across all of their games, regardless of team.
func ClassifyBench(logs []gamelogs.GameLog) (map[string]bool, error) {
	if err := requireKeys(logs, keyPlayer); err != nil {
		return nil, err
	}
	labels := make(map[string]bool)
	for _, g := range groupOrdered(logs, byPlayer) {
		minutes := lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.MinutesPlayed })
		labels[g.key] = ratio(minutes, float64(len(g.items))) < BenchMinutesThreshold
	}
	return labels, nil
}

type benchAccumulator struct {
	points    float64
	gameScore float64
	games     int
}

// BenchProfiles computes a profile for every team in first-seen order.
// Classification happens over the full input before any points are attributed.
func BenchProfiles(logs []gamelogs.GameLog) ([]TeamBenchProfile, error) {
	if err := requireKeys(logs, keyPlayer|keyTeam); err != nil {
		return nil, err
	}
	isBench, err := ClassifyBench(logs)
	if err != nil {
		return nil, err
	}

	profiles := make([]TeamBenchProfile, 0)
	for _, team := range groupOrdered(logs, byTeam) {
		profile := TeamBenchProfile{Team: team.key}
		order := make([]string, 0)
		bench := make(map[string]*benchAccumulator)

		for _, l := range team.items {
			profile.TotalPTS += l.Points
			if !isBench[l.Player] {
				profile.StarterPTS += l.Points
				continue
			}
			profile.BenchPTS += l.Points
			acc, ok := bench[l.Player]
			if !ok {
				acc = &benchAccumulator{}
				bench[l.Player] = acc
				order = append(order, l.Player)
			}
			acc.points += l.Points
			acc.gameScore += l.GameScore
			acc.games++
		}

		// Zero-point teams report 0% rather than NaN.
		profile.BenchContributionPct = ratio(profile.BenchPTS, profile.TotalPTS) * 100
		profile.BenchPlayers = lo.Map(order, func(player string, _ int) BenchPlayer {
			acc := bench[player]
			return BenchPlayer{
				Player:  player,
				AvgPTS:  ratio(acc.points, float64(acc.games)),
				AvgGmSc: ratio(acc.gameScore, float64(acc.games)),
				Games:   acc.games,
			}
		})
		slices.SortStableFunc(profile.BenchPlayers, func(a, b BenchPlayer) int {
			return descending(a.AvgPTS, b.AvgPTS)
		})
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// RankBench returns the teams with the highest bench contribution, highest first.
// Teams that scored no points are left out of the ranking.
func RankBench(logs []gamelogs.GameLog) ([]TeamBenchProfile, error) {
	profiles, err := BenchProfiles(logs)
	if err != nil {
		return nil, err
	}

	ranked := lo.Filter(profiles, func(p TeamBenchProfile, _ int) bool { return p.TotalPTS > 0 })
	slices.SortStableFunc(ranked, func(a, b TeamBenchProfile) int {
		return descending(a.BenchContributionPct, b.BenchContributionPct)
	})
	if len(ranked) > BenchTeamLimit {
		ranked = ranked[:BenchTeamLimit]
	}
	return ranked, nil
}

// FindTeam returns the profile for team from a ranked or unranked list.
func FindTeam(profiles []TeamBenchProfile, team string) (TeamBenchProfile, bool) {
	return lo.Find(profiles, func(p TeamBenchProfile) bool { return p.Team == team })
}
