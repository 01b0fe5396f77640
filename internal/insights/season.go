package insights

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
)

const (
	// estimatedWinSpread scales a team's scoring z-score into win percentage when
	// the logs carry no results.
	estimatedWinSpread = 0.3
	minEstimatedWinPct = 0.1
	maxEstimatedWinPct = 0.9
	// allowedPerWinPct is the points-allowed swing per unit of win percentage above .500.
	allowedPerWinPct = 10.0
)

type teamGame struct {
	points float64
	won    bool
}

// DeriveSeasonProfiles builds championship profiles from player game logs for feeds
// that ship no season lines. A team's points are summed per game date and averaged
// over its games. Win percentage comes from the Result column when any log carries
// one, otherwise it is estimated from how far the team's scoring sits from the
// league mean. Points allowed are estimated from scoring and win percentage.
// Teams whose code has no known conference are skipped.
func DeriveSeasonProfiles(logs []gamelogs.GameLog) ([]teams.SeasonProfile, error) {
	if err := requireKeys(logs, keyTeam); err != nil {
		return nil, err
	}
	withResults := lo.SomeBy(logs, func(l gamelogs.GameLog) bool { return strings.TrimSpace(l.Result) != "" })

	profiles := make([]teams.SeasonProfile, 0)
	for _, g := range groupOrdered(logs, byTeam) {
		conference, ok := teams.ConferenceOf(g.key)
		if !ok {
			continue
		}
		games := lo.Map(groupOrdered(g.items, func(l gamelogs.GameLog) string { return l.Date }),
			func(day group[gamelogs.GameLog], _ int) teamGame {
				return teamGame{
					points: lo.SumBy(day.items, func(l gamelogs.GameLog) float64 { return l.Points }),
					won:    lo.SomeBy(day.items, isWin),
				}
			})
		profile := teams.SeasonProfile{
			Team:            g.key,
			Conference:      conference,
			AvgPointsScored: lo.SumBy(games, func(tg teamGame) float64 { return tg.points }) / float64(len(games)),
			Games:           len(games),
		}
		if withResults {
			profile.WinPct = float64(lo.CountBy(games, func(tg teamGame) bool { return tg.won })) / float64(len(games))
		}
		profiles = append(profiles, profile)
	}

	if !withResults {
		estimateWinPct(profiles)
	}
	for i := range profiles {
		p := &profiles[i]
		p.WinPct = round3(p.WinPct)
		p.AvgPointsScored = round3(p.AvgPointsScored)
		p.AvgPointsAllowed = round3(math.Max(0, p.AvgPointsScored-allowedPerWinPct*(p.WinPct-0.5)))
	}
	return profiles, nil
}

func isWin(l gamelogs.GameLog) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(l.Result)), "W")
}

// estimateWinPct maps each team's scoring z-score onto a clamped win percentage.
func estimateWinPct(profiles []teams.SeasonProfile) {
	scored := lo.Map(profiles, func(p teams.SeasonProfile, _ int) float64 { return p.AvgPointsScored })
	mean := lo.Sum(scored) / float64(max(len(scored), 1))
	std := sampleStdDev(scored, mean)
	if std <= 0 {
		std = 1
	}
	for i := range profiles {
		z := (profiles[i].AvgPointsScored - mean) / std
		profiles[i].WinPct = math.Min(maxEstimatedWinPct, math.Max(minEstimatedWinPct, 0.5+estimatedWinSpread*z))
	}
}

func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := lo.SumBy(values, func(v float64) float64 { return (v - mean) * (v - mean) })
	return math.Sqrt(sum / float64(len(values)-1))
}
