package insights

import (
	"strings"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
)

// BubbleScale converts win percentage into bubble size.
const BubbleScale = 20.0

// ChampionshipPoint is one team on the projection chart. Lower Y (points allowed) is better.
type ChampionshipPoint struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Size       float64 `json:"size"`
	Team       string  `json:"team"`
	WinPct     float64 `json:"winPct"`
	Conference string  `json:"conference"`
}

// ProjectChampionship filters profiles by conference and shapes them for the chart.
// Empty or "all" keeps every team in input order; an unknown conference yields no teams.
func ProjectChampionship(profiles []teams.SeasonProfile, conference string) []ChampionshipPoint {
	conf := teams.NormalizeConference(conference)
	if !teams.KnownConference(conf) {
		return []ChampionshipPoint{}
	}

	selected := profiles
	if conf != teams.ConferenceAll {
		selected = lo.Filter(profiles, func(p teams.SeasonProfile, _ int) bool {
			return strings.EqualFold(strings.TrimSpace(p.Conference), conf)
		})
	}
	return lo.Map(selected, func(p teams.SeasonProfile, _ int) ChampionshipPoint {
		return ChampionshipPoint{
			X:          p.AvgPointsScored,
			Y:          p.AvgPointsAllowed,
			Size:       p.WinPct * BubbleScale,
			Team:       p.Team,
			WinPct:     p.WinPct,
			Conference: p.Conference,
		}
	})
}
