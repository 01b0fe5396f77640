package insights

import (
	"slices"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

// DefaultScoringLeaders is how many players the scoring chart tracks.
const DefaultScoringLeaders = 5

// ScoringSeries is a leader's full chronological points series.
type ScoringSeries struct {
	Player string               `json:"player"`
	AvgPTS float64              `json:"avgPTS"`
	Games  int                  `json:"games"`
	Active bool                 `json:"active"`
	Points []gamelogs.DatePoint `json:"points"`
}

// ScoringLeaders returns the top n players by average points, each with every game
// in date order. n <= 0 uses DefaultScoringLeaders. All series start active.
func ScoringLeaders(logs []gamelogs.GameLog, n int) ([]ScoringSeries, error) {
	if err := requireKeys(logs, keyPlayer); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultScoringLeaders
	}

	series := lo.Map(groupOrdered(logs, byPlayer), func(g group[gamelogs.GameLog], _ int) ScoringSeries {
		total := lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.Points })
		return ScoringSeries{
			Player: g.key,
			AvgPTS: total / float64(len(g.items)),
			Games:  len(g.items),
			Active: true,
			Points: lo.Map(g.items, func(l gamelogs.GameLog, _ int) gamelogs.DatePoint {
				return gamelogs.DatePoint{Date: l.Date, Value: l.Points}
			}),
		}
	})
	slices.SortStableFunc(series, func(a, b ScoringSeries) int {
		return descending(a.AvgPTS, b.AvgPTS)
	})
	if len(series) > n {
		series = series[:n]
	}
	for i := range series {
		sortPointsByDate(series[i].Points)
	}
	return series, nil
}

// Visibility is the set of leaders hidden by the viewer. The zero value shows everyone.
type Visibility struct {
	hidden map[string]struct{}
}

// NewVisibility hides the named players.
func NewVisibility(hidden ...string) Visibility {
	v := Visibility{}
	for _, player := range hidden {
		v = v.Toggle(player, false)
	}
	return v
}

// Toggle returns a copy with player marked active or inactive.
func (v Visibility) Toggle(player string, active bool) Visibility {
	next := make(map[string]struct{}, len(v.hidden)+1)
	for p := range v.hidden {
		next[p] = struct{}{}
	}
	if active {
		delete(next, player)
	} else {
		next[player] = struct{}{}
	}
	return Visibility{hidden: next}
}

// IsActive reports whether player is shown.
func (v Visibility) IsActive(player string) bool {
	_, hidden := v.hidden[player]
	return !hidden
}

// ApplyVisibility copies series with Active set from v; the series themselves are untouched.
func ApplyVisibility(series []ScoringSeries, v Visibility) []ScoringSeries {
	return lo.Map(series, func(s ScoringSeries, _ int) ScoringSeries {
		s.Active = v.IsActive(s.Player)
		return s
	})
}
