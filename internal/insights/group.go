package insights

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

type group[T any] struct {
	key   string
	items []T
}

// groupOrdered buckets items by key, keeping keys in first-seen order so that
// stable sorts downstream break ties by appearance in the input.
func groupOrdered[T any](items []T, key func(T) string) []group[T] {
	order := lo.Uniq(lo.Map(items, func(item T, _ int) string { return key(item) }))
	buckets := lo.GroupBy(items, key)
	return lo.Map(order, func(k string, _ int) group[T] {
		return group[T]{key: k, items: buckets[k]}
	})
}

func byPlayer(log gamelogs.GameLog) string { return log.Player }

func byFoldedPlayer(log gamelogs.GameLog) string { return FoldName(log.Player) }

func byTeam(log gamelogs.GameLog) string { return log.Team }

// ratio treats a zero denominator as a zero-valued metric so NaN never reaches a sort.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func sortPointsByDate(points []gamelogs.DatePoint) {
	slices.SortStableFunc(points, func(a, b gamelogs.DatePoint) int {
		return timeutil.CompareDates(a.Date, b.Date)
	})
}

// descending is a comparator for stable sorts that rank larger values first.
func descending(a, b float64) int {
	return cmp.Compare(b, a)
}
