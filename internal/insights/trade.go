package insights

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/trades"
	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

// PlayerPattern selects trade-impact entries by case-insensitive substring.
// CanonicalName, when set, replaces the display name of the kept entry.
type PlayerPattern struct {
	Pattern       string `toml:"pattern" json:"pattern"`
	CanonicalName string `toml:"canonical_name" json:"canonicalName,omitempty"`
}

// Matches reports whether name contains the pattern, ignoring case and diacritics.
func (p PlayerPattern) Matches(name string) bool {
	pattern := FoldName(p.Pattern)
	return pattern != "" && strings.Contains(FoldName(name), pattern)
}

// TradeScenario describes the trade being analyzed.
type TradeScenario struct {
	TradeDate  string        `toml:"trade_date" json:"tradeDate"`
	Primary    PlayerPattern `toml:"primary" json:"primary"`
	Comparison PlayerPattern `toml:"comparison" json:"comparison"`
	Teams      [2]string     `toml:"teams" json:"teams"`
}

// DefaultTradeScenario is the February 2025 Doncic/Davis trade.
func DefaultTradeScenario() TradeScenario {
	return TradeScenario{
		TradeDate:  "2025-02-01",
		Primary:    PlayerPattern{Pattern: "luka", CanonicalName: "Luka Doncic"},
		Comparison: PlayerPattern{Pattern: "anthony davis"},
		Teams:      [2]string{"LAL", "DAL"},
	}
}

// RecordPoint is a team's win percentage as of a date.
type RecordPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// TeamWindow is a tracked team's post-trade record series.
type TeamWindow struct {
	Team   string        `json:"team"`
	Points []RecordPoint `json:"points"`
}

// TradeImpact is the shaped trade-impact view.
type TradeImpact struct {
	TradeDate string              `json:"tradeDate"`
	Players   []trades.PlayerStat `json:"players"`
	Teams     []TeamWindow        `json:"teams"`
}

// FoldName lower-cases a name and strips diacritics ("Dončić" -> "doncic").
func FoldName(name string) string {
	return strings.ToLower(StripDiacritics(strings.TrimSpace(name)))
}

// StripDiacritics removes combining marks after canonical decomposition.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// DedupTradePlayers keeps the first entry matching the primary pattern, renamed to its
// canonical spelling and placed first, followed by comparison entries in input order.
// Later primary duplicates and entries matching neither pattern are dropped.
func DedupTradePlayers(stats []trades.PlayerStat, scenario TradeScenario) []trades.PlayerStat {
	var primary *trades.PlayerStat
	others := make([]trades.PlayerStat, 0, len(stats))
	for _, stat := range stats {
		switch {
		case scenario.Primary.Matches(stat.Player):
			if primary != nil {
				continue
			}
			kept := stat
			if scenario.Primary.CanonicalName != "" {
				kept.Player = StripDiacritics(scenario.Primary.CanonicalName)
			}
			primary = &kept
		case scenario.Comparison.Matches(stat.Player):
			if scenario.Comparison.CanonicalName != "" {
				stat.Player = StripDiacritics(scenario.Comparison.CanonicalName)
			}
			others = append(others, stat)
		}
	}
	if primary == nil {
		return others
	}
	return append([]trades.PlayerStat{*primary}, others...)
}

// WindowTeamRecords keeps, for each tracked team, the records dated on or after the
// trade date as win-percentage points. Records with no games played are skipped.
func WindowTeamRecords(records []trades.TeamRecord, scenario TradeScenario) ([]TeamWindow, error) {
	tradeDay, err := timeutil.ParseDate(scenario.TradeDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTradeDate, scenario.TradeDate)
	}

	windows := make([]TeamWindow, 0, len(scenario.Teams))
	for _, team := range scenario.Teams {
		window := TeamWindow{Team: team, Points: make([]RecordPoint, 0)}
		for _, r := range records {
			if !strings.EqualFold(r.Team, team) || r.Games == 0 {
				continue
			}
			if !timeutil.OnOrAfter(r.Date, tradeDay) {
				continue
			}
			window.Points = append(window.Points, RecordPoint{
				X: r.Date,
				Y: round3(float64(r.Wins) / float64(r.Games)),
			})
		}
		slices.SortStableFunc(window.Points, func(a, b RecordPoint) int {
			return timeutil.CompareDates(a.X, b.X)
		})
		windows = append(windows, window)
	}
	return windows, nil
}

// AnalyzeTrade dedups player stats and windows team records. The input's own trade
// date wins over the scenario default when present.
func AnalyzeTrade(input trades.Input, scenario TradeScenario) (TradeImpact, error) {
	if input.TradeDate != "" {
		scenario.TradeDate = input.TradeDate
	}
	windows, err := WindowTeamRecords(input.TeamRecords, scenario)
	if err != nil {
		return TradeImpact{}, err
	}
	return TradeImpact{
		TradeDate: scenario.TradeDate,
		Players:   DedupTradePlayers(input.PlayerStats, scenario),
		Teams:     windows,
	}, nil
}

// SummarizeTradeStats derives post-trade averages from game logs for players matching
// either scenario pattern. Spellings that differ only in case or diacritics are one player,
// reported under the first spelling seen. The team is the player's most recent team in the window.
func SummarizeTradeStats(logs []gamelogs.GameLog, scenario TradeScenario) ([]trades.PlayerStat, error) {
	if err := requireKeys(logs, keyPlayer|keyTeam); err != nil {
		return nil, err
	}
	tradeDay, err := timeutil.ParseDate(scenario.TradeDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTradeDate, scenario.TradeDate)
	}

	window := lo.Filter(logs, func(l gamelogs.GameLog, _ int) bool {
		if !scenario.Primary.Matches(l.Player) && !scenario.Comparison.Matches(l.Player) {
			return false
		}
		return timeutil.OnOrAfter(l.Date, tradeDay)
	})

	return lo.Map(groupOrdered(window, byFoldedPlayer), func(g group[gamelogs.GameLog], _ int) trades.PlayerStat {
		games := float64(len(g.items))
		latest := slices.MaxFunc(g.items, func(a, b gamelogs.GameLog) int {
			return timeutil.CompareDates(a.Date, b.Date)
		})
		return trades.PlayerStat{
			Player: g.items[0].Player,
			Team:   latest.Team,
			PPG:    lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.Points }) / games,
			MPG:    lo.SumBy(g.items, func(l gamelogs.GameLog) float64 { return l.MinutesPlayed }) / games,
			Games:  len(g.items),
		}
	}), nil
}
