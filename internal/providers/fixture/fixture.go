package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/trades"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
	"github.com/preston-bernstein/nba-insights-service/internal/timeutil"
)

// Source labels snapshots produced by this provider.
const Source = "fixture"

const fixtureGames = 12

// Provider returns a static snapshot useful for local development and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return NewWithClock(time.Now)
}

// NewWithClock creates a fixture provider that stamps snapshots using now.
func NewWithClock(now func() time.Time) *Provider {
	return &Provider{
		now: now,
	}
}

type playerLine struct {
	player   string
	team     string
	minutes  float64
	points   float64
	assists  float64
	rebounds float64
	gmsc     float64
}

var lines = []playerLine{
	{"Nikola Jokic", "DEN", 36, 29, 10, 13, 27},
	{"Shai Gilgeous-Alexander", "OKC", 34, 32, 6, 5, 25},
	{"Giannis Antetokounmpo", "MIL", 35, 31, 6, 12, 24},
	{"Jayson Tatum", "BOS", 36, 27, 5, 9, 19},
	{"Luka Dončić", "DAL", 37, 28, 8, 8, 21},
	{"Anthony Davis", "LAL", 35, 25, 3, 12, 20},
	{"Jalen Brunson", "NYK", 35, 26, 7, 3, 18},
	{"Payton Pritchard", "BOS", 22, 14, 3, 4, 10},
	{"Malik Beasley", "DET", 24, 16, 2, 3, 9},
	{"Naz Reid", "MIN", 23, 14, 2, 6, 9},
	{"Christian Braun", "DEN", 28, 15, 2, 5, 11},
	{"Russell Westbrook", "DEN", 24, 13, 6, 5, 8},
}

// Load returns a deterministic snapshot covering every collection.
func (p *Provider) Load(ctx context.Context) (snapshots.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return snapshots.Snapshot{}, err
	}
	logs := gameLogs()
	snap := snapshots.Snapshot{
		Source:       Source,
		LoadedAt:     p.now().UTC(),
		MVP:          logs,
		Scoring:      logs,
		Bench:        logs,
		Championship: seasonProfiles(),
		Trade:        tradeInput(),
	}
	if err := snap.Validate(); err != nil {
		return snapshots.Snapshot{}, err
	}
	return snap, nil
}

// gameLogs expands each line into a run of games with a small alternating swing so
// series are not flat.
func gameLogs() []gamelogs.GameLog {
	start := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	logs := make([]gamelogs.GameLog, 0, len(lines)*fixtureGames)
	for g := 0; g < fixtureGames; g++ {
		date := timeutil.FormatDate(start.AddDate(0, 0, 2*g))
		swing := float64(g%3 - 1)
		for _, l := range lines {
			logs = append(logs, gamelogs.GameLog{
				Player:        l.player,
				Team:          l.team,
				Date:          date,
				MinutesPlayed: l.minutes + swing,
				Points:        l.points + 2*swing,
				Assists:       l.assists,
				Rebounds:      l.rebounds + swing,
				GameScore:     l.gmsc + swing,
			})
		}
	}
	return logs
}

func seasonProfiles() []teams.SeasonProfile {
	return []teams.SeasonProfile{
		{Team: "OKC", Conference: "West", AvgPointsScored: 120.1, AvgPointsAllowed: 107.6, WinPct: 0.829, Games: 82},
		{Team: "DEN", Conference: "West", AvgPointsScored: 120.8, AvgPointsAllowed: 116.9, WinPct: 0.610, Games: 82},
		{Team: "LAL", Conference: "West", AvgPointsScored: 113.4, AvgPointsAllowed: 112.2, WinPct: 0.610, Games: 82},
		{Team: "DAL", Conference: "West", AvgPointsScored: 114.2, AvgPointsAllowed: 115.4, WinPct: 0.476, Games: 82},
		{Team: "BOS", Conference: "East", AvgPointsScored: 116.3, AvgPointsAllowed: 107.2, WinPct: 0.744, Games: 82},
		{Team: "NYK", Conference: "East", AvgPointsScored: 115.8, AvgPointsAllowed: 111.7, WinPct: 0.622, Games: 82},
		{Team: "MIL", Conference: "East", AvgPointsScored: 115.5, AvgPointsAllowed: 113.0, WinPct: 0.585, Games: 82},
		{Team: "DET", Conference: "East", AvgPointsScored: 115.5, AvgPointsAllowed: 112.2, WinPct: 0.537, Games: 82},
	}
}

func tradeInput() *trades.Input {
	return &trades.Input{
		TradeDate: "2025-02-01",
		PlayerStats: []trades.PlayerStat{
			{Player: "Luka Dončić", Team: "LAL", PPG: 28.2, MPG: 35.1, FGPct: 0.45, Games: 28},
			{Player: "Luka Doncic", Team: "LAL", PPG: 27.9, MPG: 34.8, FGPct: 0.44, Games: 27},
			{Player: "Anthony Davis", Team: "DAL", PPG: 20.0, MPG: 29.5, FGPct: 0.50, Games: 9},
			{Player: "Jalen Brunson", Team: "NYK", PPG: 26.0, MPG: 35.0, FGPct: 0.48, Games: 65},
		},
		TeamRecords: []trades.TeamRecord{
			{Team: "LAL", Date: "2025-01-25", Result: "W", Games: 45, Wins: 26},
			{Team: "LAL", Date: "2025-02-10", Result: "W", Games: 52, Wins: 32},
			{Team: "LAL", Date: "2025-03-01", Result: "L", Games: 60, Wins: 37},
			{Team: "DAL", Date: "2025-01-25", Result: "W", Games: 47, Wins: 25},
			{Team: "DAL", Date: "2025-02-10", Result: "L", Games: 53, Wins: 27},
			{Team: "DAL", Date: "2025-03-01", Result: "L", Games: 61, Wins: 31},
			{Team: "NYK", Date: "2025-02-10", Result: "W", Games: 52, Wins: 34},
		},
	}
}
