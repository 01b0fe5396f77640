package insights

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/trades"
	coreinsights "github.com/preston-bernstein/nba-insights-service/internal/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

func fixtureService(t *testing.T) (*Service, *metrics.Recorder) {
	t.Helper()
	snap, err := fixture.New().Load(context.Background())
	if err != nil {
		t.Fatalf("fixture load failed: %v", err)
	}
	s := store.NewMemoryStore()
	s.Set(snap)
	rec := metrics.NewRecorder()
	return NewService(s, coreinsights.DefaultTradeScenario(), nil, rec), rec
}

func logLine(player, team, date string, mp, pts float64) gamelogs.GameLog {
	return gamelogs.GameLog{Player: player, Team: team, Date: date, MinutesPlayed: mp, Points: pts, GameScore: pts / 2}
}

func TestViewsReturnErrNoSnapshotBeforeLoad(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := NewService(store.NewMemoryStore(), coreinsights.DefaultTradeScenario(), nil, rec)
	ctx := context.Background()

	if _, err := svc.MVP(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot from MVP, got %v", err)
	}
	if _, err := svc.Bench(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot from Bench, got %v", err)
	}
	if _, err := svc.Scoring(ctx, nil); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot from Scoring, got %v", err)
	}
	if _, err := svc.Championship(ctx, ""); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot from Championship, got %v", err)
	}
	if _, err := svc.TradeImpact(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot from TradeImpact, got %v", err)
	}
	if _, err := svc.Debug(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot from Debug, got %v", err)
	}
	if rec.ViewErrors(ViewMVP) != 1 {
		t.Fatalf("expected failed view recorded")
	}
}

func TestMVPRanksFixture(t *testing.T) {
	svc, rec := fixtureService(t)

	got, err := svc.MVP(context.Background())
	if err != nil {
		t.Fatalf("expected mvp view, got %v", err)
	}
	if len(got) != coreinsights.MVPLimit {
		t.Fatalf("expected %d candidates, got %d", coreinsights.MVPLimit, len(got))
	}
	if got[0].Player != "Nikola Jokic" {
		t.Fatalf("expected Jokic first, got %s", got[0].Player)
	}
	for i := 1; i < len(got); i++ {
		if got[i].MVPScore > got[i-1].MVPScore {
			t.Fatalf("expected descending scores at %d", i)
		}
	}
	if rec.ViewCalls(ViewMVP) != 1 {
		t.Fatalf("expected one mvp view recorded, got %d", rec.ViewCalls(ViewMVP))
	}
}

func TestMVPPlayerDrillDown(t *testing.T) {
	svc, _ := fixtureService(t)

	got, err := svc.MVPPlayer(context.Background(), "luka doncic")
	if err != nil {
		t.Fatalf("expected player found, got %v", err)
	}
	if got.Player != "Luka Dončić" {
		t.Fatalf("unexpected player %s", got.Player)
	}
	if len(got.GameScores) != coreinsights.MVPRecentGames {
		t.Fatalf("expected %d game scores, got %d", coreinsights.MVPRecentGames, len(got.GameScores))
	}

	if _, err := svc.MVPPlayer(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBenchAndBenchTeam(t *testing.T) {
	svc, _ := fixtureService(t)
	ctx := context.Background()

	ranked, err := svc.Bench(ctx)
	if err != nil {
		t.Fatalf("expected bench view, got %v", err)
	}
	if len(ranked) == 0 || len(ranked) > coreinsights.BenchTeamLimit {
		t.Fatalf("unexpected ranked length %d", len(ranked))
	}

	den, err := svc.BenchTeam(ctx, "den")
	if err != nil {
		t.Fatalf("expected DEN profile, got %v", err)
	}
	if den.Team != "DEN" || len(den.BenchPlayers) != 1 || den.BenchPlayers[0].Player != "Russell Westbrook" {
		t.Fatalf("unexpected DEN profile %+v", den)
	}

	if _, err := svc.BenchTeam(ctx, "XXX"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoringHidesWithoutChangingLeaders(t *testing.T) {
	svc, _ := fixtureService(t)
	ctx := context.Background()

	all, err := svc.Scoring(ctx, nil)
	if err != nil {
		t.Fatalf("expected scoring view, got %v", err)
	}
	if len(all) != coreinsights.DefaultScoringLeaders {
		t.Fatalf("expected %d leaders, got %d", coreinsights.DefaultScoringLeaders, len(all))
	}

	hidden, err := svc.Scoring(ctx, []string{all[0].Player})
	if err != nil {
		t.Fatalf("expected scoring view, got %v", err)
	}
	if hidden[0].Player != all[0].Player || hidden[0].Active {
		t.Fatalf("expected first leader hidden in place, got %+v", hidden[0])
	}

	again, _ := svc.Scoring(ctx, nil)
	if !again[0].Active {
		t.Fatalf("expected hiding not to leak into memoized leaders")
	}
}

func TestChampionshipFilters(t *testing.T) {
	svc, _ := fixtureService(t)
	ctx := context.Background()

	all, _ := svc.Championship(ctx, "")
	east, _ := svc.Championship(ctx, "East")
	west, _ := svc.Championship(ctx, "west")
	unknown, err := svc.Championship(ctx, "central")
	if err != nil {
		t.Fatalf("expected unknown conference to be empty, got %v", err)
	}

	if len(east)+len(west) != len(all) {
		t.Fatalf("expected east+west to cover all, got %d+%d vs %d", len(east), len(west), len(all))
	}
	if unknown == nil || len(unknown) != 0 {
		t.Fatalf("expected empty non-nil slice for unknown conference, got %v", unknown)
	}
}

func TestChampionshipUnknownConferencesAreNotMemoized(t *testing.T) {
	snap, err := fixture.New().Load(context.Background())
	if err != nil {
		t.Fatalf("fixture load failed: %v", err)
	}
	s := store.NewMemoryStore()
	s.Set(snap)
	svc := NewService(s, coreinsights.DefaultTradeScenario(), nil, nil)
	ctx := context.Background()

	if _, err := svc.Championship(ctx, "east"); err != nil {
		t.Fatalf("expected east view, got %v", err)
	}
	before := s.ViewCount()
	for i := 0; i < 1000; i++ {
		got, err := svc.Championship(ctx, fmt.Sprintf("junk%d", i))
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty result for unknown conference, got %v err=%v", got, err)
		}
	}
	if s.ViewCount() != before {
		t.Fatalf("expected %d memoized views, got %d", before, s.ViewCount())
	}

	empty := NewService(store.NewMemoryStore(), coreinsights.DefaultTradeScenario(), nil, nil)
	if _, err := empty.Championship(ctx, "junk"); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot for unknown conference before load, got %v", err)
	}
}

func TestChampionshipDerivesProfilesFromGameLogs(t *testing.T) {
	s := store.NewMemoryStore()
	s.Set(snapshots.Snapshot{
		Scoring: []gamelogs.GameLog{
			{Player: "A", Team: "BOS", Date: "2025-01-01", Points: 110, Result: "W"},
			{Player: "B", Team: "DEN", Date: "2025-01-01", Points: 100, Result: "L"},
			{Player: "C", Team: "XYZ", Date: "2025-01-01", Points: 90, Result: "L"},
		},
	})
	svc := NewService(s, coreinsights.DefaultTradeScenario(), nil, nil)

	east, err := svc.Championship(context.Background(), "east")
	if err != nil {
		t.Fatalf("expected derived championship view, got %v", err)
	}
	if len(east) != 1 || east[0].Team != "BOS" || east[0].WinPct != 1 || east[0].X != 110 {
		t.Fatalf("unexpected derived east points %+v", east)
	}
	all, _ := svc.Championship(context.Background(), "")
	if len(all) != 2 {
		t.Fatalf("expected unknown team codes skipped, got %+v", all)
	}
}

func TestMVPAppliesGamesFloor(t *testing.T) {
	var logs []gamelogs.GameLog
	for i := 1; i <= 6; i++ {
		date := fmt.Sprintf("2025-01-%02d", i)
		logs = append(logs, logLine("Steady", "BOS", date, 34, 25))
		if i <= 2 {
			logs = append(logs, logLine("Cameo", "BOS", date, 34, 60))
		}
	}
	s := store.NewMemoryStore()
	s.Set(snapshots.Snapshot{MVP: logs})
	svc := NewService(s, coreinsights.DefaultTradeScenario(), nil, nil)

	got, err := svc.MVP(context.Background())
	if err != nil {
		t.Fatalf("expected mvp view, got %v", err)
	}
	if len(got) != 1 || got[0].Player != "Steady" {
		t.Fatalf("expected short samples to be left out, got %+v", got)
	}
	if _, err := svc.MVPPlayer(context.Background(), "cameo"); err != nil {
		t.Fatalf("expected drill-down to reach unqualified players, got %v", err)
	}
}

func TestReturnedViewsDoNotAliasMemo(t *testing.T) {
	svc, _ := fixtureService(t)
	ctx := context.Background()

	mvp, _ := svc.MVP(ctx)
	leader := mvp[0].Player
	mvp[0] = coreinsights.MVPCandidate{Player: "mutated"}
	if again, _ := svc.MVP(ctx); again[0].Player != leader {
		t.Fatalf("expected memoized mvp view untouched, got %q", again[0].Player)
	}

	bench, _ := svc.Bench(ctx)
	team := bench[0].Team
	bench[0].Team = "mutated"
	if again, _ := svc.Bench(ctx); again[0].Team != team {
		t.Fatalf("expected memoized bench view untouched, got %q", again[0].Team)
	}

	profile, _ := svc.BenchTeam(ctx, team)
	if len(profile.BenchPlayers) > 0 {
		name := profile.BenchPlayers[0].Player
		profile.BenchPlayers[0].Player = "mutated"
		if again, _ := svc.BenchTeam(ctx, team); again.BenchPlayers[0].Player != name {
			t.Fatalf("expected memoized bench players untouched")
		}
	}

	champ, _ := svc.Championship(ctx, "")
	champ[0].Team = "mutated"
	if again, _ := svc.Championship(ctx, ""); again[0].Team == "mutated" {
		t.Fatalf("expected memoized championship view untouched")
	}
}

func TestTradeImpactFromFixture(t *testing.T) {
	svc, _ := fixtureService(t)

	got, err := svc.TradeImpact(context.Background())
	if err != nil {
		t.Fatalf("expected trade view, got %v", err)
	}
	if len(got.Players) != 2 || got.Players[0].Player != "Luka Doncic" || got.Players[1].Player != "Anthony Davis" {
		t.Fatalf("unexpected players %+v", got.Players)
	}
	if len(got.Teams) != 2 || got.Teams[0].Team != "LAL" || len(got.Teams[0].Points) != 2 {
		t.Fatalf("unexpected team windows %+v", got.Teams)
	}
}

func TestTradeImpactDerivesStatsWhenMissing(t *testing.T) {
	s := store.NewMemoryStore()
	s.Set(snapshots.Snapshot{
		Scoring: []gamelogs.GameLog{
			logLine("Luka Dončić", "DAL", "2025-01-20", 36, 30),
			logLine("Luka Dončić", "LAL", "2025-02-10", 34, 26),
			logLine("Luka Dončić", "LAL", "2025-02-12", 32, 30),
			logLine("Anthony Davis", "DAL", "2025-02-11", 30, 20),
		},
		Trade: &trades.Input{TeamRecords: []trades.TeamRecord{{Team: "LAL", Date: "2025-02-12", Games: 50, Wins: 30}}},
	})
	svc := NewService(s, coreinsights.DefaultTradeScenario(), nil, nil)

	got, err := svc.TradeImpact(context.Background())
	if err != nil {
		t.Fatalf("expected trade view, got %v", err)
	}
	if len(got.Players) != 2 {
		t.Fatalf("expected two derived players, got %+v", got.Players)
	}
	luka := got.Players[0]
	if luka.Player != "Luka Doncic" || luka.Team != "LAL" || luka.Games != 2 || luka.PPG != 28 {
		t.Fatalf("unexpected derived primary %+v", luka)
	}
	if got.Teams[0].Points[0].Y != 0.6 {
		t.Fatalf("unexpected window point %+v", got.Teams[0].Points)
	}
}

func TestViewErrorsSurface(t *testing.T) {
	s := store.NewMemoryStore()
	s.Set(snapshots.Snapshot{MVP: []gamelogs.GameLog{{Team: "LAL", Date: "2025-01-01"}}})
	rec := metrics.NewRecorder()
	svc := NewService(s, coreinsights.DefaultTradeScenario(), nil, rec)

	_, err := svc.MVP(context.Background())
	if !errors.Is(err, coreinsights.ErrMissingAggregationKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
	if rec.ViewErrors(ViewMVP) != 1 {
		t.Fatalf("expected view error recorded")
	}
}

func TestDebugCounts(t *testing.T) {
	s := store.NewMemoryStore()
	s.Set(snapshots.Snapshot{
		Source:       "test",
		MVP:          []gamelogs.GameLog{logLine("A", "LAL", "2025-01-01", 30, 10)},
		Championship: []teams.SeasonProfile{{Team: "LAL", Conference: "West"}},
	})
	svc := NewService(s, coreinsights.DefaultTradeScenario(), nil, nil)

	got, err := svc.Debug(context.Background())
	if err != nil {
		t.Fatalf("expected debug view, got %v", err)
	}
	if got.Source != "test" || got.Counts["mvp"] != 1 || got.Counts["champ"] != 1 || got.Counts["bench"] != 0 {
		t.Fatalf("unexpected debug %+v", got)
	}
	if _, ok := got.Counts["trade_impact"]; ok {
		t.Fatalf("expected no trade count without trade data")
	}
}
