package insights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-insights-service/internal/domain/trades"
	coreinsights "github.com/preston-bernstein/nba-insights-service/internal/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/metrics"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
)

var (
	// ErrNoSnapshot is returned by every view before the first successful load.
	ErrNoSnapshot = errors.New("no snapshot loaded")
	// ErrNotFound is returned by drill-down views for an unknown player or team.
	ErrNotFound = errors.New("not found")
)

// View names used for metrics, logs and memoization keys.
const (
	ViewMVP          = "mvp"
	ViewBench        = "bench"
	ViewScoring      = "scoring"
	ViewChampionship = "championship"
	ViewTrade        = "trade"
)

// Store exposes the current snapshot and memoizes views computed from it.
type Store interface {
	Current() (*snapshots.Snapshot, bool)
	View(key string, compute func(*snapshots.Snapshot) any) (any, bool)
}

// Service shapes the current snapshot into views.
type Service struct {
	store    Store
	scenario coreinsights.TradeScenario
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. The scenario drives the trade-impact view.
func NewService(store Store, scenario coreinsights.TradeScenario, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		scenario: scenario,
		logger:   logger,
		metrics:  recorder,
	}
}

type result struct {
	value any
	err   error
}

// view computes (or reuses) a memoized view and records its metrics.
func view[T any](ctx context.Context, s *Service, name, key string, compute func(*snapshots.Snapshot) (T, error)) (T, error) {
	start := time.Now()
	var zero T

	cached, ok := s.store.View(key, func(snap *snapshots.Snapshot) any {
		v, err := compute(snap)
		logging.Debug(logging.FromContext(ctx, s.logger), "view computed",
			logging.FieldView, name,
			logging.FieldSource, snap.Source,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		return result{value: v, err: err}
	})
	if !ok {
		s.metrics.RecordView(name, time.Since(start), ErrNoSnapshot)
		return zero, ErrNoSnapshot
	}

	res := cached.(result)
	s.metrics.RecordView(name, time.Since(start), res.err)
	if res.err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "view computation failed", res.err, logging.FieldView, name)
		return zero, fmt.Errorf("%s view: %w", name, res.err)
	}
	return res.value.(T), nil
}

// MVP returns the ranked MVP candidates among players clearing the adaptive games floor.
// The outer slice is the caller's; each candidate's GameScores is shared and read-only.
func (s *Service) MVP(ctx context.Context) ([]coreinsights.MVPCandidate, error) {
	ranked, err := view(ctx, s, ViewMVP, ViewMVP, func(snap *snapshots.Snapshot) ([]coreinsights.MVPCandidate, error) {
		qualified, err := coreinsights.QualifyMVP(snap.MVP)
		if err != nil {
			return nil, err
		}
		return coreinsights.RankMVP(qualified)
	})
	return slices.Clone(ranked), err
}

// MVPPlayer returns one player's summary with their last games' game scores,
// whether or not they made the top of the ranking.
func (s *Service) MVPPlayer(ctx context.Context, player string) (coreinsights.MVPCandidate, error) {
	all, err := view(ctx, s, ViewMVP, ViewMVP+":players", func(snap *snapshots.Snapshot) ([]coreinsights.MVPCandidate, error) {
		return coreinsights.SummarizePlayers(snap.MVP)
	})
	if err != nil {
		return coreinsights.MVPCandidate{}, err
	}
	c, ok := lo.Find(all, func(c coreinsights.MVPCandidate) bool {
		return coreinsights.FoldName(c.Player) == coreinsights.FoldName(player)
	})
	if !ok {
		return coreinsights.MVPCandidate{}, ErrNotFound
	}
	if len(c.GameScores) > coreinsights.MVPRecentGames {
		c.GameScores = c.GameScores[len(c.GameScores)-coreinsights.MVPRecentGames:]
	}
	c.GameScores = slices.Clone(c.GameScores)
	return c, nil
}

// Bench returns the teams ranked by bench contribution. Each profile's BenchPlayers
// is shared with the memoized view and read-only.
func (s *Service) Bench(ctx context.Context) ([]coreinsights.TeamBenchProfile, error) {
	ranked, err := view(ctx, s, ViewBench, ViewBench, func(snap *snapshots.Snapshot) ([]coreinsights.TeamBenchProfile, error) {
		return coreinsights.RankBench(snap.Bench)
	})
	return slices.Clone(ranked), err
}

// BenchTeam returns one team's bench profile, ranked or not.
func (s *Service) BenchTeam(ctx context.Context, team string) (coreinsights.TeamBenchProfile, error) {
	all, err := view(ctx, s, ViewBench, ViewBench+":teams", func(snap *snapshots.Snapshot) ([]coreinsights.TeamBenchProfile, error) {
		return coreinsights.BenchProfiles(snap.Bench)
	})
	if err != nil {
		return coreinsights.TeamBenchProfile{}, err
	}
	profile, ok := lo.Find(all, func(p coreinsights.TeamBenchProfile) bool {
		return strings.EqualFold(p.Team, strings.TrimSpace(team))
	})
	if !ok {
		return coreinsights.TeamBenchProfile{}, ErrNotFound
	}
	profile.BenchPlayers = slices.Clone(profile.BenchPlayers)
	return profile, nil
}

// Scoring returns the scoring leaders with the named players marked inactive. Players
// short of the games floor are left out unless too few players clear it.
func (s *Service) Scoring(ctx context.Context, hidden []string) ([]coreinsights.ScoringSeries, error) {
	leaders, err := view(ctx, s, ViewScoring, ViewScoring, func(snap *snapshots.Snapshot) ([]coreinsights.ScoringSeries, error) {
		qualified, err := coreinsights.QualifyScoring(snap.Scoring)
		if err != nil {
			return nil, err
		}
		return coreinsights.ScoringLeaders(qualified, coreinsights.DefaultScoringLeaders)
	})
	if err != nil {
		return nil, err
	}
	return coreinsights.ApplyVisibility(leaders, coreinsights.NewVisibility(hidden...)), nil
}

// Championship returns bubble points for the conference filter. Only the closed
// conference set is memoized; any other value yields no teams. Without season
// profiles in the snapshot they are derived from the scoring game logs.
func (s *Service) Championship(ctx context.Context, conference string) ([]coreinsights.ChampionshipPoint, error) {
	conf := teams.NormalizeConference(conference)
	if !teams.KnownConference(conf) {
		if _, ok := s.store.Current(); !ok {
			return nil, ErrNoSnapshot
		}
		return []coreinsights.ChampionshipPoint{}, nil
	}
	points, err := view(ctx, s, ViewChampionship, ViewChampionship+":"+conf, func(snap *snapshots.Snapshot) ([]coreinsights.ChampionshipPoint, error) {
		profiles := snap.Championship
		if len(profiles) == 0 {
			derived, err := coreinsights.DeriveSeasonProfiles(snap.Scoring)
			if err != nil {
				return nil, err
			}
			profiles = derived
		}
		return coreinsights.ProjectChampionship(profiles, conf), nil
	})
	return slices.Clone(points), err
}

// TradeImpact returns the deduplicated trade view. When the trade data carries no player
// stats, they are derived from the scoring game logs. Team windows are read-only.
func (s *Service) TradeImpact(ctx context.Context) (coreinsights.TradeImpact, error) {
	impact, err := view(ctx, s, ViewTrade, ViewTrade, func(snap *snapshots.Snapshot) (coreinsights.TradeImpact, error) {
		var input trades.Input
		if snap.Trade != nil {
			input = *snap.Trade
		}
		if len(input.PlayerStats) == 0 {
			scenario := s.scenario
			if input.TradeDate != "" {
				scenario.TradeDate = input.TradeDate
			}
			stats, err := coreinsights.SummarizeTradeStats(snap.Scoring, scenario)
			if err != nil {
				return coreinsights.TradeImpact{}, err
			}
			input.PlayerStats = stats
		}
		return coreinsights.AnalyzeTrade(input, s.scenario)
	})
	impact.Players = slices.Clone(impact.Players)
	impact.Teams = slices.Clone(impact.Teams)
	return impact, err
}

// Debug describes the loaded snapshot.
type Debug struct {
	Source   string         `json:"source"`
	LoadedAt time.Time      `json:"loadedAt"`
	Counts   map[string]int `json:"counts"`
}

// Debug returns the snapshot source, load time and per-collection record counts.
func (s *Service) Debug(ctx context.Context) (Debug, error) {
	_ = ctx
	snap, ok := s.store.Current()
	if !ok {
		return Debug{}, ErrNoSnapshot
	}
	counts := lo.MapKeys(snap.Counts(), func(_ int, k snapshots.Kind) string { return string(k) })
	return Debug{Source: snap.Source, LoadedAt: snap.LoadedAt, Counts: counts}, nil
}
