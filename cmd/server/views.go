package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	appinsights "github.com/preston-bernstein/nba-insights-service/internal/app/insights"
	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/providers"
	"github.com/preston-bernstein/nba-insights-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-insights-service/internal/snapshots"
	"github.com/preston-bernstein/nba-insights-service/internal/store"
)

func viewsCommand() *cli.Command {
	return &cli.Command{
		Name:  "views",
		Usage: "load the data files once and print a view as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Value: "data", Usage: "directory holding the *_data.json files"},
			&cli.StringFlag{Name: "source", Value: config.SourceFS, Usage: "fs or fixture"},
			&cli.StringFlag{Name: "view", Value: appinsights.ViewMVP, Usage: "mvp, bench, scoring, championship, trade or debug"},
			&cli.StringFlag{Name: "conference", Usage: "championship filter: all, east or west"},
			&cli.StringSliceFlag{Name: "hide", Usage: "scoring series to mark inactive"},
			&cli.StringFlag{Name: "scenario", Usage: "TOML trade scenario file"},
		},
		Action: runViews,
	}
}

func runViews(c *cli.Context) error {
	var provider providers.SnapshotProvider
	switch src := c.String("source"); src {
	case config.SourceFS:
		provider = snapshots.NewFSStore(c.String("data-dir"))
	case config.SourceFixture:
		provider = fixture.New()
	default:
		return fmt.Errorf("unknown data source %q", src)
	}

	scenario, err := config.LoadTradeScenario(c.String("scenario"))
	if err != nil {
		return err
	}
	snap, err := provider.Load(c.Context)
	if err != nil {
		return err
	}
	ms := store.NewMemoryStore()
	ms.Set(snap)
	svc := appinsights.NewService(ms, scenario, nil, nil)

	var out any
	switch view := c.String("view"); view {
	case appinsights.ViewMVP:
		out, err = svc.MVP(c.Context)
	case appinsights.ViewBench:
		out, err = svc.Bench(c.Context)
	case appinsights.ViewScoring:
		out, err = svc.Scoring(c.Context, c.StringSlice("hide"))
	case appinsights.ViewChampionship:
		out, err = svc.Championship(c.Context, c.String("conference"))
	case appinsights.ViewTrade:
		out, err = svc.TradeImpact(c.Context)
	case "debug":
		out, err = svc.Debug(c.Context)
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
