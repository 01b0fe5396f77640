package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/nba-insights-service/internal/config"
	"github.com/preston-bernstein/nba-insights-service/internal/logging"
	"github.com/preston-bernstein/nba-insights-service/internal/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "reload the data files on an interval and serve views over HTTP",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to read before the environment",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.StringSlice("env-file")...)
			if err != nil {
				return err
			}
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.LogLevel,
				Format:  cfg.LogFormat,
				Service: serviceName,
				Version: appVersion,
			})

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}
			srv.Run(ctx, stop)
			return nil
		},
	}
}
