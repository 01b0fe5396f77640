package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const appVersion = "dev"

const serviceName = "nba-insights-service"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    serviceName,
		Usage:   "serve basketball stat views built from preprocessed data files",
		Version: appVersion,
		Commands: []*cli.Command{
			serveCommand(),
			viewsCommand(),
		},
		DefaultCommand: "serve",
	}
}
