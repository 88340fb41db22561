package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ledger",
		Usage: "inspect and maintain the ScoreBot match store",
		Commands: []*cli.Command{
			newMigrateCommand(),
			{
				Name:   "replay",
				Usage:  "replay every confirmed match and print the resulting leaderboard",
				Flags:  []cli.Flag{minStreakFlag},
				Action: withStore(replayAction),
			},
			{
				Name:  "unconfirmed",
				Usage: "list matches still waiting for confirmations, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 25, Usage: "maximum number of matches to list"},
				},
				Action: withStore(unconfirmedAction),
			},
			{
				Name:   "verify",
				Usage:  "replay the confirmed history and compare it with the running server's leaderboard",
				Flags:  []cli.Flag{apiURLFlag, apiKeyFlag},
				Action: withStore(verifyAction),
			},
		},
	}
}

var minStreakFlag = &cli.IntFlag{
	Name:  "min-streak",
	Value: 3,
	Usage: "shortest win streak shown on the leaderboard",
}

var apiURLFlag = &cli.StringFlag{
	Name:    "api-url",
	Value:   "http://localhost:8080",
	EnvVars: []string{"API_URL"},
	Usage:   "base URL of the ScoreBot API whose ledger is verified",
}

var apiKeyFlag = &cli.StringFlag{
	Name:    "api-key",
	EnvVars: []string{"API_KEY"},
	Usage:   "API key sent as X-API-Key",
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply all pending migrations",
				Action: withPool(migrateUpAction),
			},
			{
				Name:   "status",
				Usage:  "show which migrations are applied",
				Action: withPool(migrateStatusAction),
			},
		},
	}
}
