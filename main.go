package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mergington.edu/activities-backend/internal/app"
	"mergington.edu/activities-backend/internal/app/appcontext"
	"mergington.edu/activities-backend/internal/pkg/bininfo"
)

func main() {
	cliApp := &cli.App{
		Name:        "activities-backend",
		Description: "The Mergington High School extracurricular activities backend. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the activities API server",
				Action: func(c *cli.Context) error {
					app.New(appcontext.Declare(appcontext.EnvServer)).Run()
					return nil
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
