package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"mergington.edu/activities-backend/internal/app/appcontext"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var config ConfigSpec
	err = envconfig.Process("mergington", &config)
	if err != nil {
		_ = envconfig.Usage("mergington", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
