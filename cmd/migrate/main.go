package main

import (
	"github.com/rs/zerolog/log"

	"github.com/turnero-digital/turnero-api/internal/config"
	dbpkg "github.com/turnero-digital/turnero-api/internal/db"
	"github.com/turnero-digital/turnero-api/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Init()

	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("migrations applied")
}
