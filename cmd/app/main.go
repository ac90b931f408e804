package main

import (
	"agrirent/config"
	"agrirent/di"
	"agrirent/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	http := di.InitializeService()
	http.Serve()
}
