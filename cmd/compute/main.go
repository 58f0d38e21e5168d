package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/config"
	"github.com/pfrstg/bgend/strategy"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Msgf("loaded config: %v", cfg.AllSettings())

	numMarkers := cfg.GetInt("markers")
	numSpots := cfg.GetInt("spots")

	gameConfig, err := board.NewGameConfig(numMarkers, numSpots)
	if err != nil {
		log.Fatal().Err(err).Msg("bad game configuration")
	}

	store := strategy.NewDistributionStore(gameConfig)
	if err := store.Compute(cfg.GetInt("progress-interval"), cfg.GetInt("limit")); err != nil {
		// An unnormalized distribution means the database cannot be trusted;
		// abort without persisting.
		log.Fatal().Err(err).Msg("compute failed")
	}

	if cfg.GetInt("limit") > 0 {
		log.Warn().Msg("limit set: the saved store is a prefix of the id space, diagnostic only")
	}

	path := cfg.StorePath(numMarkers, numSpots)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("creating data directory")
	}
	if err := store.SaveSQLite(path); err != nil {
		log.Fatal().Err(err).Msg("saving store")
	}
	log.Info().Msgf("wrote %d boards to %s", len(store.DistributionMap), path)
}
