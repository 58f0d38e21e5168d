package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/gnubg"
)

func main() {
	markers := pflag.Int("markers", 15, "number of markers")
	spots := pflag.Int("spots", 6, "number of spots")
	dump := pflag.String("dump", "", "path to a gnubg bearoffdump text file")
	out := pflag.String("out", "data/gnubg_store_15_6.db", "output database path")
	debug := pflag.Bool("debug", false, "debug logging")
	pflag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if *dump == "" {
		log.Fatal().Msg("-dump is required")
	}

	gameConfig, err := board.NewGameConfig(*markers, *spots)
	if err != nil {
		log.Fatal().Err(err).Msg("bad game configuration")
	}

	f, err := os.Open(*dump)
	if err != nil {
		log.Fatal().Err(err).Msg("opening dump")
	}
	defer f.Close()

	store, err := gnubg.StoreFromDump(gameConfig, f)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing dump")
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal().Err(err).Msg("creating output directory")
	}
	if err := store.SaveSQLite(*out); err != nil {
		log.Fatal().Err(err).Msg("saving store")
	}
	log.Info().Msgf("imported %d boards to %s", len(store.DistributionMap), *out)
}
