package main

import (
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/pfrstg/bgend/gnubg"
	"github.com/pfrstg/bgend/strategy"
)

func main() {
	ours := pflag.String("ours", "data/bgend_store_15_6.db", "our computed database")
	theirs := pflag.String("theirs", "data/gnubg_store_15_6.db", "reference database")
	out := pflag.String("out", "data/disagreements.csv", "output CSV path")
	sampleEvery := pflag.Int("sample-every", 0, "examine a random 1-in-N sample of boards")
	debug := pflag.Bool("debug", false, "debug logging")
	pflag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Msg("reading stores")
	ourStore, err := strategy.LoadSQLite(*ours)
	if err != nil {
		log.Fatal().Err(err).Msg("loading our store")
	}
	theirStore, err := strategy.LoadSQLite(*theirs)
	if err != nil {
		log.Fatal().Err(err).Msg("loading reference store")
	}

	log.Info().Msg("starting analysis")
	disagreements, err := gnubg.FindDisagreements(ourStore, theirStore, *sampleEvery)
	if err != nil {
		log.Fatal().Err(err).Msg("scan failed")
	}
	log.Info().Msgf("found %d disagreements", len(disagreements))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("creating output")
	}
	defer f.Close()
	if err := gnubg.WriteCSV(f, disagreements); err != nil {
		log.Fatal().Err(err).Msg("writing csv")
	}

	if len(disagreements) == 0 {
		return
	}
	// How much EV the reference store thinks we gave up by our choices.
	deltas := make([]float64, len(disagreements))
	for i, d := range disagreements {
		deltas[i] = d.OurMovesTheirEV - d.TheirMovesTheirEV
	}
	hist := histogram.Hist(10, deltas)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Fatal().Err(err).Msg("printing histogram")
	}
}
