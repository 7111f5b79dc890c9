package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"rps/config"
	"rps/console"
	"rps/engine"
	"rps/experiments"
	"rps/meta"
	"rps/player"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Msgf("using seed %d", seed)

	if cfg.Experiment != "" {
		runExperiment(cfg, seed)
		return
	}
	runGame(cfg, seed)
}

func runGame(cfg config.Config, seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	reporter := console.NewReporter(os.Stdout)
	human := player.NewInteractivePlayer(console.NewPrompt(os.Stdin, os.Stdout))

	var cpu player.Player
	options := []engine.Option{}
	switch cfg.Opponent {
	case config.OpponentRandom:
		cpu = player.NewRandomPlayer(rng)
	default:
		ngram := player.NewNGram(cfg.Window, rng)
		if cfg.Debug {
			options = append(options, engine.WithFrequencies(ngram))
		}
		cpu = ngram
	}

	reporter.Welcome()
	e := engine.New(human, cpu, reporter, options...)
	err := e.Run()
	reporter.Summary(e.Tally())

	switch {
	case errors.Is(err, io.EOF):
		return
	case errors.Is(err, player.ErrInput):
		log.Error().Err(err).Msg("match ended")
		os.Exit(1)
	default:
		log.Fatal().Err(err).Msg("match aborted")
	}
}

func runExperiment(cfg config.Config, seed uint64) {
	configs := experiments.Configs(meta.ExperimentWindows, cfg.Rounds)
	dir, err := experiments.RunAndWrite(cfg.Experiment, configs, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("experiment results stored in %s", dir)
}
