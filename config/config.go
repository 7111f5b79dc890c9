package config

import (
	"errors"
	"flag"
	"fmt"
	"rps/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	OpponentNGram  = "ngram"
	OpponentRandom = "random"
)

type Config struct {
	Window     int    `env:"RPS_WINDOW"`
	Opponent   string `env:"RPS_OPPONENT"`
	Seed       uint64 `env:"RPS_SEED"` // 0 seeds from the clock
	Debug      bool   `env:"RPS_DEBUG"`
	LogLevel   string `env:"RPS_LOG_LEVEL"`
	Experiment string `env:"RPS_EXPERIMENT"` // output directory, empty plays interactively
	Rounds     int    `env:"RPS_ROUNDS"`
}

func Default() Config {
	return Config{
		Window:   meta.DefaultWindow,
		Opponent: OpponentNGram,
		LogLevel: zerolog.WarnLevel.String(),
		Rounds:   meta.ExperimentRounds,
	}
}

// Load reads the environment and then lets command-line flags override it.
func Load(args []string) (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("rps", flag.ContinueOnError)
	fs.IntVar(&cfg.Window, "window", cfg.Window, "Number of opponent moves per n-gram window")
	fs.StringVar(&cfg.Opponent, "opponent", cfg.Opponent, "CPU strategy: ngram or random")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a time-based seed")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Print the predictor's frequency table every round")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.Experiment, "experiment", cfg.Experiment, "Run the headless experiment and write results under this directory")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Rounds per experiment match")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window < 1 {
		return fmt.Errorf("%w: window must be at least 1, got %d", ErrInvalid, c.Window)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalid, c.Rounds)
	}
	if c.Opponent != OpponentNGram && c.Opponent != OpponentRandom {
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalid, c.Opponent)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Level returns the configured log level, which Validate has already checked.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
