package config

import (
	"rps/meta"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, meta.DefaultWindow, cfg.Window)
		require.Equal(t, zerolog.WarnLevel, cfg.Level())
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("RPS_WINDOW", "5")
		t.Setenv("RPS_OPPONENT", "random")
		t.Setenv("RPS_SEED", "99")
		t.Setenv("RPS_DEBUG", "true")
		t.Setenv("RPS_LOG_LEVEL", "debug")

		cfg, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Window)
		require.Equal(t, OpponentRandom, cfg.Opponent)
		require.Equal(t, uint64(99), cfg.Seed)
		require.True(t, cfg.Debug)
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
	})

	t.Run("flags override the environment", func(t *testing.T) {
		t.Setenv("RPS_WINDOW", "5")
		t.Setenv("RPS_EXPERIMENT", "from-env")

		cfg, err := Load([]string{"-window", "2", "-experiment", "out", "-rounds", "50"})
		require.NoError(t, err)
		require.Equal(t, 2, cfg.Window)
		require.Equal(t, "out", cfg.Experiment)
		require.Equal(t, 50, cfg.Rounds)
	})

	t.Run("rejects malformed environment", func(t *testing.T) {
		t.Setenv("RPS_WINDOW", "three")

		_, err := Load(nil)
		require.Error(t, err)
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		_, err := Load([]string{"-players", "2"})
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero window", func(c *Config) { c.Window = 0 }},
		{"zero rounds", func(c *Config) { c.Rounds = 0 }},
		{"unknown opponent", func(c *Config) { c.Opponent = "mcts" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	require.NoError(t, Default().Validate())
}
