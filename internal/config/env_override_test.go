package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides_Analysis(t *testing.T) {
	t.Run("PADBREAK_HEURISTIC replaces heuristic", func(t *testing.T) {
		t.Setenv("PADBREAK_HEURISTIC", "latin1-space")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "latin1-space", cfg.Analysis.Heuristic)
	})

	t.Run("PADBREAK_ACCEPT_ZERO parses booleans", func(t *testing.T) {
		t.Setenv("PADBREAK_ACCEPT_ZERO", "false")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.False(t, cfg.Analysis.AcceptZero)
	})

	t.Run("Invalid PADBREAK_ACCEPT_ZERO is ignored", func(t *testing.T) {
		t.Setenv("PADBREAK_ACCEPT_ZERO", "perhaps")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Analysis.AcceptZero)
	})

	t.Run("PADBREAK_WORKERS parses integers", func(t *testing.T) {
		t.Setenv("PADBREAK_WORKERS", "8")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, 8, cfg.Analysis.Workers)
	})

	t.Run("Invalid PADBREAK_WORKERS is ignored", func(t *testing.T) {
		t.Setenv("PADBREAK_WORKERS", "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 1, cfg.Analysis.Workers)
	})

	t.Run("PADBREAK_TIE_BREAK replaces policy", func(t *testing.T) {
		t.Setenv("PADBREAK_TIE_BREAK", "lowest-byte")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "lowest-byte", cfg.Analysis.TieBreak)
	})
}

func TestEnvOverrides_Output(t *testing.T) {
	t.Setenv("PADBREAK_FALLBACK", "mask")
	t.Setenv("PADBREAK_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "mask", cfg.Output.Fallback)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverrides_EmptyValuesKeepConfig(t *testing.T) {
	t.Setenv("PADBREAK_HEURISTIC", "")
	t.Setenv("PADBREAK_FALLBACK", "")

	cfg := DefaultConfig()
	cfg.Output.Fallback = "mask"
	cfg.applyEnvOverrides()

	assert.Equal(t, "ascii-space", cfg.Analysis.Heuristic)
	assert.Equal(t, "mask", cfg.Output.Fallback)
}
