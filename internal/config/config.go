package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"padbreak/internal/analysis"

	"gopkg.in/yaml.v3"
)

// Config holds all padbreak configuration.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `yaml:"analysis"`

	// Report settings
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// AnalysisConfig configures the collision scan and key resolution.
type AnalysisConfig struct {
	Heuristic  string `yaml:"heuristic"`   // ascii-space, latin1-space
	AcceptZero bool   `yaml:"accept_zero"` // count a zero XOR as two spaces
	TieBreak   string `yaml:"tie_break"`   // lowest-index, lowest-byte
	Workers    int    `yaml:"workers"`     // <= 1 scans sequentially
}

// OutputConfig configures decoding and the report.
type OutputConfig struct {
	Fallback string `yaml:"fallback"` // zero, mask
	Mask     string `yaml:"mask"`     // single placeholder character for mask
	Quiet    bool   `yaml:"quiet"`    // omit per-position diagnostics
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Heuristic:  analysis.HeuristicASCII,
			AcceptZero: true,
			TieBreak:   string(analysis.TieLowestIndex),
			Workers:    1,
		},
		Output: OutputConfig{
			Fallback: string(analysis.FallbackZero),
			Mask:     string(analysis.DefaultMask),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			// Return defaults if config file doesn't exist
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies PADBREAK_* environment variable overrides.
// Unparsable numeric or boolean values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PADBREAK_HEURISTIC"); v != "" {
		c.Analysis.Heuristic = v
	}
	if v := os.Getenv("PADBREAK_ACCEPT_ZERO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Analysis.AcceptZero = b
		}
	}
	if v := os.Getenv("PADBREAK_TIE_BREAK"); v != "" {
		c.Analysis.TieBreak = v
	}
	if v := os.Getenv("PADBREAK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Analysis.Workers = n
		}
	}
	if v := os.Getenv("PADBREAK_FALLBACK"); v != "" {
		c.Output.Fallback = v
	}
	if v := os.Getenv("PADBREAK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.AnalysisOptions(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// AnalysisOptions converts the configuration into recovery options.
func (c *Config) AnalysisOptions() (analysis.Options, error) {
	opts := analysis.DefaultOptions()

	h, err := analysis.NewHeuristic(c.Analysis.Heuristic, c.Analysis.AcceptZero)
	if err != nil {
		return opts, err
	}
	opts.Heuristic = h

	if opts.TieBreak, err = analysis.ParseTieBreak(c.Analysis.TieBreak); err != nil {
		return opts, err
	}
	if opts.Fallback, err = analysis.ParseFallback(c.Output.Fallback); err != nil {
		return opts, err
	}

	if c.Analysis.Workers < 0 {
		return opts, fmt.Errorf("workers must not be negative, got %d", c.Analysis.Workers)
	}
	opts.Workers = c.Analysis.Workers

	switch len(c.Output.Mask) {
	case 0:
	case 1:
		opts.Mask = c.Output.Mask[0]
	default:
		return opts, fmt.Errorf("mask must be a single byte, got %q", c.Output.Mask)
	}
	return opts, nil
}
