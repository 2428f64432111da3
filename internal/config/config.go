// Package config resolves runtime settings from .affinity.yaml, AFFINITY_*
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalidMatchSize is returned when match_size lies outside 0..12.
var ErrInvalidMatchSize = errors.New("match_size must be between 0 and 12")

// Config holds all runtime configuration for an affinity run.
// Values are populated from .affinity.yaml, AFFINITY_* env vars, and CLI flags.
type Config struct {
	Format    string `mapstructure:"format"`
	MatchSize int    `mapstructure:"match_size"`
	NoMatches bool   `mapstructure:"no_matches"`
	Styled    bool   `mapstructure:"styled"`
	LogLevel  string `mapstructure:"log_level"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("format", "text")
	viper.SetDefault("match_size", 7)
	viper.SetDefault("no_matches", false)
	viper.SetDefault("styled", false)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.MatchSize < 0 || cfg.MatchSize > 12 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidMatchSize, cfg.MatchSize)
	}
	if cfg.Verbose && cfg.LogLevel == "info" {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
