// Package config provides runtime configuration for pgnparse, loaded
// from a YAML file and environment variables.
package config

import (
	"fmt"
	"runtime"
)

// Config is the root application configuration.
type Config struct {
	Parse  ParseConfig  `yaml:"parse"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// ParseConfig holds settings for the parsing pipeline.
type ParseConfig struct {
	Workers  int `yaml:"workers"   env:"PGNPARSE_WORKERS"   env-default:"0"`
	MaxGames int `yaml:"max_games" env:"PGNPARSE_MAX_GAMES" env-default:"0"`
}

// OutputConfig holds settings for rendering games back out.
type OutputConfig struct {
	Width int  `yaml:"width" env:"PGNPARSE_WIDTH" env-default:"80"`
	Quiet bool `yaml:"quiet" env:"PGNPARSE_QUIET" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbosity int    `yaml:"verbosity" env:"PGNPARSE_VERBOSITY" env-default:"0"`
	File      string `yaml:"file"      env:"PGNPARSE_LOG_FILE"`
}

// EffectiveWorkers returns the worker count to use, falling back to
// the number of CPUs when unset.
func (p ParseConfig) EffectiveWorkers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

// Validate checks the loaded configuration. Load calls it
// automatically.
func (c *Config) Validate() error {
	if c.Parse.Workers < 0 {
		return fmt.Errorf("parse.workers must be >= 0 (got %d)", c.Parse.Workers)
	}
	if c.Parse.MaxGames < 0 {
		return fmt.Errorf("parse.max_games must be >= 0 (got %d)", c.Parse.MaxGames)
	}
	if c.Output.Width != 0 && c.Output.Width < 20 {
		return fmt.Errorf("output.width must be 0 or >= 20 (got %d)", c.Output.Width)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must be >= 0 (got %d)", c.Log.Verbosity)
	}
	return nil
}
