// Package config holds the run configuration of the circuitry command.
//
// Values come from defaults, then an optional YAML file decoded strictly
// (unknown keys are an error), then command-line flags.
//
//	input: data/points.txt   # empty means the embedded sample
//	limit: 1000              # -1 picks the default for the data source
//	log_level: info          # debug | info | warn | error
//	metrics: false           # dump Prometheus metrics to stderr after the run
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/circuitry/dataset"
)

// AutoLimit selects dataset.SampleLimit for the sample and dataset.FileLimit
// for file input.
const AutoLimit = -1

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the run configuration.
type Config struct {
	Input    string `yaml:"input"`
	Limit    int    `yaml:"limit"`
	LogLevel string `yaml:"log_level"`
	Metrics  bool   `yaml:"metrics"`
}

// Default returns the configuration used when nothing is specified: the
// embedded sample with its default limit.
func Default() Config {
	return Config{
		Limit:    AutoLimit,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over Default. An empty path returns
// Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// UseSample reports whether the embedded sample is the data source.
func (c Config) UseSample() bool { return c.Input == "" }

// EffectiveLimit resolves AutoLimit against the data source.
func (c Config) EffectiveLimit() int {
	if c.Limit != AutoLimit {
		return c.Limit
	}
	if c.UseSample() {
		return dataset.SampleLimit
	}

	return dataset.FileLimit
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Limit < AutoLimit {
		return fmt.Errorf("%w: limit %d", ErrInvalid, c.Limit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}
