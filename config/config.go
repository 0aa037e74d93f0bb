// SPDX-License-Identifier: MIT

// Package config resolves fpassoc settings.
//
// Precedence, lowest to highest: Default() ← YAML file ← FPASSOC_* environment
// variables ← command-line flags (applied by the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpassoc/experiment"
	"github.com/katalvlaran/fpassoc/report"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "FPASSOC_"

// ErrInvalidConfig wraps every validation failure of a resolved Config.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every knob of a run.
//
// A nil Size or Offset means "not configured": the CLI then asks for it
// interactively. Any configured value, zero and negative included, is
// passed to experiment.Run as is.
// Seed == 0 means "draw a fresh entropy seed".
type Config struct {
	Size    *int     `yaml:"size" env:"SIZE"`
	Offset  *float64 `yaml:"offset" env:"OFFSET"`
	Seed    int64    `yaml:"seed" env:"SEED"`
	Trials  int      `yaml:"trials" env:"TRIALS"`
	Format  string   `yaml:"format" env:"FORMAT"`
	Verbose bool     `yaml:"verbose" env:"VERBOSE"`
	NoPause bool     `yaml:"no_pause" env:"NO_PAUSE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Trials: experiment.DefaultTrials,
		Format: string(report.Text),
	}
}

// Load resolves Default, then the YAML file at path (skipped when path is
// empty), then the process environment.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment; a nil map means the
// process environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err = decodeYAML(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeYAML strictly decodes r into cfg; unknown keys are rejected and an
// empty document leaves cfg untouched.
func decodeYAML(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks ranges that do not depend on the experiment preconditions.
// Size and Offset are checked by experiment.Run.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials=%d < 1", ErrInvalidConfig, c.Trials)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// OffsetOr returns the configured offset, or def when none is set.
func (c Config) OffsetOr(def float64) float64 {
	if c.Offset == nil {
		return def
	}
	return *c.Offset
}

// RunOptions converts the config into experiment options.
func (c Config) RunOptions() []experiment.Option {
	opts := []experiment.Option{experiment.WithTrials(c.Trials)}
	if c.Seed != 0 {
		opts = append(opts, experiment.WithSeed(c.Seed))
	}
	return opts
}

// ReportOptions converts the config into report options.
// Validate must have succeeded first.
func (c Config) ReportOptions() report.Options {
	f, _ := report.ParseFormat(c.Format)
	return report.Options{Format: f, Verbose: c.Verbose}
}
