// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/fpassoc/config"
	"github.com/katalvlaran/fpassoc/console"
	"github.com/katalvlaran/fpassoc/experiment"
	"github.com/katalvlaran/fpassoc/prompt"
	"github.com/katalvlaran/fpassoc/report"
)

// app carries the collaborators of one CLI invocation.
type app struct {
	port   console.Port
	logger *zap.Logger

	// flag targets
	configPath string
	size       int
	offset     float64
	seed       int64
	trials     int
	format     string
	verbose    bool
	noPause    bool
}

func newApp(port console.Port) *app {
	return &app{port: port}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fpassoc",
		Short: "Show that floating-point addition is not associative",
		Long: `fpassoc builds pairs (offset+r, -(offset+r)) around an offset, shuffles
them several times and adds each ordering from left to right. Every total
should equal the offset; the ones that do not are rounding error.

Run without --size to be asked for the parameters interactively. An offset
given by flag, config file or environment skips the offset question.`,
		Example: `  fpassoc
  fpassoc --size 100000 --offset 1e10
  fpassoc -n 1000 -o 5 --seed 42 --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.run,
	}

	f := cmd.Flags()
	f.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&a.size, "size", "n", 0, "number of FP operations to add (skips the prompts)")
	f.Float64VarP(&a.offset, "offset", "o", prompt.DefaultOffset, "offset the values are centred on")
	f.Int64VarP(&a.seed, "seed", "s", 0, "RNG seed for a reproducible run (0 draws a fresh one)")
	f.IntVarP(&a.trials, "trials", "t", experiment.DefaultTrials, "number of shuffled orderings to add")
	f.StringVarP(&a.format, "format", "f", string(report.Text), "output format: text, yaml or json")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "show seed, deviations and debug logs")
	f.BoolVar(&a.noPause, "no-pause", false, "do not wait for a key before exiting")
	return cmd
}

// resolve layers the changed flags over the file and environment config.
func (a *app) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("size") {
		size := a.size
		cfg.Size = &size
	}
	if f.Changed("offset") {
		offset := a.offset
		cfg.Offset = &offset
	}
	if f.Changed("seed") {
		cfg.Seed = a.seed
	}
	if f.Changed("trials") {
		cfg.Trials = a.trials
	}
	if f.Changed("format") {
		cfg.Format = a.format
	}
	if f.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if f.Changed("no-pause") {
		cfg.NoPause = a.noPause
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the production logger, at debug level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func (a *app) run(cmd *cobra.Command, _ []string) error {
	cfg, err := a.resolve(cmd)

	// The logger follows the resolved verbosity (flag, file or env); a
	// broken config falls back to the flag alone.
	if a.logger == nil {
		verbose := a.verbose
		if err == nil {
			verbose = cfg.Verbose
		}
		logger, lerr := newLogger(verbose)
		if lerr != nil {
			return lerr
		}
		a.logger = logger
	}
	if err != nil {
		a.logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	session := prompt.NewSession(a.port)
	interactive := cfg.Size == nil
	var size int
	if interactive {
		if size, err = session.AskSize(); err != nil {
			a.logger.Error("reading parameters", zap.Error(err))
			return err
		}
	} else {
		size = *cfg.Size
	}
	offset := cfg.OffsetOr(prompt.DefaultOffset)
	if interactive && cfg.Offset == nil {
		if offset, err = session.AskOffset(); err != nil {
			a.logger.Error("reading parameters", zap.Error(err))
			return err
		}
	}

	a.logger.Debug("running experiment",
		zap.Int("size", size),
		zap.Float64("offset", offset),
		zap.Int("trials", cfg.Trials),
		zap.Int64("seed", cfg.Seed),
	)
	rep, err := experiment.Run(size, offset, cfg.RunOptions()...)
	if err != nil {
		a.logger.Error("experiment rejected parameters", zap.Error(err))
		return err
	}
	fields := []zap.Field{
		zap.Int("size", rep.Size),
		zap.Int("distinct", rep.Distinct()),
		zap.Float64("spread", rep.Spread()),
	}
	if rep.Seed != nil {
		fields = append(fields, zap.Int64("seed", *rep.Seed))
	}
	a.logger.Debug("experiment finished", fields...)

	opts := cfg.ReportOptions()
	if !interactive {
		return report.Render(cmd.OutOrStdout(), rep, opts)
	}
	if err = session.Present(rep, opts); err != nil {
		return err
	}
	if cfg.NoPause {
		return nil
	}
	return session.Pause()
}
