// SPDX-License-Identifier: MIT

package experiment

import "github.com/katalvlaran/fpassoc/randsrc"

// Option customizes a Run by mutating a runConfig before any work starts.
// Option constructors panic on meaningless inputs; Run itself never panics.
type Option func(*runConfig)

// runConfig is the resolved set of options for a single Run.
type runConfig struct {
	trials int
	src    randsrc.Source
	seed   *int64
}

// defaultRunConfig returns the configuration used when no options are given.
// src stays nil so Run can draw an entropy seed lazily.
func defaultRunConfig() runConfig {
	return runConfig{trials: DefaultTrials}
}

// WithTrials sets the number of shuffle-and-accumulate passes.
// Panics on n < 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic("experiment: WithTrials(n < 1)")
	}
	return func(c *runConfig) {
		c.trials = n
	}
}

// WithSource provides an explicit random source. The report will carry no
// seed, since an arbitrary Source cannot be replayed by value.
// Panics on nil.
func WithSource(src randsrc.Source) Option {
	if src == nil {
		panic("experiment: WithSource(nil)")
	}
	return func(c *runConfig) {
		c.src = src
		c.seed = nil
	}
}

// WithSeed seeds a deterministic source (randsrc.FromSeed policy: 0 ⇒ default).
// Use this in tests and to replay a previous run.
func WithSeed(seed int64) Option {
	return func(c *runConfig) {
		s := seed
		c.src = randsrc.FromSeed(seed)
		c.seed = &s
	}
}
