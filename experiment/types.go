// SPDX-License-Identifier: MIT

package experiment

import (
	"math"
	"slices"
)

// DefaultTrials is the number of shuffle-and-accumulate passes per run.
const DefaultTrials = 5

// minSize is the smallest size Run accepts before normalization.
const minSize = 1

// Params holds validated trial parameters.
// Invariant: Size ≥ 2, Size even, Offset finite.
type Params struct {
	Size   int
	Offset float64
}

// Report is the immutable outcome of one Run.
type Report struct {
	Params

	// RequestedSize is the size as passed to Run, before rounding up to even.
	RequestedSize int

	// Expected is the analytically correct total; always equal to Offset.
	Expected float64

	// Results holds one accumulated total per trial, in trial order.
	Results []float64

	// Seed is the RNG seed the run was drawn from; nil when the caller
	// supplied its own Source via WithSource.
	Seed *int64
}

// Deviations returns result - expected for each trial.
func (r Report) Deviations() []float64 {
	out := make([]float64, len(r.Results))
	for i, v := range r.Results {
		out[i] = v - r.Expected
	}
	return out
}

// Distinct returns how many bit-distinct totals the trials produced.
// 1 means every ordering agreed; anything more is non-associativity at work.
func (r Report) Distinct() int {
	seen := make(map[uint64]struct{}, len(r.Results))
	for _, v := range r.Results {
		seen[math.Float64bits(v)] = struct{}{}
	}
	return len(seen)
}

// Spread returns max(Results) - min(Results), or 0 for an empty report.
func (r Report) Spread() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return slices.Max(r.Results) - slices.Min(r.Results)
}

// Exact reports whether every trial hit the expected value exactly.
func (r Report) Exact() bool {
	for _, v := range r.Results {
		if v != r.Expected {
			return false
		}
	}
	return true
}
