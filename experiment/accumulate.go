// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/katalvlaran/fpassoc/randsrc"
	"github.com/katalvlaran/fpassoc/shuffle"
)

const methodRunTrials = "RunTrials"

// Accumulate returns offset + values, added naively left to right, two
// elements per step (values[k] then values[k+1]). An odd trailing element
// is still added.
//
// Complexity: O(len(values)).
func Accumulate(offset float64, values []float64) float64 {
	total := offset
	n := len(values)

	var k int
	for k = 0; k+1 < n; k += 2 {
		total += values[k]
		total += values[k+1]
	}
	if k < n {
		total += values[k]
	}
	return total
}

// RunTrials performs trials shuffle-and-accumulate passes over seed.
// Each pass shuffles a fresh copy of seed with src, so seed is never
// modified and passes consume randomness strictly in trial order.
//
// Complexity: O(trials · len(seed)) time, O(len(seed)) extra space per pass.
func RunTrials(offset float64, seed []float64, trials int, src randsrc.Source) ([]float64, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodRunTrials, ErrNilSource)
	}
	if trials < 0 {
		trials = 0
	}

	results := make([]float64, trials)
	var i int
	for i = 0; i < trials; i++ {
		results[i] = Accumulate(offset, shuffle.Shuffled(seed, src))
	}
	return results, nil
}
