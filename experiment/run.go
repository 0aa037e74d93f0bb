// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/katalvlaran/fpassoc/randsrc"
)

const methodRun = "Run"

// Run executes the full experiment for (size, offset).
//
// Contract:
//   - size < 1 ⇒ ErrSizeOutOfRange; NaN/±Inf offset ⇒ ErrOffsetInvalid.
//     Nothing is drawn or computed when a precondition fails.
//   - Odd sizes are rounded up to the next even number (5 ⇒ 6, 1 ⇒ 2).
//   - Randomness is consumed in a fixed order: seed generation, then
//     trials 1..N. Without WithSource/WithSeed a fresh entropy seed is drawn
//     and recorded in Report.Seed.
//
// Complexity: O(trials · size) time, O(size) space.
func Run(size int, offset float64, opts ...Option) (Report, error) {
	if size < minSize {
		return Report{}, fmt.Errorf("%s: size=%d: %w", methodRun, size, ErrSizeOutOfRange)
	}
	if !isFinite(offset) {
		return Report{}, fmt.Errorf("%s: offset=%v: %w", methodRun, offset, ErrOffsetInvalid)
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		seed, src := randsrc.FromEntropy()
		cfg.src = src
		cfg.seed = &seed
	}

	params := Params{Size: NormalizeSize(size), Offset: offset}

	seed, err := GenerateSeed(params.Size, params.Offset, cfg.src)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	results, err := RunTrials(params.Offset, seed, cfg.trials, cfg.src)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodRun, err)
	}

	return Report{
		Params:        params,
		RequestedSize: size,
		Expected:      params.Offset,
		Results:       results,
		Seed:          cfg.seed,
	}, nil
}

// NormalizeSize rounds an odd size up to the next even number.
func NormalizeSize(size int) int {
	if size%2 != 0 {
		return size + 1
	}
	return size
}
