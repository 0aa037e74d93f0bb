// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fpassoc/randsrc"
)

const methodGenerateSeed = "GenerateSeed"

// GenerateSeed builds the balanced seed sequence: size/2 adjacent pairs
// (offset+r, -(offset+r)) with r drawn from src.Float64(), in pair order.
//
// Contract:
//   - size must be even and ≥ 2 (else ErrSizeOutOfRange).
//   - offset must be finite (else ErrOffsetInvalid).
//   - src must be non-nil (else ErrNilSource).
//   - Exactly size/2 Float64 draws are consumed.
//
// Complexity: O(size) time and space.
func GenerateSeed(size int, offset float64, src randsrc.Source) ([]float64, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%s: size=%d not even and >= 2: %w", methodGenerateSeed, size, ErrSizeOutOfRange)
	}
	if !isFinite(offset) {
		return nil, fmt.Errorf("%s: offset=%v: %w", methodGenerateSeed, offset, ErrOffsetInvalid)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateSeed, ErrNilSource)
	}

	seed := make([]float64, size)
	var (
		i int
		v float64
	)
	for i = 0; i < size; i += 2 {
		v = offset + src.Float64()
		seed[i] = v
		seed[i+1] = -v
	}
	return seed, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
