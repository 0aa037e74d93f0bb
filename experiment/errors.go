// SPDX-License-Identifier: MIT

package experiment

import "errors"

// ErrSizeOutOfRange indicates a size below the minimum of 1 (or, for
// GenerateSeed, a size that is not an even number ≥ 2).
// Usage: if errors.Is(err, ErrSizeOutOfRange) { /* fix size */ }.
var ErrSizeOutOfRange = errors.New("experiment: size must be greater than 1")

// ErrOffsetInvalid indicates a NaN or infinite offset.
var ErrOffsetInvalid = errors.New("experiment: offset must be valid")

// ErrNilSource indicates that a step requiring randomness received none.
var ErrNilSource = errors.New("experiment: random source is required")
