// SPDX-License-Identifier: MIT

package shuffle

import "github.com/katalvlaran/fpassoc/randsrc"

// InPlace performs an in-place Fisher–Yates shuffle of a using src.
// If src==nil, the deterministic default stream is used (seed==0 policy).
// Slices with fewer than two elements are left alone and consume no randomness.
//
// Complexity: O(n) time, O(1) extra space.
func InPlace[T any](a []T, src randsrc.Source) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}
	if src == nil {
		src = randsrc.FromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = src.Intn(i + 1) // j ∈ [0, i]
		a[i], a[j] = a[j], a[i]
	}
}

// Shuffled returns a shuffled copy of a; a itself is not modified.
// The result is always a fresh slice of len(a), even when len(a) <= 1.
//
// Complexity: O(n) time, O(n) space.
func Shuffled[T any](a []T, src randsrc.Source) []T {
	out := make([]T, len(a))
	copy(out, a)
	InPlace(out, src)
	return out
}
