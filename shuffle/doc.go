// SPDX-License-Identifier: MIT

// Package shuffle implements the Fisher–Yates shuffle over arbitrary
// element types.
//
// 🚀 What is Fisher–Yates?
//
//	Walk the slice from the last index down to 1; at each step i draw j
//	uniformly from [0, i] and swap a[i] with a[j]. Every one of the n!
//	permutations is equally likely and the walk is linear.
//
// ✨ Key features:
//   - Shuffled: copy-then-shuffle, the caller's slice is never touched
//   - InPlace: the raw O(1)-space variant
//   - explicit randsrc.Source; nil means the deterministic default stream
//
// ⚙️ Usage:
//
//	src := randsrc.FromSeed(7)
//	out := shuffle.Shuffled([]float64{1, 2, 3}, src)
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) for Shuffled, O(1) for InPlace
package shuffle
