// SPDX-License-Identifier: MIT

// Package experiment runs the floating-point non-associativity experiment.
//
// 🚀 What does it show?
//
//	Floating-point addition is not associative: (a+b)+c need not equal
//	a+(b+c). The experiment builds a balanced set of values around an
//	offset, pairs (offset+r, -(offset+r)) for random r ∈ [0,1), so that
//	offset + Σ seed is exactly offset in real arithmetic. It then adds the
//	same values in several random orders and reports each total. Any total
//	other than offset is rounding error made visible.
//
// ✨ Pipeline:
//  1. Validate size ≥ 1 and a finite offset; round odd sizes up to even.
//  2. GenerateSeed draws size/2 values and lays out the pairs.
//  3. RunTrials shuffles a copy of the seed per trial (Fisher–Yates) and
//     accumulates it left to right starting from offset.
//  4. The Report carries the expected value and every trial total.
//
// ⚙️ Usage:
//
//	rep, err := experiment.Run(100000, 1e10, experiment.WithSeed(7))
//	if err != nil {
//	    // errors.Is(err, experiment.ErrSizeOutOfRange) / ErrOffsetInvalid
//	}
//	fmt.Println(rep.Expected, rep.Results)
//
// Randomness:
//
//	One Source is threaded through the whole run: seed generation draws
//	first, then trial 1, trial 2, and so on. A fixed seed reproduces every
//	total bit for bit.
//
// Complexity: O(trials · size) time, O(size) memory.
package experiment
