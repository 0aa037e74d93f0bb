// SPDX-License-Identifier: MIT

// Package randsrc centralizes the random sources used by the experiment.
//
// Every consumer of randomness in fpassoc receives a Source explicitly; there
// is no hidden package-level generator. *math/rand.Rand satisfies Source, so
// callers normally build one with FromSeed (reproducible) or FromEntropy
// (fresh seed, reported back so a run can be replayed).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines.
//   - Consumption order matters: the same seed reproduces a run only when draws
//     happen in the same sequence.
package randsrc
