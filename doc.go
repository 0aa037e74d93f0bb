// Package fpassoc shows, with numbers you can reproduce, that floating-point
// addition is not associative.
//
// 🚀 What does it do?
//
//	It lays out pairs (offset+r, -(offset+r)) for random r ∈ [0,1), shuffles
//	them several times and adds each ordering to offset from left to right.
//	In exact arithmetic every total is offset. In float64 the totals drift
//	apart, and how far they drift depends only on the order of the additions.
//
// Under the hood, everything is organized under a few small packages:
//
//	experiment/  seed generation, accumulation, the Run entry point and its Report
//	shuffle/     generic copy-then-Fisher–Yates
//	randsrc/     the explicit random Source, seeded and entropy constructors
//	report/      text, YAML and JSON renderings of a Report
//	prompt/      the interactive question loop
//	console/     terminal port (line reads, clear screen, single key)
//	config/      defaults ← YAML file ← FPASSOC_* environment
//	cmd/fpassoc  the command-line tool
//
// Quick start:
//
//	go run ./cmd/fpassoc --size 100000 --offset 1e10
package fpassoc
