// Package testutil provides testing utilities for govec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible RNG for generating element sequences
// and small helpers for checking ordering properties.
//
// # Sequence Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.Ints(1000, 50)      // values in [0, 50)
//	ys := testutil.Ascending(100) // 0, 1, ..., 99
//
// # Ordering Checks
//
//	ok := testutil.IsSortedFunc(xs, cmp.Compare[int])
package testutil
