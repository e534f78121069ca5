// Package testutil provides testing utilities for seqgo.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded random generator for building reproducible element sequences:
//
//	rng := testutil.NewRNG(seed)
//	vals := rng.Ints(100, 1000) // 100 random ints in [0, 1000)
//	perm := rng.Perm(100)       // a random permutation of [0, 100)
package testutil
