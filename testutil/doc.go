// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG for generating random decimal vectors, so property tests
// are reproducible.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(3)          // coordinates in [-10, 10)
//	vs := rng.Vectors(100, 3)
//	nz := rng.NonZeroVector(3)  // magnitude >= 1e-3
package testutil
