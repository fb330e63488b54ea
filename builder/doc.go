// Package builder generates reproducible benchmark workloads for sparse
// occupancy experiments, using the same “functional‐options” building blocks
// across all generators.
//
// The package offers the following key components:
//
//   - Generators:
//     – RandomCoordinates: uniform (row, col) draws, duplicates allowed.
//     – RandomTriplets:    uniform (row, col, Payload) draws.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the payload policy.
//   - Payload: the shared value type stored at each occupied cell, with deep
//     copy semantics (Clone) and a meaningful zero value.
//   - Validation helpers: validateCount, validateBounds.
//
// Guarantees:
//
//   - No global random state: every generator draws from the *rand.Rand
//     supplied via WithSeed or WithRand, so runs are reproducible.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrBadSize, ErrBadBound, ErrNeedRandSource)
//     wrapped with the generator name for easy filtering.
package builder
