// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - All public generators are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical sequences.
//   - Safety: never panic; return sentinel errors on invalid input.

package builder

import "github.com/katalvlaran/sparsebench/matrix"

// RandomCoordinates draws count coordinates independently and uniformly from
// [0,rowBound)×[0,colBound). Duplicates are allowed and expected; they model
// collisions in real occupancy patterns. The slice is materialized once and
// returned in draw order.
//
// Errors: ErrBadSize, ErrBadBound, ErrNeedRandSource (count > 0 without RNG).
// Complexity: O(count) time and memory.
func RandomCoordinates(count, rowBound, colBound int, opts ...BuilderOption) ([]matrix.Coord, error) {
	return randomCoordinates(newBuilderConfig(opts...), count, rowBound, colBound)
}

// RandomTriplets draws count (row, col, payload) triplets over a rows×cols grid.
// Coordinates follow RandomCoordinates; payloads come from the configured
// PayloadFn and are never shared between triplets.
//
// Errors: same as RandomCoordinates, prefixed with MethodRandomTriplets.
// Complexity: O(count · payload cost).
func RandomTriplets(count, rows, cols int, opts ...BuilderOption) ([]matrix.Triplet[Payload], error) {
	return randomTriplets(newBuilderConfig(opts...), count, rows, cols)
}
