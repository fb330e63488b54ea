// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` (see builderErrorf).
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative item count (coordinates, triplets).
// Usage: if errors.Is(err, ErrBadSize) { /* report invalid count */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrBadBound indicates a row or column bound smaller than MinBound.
// Usage: if errors.Is(err, ErrBadBound) { /* report invalid grid */ }.
var ErrBadBound = errors.New("builder: invalid bound")

// ErrNeedRandSource indicates that a generator requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority (tie-break guidance when multiple validations fail):
//    • ErrBadSize        - count checks first.
//    • ErrBadBound       - then row/column bounds.
//    • ErrNeedRandSource - then RNG presence.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
