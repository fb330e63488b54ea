// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public method returns these sentinels (possibly wrapped with
// method context) and tests check them via errors.Is. No method panics on
// user-triggered error conditions; panics are reserved for option
// constructors receiving nonsensical values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Methods attach context as
// "Sparse.<Method>(r,c): <sentinel>" through sparseErrorf.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> index -> duplicate entry.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,rows)×[0,cols).
	// Public indexers (Insert/Set/At/IsEmpty) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDuplicateEntry is returned by Insert when the cell already holds a value.
	// Use Set for insert-or-update semantics.
	ErrDuplicateEntry = errors.New("matrix: entry already stored")

	// ErrNilMatrix indicates that a nil *Sparse receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// sparseErrorf wraps an underlying sentinel with Sparse method context.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}
