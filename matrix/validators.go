// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep storage methods minimal by delegating guards here.
//  - Return tagged sentinel errors so call sites can branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are both positive.
//
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateIndex ensures (row, col) lies inside a rows×cols grid.
//
// Implementation: assumes the shape itself was validated.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(rows, cols, row, col int) error {
	if row < 0 || row >= rows {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: row %d not in [0,%d)", row, rows), ErrOutOfRange)
	}
	if col < 0 || col >= cols {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: col %d not in [0,%d)", col, cols), ErrOutOfRange)
	}

	return nil
}

// ValidateTriplets checks every triplet against the rows×cols grid and
// reports the first offending position.
//
// Errors: ErrOutOfRange wrapped with the triplet index.
// Complexity: O(len(ts)).
func ValidateTriplets[T any](rows, cols int, ts []Triplet[T]) error {
	for i := range ts {
		if err := ValidateIndex(rows, cols, ts[i].Row, ts[i].Col); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateTriplets[%d]", i), err)
		}
	}

	return nil
}
