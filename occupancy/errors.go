// SPDX-License-Identifier: MIT
// Package occupancy: sentinel error set.
// Out-of-range coordinates are reported with matrix.ErrOutOfRange and bad
// shapes with matrix.ErrBadShape, so callers test one sentinel per condition
// across storage and indices.

package occupancy

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned when an index kind name is not registered.
	ErrUnknownKind = errors.New("occupancy: unknown index kind")

	// ErrGridTooLarge signals that rows*cols does not fit a 64-bit linear id.
	ErrGridTooLarge = errors.New("occupancy: grid too large to linearize")
)

// indexErrorf wraps an underlying sentinel with index method context.
func indexErrorf(kind Kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}
