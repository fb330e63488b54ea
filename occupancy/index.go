// SPDX-License-Identifier: MIT

// Package occupancy: the Index capability and shared coordinate plumbing.
package occupancy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsebench/matrix"
)

// Index records which cells of a rows×cols grid are occupied.
//
// Contract:
//   - Insert is idempotent: re-inserting an occupied cell changes nothing.
//   - BulkLoad ends in the same state as one Insert per coordinate, in any order.
//     It validates every coordinate first and leaves the index untouched on error.
//   - IsEmpty is read-only; out-of-grid coordinates are reported empty.
//   - Out-of-grid Insert/BulkLoad return matrix.ErrOutOfRange.
type Index interface {
	// Insert marks (row, col) occupied.
	Insert(row, col int) error
	// BulkLoad marks every coordinate of cs occupied.
	BulkLoad(cs []matrix.Coord) error
	// IsEmpty reports whether (row, col) was never inserted.
	IsEmpty(row, col int) bool
	// Len returns the number of distinct occupied cells.
	Len() int
	// Reset forgets every occupied cell.
	Reset()
	// Dims returns the grid shape.
	Dims() (rows, cols int)
	// Kind names the implementation.
	Kind() Kind
}

// New builds an empty index of the given kind over a rows×cols grid.
// Errors: matrix.ErrBadShape, ErrGridTooLarge, ErrUnknownKind.
func New(kind Kind, rows, cols int) (Index, error) {
	s, err := newShape(rows, cols)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindHash:
		return newHashIndex(s), nil
	case KindTree:
		return newTreeIndex(s), nil
	case KindSorted:
		return newSortedIndex(s), nil
	case KindBitmap:
		return newBitmapIndex(s), nil
	case KindLinear:
		return newLinearIndex(s), nil
	case KindMatrix:
		return NewMatrixIndex(rows, cols)
	default:
		return nil, fmt.Errorf("New(%q): %w", kind, ErrUnknownKind)
	}
}

// Linearize maps (row, col) of a grid with cols columns to row*cols + col.
// The caller guarantees the coordinate is inside the grid.
func Linearize(row, col, cols int) uint64 {
	return uint64(row)*uint64(cols) + uint64(col)
}

// Delinearize is the inverse of Linearize.
func Delinearize(id uint64, cols int) (row, col int) {
	return int(id / uint64(cols)), int(id % uint64(cols))
}

// shape carries grid bounds and the coordinate checks every variant shares.
type shape struct {
	rows, cols int
}

func newShape(rows, cols int) (shape, error) {
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return shape{}, err
	}
	if uint64(rows) > math.MaxUint64/uint64(cols) {
		return shape{}, fmt.Errorf("newShape(%d,%d): %w", rows, cols, ErrGridTooLarge)
	}

	return shape{rows: rows, cols: cols}, nil
}

// Dims returns the grid shape.
func (s shape) Dims() (int, int) { return s.rows, s.cols }

// contains reports whether (row, col) is inside the grid.
func (s shape) contains(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// key validates (row, col) and returns its linear id.
func (s shape) key(kind Kind, method string, row, col int) (uint64, error) {
	if err := matrix.ValidateIndex(s.rows, s.cols, row, col); err != nil {
		return 0, indexErrorf(kind, method, row, col, err)
	}

	return Linearize(row, col, s.cols), nil
}

// keys validates a whole batch before anything is mutated.
func (s shape) keys(kind Kind, cs []matrix.Coord) ([]uint64, error) {
	out := make([]uint64, len(cs))
	for i, c := range cs {
		k, err := s.key(kind, "BulkLoad", c.Row, c.Col)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		out[i] = k
	}

	return out, nil
}
