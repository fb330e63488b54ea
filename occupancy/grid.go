// SPDX-License-Identifier: MIT

package occupancy

import (
	"github.com/katalvlaran/sparsebench/matrix"
)

// Grid pairs sparse storage with an occupancy index and keeps them in sync.
// Every write goes to the matrix first; the index is updated only after the
// matrix accepted the write, so a rejected write leaves both untouched.
//
// With KindMatrix the index is the matrix itself (column scan) and no
// auxiliary structure is maintained.
type Grid[T any] struct {
	m   *matrix.Sparse[T]
	idx Index
	aux bool // idx is a separate structure that needs updating
}

// NewGrid allocates a rows×cols grid whose emptiness queries are served by
// an index of the given kind. opts configure the underlying matrix.
func NewGrid[T any](rows, cols int, kind Kind, opts ...matrix.Option[T]) (*Grid[T], error) {
	m, err := matrix.NewSparse[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if kind == KindMatrix {
		return &Grid[T]{m: m, idx: AdaptMatrix(m)}, nil
	}
	idx, err := New(kind, rows, cols)
	if err != nil {
		return nil, err
	}

	return &Grid[T]{m: m, idx: idx, aux: true}, nil
}

// Insert stores v at (row, col), replacing any previous value, and marks the
// cell occupied. Errors: matrix.ErrOutOfRange.
func (g *Grid[T]) Insert(row, col int, v T) error {
	if err := g.m.Set(row, col, v); err != nil {
		return err
	}
	if g.aux {
		return g.idx.Insert(row, col)
	}

	return nil
}

// SetFromTriplets replaces the whole content: the matrix is rebuilt from ts
// and the index is reset and bulk-loaded with the same coordinates.
func (g *Grid[T]) SetFromTriplets(ts []matrix.Triplet[T]) error {
	if err := g.m.SetFromTriplets(ts); err != nil {
		return err
	}
	if !g.aux {
		return nil
	}
	g.idx.Reset()

	return g.idx.BulkLoad(matrix.Coords(ts))
}

// IsEmpty reports whether (row, col) holds no value, asking the index only.
func (g *Grid[T]) IsEmpty(row, col int) bool {
	return g.idx.IsEmpty(row, col)
}

// At returns the stored value (zero value when empty).
func (g *Grid[T]) At(row, col int) (T, bool, error) {
	return g.m.At(row, col)
}

// Len returns the number of occupied cells.
func (g *Grid[T]) Len() int { return g.m.NNZ() }

// Kind names the index serving emptiness queries.
func (g *Grid[T]) Kind() Kind { return g.idx.Kind() }

// Matrix exposes the underlying storage for read access.
func (g *Grid[T]) Matrix() *matrix.Sparse[T] { return g.m }

// Index exposes the occupancy index; it reflects every write made through g.
func (g *Grid[T]) Index() Index { return g.idx }
