// SPDX-License-Identifier: MIT

package occupancy

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/matrix"
)

// matrixIndex answers occupancy straight from sparse storage by scanning the
// queried column. It adds no memory and is the baseline every auxiliary
// index competes with.
type matrixIndex[T any] struct {
	m *matrix.Sparse[T]
}

// NewMatrixIndex builds an empty column-scan index over its own value-less
// sparse matrix.
func NewMatrixIndex(rows, cols int) (Index, error) {
	if _, err := newShape(rows, cols); err != nil {
		return nil, err
	}
	m, err := matrix.NewSparse[struct{}](rows, cols)
	if err != nil {
		return nil, err
	}

	return &matrixIndex[struct{}]{m: m}, nil
}

// AdaptMatrix exposes an existing sparse matrix as an Index without copying.
// Mutations through the Index write zero values into m.
func AdaptMatrix[T any](m *matrix.Sparse[T]) Index {
	return &matrixIndex[T]{m: m}
}

func (x *matrixIndex[T]) Kind() Kind { return KindMatrix }

func (x *matrixIndex[T]) Len() int { return x.m.NNZ() }

func (x *matrixIndex[T]) Dims() (int, int) { return x.m.Rows(), x.m.Cols() }

func (x *matrixIndex[T]) Reset() { _ = x.m.SetFromTriplets(nil) }

func (x *matrixIndex[T]) Insert(row, col int) error {
	if err := matrix.ValidateIndex(x.m.Rows(), x.m.Cols(), row, col); err != nil {
		return indexErrorf(KindMatrix, "Insert", row, col, err)
	}
	_, found, _ := x.m.At(row, col)
	if found {
		return nil
	}
	var zero T

	return x.m.Insert(row, col, zero)
}

// BulkLoad rebuilds the storage in one pass when it is empty and falls back
// to per-cell inserts otherwise, so existing values are never dropped.
func (x *matrixIndex[T]) BulkLoad(cs []matrix.Coord) error {
	ts := make([]matrix.Triplet[T], len(cs))
	for i, c := range cs {
		ts[i] = matrix.Triplet[T]{Row: c.Row, Col: c.Col}
	}
	if err := matrix.ValidateTriplets(x.m.Rows(), x.m.Cols(), ts); err != nil {
		return fmt.Errorf("%s.BulkLoad: %w", KindMatrix, err)
	}
	if x.m.NNZ() == 0 {
		return x.m.SetFromTriplets(ts)
	}
	for _, c := range cs {
		if err := x.Insert(c.Row, c.Col); err != nil {
			return err
		}
	}

	return nil
}

func (x *matrixIndex[T]) IsEmpty(row, col int) bool {
	empty, err := x.m.IsEmpty(row, col)

	return empty || err != nil
}
