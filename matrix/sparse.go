// SPDX-License-Identifier: MIT

// Package matrix: Sparse is a column-major compressed sparse matrix (CSC).
//
// Layout:
//
//	colPtr[j]..colPtr[j+1]  half-open range of column j inside rowIdx/vals
//	rowIdx[k]               row of the k-th stored entry (sorted within a column)
//	vals[k]                 value of the k-th stored entry
//
// Complexity:
//
//	SetFromTriplets  O(n log n) for n triplets (stable sort + merge pass).
//	Insert / Set     O(log d + nnz) where d is the column population (shift).
//	At               O(log d) binary search inside the column.
//	IsEmpty          O(d) linear scan of the column's inner entries.
package matrix

import (
	"cmp"
	"slices"
	"sort"
)

// Sparse stores values of type T at a subset of the cells of an r×c grid.
// The zero value of T is what At reports for cells that hold nothing.
type Sparse[T any] struct {
	r, c   int            // number of rows and columns
	colPtr []int          // len == c+1, prefix offsets per column
	rowIdx []int          // row of each stored entry
	vals   []T            // value of each stored entry
	merge  func(a, b T) T // duplicate policy for SetFromTriplets
}

// NewSparse creates an empty rows×cols sparse matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate column offsets and reserve entry storage.
// Complexity: O(cols + reserve) time and memory.
func NewSparse[T any](rows, cols int, opts ...Option[T]) (*Sparse[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts...)

	return &Sparse[T]{
		r:      rows,
		c:      cols,
		colPtr: make([]int, cols+1),
		rowIdx: make([]int, 0, cfg.reserve),
		vals:   make([]T, 0, cfg.reserve),
		merge:  cfg.merge,
	}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Sparse[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Sparse[T]) Cols() int { return m.c }

// NNZ returns the number of stored entries.
func (m *Sparse[T]) NNZ() int { return len(m.rowIdx) }

// SetFromTriplets replaces the whole content with ts.
// Triplets landing on the same cell are combined with the merge policy in
// input order (default: the first one wins). On error the matrix is unchanged.
// Stage 1 (Validate): every triplet lies inside the grid.
// Stage 2 (Execute): stable sort by (col,row), merge duplicates, rebuild offsets.
// Complexity: O(n log n) time, O(n) memory.
func (m *Sparse[T]) SetFromTriplets(ts []Triplet[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := ValidateTriplets(m.r, m.c, ts); err != nil {
		return err
	}

	order := make([]int, len(ts))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if d := cmp.Compare(ts[a].Col, ts[b].Col); d != 0 {
			return d
		}
		return cmp.Compare(ts[a].Row, ts[b].Row)
	})

	colPtr := make([]int, m.c+1)
	rowIdx := make([]int, 0, len(ts))
	vals := make([]T, 0, len(ts))
	for k, i := range order {
		t := ts[i]
		if k > 0 {
			prev := ts[order[k-1]]
			if prev.Row == t.Row && prev.Col == t.Col {
				last := len(vals) - 1
				vals[last] = m.merge(vals[last], t.Value)
				continue
			}
		}
		rowIdx = append(rowIdx, t.Row)
		vals = append(vals, t.Value)
		colPtr[t.Col+1]++
	}
	for j := 0; j < m.c; j++ {
		colPtr[j+1] += colPtr[j]
	}

	m.colPtr, m.rowIdx, m.vals = colPtr, rowIdx, vals

	return nil
}

// search locates (row, col) inside its column by binary search.
// Returns the position of the entry, or the insertion point when absent.
func (m *Sparse[T]) search(row, col int) (int, bool) {
	lo, hi := m.colPtr[col], m.colPtr[col+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], row)

	return k, k < hi && m.rowIdx[k] == row
}

// insertAt shifts entries right of k and stores (row, v) at position k of column col.
func (m *Sparse[T]) insertAt(k, row, col int, v T) {
	m.rowIdx = slices.Insert(m.rowIdx, k, row)
	m.vals = slices.Insert(m.vals, k, v)
	for j := col + 1; j <= m.c; j++ {
		m.colPtr[j]++
	}
}

// Insert stores v at (row, col), which must not hold a value yet.
// Errors: ErrOutOfRange, ErrDuplicateEntry.
func (m *Sparse[T]) Insert(row, col int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := ValidateIndex(m.r, m.c, row, col); err != nil {
		return sparseErrorf("Insert", row, col, err)
	}
	k, found := m.search(row, col)
	if found {
		return sparseErrorf("Insert", row, col, ErrDuplicateEntry)
	}
	m.insertAt(k, row, col, v)

	return nil
}

// Set stores v at (row, col), replacing any previous value.
// Errors: ErrOutOfRange.
func (m *Sparse[T]) Set(row, col int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := ValidateIndex(m.r, m.c, row, col); err != nil {
		return sparseErrorf("Set", row, col, err)
	}
	k, found := m.search(row, col)
	if found {
		m.vals[k] = v
		return nil
	}
	m.insertAt(k, row, col, v)

	return nil
}

// At returns the value stored at (row, col) and whether the cell is occupied.
// An empty cell yields the zero value of T and false.
// Errors: ErrOutOfRange.
func (m *Sparse[T]) At(row, col int) (T, bool, error) {
	var zero T
	if m == nil {
		return zero, false, ErrNilMatrix
	}
	if err := ValidateIndex(m.r, m.c, row, col); err != nil {
		return zero, false, sparseErrorf("At", row, col, err)
	}
	k, found := m.search(row, col)
	if !found {
		return zero, false, nil
	}

	return m.vals[k], true, nil
}

// IsEmpty reports whether (row, col) holds no value by walking the inner
// entries of column col one by one. This is the native lookup every
// auxiliary occupancy index is measured against.
// Errors: ErrOutOfRange.
func (m *Sparse[T]) IsEmpty(row, col int) (bool, error) {
	if m == nil {
		return true, ErrNilMatrix
	}
	if err := ValidateIndex(m.r, m.c, row, col); err != nil {
		return true, sparseErrorf("IsEmpty", row, col, err)
	}
	for k := m.colPtr[col]; k < m.colPtr[col+1]; k++ {
		if m.rowIdx[k] == row {
			return false, nil
		}
	}

	return true, nil
}

// ForEach visits stored entries in column-major order (col asc, row asc).
// Iteration stops early when fn returns false.
func (m *Sparse[T]) ForEach(fn func(row, col int, v T) bool) {
	for j := 0; j < m.c; j++ {
		for k := m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			if !fn(m.rowIdx[k], j, m.vals[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the structure.
// Values are copied by assignment, so T's own copy semantics apply.
// Complexity: O(cols + nnz).
func (m *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{
		r:      m.r,
		c:      m.c,
		colPtr: slices.Clone(m.colPtr),
		rowIdx: slices.Clone(m.rowIdx),
		vals:   slices.Clone(m.vals),
		merge:  m.merge,
	}
}
