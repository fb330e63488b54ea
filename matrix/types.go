// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, indices and generators.
// This file intentionally contains ONLY domain-facing types (coordinates and
// triplets). Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
package matrix

// Coord addresses one cell of an R×C grid.
// Valid coordinates satisfy 0 ≤ Row < R and 0 ≤ Col < C.
type Coord struct {
	Row int // row index
	Col int // column index
}

// Triplet is a (row, column, value) tuple used to bulk-construct sparse storage.
type Triplet[T any] struct {
	Row   int // row index
	Col   int // column index
	Value T   // payload stored at (Row, Col)
}

// Coord returns the cell addressed by the triplet.
func (t Triplet[T]) Coord() Coord {
	return Coord{Row: t.Row, Col: t.Col}
}

// Coords projects a triplet list onto its coordinates, preserving order.
// Complexity: O(len(ts)) time and memory.
func Coords[T any](ts []Triplet[T]) []Coord {
	out := make([]Coord, len(ts))
	for i := range ts {
		out[i] = Coord{Row: ts[i].Row, Col: ts[i].Col}
	}

	return out
}
