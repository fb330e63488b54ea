// SPDX-License-Identifier: MIT

package occupancy

import (
	"slices"

	"github.com/katalvlaran/sparsebench/matrix"
)

// sortedIndex keeps occupied ids in an ascending, duplicate-free slice.
// Lookups binary-search; single inserts shift the tail, so bulk loading
// (sort once, compact once) is the intended construction path.
type sortedIndex struct {
	shape
	ids []uint64
}

func newSortedIndex(s shape) *sortedIndex {
	return &sortedIndex{shape: s}
}

func (s *sortedIndex) Kind() Kind { return KindSorted }

func (s *sortedIndex) Len() int { return len(s.ids) }

func (s *sortedIndex) Reset() { s.ids = s.ids[:0] }

func (s *sortedIndex) Insert(row, col int) error {
	k, err := s.key(KindSorted, "Insert", row, col)
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(s.ids, k)
	if !found {
		s.ids = slices.Insert(s.ids, i, k)
	}

	return nil
}

func (s *sortedIndex) BulkLoad(cs []matrix.Coord) error {
	ks, err := s.keys(KindSorted, cs)
	if err != nil {
		return err
	}
	merged := append(s.ids, ks...)
	slices.Sort(merged)
	s.ids = slices.Compact(merged)

	return nil
}

func (s *sortedIndex) IsEmpty(row, col int) bool {
	if !s.contains(row, col) {
		return true
	}
	_, found := slices.BinarySearch(s.ids, Linearize(row, col, s.cols))

	return !found
}
