// SPDX-License-Identifier: MIT

package occupancy

import "github.com/katalvlaran/sparsebench/matrix"

// hashIndex keeps occupied ids in a Go map.
type hashIndex struct {
	shape
	set map[uint64]struct{}
}

func newHashIndex(s shape) *hashIndex {
	return &hashIndex{shape: s, set: make(map[uint64]struct{})}
}

func (h *hashIndex) Kind() Kind { return KindHash }

func (h *hashIndex) Len() int { return len(h.set) }

func (h *hashIndex) Reset() { clear(h.set) }

func (h *hashIndex) Insert(row, col int) error {
	k, err := h.key(KindHash, "Insert", row, col)
	if err != nil {
		return err
	}
	h.set[k] = struct{}{}

	return nil
}

func (h *hashIndex) BulkLoad(cs []matrix.Coord) error {
	ks, err := h.keys(KindHash, cs)
	if err != nil {
		return err
	}
	for _, k := range ks {
		h.set[k] = struct{}{}
	}

	return nil
}

func (h *hashIndex) IsEmpty(row, col int) bool {
	if !h.contains(row, col) {
		return true
	}
	_, ok := h.set[Linearize(row, col, h.cols)]

	return !ok
}
