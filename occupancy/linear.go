// SPDX-License-Identifier: MIT

package occupancy

import (
	"slices"

	"github.com/katalvlaran/sparsebench/matrix"
)

// linearIndex keeps occupied ids in first-insertion order and answers every
// query with a full scan. It is the measured anti-pattern: lookup cost grows
// linearly with the number of occupied cells.
type linearIndex struct {
	shape
	ids []uint64
}

func newLinearIndex(s shape) *linearIndex {
	return &linearIndex{shape: s}
}

func (l *linearIndex) Kind() Kind { return KindLinear }

func (l *linearIndex) Len() int { return len(l.ids) }

func (l *linearIndex) Reset() { l.ids = l.ids[:0] }

func (l *linearIndex) Insert(row, col int) error {
	k, err := l.key(KindLinear, "Insert", row, col)
	if err != nil {
		return err
	}
	if !slices.Contains(l.ids, k) {
		l.ids = append(l.ids, k)
	}

	return nil
}

// BulkLoad appends unseen ids in input order; a temporary set keeps the
// batch duplicate-free without a quadratic scan.
func (l *linearIndex) BulkLoad(cs []matrix.Coord) error {
	ks, err := l.keys(KindLinear, cs)
	if err != nil {
		return err
	}
	seen := make(map[uint64]struct{}, len(l.ids)+len(ks))
	for _, k := range l.ids {
		seen[k] = struct{}{}
	}
	for _, k := range ks {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		l.ids = append(l.ids, k)
	}

	return nil
}

func (l *linearIndex) IsEmpty(row, col int) bool {
	if !l.contains(row, col) {
		return true
	}

	return !slices.Contains(l.ids, Linearize(row, col, l.cols))
}
