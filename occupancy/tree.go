// SPDX-License-Identifier: MIT

package occupancy

import (
	"github.com/google/btree"

	"github.com/katalvlaran/sparsebench/matrix"
)

// treeDegree is the B-tree branching factor; 32 keeps nodes near a few cache lines.
const treeDegree = 32

func lessID(a, b uint64) bool { return a < b }

// treeIndex keeps occupied ids in an ordered B-tree set.
type treeIndex struct {
	shape
	tree *btree.BTreeG[uint64]
}

func newTreeIndex(s shape) *treeIndex {
	return &treeIndex{shape: s, tree: btree.NewG[uint64](treeDegree, lessID)}
}

func (t *treeIndex) Kind() Kind { return KindTree }

func (t *treeIndex) Len() int { return t.tree.Len() }

func (t *treeIndex) Reset() { t.tree.Clear(false) }

func (t *treeIndex) Insert(row, col int) error {
	k, err := t.key(KindTree, "Insert", row, col)
	if err != nil {
		return err
	}
	t.tree.ReplaceOrInsert(k)

	return nil
}

func (t *treeIndex) BulkLoad(cs []matrix.Coord) error {
	ks, err := t.keys(KindTree, cs)
	if err != nil {
		return err
	}
	for _, k := range ks {
		t.tree.ReplaceOrInsert(k)
	}

	return nil
}

func (t *treeIndex) IsEmpty(row, col int) bool {
	if !t.contains(row, col) {
		return true
	}

	return !t.tree.Has(Linearize(row, col, t.cols))
}
