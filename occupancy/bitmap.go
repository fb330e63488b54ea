// SPDX-License-Identifier: MIT

package occupancy

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/sparsebench/matrix"
)

// bitmapIndex keeps occupied ids in a 64-bit roaring bitmap, so grids up to
// the full uint64 id space fit without a separate 32-bit path.
type bitmapIndex struct {
	shape
	rb *roaring64.Bitmap
}

func newBitmapIndex(s shape) *bitmapIndex {
	return &bitmapIndex{shape: s, rb: roaring64.New()}
}

func (b *bitmapIndex) Kind() Kind { return KindBitmap }

func (b *bitmapIndex) Len() int { return int(b.rb.GetCardinality()) }

func (b *bitmapIndex) Reset() { b.rb = roaring64.New() }

func (b *bitmapIndex) Insert(row, col int) error {
	k, err := b.key(KindBitmap, "Insert", row, col)
	if err != nil {
		return err
	}
	b.rb.Add(k)

	return nil
}

func (b *bitmapIndex) BulkLoad(cs []matrix.Coord) error {
	ks, err := b.keys(KindBitmap, cs)
	if err != nil {
		return err
	}
	b.rb.AddMany(ks)
	b.rb.RunOptimize()

	return nil
}

func (b *bitmapIndex) IsEmpty(row, col int) bool {
	if !b.contains(row, col) {
		return true
	}

	return !b.rb.Contains(Linearize(row, col, b.cols))
}
