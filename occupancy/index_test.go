// SPDX-License-Identifier: MIT

package occupancy_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/katalvlaran/sparsebench/occupancy"
	"github.com/stretchr/testify/require"
)

// mustIndex allocates an empty index or fails the test.
func mustIndex(t testing.TB, kind occupancy.Kind, rows, cols int) occupancy.Index {
	t.Helper()
	idx, err := occupancy.New(kind, rows, cols)
	require.NoError(t, err)
	require.Equal(t, kind, idx.Kind())
	return idx
}

func TestIndex_Scenario100x100(t *testing.T) {
	t.Parallel()

	coords := []matrix.Coord{{Row: 3, Col: 4}, {Row: 10, Col: 10}, {Row: 99, Col: 99}}
	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			idx := mustIndex(t, kind, 100, 100)
			require.NoError(t, idx.BulkLoad(coords))

			require.False(t, idx.IsEmpty(3, 4))
			require.True(t, idx.IsEmpty(0, 0))
			require.False(t, idx.IsEmpty(99, 99))
			require.True(t, idx.IsEmpty(4, 3))
			require.Equal(t, 3, idx.Len())
		})
	}
}

func TestIndex_BoundaryCells(t *testing.T) {
	t.Parallel()

	const rows, cols = 7, 11
	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			idx := mustIndex(t, kind, rows, cols)
			require.True(t, idx.IsEmpty(0, 0))
			require.True(t, idx.IsEmpty(rows-1, cols-1))

			require.NoError(t, idx.Insert(0, 0))
			require.NoError(t, idx.Insert(rows-1, cols-1))
			require.False(t, idx.IsEmpty(0, 0))
			require.False(t, idx.IsEmpty(rows-1, cols-1))

			r, c := idx.Dims()
			require.Equal(t, rows, r)
			require.Equal(t, cols, c)
		})
	}
}

func TestIndex_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			idx := mustIndex(t, kind, 10, 10)
			require.ErrorIs(t, idx.Insert(10, 0), matrix.ErrOutOfRange)
			require.ErrorIs(t, idx.Insert(0, -1), matrix.ErrOutOfRange)

			// a batch with one bad coordinate leaves the index untouched
			err := idx.BulkLoad([]matrix.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 10}})
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.Zero(t, idx.Len())
			require.True(t, idx.IsEmpty(1, 1))

			// queries outside the grid are empty, never a panic
			require.True(t, idx.IsEmpty(-1, 0))
			require.True(t, idx.IsEmpty(0, 10))
			require.True(t, idx.IsEmpty(math.MaxInt32, math.MaxInt32))
		})
	}
}

func TestIndex_InsertIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			idx := mustIndex(t, kind, 20, 20)
			for i := 0; i < 3; i++ {
				require.NoError(t, idx.Insert(5, 6))
			}
			require.NoError(t, idx.BulkLoad([]matrix.Coord{{Row: 5, Col: 6}, {Row: 5, Col: 6}, {Row: 6, Col: 5}}))
			require.Equal(t, 2, idx.Len())
		})
	}
}

func TestIndex_Reset(t *testing.T) {
	t.Parallel()

	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			idx := mustIndex(t, kind, 5, 5)
			require.NoError(t, idx.BulkLoad([]matrix.Coord{{Row: 1, Col: 2}, {Row: 3, Col: 4}}))
			idx.Reset()
			require.Zero(t, idx.Len())
			require.True(t, idx.IsEmpty(1, 2))

			require.NoError(t, idx.Insert(3, 4))
			require.False(t, idx.IsEmpty(3, 4))
			require.Equal(t, 1, idx.Len())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       occupancy.Kind
		rows, cols int
		want       error
	}{
		{"zero rows", occupancy.KindHash, 0, 10, matrix.ErrBadShape},
		{"negative cols", occupancy.KindTree, 10, -1, matrix.ErrBadShape},
		{"matrix zero", occupancy.KindMatrix, 0, 0, matrix.ErrBadShape},
		{"unknown kind", occupancy.Kind("skiplist"), 10, 10, occupancy.ErrUnknownKind},
		{"too large", occupancy.KindBitmap, math.MaxInt, math.MaxInt, occupancy.ErrGridTooLarge},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := occupancy.New(tc.kind, tc.rows, tc.cols)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := occupancy.ParseKind(" Tree ")
	require.NoError(t, err)
	require.Equal(t, occupancy.KindTree, k)

	_, err = occupancy.ParseKind("vector")
	require.ErrorIs(t, err, occupancy.ErrUnknownKind)

	ks, err := occupancy.ParseKinds([]string{"hash", "bitmap", "linear"})
	require.NoError(t, err)
	require.Equal(t, []occupancy.Kind{occupancy.KindHash, occupancy.KindBitmap, occupancy.KindLinear}, ks)

	_, err = occupancy.ParseKinds([]string{"hash", "nope"})
	require.ErrorIs(t, err, occupancy.ErrUnknownKind)

	require.NotContains(t, occupancy.Kinds(), occupancy.KindLinear)
	require.Equal(t, occupancy.KindMatrix, occupancy.AllKinds()[0])
}

func TestLinearize_RoundTrip(t *testing.T) {
	t.Parallel()

	const cols = 1000
	for _, c := range []matrix.Coord{{Row: 0, Col: 0}, {Row: 3, Col: 999}, {Row: 999, Col: 0}, {Row: 999, Col: 999}} {
		id := occupancy.Linearize(c.Row, c.Col, cols)
		r, cc := occupancy.Delinearize(id, cols)
		require.Equal(t, c, matrix.Coord{Row: r, Col: cc})
	}
	require.Equal(t, uint64(3*cols+4), occupancy.Linearize(3, 4, cols))
}
