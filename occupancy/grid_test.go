// SPDX-License-Identifier: MIT

package occupancy_test

import (
	"testing"

	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/katalvlaran/sparsebench/occupancy"
	"github.com/stretchr/testify/require"
)

func TestGrid_InsertKeepsIndexInSync(t *testing.T) {
	t.Parallel()

	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			g, err := occupancy.NewGrid[string](10, 10, kind)
			require.NoError(t, err)
			require.Equal(t, kind, g.Kind())

			require.NoError(t, g.Insert(2, 3, "a"))
			require.NoError(t, g.Insert(2, 3, "b")) // replaces
			require.False(t, g.IsEmpty(2, 3))
			require.True(t, g.IsEmpty(3, 2))
			require.Equal(t, 1, g.Len())
			require.Equal(t, 1, g.Index().Len())

			v, ok, err := g.At(2, 3)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "b", v)
		})
	}
}

func TestGrid_RejectedWriteTouchesNothing(t *testing.T) {
	t.Parallel()

	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			g, err := occupancy.NewGrid[int](5, 5, kind)
			require.NoError(t, err)
			require.NoError(t, g.Insert(1, 1, 7))

			require.ErrorIs(t, g.Insert(5, 0, 1), matrix.ErrOutOfRange)
			err = g.SetFromTriplets([]matrix.Triplet[int]{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 9, Value: 2}})
			require.ErrorIs(t, err, matrix.ErrOutOfRange)

			require.Equal(t, 1, g.Len())
			require.Equal(t, 1, g.Index().Len())
			require.False(t, g.IsEmpty(1, 1))
			require.True(t, g.IsEmpty(0, 0))
		})
	}
}

func TestGrid_SetFromTripletsReplacesContent(t *testing.T) {
	t.Parallel()

	for _, kind := range occupancy.AllKinds() {
		kind := kind
		t.Run(kind.String(), func(t *testing.T) {
			g, err := occupancy.NewGrid[int](100, 100, kind)
			require.NoError(t, err)
			require.NoError(t, g.Insert(50, 50, 1))

			ts := []matrix.Triplet[int]{
				{Row: 3, Col: 4, Value: 1},
				{Row: 10, Col: 10, Value: 2},
				{Row: 99, Col: 99, Value: 3},
				{Row: 3, Col: 4, Value: 4}, // duplicate keeps the first value
			}
			require.NoError(t, g.SetFromTriplets(ts))

			require.True(t, g.IsEmpty(50, 50))
			require.False(t, g.IsEmpty(3, 4))
			require.False(t, g.IsEmpty(99, 99))
			require.Equal(t, 3, g.Len())
			require.Equal(t, 3, g.Index().Len())

			v, _, err := g.At(3, 4)
			require.NoError(t, err)
			require.Equal(t, 1, v)
		})
	}
}

func TestGrid_MatrixKindSharesStorage(t *testing.T) {
	t.Parallel()

	g, err := occupancy.NewGrid[int](4, 4, occupancy.KindMatrix)
	require.NoError(t, err)
	require.NoError(t, g.Matrix().Insert(1, 2, 3))

	// no auxiliary index: a write straight to the matrix is visible
	require.False(t, g.IsEmpty(1, 2))
	require.Equal(t, 1, g.Index().Len())
}

func TestGrid_Errors(t *testing.T) {
	t.Parallel()

	_, err := occupancy.NewGrid[int](0, 4, occupancy.KindHash)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = occupancy.NewGrid[int](4, 4, occupancy.Kind("bogus"))
	require.ErrorIs(t, err, occupancy.ErrUnknownKind)
}

func TestAdaptMatrix_InsertKeepsValues(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse[int](3, 3)
	require.NoError(t, err)
	require.NoError(t, m.Insert(0, 0, 42))

	idx := occupancy.AdaptMatrix(m)
	require.NoError(t, idx.Insert(0, 0))
	require.NoError(t, idx.BulkLoad([]matrix.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 1}}))

	v, ok, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Equal(t, 2, idx.Len())
	require.False(t, idx.IsEmpty(2, 1))
}
