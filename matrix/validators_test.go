// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateShape covers positive, zero and negative dimensions.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"1x1", 1, 1, nil},
		{"3x7", 3, 7, nil},
		{"zero rows", 0, 4, matrix.ErrBadShape},
		{"zero cols", 4, 0, matrix.ErrBadShape},
		{"negative", -1, -1, matrix.ErrBadShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateShape(tc.rows, tc.cols)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateIndex checks both edges of the half-open row and column ranges.
func TestValidateIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		row, col int
		wantErr  error
	}{
		{"first cell", 0, 0, nil},
		{"last cell", 9, 4, nil},
		{"row == rows", 10, 0, matrix.ErrOutOfRange},
		{"col == cols", 0, 5, matrix.ErrOutOfRange},
		{"negative row", -1, 0, matrix.ErrOutOfRange},
		{"negative col", 0, -1, matrix.ErrOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateIndex(10, 5, tc.row, tc.col)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateTriplets reports the first triplet outside the grid.
func TestValidateTriplets(t *testing.T) {
	t.Parallel()

	ok := []matrix.Triplet[int]{{Row: 0, Col: 0, Value: 1}, {Row: 2, Col: 2, Value: 2}}
	require.NoError(t, matrix.ValidateTriplets(3, 3, ok))
	require.NoError(t, matrix.ValidateTriplets[int](3, 3, nil))

	bad := append(ok, matrix.Triplet[int]{Row: 3, Col: 0, Value: 3})
	err := matrix.ValidateTriplets(3, 3, bad)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "ValidateTriplets[2]")
}
