// SPDX-License-Identifier: MIT

package occupancy

import "github.com/katalvlaran/sparsebench/matrix"

// Test-only accessors for unexported index state.

// order returns the occupied coordinates in first-insertion order.
func (l *linearIndex) order() []matrix.Coord {
	out := make([]matrix.Coord, len(l.ids))
	for i, id := range l.ids {
		out[i].Row, out[i].Col = Delinearize(id, l.cols)
	}

	return out
}
