// SPDX-License-Identifier: MIT

package harness

import (
	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/katalvlaran/sparsebench/occupancy"
)

// RunLookupTrial asks idx about every query and returns how many hit an
// occupied cell. Every competitor gets the same loop, so only the index
// differs between timings.
func RunLookupTrial(idx occupancy.Index, queries []matrix.Coord) int {
	n := 0
	for _, q := range queries {
		if !idx.IsEmpty(q.Row, q.Col) {
			n++
		}
	}

	return n
}

// measureLookups runs one timed lookup trial against idx and reports it to log.
func (h *Harness) measureLookups(log *Logger, phase string, idx occupancy.Index, queries []matrix.Coord) Sample {
	var matches int
	s := h.timePhase(phase, len(queries), func() {
		matches = RunLookupTrial(idx, queries)
	})
	s = s.WithMatches(matches)
	log.LogSample(s)

	return s
}
