// SPDX-License-Identifier: MIT
// Package: sparsebench/harness
//
// run.go - one comparison run: create, fill, look up.
//
// Contract:
//   - The bare matrix (occupancy.KindMatrix) always competes and always first.
//   - Every competitor fills its own Grid from the same triplets and answers
//     the same queries.
//   - Any error aborts the run; there are no retries or partial reports.
//
// Complexity: fill O(V log V) per competitor; lookups depend on the index
// (O(1) hash, O(log V) tree/sorted, O(V) linear, O(column nnz) matrix).

package harness

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/katalvlaran/sparsebench/occupancy"
)

// Phase labels used in samples and console output.
const (
	PhaseCreateTriplets = "create triplets"
	PhaseCreateQueries  = "create queries"
)

// RunParams describes one comparison run.
type RunParams struct {
	Rows, Cols int              // grid shape, both >= 1
	Values     int              // triplets drawn (duplicates collapse)
	Searches   int              // lookup queries per competitor
	Kinds      []occupancy.Kind // auxiliary indices; KindMatrix is implied
	PayloadLen int              // list length of each payload; 0 keeps DefaultPayloadLen
}

// Validate rejects shapes and counts that cannot describe a workload.
func (p RunParams) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("RunParams: shape %dx%d: %w", p.Rows, p.Cols, ErrBadParams)
	}
	if p.Values < 0 || p.Searches < 0 {
		return fmt.Errorf("RunParams: values=%d searches=%d: %w", p.Values, p.Searches, ErrBadParams)
	}
	if p.PayloadLen < 0 {
		return fmt.Errorf("RunParams: payload length %d: %w", p.PayloadLen, ErrBadParams)
	}

	return nil
}

// competitors returns KindMatrix followed by the requested kinds, deduplicated.
func (p RunParams) competitors() []occupancy.Kind {
	out := []occupancy.Kind{occupancy.KindMatrix}
	seen := map[occupancy.Kind]bool{occupancy.KindMatrix: true}
	for _, k := range p.Kinds {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	return out
}

func (p RunParams) payloadLen() int {
	if p.PayloadLen == 0 {
		return DefaultPayloadLen
	}
	return p.PayloadLen
}

// Report is the outcome of a run.
type Report struct {
	Rows, Cols int
	Values     int
	Searches   int
	Stored     int      // distinct occupied cells after duplicate collapse
	Create     Sample   // triplet generation
	Queries    Sample   // query generation
	Fill       []Sample // one per competitor, Phase = kind
	Lookup     []Sample // one per competitor, Phase = kind, with matches
}

// SparsityPercent is 100 * values / (rows * cols).
func (r *Report) SparsityPercent() float64 {
	return 100 * float64(r.Values) / float64(r.Rows) / float64(r.Cols)
}

// Matches returns the agreed hit count (0 with no lookups).
func (r *Report) Matches() int {
	if len(r.Lookup) == 0 {
		return 0
	}
	return r.Lookup[0].Matches
}

// Run executes create, fill and lookup phases for every competitor.
// Errors: ErrBadParams, occupancy.ErrUnknownKind, builder and matrix errors,
// ErrMismatch when two competitors disagree.
func (h *Harness) Run(p RunParams) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	kinds := p.competitors()
	rep := &Report{Rows: p.Rows, Cols: p.Cols, Values: p.Values, Searches: p.Searches}
	h.log.Info("run started", "rows", p.Rows, "cols", p.Cols, "values", p.Values, "searches", p.Searches)

	// 1 - workload
	var (
		ts  []matrix.Triplet[builder.Payload]
		err error
	)
	rep.Create = h.Measure(PhaseCreateTriplets, p.Values, func() {
		ts, err = builder.RandomTriplets(p.Values, p.Rows, p.Cols,
			builder.WithRand(h.rng), builder.WithPayloadLen(p.payloadLen()))
	})
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// 2 - fill
	grids := make([]*occupancy.Grid[builder.Payload], 0, len(kinds))
	for _, kind := range kinds {
		g, err := occupancy.NewGrid[builder.Payload](p.Rows, p.Cols, kind,
			matrix.WithReserve[builder.Payload](len(ts)),
			matrix.WithMerge(builder.MergePayload))
		if err != nil {
			return nil, fmt.Errorf("Run: %s: %w", kind, err)
		}
		var ferr error
		rep.Fill = append(rep.Fill, h.measureTo(h.log.WithKind(kind.String()), kind.String(), len(ts), func() {
			ferr = g.SetFromTriplets(ts)
		}))
		if ferr != nil {
			return nil, fmt.Errorf("Run: fill %s: %w", kind, ferr)
		}
		grids = append(grids, g)
	}
	rep.Stored = grids[0].Len()

	// 3 - lookups on one shared query set
	var qs []matrix.Coord
	rep.Queries = h.Measure(PhaseCreateQueries, p.Searches, func() {
		qs, err = builder.RandomCoordinates(p.Searches, p.Rows, p.Cols, builder.WithRand(h.rng))
	})
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	for _, g := range grids {
		s := h.measureLookups(h.log.WithKind(g.Kind().String()), g.Kind().String(), g.Index(), qs)
		rep.Lookup = append(rep.Lookup, s)
		if first := rep.Lookup[0]; s.Matches != first.Matches {
			return rep, fmt.Errorf("Run: %s found %d, %s found %d: %w",
				s.Phase, s.Matches, first.Phase, first.Matches, ErrMismatch)
		}
	}
	h.log.Info("run finished", "stored", rep.Stored, "matches", rep.Matches())

	return rep, nil
}
