// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/katalvlaran/sparsebench/occupancy"
)

// SweepParams describes a parameter grid scan.
// For every entry of Dims a square matrix is filled at the given sparsity,
// then each entry of Searches is timed against it.
type SweepParams struct {
	Dims       []int          // square matrix sizes, each >= 1
	Searches   []int          // lookup counts, each >= 0
	Sparsity   float64        // percent of occupied cells, in (0, 100]
	Kind       occupancy.Kind // index answering lookups; KindMatrix times the bare scan
	PayloadLen int            // 0 keeps DefaultPayloadLen
}

// Validate rejects empty grids, bad sizes and sparsity outside (0, 100].
func (p SweepParams) Validate() error {
	if len(p.Dims) == 0 || len(p.Searches) == 0 {
		return fmt.Errorf("SweepParams: empty grid: %w", ErrBadParams)
	}
	for _, d := range p.Dims {
		if d < 1 {
			return fmt.Errorf("SweepParams: dim %d: %w", d, ErrBadParams)
		}
	}
	for _, n := range p.Searches {
		if n < 0 {
			return fmt.Errorf("SweepParams: searches %d: %w", n, ErrBadParams)
		}
	}
	if !(p.Sparsity > 0 && p.Sparsity <= 100) {
		return fmt.Errorf("SweepParams: sparsity %g: %w", p.Sparsity, ErrBadParams)
	}
	if p.PayloadLen < 0 {
		return fmt.Errorf("SweepParams: payload length %d: %w", p.PayloadLen, ErrBadParams)
	}

	return nil
}

// ValueCount returns how many triplets fill a dim×dim matrix at sparsity percent.
func ValueCount(dim int, sparsity float64) int {
	return int(float64(dim) * float64(dim) * sparsity / 100)
}

// Sweep fills one grid per dimension and times every search count against
// it, writing one row per combination to sink. The first failure stops the
// sweep; rows already written stay in sink.
func (h *Harness) Sweep(p SweepParams, sink *SweepWriter) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := occupancy.ParseKind(p.Kind.String()); err != nil {
		return fmt.Errorf("Sweep: %w", err)
	}
	payloadLen := p.PayloadLen
	if payloadLen == 0 {
		payloadLen = DefaultPayloadLen
	}

	log := h.log.WithKind(p.Kind.String())
	for i, dim := range p.Dims {
		values := ValueCount(dim, p.Sparsity)
		ts, err := builder.RandomTriplets(values, dim, dim,
			builder.WithRand(h.rng), builder.WithPayloadLen(payloadLen))
		if err != nil {
			return fmt.Errorf("Sweep: dim %d: %w", dim, err)
		}
		g, err := occupancy.NewGrid[builder.Payload](dim, dim, p.Kind,
			matrix.WithReserve[builder.Payload](len(ts)),
			matrix.WithMerge(builder.MergePayload))
		if err != nil {
			return fmt.Errorf("Sweep: dim %d: %w", dim, err)
		}
		var ferr error
		fill := h.measureTo(log, "fill", values, func() { ferr = g.SetFromTriplets(ts) })
		if ferr != nil {
			return fmt.Errorf("Sweep: fill dim %d: %w", dim, ferr)
		}

		for j, n := range p.Searches {
			qs, err := builder.RandomCoordinates(n, dim, dim, builder.WithRand(h.rng))
			if err != nil {
				return fmt.Errorf("Sweep: dim %d searches %d: %w", dim, n, err)
			}
			s := h.measureLookups(log, g.Kind().String(), g.Index(), qs)
			row := SweepRow{
				SweepIndex:   i,
				MatrixDim:    dim,
				ValueCount:   values,
				FillMillis:   fill.Millis(),
				SearchIndex:  j,
				SearchCount:  n,
				SearchMillis: s.Millis(),
				Matches:      s.Matches,
			}
			if err := sink.WriteRow(row); err != nil {
				return err
			}
			log.LogRow(row)
		}
	}

	return sink.Flush()
}
