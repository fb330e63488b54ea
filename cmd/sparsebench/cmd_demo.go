// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/matrix"
	"github.com/katalvlaran/sparsebench/occupancy"
)

// demoCells is how many diagonal-ish triplets (i, 10i) the demo bulk-loads.
const demoCells = 10

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [dim]",
		Short: "Walk through insert, update, bulk load and lookup on a small grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim := a.cfg.Run.Dim
			if len(args) == 1 {
				n, err := parseCount("dim", args[0], false)
				if err != nil {
					return err
				}
				dim = n
			}
			return runDemo(a.out, dim)
		},
	}
}

// runDemo stores payloads through a hash-indexed grid and prints the
// matrix after every step.
func runDemo(w io.Writer, dim int) error {
	g, err := occupancy.NewGrid[builder.Payload](dim, dim, occupancy.KindHash)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sparsebench %s\n", version)
	fmt.Fprintf(w, "- reserve space for a sparse matrix %d x %d\n", dim, dim)

	if err := g.Insert(3, 4, builder.NewPayload(5, 1.2, 5)); err != nil {
		return err
	}
	printGrid(w, g.Matrix())

	if err := g.Insert(3, 4, builder.NewPayload(6, 2.3, 9)); err != nil {
		return err
	}
	printGrid(w, g.Matrix())

	ts := make([]matrix.Triplet[builder.Payload], demoCells)
	for i := range ts {
		ts[i] = matrix.Triplet[builder.Payload]{Row: i, Col: 10 * i, Value: builder.Payload{A: 2 * i, B: 3 * float32(i)}}
	}
	if err := g.SetFromTriplets(ts); err != nil {
		return err
	}
	printGrid(w, g.Matrix())

	const row, col = 3, 2
	v, _, err := g.At(row, col)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Get elem at (%d,%d): empty=%t\n", row, col, g.IsEmpty(row, col))
	fmt.Fprintf(w, "value = %d (zero=%t)\n", v.A, v.IsZero())

	// a copy owns its storage; reading it does not touch the grid
	cp := g.Matrix().Clone()
	v, _, err = cp.At(row, 10*row)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "copy: value at (%d,%d) = %d\n", row, 10*row, v.A)

	return nil
}

func printGrid(w io.Writer, m *matrix.Sparse[builder.Payload]) {
	fmt.Fprintln(w, "Matrix content:")
	m.ForEach(func(row, col int, p builder.Payload) bool {
		fmt.Fprintf(w, "row=%d col=%d: a=%d b=%g vect size=%d\n", row, col, p.A, p.B, len(p.V))
		return true
	})
}
