// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsebench/config"
	"github.com/katalvlaran/sparsebench/harness"
)

// stdoutPath makes the sweep write its rows to standard output.
const stdoutPath = "-"

func (a *app) newSweepCmd() *cobra.Command {
	var (
		out                  string
		kind                 string
		minDim, maxDim       int
		minSearch, maxSearch int
	)
	def := config.Default().Sweep
	cmd := &cobra.Command{
		Use:   "sweep [sparsity%]",
		Short: "Time fill and lookups over a grid of matrix sizes and search counts",
		Long: `Fill square matrices of size 10^min-dim-exp .. 10^max-dim-exp at the given
sparsity percentage and time 10^min-search-exp .. 10^max-search-exp lookups
against each. One semicolon-delimited row is written per combination.
An --out path ending in .zst is zstd-compressed; "-" writes to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &a.cfg.Sweep
			if len(args) == 1 {
				p, err := parsePercent(args[0])
				if err != nil {
					return err
				}
				s.Sparsity = p
			}
			flags := cmd.Flags()
			if flags.Changed("out") {
				s.Out = out
			}
			if flags.Changed("kind") {
				s.Index = kind
			}
			if flags.Changed("min-dim-exp") {
				s.MinDimExp = minDim
			}
			if flags.Changed("max-dim-exp") {
				s.MaxDimExp = maxDim
			}
			if flags.Changed("min-search-exp") {
				s.MinSearchExp = minSearch
			}
			if flags.Changed("max-search-exp") {
				s.MaxSearchExp = maxSearch
			}
			p, err := a.cfg.SweepParams()
			if err != nil {
				return err
			}

			// open the sink before measuring anything
			var sink *harness.SweepWriter
			if s.Out == stdoutPath {
				sink = harness.NewSweepWriter(a.out)
			} else {
				if sink, err = harness.CreateSweepFile(s.Out); err != nil {
					return err
				}
			}
			if err := a.sweep(p, sink); err != nil {
				_ = sink.Close()
				return err
			}
			if err := sink.Close(); err != nil {
				return err
			}
			if s.Out != stdoutPath {
				_, err = fmt.Fprintf(a.out, "sparsebench %s\n- sweep: %d rows written to %s\n", version, sink.Rows(), s.Out)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&out, "out", def.Out, `output file ("-" for stdout, .zst for zstd)`)
	f.StringVar(&kind, "kind", def.Index, "index kind answering lookups (matrix for the bare scan)")
	f.IntVar(&minDim, "min-dim-exp", def.MinDimExp, "smallest matrix size exponent")
	f.IntVar(&maxDim, "max-dim-exp", def.MaxDimExp, "largest matrix size exponent")
	f.IntVar(&minSearch, "min-search-exp", def.MinSearchExp, "smallest search count exponent")
	f.IntVar(&maxSearch, "max-search-exp", def.MaxSearchExp, "largest search count exponent")

	return cmd
}

// sweep writes the header block and runs the grid scan into sink.
func (a *app) sweep(p harness.SweepParams, sink *harness.SweepWriter) error {
	s := a.cfg.Sweep
	header := []string{
		"sparsebench " + version + " sweep",
		fmt.Sprintf("sparsity=%g%%", p.Sparsity),
		"index=" + p.Kind.String(),
		fmt.Sprintf("seed=%d", a.cfg.Seed),
		fmt.Sprintf("dims=10^%d..10^%d", s.MinDimExp, s.MaxDimExp),
		fmt.Sprintf("searches=10^%d..10^%d", s.MinSearchExp, s.MaxSearchExp),
	}
	if err := sink.WriteHeader(header...); err != nil {
		return err
	}
	if err := sink.WriteColumns(); err != nil {
		return err
	}
	a.log.Info("sweep started", "out", s.Out, "columns", strings.Join(harness.SweepColumns, harness.SweepDelimiter))

	return a.newHarness().Sweep(p, sink)
}
