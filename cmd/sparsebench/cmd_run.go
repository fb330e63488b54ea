// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsebench/harness"
)

func (a *app) newRunCmd() *cobra.Command {
	var exp bool
	cmd := &cobra.Command{
		Use:   "run [dim [values [searches]]]",
		Short: "Fill a dim x dim matrix, then time lookups for every index kind",
		Long: `Fill a dim x dim matrix with random values, then time the same lookup
queries against the matrix column scan and each auxiliary index.

With --exp the arguments are powers of ten: "run 3 4 5" is the default
1000 x 1000 matrix, 10000 values and 100000 searches.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"dim", "values", "searches"}
			targets := []*int{&a.cfg.Run.Dim, &a.cfg.Run.Values, &a.cfg.Run.Searches}
			for i, arg := range args {
				n, err := parseCount(names[i], arg, exp)
				if err != nil {
					return err
				}
				*targets[i] = n
			}
			p, err := a.cfg.RunParams()
			if err != nil {
				return err
			}

			cr := harness.NewConsoleReporter(a.out, version)
			if err := cr.Banner(); err != nil {
				return err
			}
			rep, err := a.newHarness().Run(p)
			if err != nil {
				return err
			}
			return cr.Report(rep)
		},
	}
	cmd.Flags().BoolVar(&exp, "exp", false, "read arguments as powers of ten")

	return cmd
}
