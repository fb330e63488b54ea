// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsebench/config"
	"github.com/katalvlaran/sparsebench/harness"
)

// ErrUsage indicates a malformed positional argument.
var ErrUsage = errors.New("sparsebench: invalid argument")

// app carries flag values and the resolved configuration between cobra hooks.
type app struct {
	out, errOut io.Writer

	configPath string
	seed       int64
	index      []string
	logLevel   string
	logJSON    bool

	cfg config.Config
	log *harness.Logger
}

// newRootCmd wires every subcommand; out receives results, errOut logs.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	def := config.Default()

	root := &cobra.Command{
		Use:               "sparsebench",
		Short:             "Benchmark occupancy indices against a sparse matrix column scan",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.resolve,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file (flags override it)")
	pf.Int64Var(&a.seed, "seed", def.Seed, "RNG seed for workload and queries")
	pf.StringSliceVar(&a.index, "index", def.Index, "auxiliary index kinds to compare (hash,tree,sorted,bitmap,linear)")
	pf.StringVar(&a.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", def.LogJSON, "write logs as JSON")

	root.AddCommand(
		a.newRunCmd(),
		a.newSweepCmd(),
		a.newDemoCmd(),
		a.newConfigCmd(),
	)

	return root
}

// resolve layers defaults, the config file and changed flags, then builds the logger.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		a.cfg.Seed = a.seed
	}
	if flags.Changed("index") {
		a.cfg.Index = a.index
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-json") {
		a.cfg.LogJSON = a.logJSON
	}

	lvl, err := a.cfg.SlogLevel()
	if err != nil {
		return err
	}
	if a.cfg.LogJSON {
		a.log = harness.NewJSONLogger(a.errOut, lvl)
	} else {
		a.log = harness.NewTextLogger(a.errOut, lvl)
	}

	return nil
}

// newHarness builds a harness seeded from the resolved configuration.
func (a *app) newHarness() *harness.Harness {
	return harness.New(harness.WithSeed(a.cfg.Seed), harness.WithLogger(a.log))
}

// parseCount reads a non-negative integer argument, optionally as a power of ten.
func parseCount(name, arg string, exp bool) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s %q: want a non-negative integer: %w", name, arg, ErrUsage)
	}
	if !exp {
		return n, nil
	}
	v, err := config.Pow10(n)
	if err != nil {
		return 0, fmt.Errorf("%s exponent %d: %w", name, n, err)
	}

	return v, nil
}

// parsePercent reads a sparsity percentage in (0, 100].
func parsePercent(arg string) (float64, error) {
	p, err := strconv.ParseFloat(arg, 64)
	if err != nil || !(p > 0 && p <= 100) {
		return 0, fmt.Errorf("sparsity %q: want a percentage in (0, 100]: %w", arg, ErrUsage)
	}
	return p, nil
}
