// SPDX-License-Identifier: MIT
// Package: sparsebench/harness
//
// errors.go - sentinel errors for runs, sweeps and report output.
//
// Callers branch with errors.Is; context is attached with %w.

package harness

import "errors"

// ErrBadParams indicates run or sweep parameters that cannot describe a workload.
var ErrBadParams = errors.New("harness: invalid parameters")

// ErrMismatch indicates two competitors reported different hit counts for
// the same query set. It always means a broken index, never noise.
var ErrMismatch = errors.New("harness: competitors disagree")

// ErrOutput indicates the sweep output could not be created or written.
var ErrOutput = errors.New("harness: output failure")
