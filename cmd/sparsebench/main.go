// SPDX-License-Identifier: MIT

// Command sparsebench compares occupancy lookups on a sparse matrix: the
// matrix's own column scan against auxiliary coordinate indices.
//
// Usage:
//
//	sparsebench run [dim [values [searches]]] [--exp] [--index hash,tree,...]
//	sparsebench sweep [sparsity%] [--out sweep.csv.zst] [--kind hash]
//	sparsebench demo [dim]
//	sparsebench config
package main

import (
	"fmt"
	"os"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sparsebench:", err)
		os.Exit(1)
	}
}
