// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/sparsebench/occupancy"
)

// ConsoleReporter renders a Report as the human-readable phase narrative:
// workload summary, then creation, fill and lookup timings.
type ConsoleReporter struct {
	w       io.Writer
	version string
}

// NewConsoleReporter writes to w; version is printed in the banner.
func NewConsoleReporter(w io.Writer, version string) *ConsoleReporter {
	return &ConsoleReporter{w: w, version: version}
}

// errWriter remembers the first write error so rendering reads straight.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Banner prints the version line.
func (c *ConsoleReporter) Banner() error {
	_, err := fmt.Fprintf(c.w, "sparsebench %s\n", c.version)
	return err
}

// Report prints the whole run.
func (c *ConsoleReporter) Report(r *Report) error {
	ew := &errWriter{w: c.w}
	ew.printf("- reserve space for a sparse matrix %s x %s\n", comma(r.Rows), comma(r.Cols))
	ew.printf("- Nb values stored in matrix = %s\n", comma(r.Values))
	ew.printf("   (sparsity ratio=%s%%)\n", strconv.FormatFloat(r.SparsityPercent(), 'g', 6, 64))
	ew.printf("- Nb searches in matrix = %s\n", comma(r.Searches))

	ew.printf("\n1 - create Triplets\n")
	ew.printf("Duration = %d ms\n", r.Create.Millis())

	ew.printf("\n2 - fill sparse matrix:\n")
	for _, s := range r.Fill {
		ew.printf(" - %s\n", fillLabel(s.Phase))
		ew.printf("Duration = %d ms\n", s.Millis())
	}
	ew.printf("   (%s distinct cells stored)\n", comma(r.Stored))

	ew.printf("\n3 - searching for %s values in matrix...\n", comma(r.Searches))
	ew.printf("  Results:\n")
	for _, s := range r.Lookup {
		ew.printf(" - %s: nbvalues=%s\n", lookupLabel(s.Phase), comma(s.Matches))
		ew.printf("Duration = %d ms\n", s.Millis())
	}

	return ew.err
}

func fillLabel(phase string) string {
	if phase == occupancy.KindMatrix.String() {
		return "direct"
	}
	return "using " + phase + " index"
}

func lookupLabel(phase string) string {
	if phase == occupancy.KindMatrix.String() {
		return "direct matrix scan"
	}
	return phase + " index"
}

func comma(n int) string { return humanize.Comma(int64(n)) }
