// SPDX-License-Identifier: MIT
// Package: sparsebench/harness
//
// report_sweep.go - the semicolon-delimited sweep file.
//
// Format:
//   - zero or more header lines, each starting with "#";
//   - one row per (matrix size, search count) combination:
//     sweepIndex;matrixDim;valueCount;fillDurationMs;searchSweepIndex;searchCount;searchDurationMs;matchCount
//
// A path ending in ".zst" is written through a zstd encoder.

package harness

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// SweepColumns names the row fields in file order.
var SweepColumns = []string{
	"sweepIndex", "matrixDim", "valueCount", "fillDurationMs",
	"searchSweepIndex", "searchCount", "searchDurationMs", "matchCount",
}

// SweepDelimiter separates row fields.
const SweepDelimiter = ";"

// ZstdSuffix selects compressed output in CreateSweepFile.
const ZstdSuffix = ".zst"

// SweepRow is one (matrix size, search count) measurement.
type SweepRow struct {
	SweepIndex   int
	MatrixDim    int
	ValueCount   int
	FillMillis   int64
	SearchIndex  int
	SearchCount  int
	SearchMillis int64
	Matches      int
}

// String renders the row without a trailing newline.
func (r SweepRow) String() string {
	return strings.Join([]string{
		strconv.Itoa(r.SweepIndex),
		strconv.Itoa(r.MatrixDim),
		strconv.Itoa(r.ValueCount),
		strconv.FormatInt(r.FillMillis, 10),
		strconv.Itoa(r.SearchIndex),
		strconv.Itoa(r.SearchCount),
		strconv.FormatInt(r.SearchMillis, 10),
		strconv.Itoa(r.Matches),
	}, SweepDelimiter)
}

// SweepWriter streams header lines and rows to an underlying writer.
type SweepWriter struct {
	bw      *bufio.Writer
	closers []io.Closer // innermost first
	rows    int
}

// NewSweepWriter writes rows to w; Close does not close w.
func NewSweepWriter(w io.Writer) *SweepWriter {
	return &SweepWriter{bw: bufio.NewWriter(w)}
}

// CreateSweepFile creates (or truncates) path. The run must not start when
// this fails, so callers open the sink before any measurement.
// Errors: ErrOutput.
func CreateSweepFile(path string) (*SweepWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("CreateSweepFile(%q): %v: %w", path, err, ErrOutput)
	}
	if !strings.HasSuffix(path, ZstdSuffix) {
		return &SweepWriter{bw: bufio.NewWriter(f), closers: []io.Closer{f}}, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("CreateSweepFile(%q): %v: %w", path, err, ErrOutput)
	}

	return &SweepWriter{bw: bufio.NewWriter(enc), closers: []io.Closer{enc, f}}, nil
}

// WriteHeader writes each line prefixed with "# ".
func (s *SweepWriter) WriteHeader(lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintf(s.bw, "# %s\n", l); err != nil {
			return fmt.Errorf("SweepWriter.WriteHeader: %v: %w", err, ErrOutput)
		}
	}
	return nil
}

// WriteColumns writes the column-name header line.
func (s *SweepWriter) WriteColumns() error {
	return s.WriteHeader(strings.Join(SweepColumns, SweepDelimiter))
}

// WriteRow appends one row.
func (s *SweepWriter) WriteRow(r SweepRow) error {
	if _, err := fmt.Fprintln(s.bw, r.String()); err != nil {
		return fmt.Errorf("SweepWriter.WriteRow(%d,%d): %v: %w", r.SweepIndex, r.SearchIndex, err, ErrOutput)
	}
	s.rows++
	return nil
}

// Rows returns how many rows were written.
func (s *SweepWriter) Rows() int { return s.rows }

// Flush pushes buffered bytes to the underlying writer.
func (s *SweepWriter) Flush() error {
	if err := s.bw.Flush(); err != nil {
		return fmt.Errorf("SweepWriter.Flush: %v: %w", err, ErrOutput)
	}
	return nil
}

// Close flushes and closes the encoder and file opened by CreateSweepFile.
func (s *SweepWriter) Close() error {
	err := s.Flush()
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SweepWriter.Close: %v: %w", cerr, ErrOutput)
		}
	}
	s.closers = nil
	return err
}
