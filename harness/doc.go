// Package harness times occupancy lookups against the sparse matrix's own
// column scan and reports the results.
//
// A run is one straight-line pass with no retries:
//
//  1. create the triplet workload (builder.RandomTriplets);
//  2. fill a fresh occupancy.Grid per competitor, the bare matrix first;
//  3. draw one shared query set and count occupied hits per competitor.
//
// Every phase is measured with a Stopwatch that resets its reference point
// after each lap, so consecutive samples cover disjoint intervals. Competitors
// that disagree on the hit count abort the run with ErrMismatch.
//
// Sweep repeats fill and lookup over a grid of matrix sizes and search counts
// and streams one semicolon-delimited row per combination into a SweepWriter.
//
// Runs are single-threaded and deterministic for a fixed seed; only the
// measured durations vary between runs.
package harness
