// Package sparsebench measures how fast "is this cell empty?" can be
// answered for a sparse matrix, and what an auxiliary index buys over the
// matrix's own column scan.
//
// What is inside?
//
//	A small, deterministic benchmarking toolkit:
//		• Sparse storage: a generic column-major sparse matrix (CSC)
//		• Occupancy indices: hash, B-tree, sorted slice, roaring bitmap,
//		  and the linear-scan anti-pattern kept for comparison
//		• Workloads: seeded random coordinates and payload triplets
//		• Harness: stopwatch, phase samples, comparison runs and sweeps
//		• Reports: console narrative and semicolon-delimited sweep files
//
// Layout:
//
//	matrix/          - Sparse[T], Coord, Triplet[T], validators
//	occupancy/       - Index interface, index kinds, Grid[T] (matrix + index in sync)
//	builder/         - RandomCoordinates, RandomTriplets, Payload
//	harness/         - Measure, RunLookupTrial, Run, Sweep, reporters, logger
//	config/          - YAML configuration, defaults, power-of-ten sizes
//	cmd/sparsebench/ - the CLI: run, sweep, demo, config
//
// Quick start:
//
//	sparsebench run --exp 3 4 5 --index hash,tree,linear
//	sparsebench sweep 1 --out sweep.csv.zst
//
// A fixed --seed replays the same workload and queries; only durations vary.
package sparsebench
