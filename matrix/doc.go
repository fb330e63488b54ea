// Package matrix provides generic sparse storage for occupancy benchmarks.
//
// The matrix package provides:
//
//   - Sparse[T], a column-major compressed sparse matrix (CSC) holding an
//     arbitrary value type, bulk-built from triplets or filled cell by cell.
//   - Coord and Triplet[T], the coordinate and (row, col, value) tuples shared
//     with the occupancy indices and the workload builder.
//   - Validators (ValidateShape, ValidateIndex, ValidateTriplets) and the
//     sentinel errors every public method returns.
//
// Sparse.IsEmpty deliberately scans the inner entries of a column, the way a
// caller of a column-major library without an emptiness query has to. The
// occupancy package measures its auxiliary indices against that scan.
//
// See the examples in this package for usage patterns.
package matrix
