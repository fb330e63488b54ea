// Package occupancy answers "is cell (row, col) of a sparse grid empty?"
// with auxiliary indices kept beside the sparse storage.
//
// An Index records which linearized coordinates (row*cols + col) are
// occupied, independent of the values stored there. Variants:
//
//	hash    Go map set                     O(1) expected lookup
//	tree    B-tree ordered set             O(log n) lookup
//	sorted  sorted slice + binary search   O(log n) lookup, O(n) single insert
//	bitmap  roaring bitmap                 compressed, O(log n) container search
//	linear  insertion-ordered slice scan   O(n) lookup; benchmarking only
//	matrix  column scan of matrix.Sparse   O(column population) lookup
//
// The linear variant exists to reproduce the measurement that an unsorted
// vector does not scale; never use it as a production index.
//
// Grid[T] pairs a matrix.Sparse[T] with one Index and keeps both in sync,
// the caller inserting through the Grid only.
//
// Concurrency: a fully built Index is safe for any number of concurrent
// IsEmpty readers. Writers (Insert, BulkLoad, Reset) need exclusive access.
package occupancy
