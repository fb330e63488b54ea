// Package builder provides validation helpers to enforce
// parameter contracts in the generators.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

// validateCount ensures that the number of items to generate is ≥ MinCount.
// Complexity: O(1) time and space.
func validateCount(method string, count int) error {
	if count < MinCount {
		return builderErrorf(method, ErrBadSize, "count must be ≥ %d, got %d", MinCount, count)
	}

	return nil
}

// validateBounds ensures that both the row and the column bound are ≥ MinBound.
// Complexity: O(1) time and space.
func validateBounds(method string, rowBound, colBound int) error {
	if rowBound < MinBound || colBound < MinBound {
		return builderErrorf(method, ErrBadBound, "bounds must be ≥ %d, got %d×%d", MinBound, rowBound, colBound)
	}

	return nil
}
