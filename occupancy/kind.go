// SPDX-License-Identifier: MIT

package occupancy

import (
	"fmt"
	"strings"
)

// Kind names an Index implementation.
type Kind string

// Registered index kinds.
const (
	KindMatrix Kind = "matrix" // column scan over matrix.Sparse
	KindHash   Kind = "hash"   // map-backed set
	KindTree   Kind = "tree"   // B-tree ordered set
	KindSorted Kind = "sorted" // sorted slice with binary search
	KindBitmap Kind = "bitmap" // roaring bitmap
	KindLinear Kind = "linear" // unsorted slice scan (anti-pattern)
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Kinds returns the production-grade index kinds.
func Kinds() []Kind {
	return []Kind{KindHash, KindTree, KindSorted, KindBitmap}
}

// AllKinds returns every kind in benchmark order: the native matrix scan
// first, the linear anti-pattern last.
func AllKinds() []Kind {
	return []Kind{KindMatrix, KindHash, KindTree, KindSorted, KindBitmap, KindLinear}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// ParseKinds resolves a list of names, rejecting the first unknown one.
func ParseKinds(names []string) ([]Kind, error) {
	out := make([]Kind, 0, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}
