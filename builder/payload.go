// Package builder: Payload, the value stored at every occupied cell.
package builder

import (
	"math/rand"
	"slices"
)

// Payload is the opaque value a benchmark stores in the sparse matrix.
// Its shape only matters for memory traffic; occupancy indices never look at it.
// The zero value is the "empty" payload reported for unoccupied cells.
type Payload struct {
	A int     // small integer field
	B float32 // float field
	V []int   // variable-length list
}

// NewPayload returns a payload whose list has n zeroed elements.
func NewPayload(a int, b float32, n int) Payload {
	return Payload{A: a, B: b, V: make([]int, n)}
}

// Clone returns a deep copy; the list is never shared with the receiver.
func (p Payload) Clone() Payload {
	return Payload{A: p.A, B: p.B, V: slices.Clone(p.V)}
}

// IsZero reports whether p is the empty payload.
func (p Payload) IsZero() bool {
	return p.A == 0 && p.B == 0 && len(p.V) == 0
}

// MergePayload keeps the existing payload when two triplets hit the same cell.
// Suitable for matrix.WithMerge.
func MergePayload(existing, _ Payload) Payload {
	return existing
}

// PayloadFn produces the payload of one generated triplet.
// It must be deterministic for a given RNG state.
type PayloadFn func(rng *rand.Rand) Payload

// ConstantPayloadFn returns a PayloadFn yielding the default fields with a
// fresh list of n elements on every call. Panics if n < 0.
// Complexity: O(n) per call.
func ConstantPayloadFn(n int) PayloadFn {
	if n < 0 {
		panic("builder: ConstantPayloadFn(n<0)")
	}
	return func(_ *rand.Rand) Payload {
		return NewPayload(DefaultPayloadA, DefaultPayloadB, n)
	}
}
