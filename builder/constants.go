// Package builder defines shared constants used by workload generators,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomCoordinates is the canonical name for the RandomCoordinates generator.
	MethodRandomCoordinates = "RandomCoordinates"
	// MethodRandomTriplets is the canonical name for the RandomTriplets generator.
	MethodRandomTriplets = "RandomTriplets"
)

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// MinBound is the smallest admissible row or column bound.
// A bound of 1 yields a single possible index (0).
const MinBound = 1

// MinCount is the smallest admissible number of generated items.
// Zero is valid and produces an empty, non-nil slice.
const MinCount = 0

//-----------------------------------------------------------------------------
// Default Payload
//-----------------------------------------------------------------------------

// DefaultPayloadA is the integer field of every generated payload.
const DefaultPayloadA = 5

// DefaultPayloadB is the float field of every generated payload.
const DefaultPayloadB float32 = 1.2

// DefaultPayloadLen is the length of the list carried by every generated payload.
const DefaultPayloadLen = 10
