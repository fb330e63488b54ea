// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse storage.
// This file defines:
//   - Option (functional options over an internal config),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultReserve is the initial non-zero capacity hint (no preallocation).
	DefaultReserve = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicReserveNegative = "matrix: WithReserve: n must be non-negative"
	panicMergeNil        = "matrix: WithMerge: merge function must be non-nil"
)

// Option mutates the internal sparse configuration. Safe to apply repeatedly.
// The type parameter matches the stored value type so that merge policies are
// type-checked at the call site.
type Option[T any] func(*config[T])

// config stores the effective configuration after applying Option setters.
type config[T any] struct {
	reserve int            // capacity hint for stored entries
	merge   func(a, b T) T // duplicate policy for SetFromTriplets
}

// keepFirst is the default duplicate policy: the earliest triplet wins.
func keepFirst[T any](a, _ T) T { return a }

// WithReserve preallocates room for n stored entries.
// Panics if n < 0.
func WithReserve[T any](n int) Option[T] {
	if n < 0 {
		panic(panicReserveNegative)
	}
	return func(c *config[T]) {
		c.reserve = n
	}
}

// WithMerge sets how SetFromTriplets combines two values landing on the same
// cell: merge(existing, incoming) in triplet order. Panics on nil.
func WithMerge[T any](merge func(a, b T) T) Option[T] {
	if merge == nil {
		panic(panicMergeNil)
	}
	return func(c *config[T]) {
		c.merge = merge
	}
}

// gatherOptions resolves opts over documented defaults (last wins).
func gatherOptions[T any](opts ...Option[T]) config[T] {
	cfg := config[T]{
		reserve: DefaultReserve,
		merge:   keepFirst[T],
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
