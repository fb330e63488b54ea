// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand" // RNG source for generators
)

// BuilderOption customizes a generator by mutating a builderConfig
// instance before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPayloadLen sets the list length of default payloads. Panics if n < 0.
// Ignored when WithPayloadFn is also given.
func WithPayloadLen(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithPayloadLen(n<0)")
	}
	return func(c *builderConfig) {
		c.payloadLen = n
	}
}

// WithPayloadFn overrides the per-triplet payload generator. Panics on nil.
func WithPayloadFn(fn PayloadFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPayloadFn(nil)")
	}
	return func(c *builderConfig) {
		c.payloadFn = fn
	}
}
