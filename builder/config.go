// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil                       (generators fail until seeded)
//   • payloadLen = DefaultPayloadLen
//   • payloadFn  = ConstantPayloadFn(payloadLen)
//
// Hints:
//   • Share ONE *rand.Rand (WithRand) between fill and lookup generation so a
//     whole benchmark run replays from a single seed.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for coordinate draws; nil means “no randomness available”.
	rng *rand.Rand
	// List length of default payloads.
	payloadLen int
	// Payload generator; nil resolves to ConstantPayloadFn(payloadLen).
	payloadFn PayloadFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		payloadLen: DefaultPayloadLen,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the payload generator last so WithPayloadLen order does not matter.
	if cfg.payloadFn == nil {
		cfg.payloadFn = ConstantPayloadFn(cfg.payloadLen)
	}

	return cfg
}
