// SPDX-License-Identifier: MIT
// Package: sparsebench/harness
//
// harness.go - the Harness type and its functional options.
//
// Contract:
//   - A Harness owns exactly one RNG; workload and query draws consume it in
//     a fixed order, so a seed pins every generated coordinate.
//   - Option constructors panic on nil arguments; runtime methods never panic.
//   - A Harness is not safe for concurrent use.

package harness

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/sparsebench/builder"
)

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// DefaultPayloadLen is the list length of every stored payload.
const DefaultPayloadLen = builder.DefaultPayloadLen

// Harness runs measured phases with a shared stopwatch, RNG and logger.
type Harness struct {
	sw  *Stopwatch
	rng *rand.Rand
	log *Logger
}

// Option configures a Harness.
type Option func(*harnessConfig)

type harnessConfig struct {
	clock func() time.Time
	rng   *rand.Rand
	log   *Logger
}

// WithClock replaces the time source; tests pass a fake. Panics on nil.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("harness: WithClock(nil)")
	}
	return func(c *harnessConfig) { c.clock = clock }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("harness: WithRand(nil)")
	}
	return func(c *harnessConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) Option {
	return func(c *harnessConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger routes phase records to l. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("harness: WithLogger(nil)")
	}
	return func(c *harnessConfig) { c.log = l }
}

// New builds a Harness. Defaults: time.Now, DefaultSeed, NoopLogger.
func New(opts ...Option) *Harness {
	cfg := harnessConfig{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.log == nil {
		cfg.log = NoopLogger()
	}

	return &Harness{sw: NewStopwatch(cfg.clock), rng: cfg.rng, log: cfg.log}
}

// Measure times op as one phase covering items work items.
// The reference point is reset before op runs and again by the closing lap.
func (h *Harness) Measure(phase string, items int, op func()) Sample {
	return h.measureTo(h.log, phase, items, op)
}

// measureTo is Measure reporting to log instead of the harness logger.
func (h *Harness) measureTo(log *Logger, phase string, items int, op func()) Sample {
	s := h.timePhase(phase, items, op)
	log.LogSample(s)

	return s
}

func (h *Harness) timePhase(phase string, items int, op func()) Sample {
	h.sw.Reset()
	op()

	return Sample{Phase: phase, Elapsed: h.sw.Lap(), Items: items}
}

// Logger returns the logger phases are reported to.
func (h *Harness) Logger() *Logger { return h.log }
