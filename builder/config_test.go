// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (no hidden randomness)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng to the exact instance
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}

	// 4. WithRand(nil) is a programmer error
	defer func() {
		if recover() == nil {
			t.Errorf("WithRand(nil): expected panic")
		}
	}()
	_ = WithRand(nil)
}

// TestPayloadOptions verifies payload length resolution and override order.
func TestPayloadOptions(t *testing.T) {
	t.Parallel()

	// 1. Default payload carries DefaultPayloadLen elements
	cfgDefault := newBuilderConfig()
	if p := cfgDefault.payloadFn(nil); len(p.V) != DefaultPayloadLen || p.A != DefaultPayloadA {
		t.Errorf("default payload: got %+v", p)
	}

	// 2. WithPayloadLen is honored
	cfgLen := newBuilderConfig(WithPayloadLen(3))
	if p := cfgLen.payloadFn(nil); len(p.V) != 3 {
		t.Errorf("WithPayloadLen(3): got len %d", len(p.V))
	}

	// 3. WithPayloadFn wins over WithPayloadLen regardless of order
	custom := func(*rand.Rand) Payload { return Payload{A: 7} }
	for _, cfg := range []builderConfig{
		newBuilderConfig(WithPayloadFn(custom), WithPayloadLen(3)),
		newBuilderConfig(WithPayloadLen(3), WithPayloadFn(custom)),
	} {
		if p := cfg.payloadFn(nil); p.A != 7 || len(p.V) != 0 {
			t.Errorf("WithPayloadFn: got %+v", p)
		}
	}
}
