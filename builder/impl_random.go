// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// impl_random.go - implementation of RandomCoordinates / RandomTriplets.
//
// Contract:
//   - count ≥ 0 (else ErrBadSize); bounds ≥ 1 (else ErrBadBound).
//   - cfg.rng must be non-nil unless count == 0 (else ErrNeedRandSource).
//   - Each item consumes exactly two draws: row = Intn(rowBound), col = Intn(colBound).
//
// Determinism:
//   - Stable draw order: item i asc, row before col, payload last.

package builder

import "github.com/katalvlaran/sparsebench/matrix"

func randomCoordinates(cfg builderConfig, count, rowBound, colBound int) ([]matrix.Coord, error) {
	if err := validateCount(MethodRandomCoordinates, count); err != nil {
		return nil, err
	}
	if err := validateBounds(MethodRandomCoordinates, rowBound, colBound); err != nil {
		return nil, err
	}
	if cfg.rng == nil && count > 0 {
		return nil, builderErrorf(MethodRandomCoordinates, ErrNeedRandSource, "count=%d", count)
	}

	out := make([]matrix.Coord, count)
	rng := cfg.rng
	for i := range out {
		out[i].Row = rng.Intn(rowBound)
		out[i].Col = rng.Intn(colBound)
	}

	return out, nil
}

func randomTriplets(cfg builderConfig, count, rows, cols int) ([]matrix.Triplet[Payload], error) {
	if err := validateCount(MethodRandomTriplets, count); err != nil {
		return nil, err
	}
	if err := validateBounds(MethodRandomTriplets, rows, cols); err != nil {
		return nil, err
	}
	if cfg.rng == nil && count > 0 {
		return nil, builderErrorf(MethodRandomTriplets, ErrNeedRandSource, "count=%d", count)
	}

	out := make([]matrix.Triplet[Payload], count)
	rng := cfg.rng
	for i := range out {
		out[i].Row = rng.Intn(rows)
		out[i].Col = rng.Intn(cols)
		out[i].Value = cfg.payloadFn(rng)
	}

	return out, nil
}
