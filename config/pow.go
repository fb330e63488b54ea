// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
)

// MaxExponent is the largest n with 10^n representable as int on 64-bit platforms.
const MaxExponent = 18

// Pow10 returns 10^exp. Errors: ErrExponent for exp < 0 or an overflowing result.
func Pow10(exp int) (int, error) {
	if exp < 0 || exp > MaxExponent {
		return 0, fmt.Errorf("Pow10(%d): %w", exp, ErrExponent)
	}
	r := 1
	for i := 0; i < exp; i++ {
		if r > math.MaxInt/10 {
			return 0, fmt.Errorf("Pow10(%d): %w", exp, ErrExponent)
		}
		r *= 10
	}

	return r, nil
}

// Exponents expands [lo, hi] into 10^lo, ..., 10^hi.
// Errors: ErrExponent for a bad bound, ErrInvalid for lo > hi.
func Exponents(lo, hi int) ([]int, error) {
	for _, e := range [2]int{lo, hi} {
		if e < 0 || e > MaxExponent {
			return nil, fmt.Errorf("Exponents(%d,%d): bound %d outside [0,%d]: %w", lo, hi, e, MaxExponent, ErrExponent)
		}
	}
	if lo > hi {
		return nil, fmt.Errorf("Exponents(%d,%d): empty range: %w", lo, hi, ErrInvalid)
	}
	out := make([]int, 0, hi-lo+1)
	for e := lo; e <= hi; e++ {
		v, err := Pow10(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
