// Package mathx holds small numeric helpers shared by the sandbox packages.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Modulo returns v mod n in [0, n) for any positive n. Unlike the % operator,
// the result is never negative. It cannot overflow, even near the top of T.
func Modulo[T constraints.Integer](v, n T) T {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// ModuloFloat is Modulo for floating point values, built on math.Mod.
func ModuloFloat[T constraints.Float](v, n T) T {
	m := float64(n)
	r := math.Mod(math.Mod(float64(v), m)+m, m)
	// Tiny negative inputs round up to exactly n after the add.
	if r >= m {
		r = 0
	}
	return T(r)
}
