// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// fibonacci.go — the Fibonacci family.

package builder

import (
	"math"

	"github.com/wehappit/nsequence/sequence"
)

// Fibonacci builds the Fibonacci sequence 0, 1, 1, 2, 3, 5, … over positions
// 0, 1, 2, …. The recurrence is evaluated iteratively (O(p) per term, pure,
// no shared cache — safe for concurrent readers), negative positions yield
// NaN, and no inverse is configured: the family is the canonical fixture for
// the engine's bounded-search fallbacks (WithoutInversion lookup, iterative
// nearest-term walk).
func Fibonacci(opts ...Option) (*sequence.Sequence, error) {
	cfg := resolveConfig(opts...)

	return sequence.New(
		func(position int) float64 {
			if position < 0 {
				return math.NaN()
			}
			prev, curr := 0.0, 1.0
			for i := 0; i < position; i++ {
				prev, curr = curr, prev+curr
			}

			return prev
		},
		cfg.sequenceOptions()...,
	)
}
