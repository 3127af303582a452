// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// arithmetic.go — the arithmetic progression family.

package builder

import (
	"fmt"

	"github.com/wehappit/nsequence/sequence"
)

// Arithmetic builds the progression f(p) = first + diff·p with its exact
// inverse f⁻¹(t) = (t − first)/diff and the closed-form partial sum
// Σ₀ⁿ f(p) = (n+1)·(2·first + diff·n)/2, so term→index discovery and
// SumUpToNthTerm both run in O(1).
//
// diff must be non-zero (ErrZeroDifference): a zero difference makes the
// family constant and the inverse undefined.
func Arithmetic(first, diff float64, opts ...Option) (*sequence.Sequence, error) {
	if diff == 0 {
		return nil, fmt.Errorf("Arithmetic(%v, %v): %w", first, diff, ErrZeroDifference)
	}

	cfg := resolveConfig(opts...)

	return sequence.New(
		func(position int) float64 { return first + diff*float64(position) },
		cfg.sequenceOptions(
			sequence.WithInverseFunc(func(term float64) float64 { return (term - first) / diff }),
			sequence.WithSumFunc(func(n int) float64 {
				k := float64(n)
				return (k + 1) * (2*first + diff*k) / 2
			}),
		)...,
	)
}
