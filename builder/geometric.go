// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// geometric.go — the geometric progression family.

package builder

import (
	"fmt"
	"math"

	"github.com/wehappit/nsequence/sequence"
)

// Geometric builds the progression f(p) = first·ratioᵖ with its exact log
// inverse f⁻¹(t) = log(t/first)/log(ratio) and the closed-form partial sum
// Σ₀ⁿ f(p) = first·(ratioⁿ⁺¹ − 1)/(ratio − 1).
//
// Parameter domain: first must be non-zero (ErrZeroFirstTerm); ratio must be
// positive and different from 1 (ErrBadRatio) — the log inverse needs a
// positive base and the sum formula degenerates at ratio 1.
func Geometric(first, ratio float64, opts ...Option) (*sequence.Sequence, error) {
	if first == 0 {
		return nil, fmt.Errorf("Geometric(%v, %v): %w", first, ratio, ErrZeroFirstTerm)
	}
	if ratio <= 0 || ratio == 1 {
		return nil, fmt.Errorf("Geometric(%v, %v): %w", first, ratio, ErrBadRatio)
	}

	cfg := resolveConfig(opts...)
	logRatio := math.Log(ratio)

	return sequence.New(
		func(position int) float64 { return first * math.Pow(ratio, float64(position)) },
		cfg.sequenceOptions(
			sequence.WithInverseFunc(func(term float64) float64 {
				// term/first <= 0 yields NaN; the engine rejects it with
				// ErrNonFinitePosition (nearest-term queries) or
				// ErrInexactTerm (exact lookups).
				return math.Log(term/first) / logRatio
			}),
			sequence.WithSumFunc(func(n int) float64 {
				return first * (math.Pow(ratio, float64(n+1)) - 1) / (ratio - 1)
			}),
		)...,
	)
}
