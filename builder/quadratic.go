// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// quadratic.go — the quadratic polynomial family.

package builder

import (
	"fmt"
	"math"

	"github.com/wehappit/nsequence/sequence"
)

// Quadratic builds the polynomial f(p) = a·p² + b·p + c with an inverse on
// the ascending branch,
//
//	f⁻¹(t) = (−b + √(b² − 4a·(c − t))) / (2a),
//
// valid for positions p ≥ −b/(2a); terms reached only on the descending
// branch resolve to fractional or NaN positions and fail the engine's
// exactness checks. The closed-form partial sum
// Σ₀ⁿ f(p) = a·n(n+1)(2n+1)/6 + b·n(n+1)/2 + c·(n+1) is pre-wired.
//
// a must be non-zero (ErrZeroLeadCoefficient); use Arithmetic for the
// degenerate linear case.
func Quadratic(a, b, c float64, opts ...Option) (*sequence.Sequence, error) {
	if a == 0 {
		return nil, fmt.Errorf("Quadratic(%v, %v, %v): %w", a, b, c, ErrZeroLeadCoefficient)
	}

	cfg := resolveConfig(opts...)

	return sequence.New(
		func(position int) float64 {
			p := float64(position)
			return a*p*p + b*p + c
		},
		cfg.sequenceOptions(
			sequence.WithInverseFunc(func(term float64) float64 {
				// Negative discriminant yields NaN; the engine rejects it
				// with ErrNonFinitePosition (nearest-term queries) or
				// ErrInexactTerm (exact lookups).
				return (-b + math.Sqrt(b*b-4*a*(c-term))) / (2 * a)
			}),
			sequence.WithSumFunc(func(n int) float64 {
				k := float64(n)
				return a*k*(k+1)*(2*k+1)/6 + b*k*(k+1)/2 + c*(k+1)
			}),
		)...,
	)
}
