// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// harmonic.go — the harmonic family.

package builder

import "github.com/wehappit/nsequence/sequence"

// Harmonic builds the family f(p) = 1/(p+1) — the terms 1, 1/2, 1/3, … for
// positions 0, 1, 2, … — with its exact inverse f⁻¹(t) = 1/t − 1. No
// closed-form partial sum exists (the harmonic numbers), so SumUpToNthTerm
// accumulates directly.
func Harmonic(opts ...Option) (*sequence.Sequence, error) {
	cfg := resolveConfig(opts...)

	return sequence.New(
		func(position int) float64 { return 1 / float64(position+1) },
		cfg.sequenceOptions(
			sequence.WithInverseFunc(func(term float64) float64 { return 1/term - 1 }),
		)...,
	)
}
