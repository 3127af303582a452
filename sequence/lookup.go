// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// lookup.go — term lookup and term → index resolution.

package sequence

import (
	"fmt"
	"math"
)

// NthTerm returns the term at the given position by direct evaluation of the
// generating function. The position's sign is not validated — negative
// positions are permitted when the underlying function supports them, which
// keeps the engine agnostic to domain restrictions imposed by the caller.
// Complexity: O(1) plus the cost of the generating function.
func (s *Sequence) NthTerm(position int) float64 {
	return s.termFn(position)
}

// IndexOfTerm resolves a term to its external index.
//
// With UseInversion (the default) the configured InverseFunc computes the
// position in O(1); the sequence must be invertible or the call fails with
// ErrInversionUnavailable. Under Exact (the default) the computed position
// must be an integer within numeric tolerance AND reproduce the term through
// the generating function, otherwise the call fails with ErrInexactTerm.
//
// With WithoutInversion the engine scans positions 0 … PositionLimit-1 for
// the first exact reproduction of the term — the explicit opt-in fallback
// for non-invertible generating functions, O(PositionLimit). A miss fails
// with ErrTermNotFound.
//
// AllowInexact downgrades both miss conditions to the NoIndex sentinel with
// a nil error; in the inversion path it additionally tolerates fractional
// positions, reporting NoIndex for them instead of failing.
func (s *Sequence) IndexOfTerm(term float64, opts ...SearchOption) (int, error) {
	o := resolveSearchOptions(opts...)

	if o.UseInversion {
		return s.indexOfTermByInversion(term, o.Exact)
	}

	return s.indexOfTermByScan(term, o.Exact)
}

// indexOfTermByInversion resolves term→index through the inverse function.
func (s *Sequence) indexOfTermByInversion(term float64, exact bool) (int, error) {
	if s.inverseFn == nil {
		return 0, fmt.Errorf("IndexOfTerm(%v): %w", term, ErrInversionUnavailable)
	}

	raw := s.inverseFn(term)
	position, integral := integralPosition(raw)
	if !integral || s.termFn(position) != term {
		if !exact {
			return NoIndex, nil
		}

		return 0, fmt.Errorf("IndexOfTerm(%v): position %v: %w", term, raw, ErrInexactTerm)
	}

	return s.indexingFn(position), nil
}

// indexOfTermByScan resolves term→index by bounded linear search.
func (s *Sequence) indexOfTermByScan(term float64, exact bool) (int, error) {
	for position := 0; position < s.positionLimit; position++ {
		if s.termFn(position) == term {
			return s.indexingFn(position), nil
		}
	}

	if !exact {
		return NoIndex, nil
	}

	return 0, fmt.Errorf("IndexOfTerm(%v): %w", term, ErrTermNotFound)
}

// Bounds for float64 → int position conversion. 2⁶³ is not representable in
// int64, so any raw value at or above it (or below −2⁶³) has no position.
const (
	maxPositionFloat = float64(math.MaxInt64)
	minPositionFloat = float64(math.MinInt64)
)

// finitePosition reports whether a raw inverse result can be handled as a
// position at all: finite and within the int range. NaN compares false on
// both bounds but is checked explicitly for clarity.
func finitePosition(raw float64) bool {
	return !math.IsNaN(raw) && raw >= minPositionFloat && raw < maxPositionFloat
}

// integralPosition reports whether a fractional position is an integer
// within positionTolerance, returning the rounded position when it is.
// Non-finite and int-overflowing values are never integral.
func integralPosition(raw float64) (int, bool) {
	if !finitePosition(raw) {
		return 0, false
	}

	rounded := math.Round(raw)
	if math.Abs(raw-rounded) > positionTolerance {
		return 0, false
	}

	return int(rounded), true
}
