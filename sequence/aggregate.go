// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// aggregate.go — range and aggregate operations: sums, counts, term slices,
// and finite sequence-protocol access (Len / At / Slice).

package sequence

import "fmt"

// SumUpToNthTerm returns the sum of terms for positions 0..n inclusive.
// n must be positive; otherwise the call fails with ErrNonPositivePosition.
//
// When a SumFunc is configured (closed-form arithmetic/geometric shortcut)
// it is trusted and evaluated in O(1); otherwise the terms are accumulated
// directly in O(n).
func (s *Sequence) SumUpToNthTerm(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("SumUpToNthTerm(%d): %w", n, ErrNonPositivePosition)
	}

	if s.sumFn != nil {
		return s.sumFn(n), nil
	}

	var sum float64
	for position := 0; position <= n; position++ {
		sum += s.termFn(position)
	}

	return sum, nil
}

// CountTermsBetweenIndices resolves both indices to positions and counts the
// terms between them, inclusive: |position2 - position1| + 1. In particular
// CountTermsBetweenIndices(i, i) == 1 for any resolvable index i.
func (s *Sequence) CountTermsBetweenIndices(index1, index2 int) (int, error) {
	position1, err := s.PositionOfIndex(index1)
	if err != nil {
		return 0, err
	}

	position2, err := s.PositionOfIndex(index2)
	if err != nil {
		return 0, err
	}

	return absInt(position2-position1) + 1, nil
}

// CountTermsBetweenTerms resolves both terms to exact positions through the
// inverse function and counts the terms between them, inclusive. Requires an
// InverseFunc (ErrInversionUnavailable) producing exact integer positions
// (ErrInexactTerm). Meaningful only when the term↔position relationship is
// bijective.
func (s *Sequence) CountTermsBetweenTerms(term1, term2 float64) (int, error) {
	position1, position2, err := s.exactPositionsOf(term1, term2)
	if err != nil {
		return 0, err
	}

	return absInt(position2-position1) + 1, nil
}

// TermsBetweenTerms resolves each term to an exact position and returns every
// term between the two positions, inclusive, in ascending position order
// regardless of the argument order. Requires an InverseFunc
// (ErrInversionUnavailable) producing exact integer positions
// (ErrInexactTerm).
func (s *Sequence) TermsBetweenTerms(term1, term2 float64) ([]float64, error) {
	position1, position2, err := s.exactPositionsOf(term1, term2)
	if err != nil {
		return nil, err
	}

	return s.TermsBetweenPositions(position1, position2), nil
}

// TermsBetweenPositions returns the terms for every position between
// position1 and position2, inclusive, in ascending position order regardless
// of the argument order.
func (s *Sequence) TermsBetweenPositions(position1, position2 int) []float64 {
	lo := minInt(position1, position2)
	hi := maxInt(position1, position2)

	terms := make([]float64, 0, hi-lo+1)
	for position := lo; position <= hi; position++ {
		terms = append(terms, s.termFn(position))
	}

	return terms
}

// exactPositionsOf maps two terms to integer positions via the inverse
// function, enforcing invertibility and exactness.
func (s *Sequence) exactPositionsOf(term1, term2 float64) (int, int, error) {
	if s.inverseFn == nil {
		return 0, 0, fmt.Errorf("terms %v and %v: %w", term1, term2, ErrInversionUnavailable)
	}

	position1, integral := integralPosition(s.inverseFn(term1))
	if !integral || s.termFn(position1) != term1 {
		return 0, 0, fmt.Errorf("term %v: %w", term1, ErrInexactTerm)
	}

	position2, integral := integralPosition(s.inverseFn(term2))
	if !integral || s.termFn(position2) != term2 {
		return 0, 0, fmt.Errorf("term %v: %w", term2, ErrInexactTerm)
	}

	return position1, position2, nil
}

// Len returns the number of reachable positions, i.e. the position limit.
func (s *Sequence) Len() int {
	return s.positionLimit
}

// At returns the term at position i under sequence-protocol semantics:
// negative positions count back from Len, and positions outside [-Len, Len)
// fail with ErrPositionOutOfRange. Use NthTerm for unvalidated access.
func (s *Sequence) At(i int) (float64, error) {
	position := i
	if position < 0 {
		position += s.positionLimit
	}
	if position < 0 || position >= s.positionLimit {
		return 0, fmt.Errorf("At(%d): %w", i, ErrPositionOutOfRange)
	}

	return s.termFn(position), nil
}

// Slice returns the terms for the positions selected by [start:stop:step)
// under standard slice semantics: negative bounds count back from Len,
// out-of-range bounds are clamped rather than rejected, and a negative step
// walks positions in descending order with stop exclusive. A zero step fails
// with ErrZeroStep.
func (s *Sequence) Slice(start, stop, step int) ([]float64, error) {
	if step == 0 {
		return nil, fmt.Errorf("Slice(%d, %d, 0): %w", start, stop, ErrZeroStep)
	}

	start = clampBound(start, s.positionLimit, step)
	stop = clampBound(stop, s.positionLimit, step)

	var terms []float64
	if step > 0 {
		for position := start; position < stop; position += step {
			terms = append(terms, s.termFn(position))
		}
	} else {
		for position := start; position > stop; position += step {
			terms = append(terms, s.termFn(position))
		}
	}

	return terms, nil
}

// clampBound normalizes one slice bound against length n for the given step
// direction: negative bounds are taken relative to n, then clamped into
// [0, n] for ascending slices and [-1, n-1] for descending ones.
func clampBound(bound, n, step int) int {
	if bound < 0 {
		bound += n
		if bound < 0 {
			if step < 0 {
				return -1
			}

			return 0
		}
	}
	if bound >= n {
		if step < 0 {
			return n - 1
		}

		return n
	}

	return bound
}
