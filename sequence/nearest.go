// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// nearest.go — nearest-term search, the engine's central algorithm.
//
// Two strategies:
//
//	(a) Inversion-based — one inverse evaluation plus at most two forward
//	    evaluations: compute the raw (possibly fractional) position of the
//	    target, then compare the floor/ceil bracketing terms. O(1) in the
//	    sequence length; preferred whenever an InverseFunc exists.
//	(b) Iterative walk — start at StartingPosition, establish the walk
//	    direction once from the first two evaluated terms, then step until
//	    the distance to the target starts increasing (first local minimum)
//	    or IterLimit is exhausted. Assumes a single local minimum in the
//	    search region; non-monotonic functions get best-effort behavior.
//
// Both strategies share the tie-break rule: on an exact distance tie between
// two bracketing positions, PreferLeft selects the lower position, otherwise
// the higher one.

package sequence

import (
	"fmt"
	"math"
)

// NearestEntry returns the (index, term) pair whose term is closest to
// neighbor, per the tie-break policy.
//
// Strategy (a) is used when UseInversion is set (the default) and an
// InverseFunc is configured; a neighbor the inverse cannot map to a finite
// position fails with ErrNonFinitePosition. Otherwise the iterative walk (b) runs,
// bounded by IterLimit and failing with ErrSearchExhausted when it cannot
// bracket a local minimum. The walk failure is never retried automatically:
// it signals a non-monotonic function or an insufficient
// IterLimit/StartingPosition, and the caller must adjust and reissue.
func (s *Sequence) NearestEntry(neighbor float64, opts ...SearchOption) (index int, term float64, err error) {
	o := resolveSearchOptions(opts...)

	position, err := s.nearestPosition(neighbor, o)
	if err != nil {
		return 0, 0, err
	}

	return s.indexingFn(position), s.termFn(position), nil
}

// NearestTermIndex is a thin projection of NearestEntry returning only the
// index, with identical parameters and failure modes.
func (s *Sequence) NearestTermIndex(neighbor float64, opts ...SearchOption) (int, error) {
	index, _, err := s.NearestEntry(neighbor, opts...)

	return index, err
}

// NearestTerm is a thin projection of NearestEntry returning only the term,
// with identical parameters and failure modes.
func (s *Sequence) NearestTerm(neighbor float64, opts ...SearchOption) (float64, error) {
	_, term, err := s.NearestEntry(neighbor, opts...)

	return term, err
}

// CountTermsBetweenNeighbors counts the terms lying between the nearest
// entries to two neighbor values, inclusive.
//
// The resolution is directionally asymmetric on purpose: neighbor1 is
// resolved biasing right (PreferLeft=false) and neighbor2 biasing left
// (PreferLeft=true), so the count reflects terms strictly between the two
// neighbor values rather than terms possibly outside the intended interval.
// Any PreferLeft/PreferRightTerm option supplied by the caller is overridden
// per side; the remaining options (inversion, starting position, iteration
// limit) apply to both resolutions.
func (s *Sequence) CountTermsBetweenNeighbors(neighbor1, neighbor2 float64, opts ...SearchOption) (int, error) {
	o := resolveSearchOptions(opts...)

	right := o
	right.PreferLeft = false
	position1, err := s.nearestPosition(neighbor1, right)
	if err != nil {
		return 0, err
	}

	left := o
	left.PreferLeft = true
	position2, err := s.nearestPosition(neighbor2, left)
	if err != nil {
		return 0, err
	}

	return absInt(position2-position1) + 1, nil
}

// nearestPosition dispatches to the inversion strategy when available and
// requested, and to the iterative walk otherwise.
func (s *Sequence) nearestPosition(neighbor float64, o SearchOptions) (int, error) {
	if o.UseInversion && s.inverseFn != nil {
		return s.nearestPositionByInversion(neighbor, o.PreferLeft)
	}

	return s.nearestPositionByWalk(neighbor, o)
}

// nearestPositionByInversion implements strategy (a). A raw position that is
// NaN, infinite, or beyond the int range means the neighbor lies outside the
// inverse's domain; that is surfaced as ErrNonFinitePosition rather than
// flooring garbage into a position.
// Complexity: O(1) — one inverse plus at most two forward evaluations.
func (s *Sequence) nearestPositionByInversion(neighbor float64, preferLeft bool) (int, error) {
	raw := s.inverseFn(neighbor)
	if !finitePosition(raw) {
		return 0, fmt.Errorf("nearest %v: raw position %v: %w", neighbor, raw, ErrNonFinitePosition)
	}
	if position, integral := integralPosition(raw); integral {
		// neighbor is (numerically) a term of the sequence: unique answer.
		return position, nil
	}

	lo := int(math.Floor(raw))
	hi := int(math.Ceil(raw))
	loDist := math.Abs(s.termFn(lo) - neighbor)
	hiDist := math.Abs(s.termFn(hi) - neighbor)

	switch {
	case loDist < hiDist:
		return lo, nil
	case hiDist < loDist:
		return hi, nil
	case preferLeft:
		return lo, nil
	default:
		return hi, nil
	}
}

// nearestPositionByWalk implements strategy (b).
// Complexity: O(IterLimit) forward evaluations in the worst case.
func (s *Sequence) nearestPositionByWalk(neighbor float64, o SearchOptions) (int, error) {
	position := o.StartingPosition
	dist := math.Abs(s.termFn(position) - neighbor)
	if dist == 0 {
		return position, nil
	}

	// Establish the direction once: walk toward the side whose term is not
	// farther from the neighbor than the starting term.
	step := 1
	if math.Abs(s.termFn(position+1)-neighbor) > dist {
		step = -1
	}

	for taken := 0; taken < o.IterLimit; taken++ {
		next := position + step
		nextDist := math.Abs(s.termFn(next) - neighbor)

		switch {
		case nextDist < dist:
			position, dist = next, nextDist
			if dist == 0 {
				return position, nil
			}
		case nextDist == dist:
			// Exact tie between the two bracketing positions.
			if o.PreferLeft {
				return minInt(position, next), nil
			}

			return maxInt(position, next), nil
		default:
			// Distance started increasing: position brackets the minimum.
			return position, nil
		}
	}

	return 0, fmt.Errorf("nearest %v from position %d: %w", neighbor, o.StartingPosition, ErrSearchExhausted)
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
