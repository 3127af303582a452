// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// translate.go — position ↔ index translation.

package sequence

import "fmt"

// IndexOfPosition returns the external index of the given position under the
// configured indexing function. Positions are not validated; the indexing
// function decides which arguments are meaningful.
// Complexity: O(1) plus the cost of the indexing function.
func (s *Sequence) IndexOfPosition(position int) int {
	return s.indexingFn(position)
}

// PositionOfIndex resolves an external index back to its position.
//
// When an indexing inverse is available (supplied explicitly, or derived
// from the default shifted-identity indexing) the translation is a trusted
// O(1) call. Otherwise the engine scans candidate positions 0, 1, 2, … up to
// the position limit and returns the first whose index equals the target.
// The limit is a hard bound: indices are discrete, so the search space must
// be finite for termination, and exhaustion fails with ErrIndexNotFound
// rather than approximating.
//
// Complexity: O(1) with an inverse, O(PositionLimit) without.
func (s *Sequence) PositionOfIndex(index int) (int, error) {
	if s.indexingInverseFn != nil {
		return s.indexingInverseFn(index), nil
	}

	for position := 0; position < s.positionLimit; position++ {
		if s.indexingFn(position) == index {
			return position, nil
		}
	}

	return 0, fmt.Errorf("PositionOfIndex(%d): %w", index, ErrIndexNotFound)
}
