// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// sequence.go — construction and property accessors.

package sequence

// New constructs an immutable Sequence around the generating function term.
// Optional companion functions and bounds are supplied via functional
// options; see options.go.
//
// Defaults resolved here:
//   - positionLimit = DefaultPositionLimit
//   - indexingFn    = shifted identity: initialIndex + position
//   - indexingInverseFn, under default indexing = index - initialIndex,
//     keeping PositionOfIndex O(1); a custom indexing function without an
//     explicit inverse leaves it nil and PositionOfIndex falls back to
//     bounded linear search.
//   - initialIndex, under a custom indexing function = indexingFn(0).
//
// Returns ErrMissingTermFunc when term is nil. Never panics.
// Complexity: O(len(opts)) time, O(1) space.
func New(term TermFunc, opts ...Option) (*Sequence, error) {
	if term == nil {
		return nil, ErrMissingTermFunc
	}

	s := &Sequence{
		termFn:        term,
		positionLimit: DefaultPositionLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.customIndexing {
		// The indexing function is authoritative for the index of position 0.
		s.initialIndex = s.indexingFn(0)
	} else {
		// Shifted identity keeps both directions of the translation O(1).
		offset := s.initialIndex
		s.indexingFn = func(position int) int { return offset + position }
		if s.indexingInverseFn == nil {
			s.indexingInverseFn = func(index int) int { return index - offset }
		}
	}

	return s, nil
}

// InitialTerm returns the term at position 0.
func (s *Sequence) InitialTerm() float64 {
	return s.termFn(0)
}

// InitialIndex returns the index associated with position 0.
func (s *Sequence) InitialIndex() int {
	return s.initialIndex
}

// PositionLimit returns the exclusive upper bound on reachable positions.
func (s *Sequence) PositionLimit() int {
	return s.positionLimit
}

// IsInvertible reports whether an InverseFunc is configured, i.e. whether
// the O(1) inversion path is available.
func (s *Sequence) IsInvertible() bool {
	return s.inverseFn != nil
}
