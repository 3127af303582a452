// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// options.go — functional options for Sequence construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*Sequence)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil functions, non-positive limits). Query methods never panic.
//   • No hidden globals; everything flows through the Sequence being built.

package sequence

// Option customizes a Sequence during New. Applying N options costs O(N)
// time, O(1) space.
type Option func(*Sequence)

// WithInverseFunc configures the closed-form inverse of the generating
// function, enabling the O(1) inversion path in IndexOfTerm, NearestEntry
// and the term-range operations. Panics on nil.
func WithInverseFunc(fn InverseFunc) Option {
	if fn == nil {
		panic("sequence: WithInverseFunc(nil)")
	}
	return func(s *Sequence) {
		s.inverseFn = fn
	}
}

// WithIndexingFunc remaps positions to external indices. The function must
// be injective over [0, PositionLimit). Supplying it derives the sequence's
// initial index as fn(0), overriding WithInitialIndex. Panics on nil.
func WithIndexingFunc(fn IndexingFunc) Option {
	if fn == nil {
		panic("sequence: WithIndexingFunc(nil)")
	}
	return func(s *Sequence) {
		s.indexingFn = fn
		s.customIndexing = true
	}
}

// WithIndexingInverseFunc configures the index→position translation,
// making PositionOfIndex a trusted O(1) operation instead of a bounded
// linear search. Panics on nil.
func WithIndexingInverseFunc(fn IndexingInverseFunc) Option {
	if fn == nil {
		panic("sequence: WithIndexingInverseFunc(nil)")
	}
	return func(s *Sequence) {
		s.indexingInverseFn = fn
	}
}

// WithInitialIndex sets the index associated with position 0 under the
// default (shifted identity) indexing. Ignored — and derived as
// indexingFn(0) instead — when WithIndexingFunc is supplied.
func WithInitialIndex(index int) Option {
	return func(s *Sequence) {
		s.initialIndex = index
	}
}

// WithPositionLimit sets the exclusive upper bound on reachable positions,
// capping every brute-force search and defining Len. Panics on a
// non-positive limit.
func WithPositionLimit(limit int) Option {
	if limit <= 0 {
		panic("sequence: WithPositionLimit(limit<=0)")
	}
	return func(s *Sequence) {
		s.positionLimit = limit
	}
}

// WithSumFunc configures a closed-form shortcut for SumUpToNthTerm. The
// function receives n and must return the sum of terms for positions 0..n
// inclusive. Panics on nil.
func WithSumFunc(fn SumFunc) Option {
	if fn == nil {
		panic("sequence: WithSumFunc(nil)")
	}
	return func(s *Sequence) {
		s.sumFn = fn
	}
}
