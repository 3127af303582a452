// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// iterate.go — lazy, finite, restartable iteration over the sequence.

package sequence

// Iterator walks the terms of a Sequence lazily, one position at a time, in
// ascending position order over 0 … PositionLimit-1. Terms are computed on
// demand — nothing is precomputed or cached — so iteration costs one
// generating-function evaluation per Term call.
//
// The usual pattern:
//
//	it := seq.Iterator()
//	for it.Next() {
//	    _ = it.Term()
//	}
//
// An Iterator is restartable via Reset and independent of any other Iterator
// over the same Sequence, but a single Iterator is not safe for concurrent
// use.
type Iterator struct {
	seq      *Sequence
	position int
}

// Iterator returns a fresh iterator positioned before the first term.
func (s *Sequence) Iterator() *Iterator {
	return &Iterator{seq: s, position: -1}
}

// Next advances to the next position and reports whether one exists. It must
// be called before the first Position/Term access.
func (it *Iterator) Next() bool {
	if it.position+1 >= it.seq.positionLimit {
		return false
	}
	it.position++

	return true
}

// Position returns the current position. Valid only after a successful Next.
func (it *Iterator) Position() int {
	return it.position
}

// Term evaluates and returns the term at the current position. Valid only
// after a successful Next.
func (it *Iterator) Term() float64 {
	return it.seq.termFn(it.position)
}

// Reset rewinds the iterator to before the first term, making it reusable.
func (it *Iterator) Reset() {
	it.position = -1
}
