// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// types.go — core types, defaults and search options for the sequence engine.

package sequence

// TermFunc is the generating function of a sequence: it maps an integer
// position to the term at that position. It must be pure and total over
// [0, PositionLimit); negative positions are permitted when the underlying
// function supports them.
type TermFunc func(position int) float64

// InverseFunc maps a term back to its position. The result may be fractional
// when the argument is not exactly a term of the sequence; exactness checks
// are performed by the operations that require them.
type InverseFunc func(term float64) float64

// IndexingFunc maps a position to its external index — a possibly
// non-contiguous or reordered labeling of positions. It must be injective
// over [0, PositionLimit), otherwise index→position resolution is ambiguous.
type IndexingFunc func(position int) int

// IndexingInverseFunc maps an index back to its position. When configured it
// makes PositionOfIndex a trusted O(1) translation; when absent the engine
// resorts to bounded linear search.
type IndexingInverseFunc func(index int) int

// SumFunc is an optional closed-form shortcut for SumUpToNthTerm: it receives
// n and must return the sum of terms for positions 0..n inclusive. Without
// one, SumUpToNthTerm accumulates term by term.
type SumFunc func(n int) float64

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultPositionLimit is the exclusive upper bound on reachable
	// positions when WithPositionLimit is not supplied. It caps every
	// brute-force search in the engine.
	DefaultPositionLimit = 1_000_000

	// DefaultIterLimit bounds the iterative nearest-term walk.
	DefaultIterLimit = 1000

	// DefaultStartingPosition is where the iterative nearest-term walk
	// begins when WithStartingPosition is not supplied.
	DefaultStartingPosition = 1

	// positionTolerance is the numeric tolerance used when deciding whether
	// a fractional position produced by an inverse function is an integer.
	positionTolerance = 1e-9
)

// NoIndex is the sentinel returned by IndexOfTerm in inexact mode
// (AllowInexact) when no position reproduces the requested term. It is never
// a valid index produced by the engine.
const NoIndex = -1 << 62

// Sequence wraps a generating function and optional companion functions and
// exposes pure query operations over them. A Sequence is immutable after New;
// all methods are read-only.
type Sequence struct {
	// termFn is the generating function; the only required attribute.
	termFn TermFunc
	// inverseFn, when present, enables O(1) inversion-based operations.
	inverseFn InverseFunc
	// indexingFn maps positions to external indices. Always non-nil after
	// New: absent an explicit function, the shifted identity
	// initialIndex + position is installed.
	indexingFn IndexingFunc
	// indexingInverseFn maps indices back to positions. Non-nil when either
	// supplied explicitly or derivable from the default indexing; nil when a
	// custom indexingFn was supplied without its inverse, in which case
	// PositionOfIndex falls back to bounded linear search.
	indexingInverseFn IndexingInverseFunc
	// sumFn, when present, short-circuits SumUpToNthTerm.
	sumFn SumFunc
	// initialIndex is the index of position 0. Derived as indexingFn(0)
	// when an indexing function is supplied.
	initialIndex int
	// positionLimit is the exclusive upper bound on reachable positions.
	positionLimit int
	// customIndexing records whether indexingFn came from the caller, which
	// decides whether initialIndex is derived and whether a default
	// indexing inverse may be installed.
	customIndexing bool
}

// SearchOptions configures the discovery operations IndexOfTerm,
// NearestEntry, NearestTermIndex, NearestTerm and
// CountTermsBetweenNeighbors.
//
// Fields:
//   - UseInversion     — prefer the configured InverseFunc (fast path).
//     IndexOfTerm fails with ErrInversionUnavailable when true without an
//     inverse; the nearest-term operations fall back to the iterative walk.
//   - Exact            — require exact term reproduction in IndexOfTerm;
//     when false, "not found" is downgraded to the NoIndex sentinel instead
//     of an error.
//   - StartingPosition — first position evaluated by the iterative walk.
//   - IterLimit        — maximum steps taken by the iterative walk before it
//     fails with ErrSearchExhausted.
//   - PreferLeft       — tie-break policy: on an exact distance tie, true
//     selects the lower position, false the higher one.
type SearchOptions struct {
	UseInversion     bool
	Exact            bool
	StartingPosition int
	IterLimit        int
	PreferLeft       bool
}

// SearchOption is a functional option mutating SearchOptions.
type SearchOption func(*SearchOptions)

// DefaultSearchOptions returns the search configuration used when no options
// are supplied:
//   - UseInversion:     true  (inversion is the preferred path)
//   - Exact:            true  (misses are surfaced as errors)
//   - StartingPosition: DefaultStartingPosition
//   - IterLimit:        DefaultIterLimit
//   - PreferLeft:       true  (ties resolve to the lower position)
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		UseInversion:     true,
		Exact:            true,
		StartingPosition: DefaultStartingPosition,
		IterLimit:        DefaultIterLimit,
		PreferLeft:       true,
	}
}

// WithoutInversion forces bounded search even when an InverseFunc is
// configured. Explicitly opt-in because the fallback is O(PositionLimit)
// for exact lookups and O(IterLimit) for nearest-term queries.
func WithoutInversion() SearchOption {
	return func(o *SearchOptions) {
		o.UseInversion = false
	}
}

// AllowInexact downgrades "term not found" in IndexOfTerm from an error to
// the NoIndex sentinel. It has no effect on the nearest-term operations,
// which never require exactness.
func AllowInexact() SearchOption {
	return func(o *SearchOptions) {
		o.Exact = false
	}
}

// WithStartingPosition sets the first position evaluated by the iterative
// nearest-term walk. Any integer is accepted; negative starting positions
// are meaningful only when the generating function supports them.
func WithStartingPosition(position int) SearchOption {
	return func(o *SearchOptions) {
		o.StartingPosition = position
	}
}

// WithIterLimit bounds the iterative nearest-term walk. Panics on a
// non-positive limit: an unbounded or empty walk is a programmer error.
func WithIterLimit(limit int) SearchOption {
	if limit <= 0 {
		panic("sequence: WithIterLimit(limit<=0)")
	}
	return func(o *SearchOptions) {
		o.IterLimit = limit
	}
}

// PreferRightTerm flips the tie-break policy so that an exact distance tie
// resolves to the higher of the two bracketing positions.
func PreferRightTerm() SearchOption {
	return func(o *SearchOptions) {
		o.PreferLeft = false
	}
}

// resolveSearchOptions applies opts over the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func resolveSearchOptions(opts ...SearchOption) SearchOptions {
	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
