// Package sequence implements the core sequence engine: a Sequence wraps a
// user-supplied generating function over integer positions plus optional
// companion functions (inverse, indexing, indexing-inverse) and exposes pure
// query operations over them.
//
// 🚀 What is a Sequence?
//
//	A Sequence is defined by f : position → term. Positions are the internal
//	ordinals 0, 1, 2, …; terms are the produced values; indices are external
//	labels for positions, derived through an indexing function. From that
//	single definition the engine answers:
//	  • NthTerm / IndexOfPosition — forward evaluation
//	  • PositionOfIndex          — index → position (O(1) inverse or bounded scan)
//	  • IndexOfTerm              — term → index (inversion or bounded scan)
//	  • NearestEntry             — closest term to a target, with tie-break
//	  • Sums, counts and term slices between positions, indices or terms
//	  • Len / At / Slice / Iterator — finite sequence-protocol access
//
// Inversion strategy:
//
//	Whenever an InverseFunc is configured the engine prefers it — inversion
//	reduces term→position discovery to one inverse evaluation plus at most two
//	forward evaluations, O(1) in the sequence length. Without an inverse (or
//	with WithoutInversion) the engine falls back to bounded search: a linear
//	scan capped by the position limit for exact lookups, or a directed walk
//	capped by IterLimit for nearest-term queries. The caps are hard limits:
//	searches fail with ErrIndexNotFound / ErrTermNotFound / ErrSearchExhausted
//	rather than loop unboundedly.
//
// The iterative nearest-term walk assumes a single local minimum of
// |f(p) − target| in the search region, i.e. f monotonic around the target.
// Behavior on non-monotonic generating functions is undefined beyond
// best-effort: the walk stops at the first local minimum it brackets.
//
// Concurrency:
//
//	A Sequence is immutable after New. Concurrent read-only use from multiple
//	goroutines is safe without locking, provided the caller's functions are
//	themselves pure and reentrant — the engine does not verify this.
//
// ⚙️ Usage:
//
//	seq, err := sequence.New(
//	    func(p int) float64 { return 2*float64(p) + 3 },
//	    sequence.WithInverseFunc(func(t float64) float64 { return (t - 3) / 2 }),
//	)
//	if err != nil { ... }
//
//	seq.NthTerm(5)                // 13
//	seq.IndexOfTerm(13)           // 5, nil
//	seq.NearestEntry(14)          // 5, 13, nil  (or 6, 15 with PreferRightTerm)
//	seq.SumUpToNthTerm(10)        // 143
//
// Errors are package-level sentinels; branch with errors.Is.
package sequence
