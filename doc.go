// Package nsequence models mathematical sequences defined by a generating
// function over integer positions, and derives lookup, inversion, nearest-term
// and range-aggregation queries from it.
//
// 🚀 What is nsequence?
//
//	A small, pure-Go engine for sequences you describe with a function:
//		• Term lookup at any position — including negative positions
//		• Position ↔ index translation under custom indexing schemes
//		• Term → index discovery via an exact inverse or bounded search
//		• Nearest-term queries with a configurable tie-break policy
//		• Range aggregates: sums, counts and term slices between positions,
//		  indices or terms
//
// ✨ Why choose nsequence?
//
//   - Declarative – hand it f(n), optionally f⁻¹, and query away
//   - Bounded – every brute-force path respects a hard position limit
//   - Immutable – a Sequence never mutates; concurrent reads are safe
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	sequence/ — the core Sequence engine: construction, translation,
//	            inversion, nearest-term search, aggregates, iteration
//	builder/  — ready-made families (arithmetic, geometric, quadratic,
//	            harmonic, fibonacci) with exact inverses and closed-form
//	            sums pre-wired
//
// See sequence/doc.go and builder/doc.go for per-package details.
package nsequence
