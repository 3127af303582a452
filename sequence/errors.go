// SPDX-License-Identifier: MIT
// Package: nsequence/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("...: %w", ErrX).
//   • Query methods MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package sequence

import "errors"

// ErrMissingTermFunc indicates that New was called without a generating
// function. The term function is the sequence's sole required attribute.
// Usage: if errors.Is(err, ErrMissingTermFunc) { /* supply a TermFunc */ }.
var ErrMissingTermFunc = errors.New("sequence: term function is required")

// ErrInversionUnavailable indicates that an operation requiring an
// InverseFunc was invoked on a sequence constructed without one.
// Typical origins: IndexOfTerm (inversion path), CountTermsBetweenTerms,
// TermsBetweenTerms.
// Usage: if errors.Is(err, ErrInversionUnavailable) { /* use WithoutInversion or configure WithInverseFunc */ }.
var ErrInversionUnavailable = errors.New("sequence: inverse function is not configured")

// ErrIndexNotFound indicates that an index→position search exhausted the
// position limit without a match. The limit is a hard bound, not a
// best-effort approximation: no position in [0, PositionLimit) maps to the
// requested index under the configured indexing function.
// Usage: if errors.Is(err, ErrIndexNotFound) { /* raise WithPositionLimit or fix the indexing */ }.
var ErrIndexNotFound = errors.New("sequence: no position maps to the requested index within the position limit")

// ErrTermNotFound indicates that an exact term lookup found no position
// reproducing the term before the position limit.
// Usage: if errors.Is(err, ErrTermNotFound) { /* the value is not a term of the sequence */ }.
var ErrTermNotFound = errors.New("sequence: term not found within the position limit")

// ErrInexactTerm indicates that the inverse function produced a non-integer
// position (outside numeric tolerance), or an integer position that does not
// reproduce the requested term, while exactness was required.
// Usage: if errors.Is(err, ErrInexactTerm) { /* value lies between terms */ }.
var ErrInexactTerm = errors.New("sequence: inverse did not resolve to an exact term position")

// ErrNonFinitePosition indicates that the inverse function produced NaN,
// ±Inf, or a value beyond the int range for the requested value — the value
// lies outside the inverse's domain, so no position can represent it.
// Typical origins: NearestEntry on a neighbor the inverse cannot map (e.g. a
// negative target under a logarithmic inverse).
// Usage: if errors.Is(err, ErrNonFinitePosition) { /* neighbor outside the inverse's domain */ }.
var ErrNonFinitePosition = errors.New("sequence: inverse produced a non-finite position")

// ErrSearchExhausted indicates that the iterative nearest-term walk reached
// its iteration limit without bracketing a local minimum. This signals either
// a non-monotonic generating function in the search region or an insufficient
// IterLimit / StartingPosition; it is never retried automatically.
// Usage: if errors.Is(err, ErrSearchExhausted) { /* adjust WithIterLimit / WithStartingPosition */ }.
var ErrSearchExhausted = errors.New("sequence: nearest-term search exhausted its iteration limit")

// ErrNonPositivePosition indicates that an operation requiring a positive
// position argument (SumUpToNthTerm) received n < 1.
var ErrNonPositivePosition = errors.New("sequence: position must be positive")

// ErrPositionOutOfRange indicates that a sequence-protocol accessor (At,
// Slice bounds resolution) received a position outside [-Len, Len).
var ErrPositionOutOfRange = errors.New("sequence: position out of range")

// ErrZeroStep indicates that Slice was called with step == 0.
var ErrZeroStep = errors.New("sequence: slice step must be non-zero")
