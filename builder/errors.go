// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy mirrors the sequence package: package-level sentinels only,
// branched with errors.Is, wrapped at call sites with %w. Factories validate
// parameters and return sentinels — they never panic; panics are confined to
// option constructors.

package builder

import "errors"

// ErrZeroDifference indicates that Arithmetic was given a zero common
// difference, which would make the family constant and non-invertible.
// Usage: if errors.Is(err, ErrZeroDifference) { /* supply diff != 0 */ }.
var ErrZeroDifference = errors.New("builder: common difference must be non-zero")

// ErrZeroFirstTerm indicates that Geometric was given a zero first term,
// which collapses every term to zero and breaks the log inverse.
var ErrZeroFirstTerm = errors.New("builder: first term must be non-zero")

// ErrBadRatio indicates that Geometric was given a ratio outside its domain:
// the ratio must be positive and different from 1 for the log inverse and
// the closed-form sum to be defined.
// Usage: if errors.Is(err, ErrBadRatio) { /* supply ratio > 0, ratio != 1 */ }.
var ErrBadRatio = errors.New("builder: ratio must be positive and not equal to 1")

// ErrZeroLeadCoefficient indicates that Quadratic was given a == 0, which
// degenerates the family to arithmetic; use Arithmetic instead.
var ErrZeroLeadCoefficient = errors.New("builder: leading coefficient must be non-zero")
