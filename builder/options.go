// SPDX-License-Identifier: MIT
// Package: nsequence/builder
//
// options.go — functional options shared by all family factories.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     factories themselves never panic.
//   • Options resolve into an immutable config which is translated into
//     sequence.Option values at construction time.

package builder

import "github.com/wehappit/nsequence/sequence"

// Option customizes a family factory before the Sequence is built.
type Option func(*config)

// config aggregates the knobs shared by every family factory. It is passed
// by value into the translation helper (immutable to callers).
type config struct {
	positionLimit     int
	initialIndex      int
	indexingFn        sequence.IndexingFunc
	indexingInverseFn sequence.IndexingInverseFunc
}

// WithPositionLimit caps the reachable positions of the built sequence.
// Panics on a non-positive limit, matching sequence.WithPositionLimit.
func WithPositionLimit(limit int) Option {
	if limit <= 0 {
		panic("builder: WithPositionLimit(limit<=0)")
	}
	return func(c *config) {
		c.positionLimit = limit
	}
}

// WithInitialIndex sets the index of position 0 under the default indexing.
// Ignored when WithIndexing supplies a custom indexing function.
func WithInitialIndex(index int) Option {
	return func(c *config) {
		c.initialIndex = index
	}
}

// WithIndexing installs a custom indexing function and, optionally, its
// inverse (pass nil to fall back to bounded linear index resolution).
// Panics on a nil indexing function.
func WithIndexing(fn sequence.IndexingFunc, inverse sequence.IndexingInverseFunc) Option {
	if fn == nil {
		panic("builder: WithIndexing(nil)")
	}
	return func(c *config) {
		c.indexingFn = fn
		c.indexingInverseFn = inverse
	}
}

// resolveConfig applies opts over zero-value defaults.
// Complexity: O(len(opts)) time, O(1) space.
func resolveConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// sequenceOptions translates the resolved config into sequence.Option values,
// omitting knobs left at their zero value so sequence.New keeps its own
// defaults authoritative.
func (c config) sequenceOptions(extra ...sequence.Option) []sequence.Option {
	opts := make([]sequence.Option, 0, len(extra)+4)
	opts = append(opts, extra...)
	if c.positionLimit > 0 {
		opts = append(opts, sequence.WithPositionLimit(c.positionLimit))
	}
	if c.initialIndex != 0 {
		opts = append(opts, sequence.WithInitialIndex(c.initialIndex))
	}
	if c.indexingFn != nil {
		opts = append(opts, sequence.WithIndexingFunc(c.indexingFn))
		if c.indexingInverseFn != nil {
			opts = append(opts, sequence.WithIndexingInverseFunc(c.indexingInverseFn))
		}
	}

	return opts
}
