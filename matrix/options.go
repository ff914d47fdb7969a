// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for edge-list ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that record violations instead of panicking,
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultBinarize collapses repeated (row, col) pairs into a single 1 entry,
	// matching the 0/1 incidence model of the detector.
	DefaultBinarize = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	rows, cols int  // explicit shape; 0 means "infer max id + 1"
	binarize   bool // DefaultBinarize

	err error // first violation recorded by a WithX constructor
}

// WithShape fixes the matrix shape instead of inferring it from the largest ids.
// Rows/cols must be positive; ids at or beyond the bound are rejected with
// ErrOutOfRange during ingestion.
func WithShape(rows, cols int) Option {
	return func(o *Options) {
		if rows <= 0 || cols <= 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: WithShape(%d, %d)", ErrOptionViolation, rows, cols)
			}
			return
		}
		o.rows, o.cols = rows, cols
	}
}

// WithCounts keeps multiplicities: each repeated (row, col) pair adds 1 to the
// cell instead of collapsing to a single 1.
func WithCounts() Option {
	return func(o *Options) { o.binarize = false }
}

// WithBinarize restores the default 0/1 collapse.
func WithBinarize() Option {
	return func(o *Options) { o.binarize = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{binarize: DefaultBinarize}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
