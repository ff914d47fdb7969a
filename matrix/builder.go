// SPDX-License-Identifier: MIT
// Package matrix provides constructors that turn raw (source, destination)
// id pairs into a Sparse incidence matrix, preserving deterministic layout
// and enforcing strict fail-fast validation.
package matrix

import "fmt"

const methodFromEdges = "FromEdges"

// FromEdges builds the incidence matrix M with M[src[k], dst[k]] = 1 for every k.
//
// Shape: (max(src)+1) × (max(dst)+1) unless WithShape(rows, cols) is given.
// Duplicates collapse to 1 by default (binarized); WithCounts() sums them instead.
//
// Errors (in priority order):
//   - ErrOptionViolation: a WithX option received a meaningless value.
//   - ErrShapeMismatch:   len(src) != len(dst).
//   - ErrBadShape:        empty edge list and no explicit shape.
//   - ErrOutOfRange:      negative id, or id beyond an explicit shape.
//
// Complexity: O(E log E) time, O(E) memory.
func FromEdges(src, dst []int, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, matrixErrorf(methodFromEdges, o.err)
	}
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%s: len(src)=%d len(dst)=%d: %w",
			methodFromEdges, len(src), len(dst), ErrShapeMismatch)
	}

	rows, cols := o.rows, o.cols
	if rows == 0 { // shape not fixed: infer from ids
		if len(src) == 0 {
			return nil, matrixErrorf(methodFromEdges, ErrBadShape)
		}
		for k := range src {
			if src[k] < 0 || dst[k] < 0 {
				return nil, fmt.Errorf("%s: edge %d (%d,%d): %w",
					methodFromEdges, k, src[k], dst[k], ErrOutOfRange)
			}
			rows = max(rows, src[k]+1)
			cols = max(cols, dst[k]+1)
		}
	}

	entries := make([]Entry, len(src))
	for k := range src {
		entries[k] = Entry{Row: src[k], Col: dst[k], Value: 1}
	}
	s, err := NewSparse(rows, cols, entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromEdges, err)
	}
	if o.binarize {
		s.binarize()
	}

	return s, nil
}

// binarize sets every stored value to 1. Structure is unchanged.
func (s *Sparse) binarize() {
	for k := range s.rowVal {
		s.rowVal[k] = 1
	}
	for k := range s.colVal {
		s.colVal[k] = 1
	}
}
