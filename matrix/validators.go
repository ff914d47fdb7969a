// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// validateEntry checks index bounds and the nonnegative finite value policy.
func validateEntry(rows, cols int, e Entry) error {
	if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
		return ErrOutOfRange
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) || e.Value < 0 {
		return ErrInvalidValue
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(s *Sparse) error {
	if s == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare checks that s is non-nil and Rows == Cols.
// Complexity: O(1).
// AI-Hints: Use before the monopartite engine or any symmetric-node-set routine.
func ValidateSquare(s *Sparse) error {
	if s == nil {
		return ErrNilMatrix
	}
	if s.r != s.c {
		return ErrNotSquare
	}

	return nil
}

// ValidateVecLen ensures a per-column vector has exactly n entries, each
// finite and nonnegative.
// Complexity: O(n).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return ErrShapeMismatch
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidValue
		}
	}

	return nil
}
