// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and methods MUST return these sentinels (possibly
// wrapped with call-site context) and tests MUST check them via errors.Is.
// No method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf("Method", ErrX)
// so callers can still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index/value -> structural violations (square/symmetric).

var (
	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested or inferred shape is invalid
	// (rows<=0 or cols<=0), e.g. FromEdges on an empty edge list without WithShape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates incompatible lengths between operands, e.g. a
	// column-weight vector whose length differs from Cols(), or src/dst edge
	// slices of different lengths.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidValue signals a NaN, ±Inf or negative entry. Incidence matrices
	// carry nonnegative finite masses only.
	ErrInvalidValue = errors.New("matrix: invalid entry value")

	// ErrOptionViolation indicates that a WithX(...) option received a
	// meaningless value (e.g. WithShape(0, 3)).
	ErrOptionViolation = errors.New("matrix: invalid option value")
)

// matrixErrorf wraps err with the given method tag.
// Complexity: O(1).
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
