// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for constructors and queries.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densest/matrix"
)

// mustEdges builds a matrix from (src, dst) pairs or fails the test.
func mustEdges(t *testing.T, src, dst []int, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	m, err := matrix.FromEdges(src, dst, opts...)
	if err != nil {
		t.Fatalf("FromEdges(%v, %v): %v", src, dst, err)
	}

	return m
}
