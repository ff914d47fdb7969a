// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densest/matrix"
)

// TestWithShape_Violations verifies non-positive shapes surface as
// ErrOptionViolation before any id is inspected.
func TestWithShape_Violations(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, -1}} {
		_, err := matrix.FromEdges([]int{0}, []int{0}, matrix.WithShape(tc.r, tc.c))
		require.ErrorIs(t, err, matrix.ErrOptionViolation, "shape %dx%d", tc.r, tc.c)
	}
}

// TestBinarizeToggle checks the last counting option wins.
func TestBinarizeToggle(t *testing.T) {
	src, dst := []int{0, 0, 0}, []int{1, 1, 1}

	m, err := matrix.FromEdges(src, dst, matrix.WithCounts(), matrix.WithBinarize())
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Total())

	m, err = matrix.FromEdges(src, dst, matrix.WithBinarize(), matrix.WithCounts())
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.Total())
	assert.Equal(t, 1, m.NNZ())
}

// TestNilOptionIgnored makes sure a nil Option is skipped.
func TestNilOptionIgnored(t *testing.T) {
	m, err := matrix.FromEdges([]int{1}, []int{2}, nil)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.True(t, matrix.DefaultBinarize)
}
