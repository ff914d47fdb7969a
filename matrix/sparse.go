// SPDX-License-Identifier: MIT

// Package matrix: Sparse storage.
//
// Sparse keeps every nonzero twice: once row-major (CSR) for row-wise
// iteration and once column-major (CSC) for column-wise iteration. The greedy
// peeling engine needs both directions on every deletion, so paying 2×nnz
// memory buys O(deg) neighbor scans on either side.
//
// Invariants (held by every constructor and mutator):
//   - within a row, column indices are strictly ascending; within a column,
//     row indices are strictly ascending;
//   - no stored value is zero, negative, NaN or ±Inf;
//   - CSR and CSC describe the same set of cells.
package matrix

import (
	"sort"
)

// Entry is a single (row, col, value) triple used to build a Sparse matrix.
type Entry struct {
	Row   int     // row index in [0, Rows)
	Col   int     // column index in [0, Cols)
	Value float64 // nonnegative finite mass
}

// Sparse is an m×n nonnegative sparse matrix with CSR and CSC views.
type Sparse struct {
	r, c int // number of rows and columns

	rowPtr []int     // len r+1; row i occupies [rowPtr[i], rowPtr[i+1])
	colIdx []int     // column index per CSR slot
	rowVal []float64 // value per CSR slot

	colPtr []int     // len c+1; column j occupies [colPtr[j], colPtr[j+1])
	rowIdx []int     // row index per CSC slot
	colVal []float64 // value per CSC slot
}

// NewSparse builds a rows×cols matrix from entries.
// Stage 1 (Validate): shape > 0, every index in range, every value finite and ≥ 0.
// Stage 2 (Prepare): sort by (row, col) and merge duplicates by summation.
// Stage 3 (Finalize): drop zero cells and build CSR + CSC.
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func NewSparse(rows, cols int, entries []Entry) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewSparse", ErrBadShape)
	}
	for _, e := range entries {
		if err := validateEntry(rows, cols, e); err != nil {
			return nil, matrixErrorf("NewSparse", err)
		}
	}

	// Sort a private copy; the caller's slice is left untouched.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	// Merge duplicates in place and drop explicit zeros.
	merged := sorted[:0]
	for _, e := range sorted {
		n := len(merged)
		if n > 0 && merged[n-1].Row == e.Row && merged[n-1].Col == e.Col {
			merged[n-1].Value += e.Value
			continue
		}
		merged = append(merged, e)
	}
	kept := merged[:0]
	for _, e := range merged {
		if e.Value != 0 {
			kept = append(kept, e)
		}
	}

	return fromSortedEntries(rows, cols, kept), nil
}

// fromSortedEntries assumes entries are valid, unique, nonzero and sorted by
// (row, col). It never fails.
func fromSortedEntries(rows, cols int, entries []Entry) *Sparse {
	nnz := len(entries)
	s := &Sparse{
		r:      rows,
		c:      cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, nnz),
		rowVal: make([]float64, nnz),
		colPtr: make([]int, cols+1),
		rowIdx: make([]int, nnz),
		colVal: make([]float64, nnz),
	}

	// CSR: entries are already row-major.
	for k, e := range entries {
		s.rowPtr[e.Row+1]++
		s.colIdx[k] = e.Col
		s.rowVal[k] = e.Value
	}
	for i := 0; i < rows; i++ {
		s.rowPtr[i+1] += s.rowPtr[i]
	}

	// CSC: counting sort by column. Walking entries in row order keeps row
	// indices ascending inside each column.
	for _, e := range entries {
		s.colPtr[e.Col+1]++
	}
	for j := 0; j < cols; j++ {
		s.colPtr[j+1] += s.colPtr[j]
	}
	next := make([]int, cols)
	copy(next, s.colPtr[:cols])
	for _, e := range entries {
		p := next[e.Col]
		s.rowIdx[p] = e.Row
		s.colVal[p] = e.Value
		next[e.Col]++
	}

	return s
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.c }

// Dims returns (rows, cols); it mirrors gonum's mat.Matrix.Dims.
func (s *Sparse) Dims() (int, int) { return s.r, s.c }

// NNZ returns the number of stored nonzero cells.
func (s *Sparse) NNZ() int { return len(s.rowVal) }

// At returns the value at (i, j), 0 for an empty cell.
// Complexity: O(log deg(i)).
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, matrixErrorf("At", ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.rowVal[k], nil
	}

	return 0, nil
}

// Row returns the column indices and values of the nonzeros in row i.
// The returned slices alias internal storage and MUST NOT be modified.
// Out-of-range i yields empty slices.
// Complexity: O(1).
func (s *Sparse) Row(i int) ([]int, []float64) {
	if i < 0 || i >= s.r {
		return nil, nil
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return s.colIdx[lo:hi], s.rowVal[lo:hi]
}

// Col returns the row indices and values of the nonzeros in column j.
// The returned slices alias internal storage and MUST NOT be modified.
func (s *Sparse) Col(j int) ([]int, []float64) {
	if j < 0 || j >= s.c {
		return nil, nil
	}
	lo, hi := s.colPtr[j], s.colPtr[j+1]

	return s.rowIdx[lo:hi], s.colVal[lo:hi]
}

// Entries returns a fresh row-major copy of all stored cells.
func (s *Sparse) Entries() []Entry {
	out := make([]Entry, 0, s.NNZ())
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			out = append(out, Entry{Row: i, Col: s.colIdx[k], Value: s.rowVal[k]})
		}
	}

	return out
}
