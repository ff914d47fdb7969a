// SPDX-License-Identifier: MIT
// Package matrix: aggregate queries and structural mutators on Sparse.
//
// Purpose:
//   - Degree-like sums (RowSums/ColSums) feeding column weighting and peeling.
//   - Block mass used to score a (row-set, column-set) pair.
//   - Copy-on-write helpers (Clone, ScaleColumns) and the single in-place
//     mutator ZeroBlock used by the multi-block driver on its private copy.
//
// Determinism:
//   - Every loop walks rows ascending, then slots ascending.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"golang.org/x/tools/container/intsets"
)

// RowSums returns r where r[i] = Σ_j s[i,j].
// Complexity: O(nnz).
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.r)
	for i := 0; i < s.r; i++ {
		out[i] = floats.Sum(s.rowVal[s.rowPtr[i]:s.rowPtr[i+1]])
	}

	return out
}

// ColSums returns c where c[j] = Σ_i s[i,j].
// Complexity: O(nnz).
func (s *Sparse) ColSums() []float64 {
	out := make([]float64, s.c)
	for j := 0; j < s.c; j++ {
		out[j] = floats.Sum(s.colVal[s.colPtr[j]:s.colPtr[j+1]])
	}

	return out
}

// Total returns the mass of the whole matrix.
func (s *Sparse) Total() float64 {
	return floats.Sum(s.rowVal)
}

// Mass returns Σ s[i,j] over i ∈ rows, j ∈ cols. Duplicate ids in rows are
// counted once per occurrence; callers pass sets.
// Complexity: O(|cols| + Σ_{i∈rows} deg(i)).
func (s *Sparse) Mass(rows, cols []int) (float64, error) {
	inCol := make([]bool, s.c)
	for _, j := range cols {
		if j < 0 || j >= s.c {
			return 0, matrixErrorf("Mass", ErrOutOfRange)
		}
		inCol[j] = true
	}

	partial := make([]float64, 0, len(rows))
	for _, i := range rows {
		if i < 0 || i >= s.r {
			return 0, matrixErrorf("Mass", ErrOutOfRange)
		}
		var acc float64
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if inCol[s.colIdx[k]] {
				acc += s.rowVal[k]
			}
		}
		partial = append(partial, acc)
	}

	return floats.Sum(partial), nil
}

// IsSymmetric reports whether s is square and s[i,j] == s[j,i] for all cells.
// Row i of the CSR view must equal column i of the CSC view, slot by slot.
// Complexity: O(nnz).
func (s *Sparse) IsSymmetric() bool {
	if s.r != s.c {
		return false
	}
	for i := 0; i < s.r; i++ {
		if s.rowPtr[i+1]-s.rowPtr[i] != s.colPtr[i+1]-s.colPtr[i] {
			return false
		}
		ro, co := s.rowPtr[i], s.colPtr[i]
		for k := 0; k < s.rowPtr[i+1]-ro; k++ {
			if s.colIdx[ro+k] != s.rowIdx[co+k] || s.rowVal[ro+k] != s.colVal[co+k] {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy; the result shares no storage with s.
// Complexity: O(r + c + nnz).
func (s *Sparse) Clone() *Sparse {
	return &Sparse{
		r:      s.r,
		c:      s.c,
		rowPtr: append([]int(nil), s.rowPtr...),
		colIdx: append([]int(nil), s.colIdx...),
		rowVal: append([]float64(nil), s.rowVal...),
		colPtr: append([]int(nil), s.colPtr...),
		rowIdx: append([]int(nil), s.rowIdx...),
		colVal: append([]float64(nil), s.colVal...),
	}
}

// ScaleColumns returns a new matrix W with W[i,j] = s[i,j]·w[j].
// Cells whose product is zero (w[j] == 0) are dropped.
// Errors: ErrShapeMismatch if len(w) != Cols(); ErrInvalidValue for NaN/Inf/negative weights.
// Complexity: O(nnz).
func (s *Sparse) ScaleColumns(w []float64) (*Sparse, error) {
	if err := ValidateVecLen(w, s.c); err != nil {
		return nil, matrixErrorf("ScaleColumns", err)
	}

	entries := make([]Entry, 0, s.NNZ())
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			j := s.colIdx[k]
			if v := s.rowVal[k] * w[j]; v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Value: v})
			}
		}
	}

	return fromSortedEntries(s.r, s.c, entries), nil
}

// ZeroBlock clears, in place, every nonzero cell (i, j) with i ∈ rows and
// j ∈ cols, and returns how many cells were cleared. Cells on a listed row
// but outside cols (or vice versa) stay untouched.
// Complexity: O(nnz + |rows| + |cols|).
//
// AI-Hints: only call this on a private working copy (see Clone).
func (s *Sparse) ZeroBlock(rows, cols []int) (int, error) {
	var rs, cs intsets.Sparse
	for _, i := range rows {
		if i < 0 || i >= s.r {
			return 0, matrixErrorf("ZeroBlock", ErrOutOfRange)
		}
		rs.Insert(i)
	}
	for _, j := range cols {
		if j < 0 || j >= s.c {
			return 0, matrixErrorf("ZeroBlock", ErrOutOfRange)
		}
		cs.Insert(j)
	}

	kept := make([]Entry, 0, s.NNZ())
	cleared := 0
	for i := 0; i < s.r; i++ {
		inRow := rs.Has(i)
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			j := s.colIdx[k]
			if inRow && cs.Has(j) {
				cleared++
				continue
			}
			kept = append(kept, Entry{Row: i, Col: j, Value: s.rowVal[k]})
		}
	}
	if cleared == 0 {
		return 0, nil
	}

	*s = *fromSortedEntries(s.r, s.c, kept)

	return cleared, nil
}

// SubsetAboveDegree keeps the columns whose sum exceeds colThres and the rows
// whose sum exceeds rowThres (both sums taken on s itself) and returns the
// induced submatrix together with the original ids of its rows and columns:
// sub row k is s row rowIdx[k], sub column k is s column colIdx[k].
//
// Errors: ErrBadShape when no row or no column survives.
// Complexity: O(r + c + nnz).
func (s *Sparse) SubsetAboveDegree(colThres, rowThres float64) (*Sparse, []int, []int, error) {
	rowSums, colSums := s.RowSums(), s.ColSums()

	newCol := make([]int, s.c)
	colIdx := make([]int, 0, s.c)
	for j, v := range colSums {
		newCol[j] = -1
		if v > colThres {
			newCol[j] = len(colIdx)
			colIdx = append(colIdx, j)
		}
	}
	rowIdx := make([]int, 0, s.r)
	for i, v := range rowSums {
		if v > rowThres {
			rowIdx = append(rowIdx, i)
		}
	}
	if len(rowIdx) == 0 || len(colIdx) == 0 {
		return nil, nil, nil, matrixErrorf("SubsetAboveDegree", ErrBadShape)
	}

	entries := make([]Entry, 0, s.NNZ())
	for ni, i := range rowIdx {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if nj := newCol[s.colIdx[k]]; nj >= 0 {
				entries = append(entries, Entry{Row: ni, Col: nj, Value: s.rowVal[k]})
			}
		}
	}

	return fromSortedEntries(len(rowIdx), len(colIdx), entries), rowIdx, colIdx, nil
}
