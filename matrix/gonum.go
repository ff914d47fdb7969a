// SPDX-License-Identifier: MIT

// Package matrix: gonum adapters.
//
// These adapters let callers feed the detector from gonum types they already
// hold (dense mat.Matrix fixtures, weighted undirected graphs) and export a
// Sparse back to mat.Dense for linear-algebra tooling.
package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"
)

// FromDense copies every nonzero cell of m into a new Sparse.
// Errors: ErrNilMatrix for nil m; ErrBadShape for a 0-sized m;
// ErrInvalidValue for NaN/Inf/negative cells.
// Complexity: O(r*c).
func FromDense(m mat.Matrix) (*Sparse, error) {
	if m == nil {
		return nil, matrixErrorf("FromDense", ErrNilMatrix)
	}
	r, c := m.Dims()
	entries := make([]Entry, 0, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Value: v})
			}
		}
	}
	s, err := NewSparse(r, c, entries)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	return s, nil
}

// ToDense materializes s as a gonum *mat.Dense.
// Complexity: O(r*c) memory; use only on small matrices.
func (s *Sparse) ToDense() *mat.Dense {
	d := mat.NewDense(s.r, s.c, nil)
	for i := 0; i < s.r; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			d.Set(i, s.colIdx[k], s.rowVal[k])
		}
	}

	return d
}

// FromUndirected builds the symmetric weighted adjacency matrix of g.
// Node ids are remapped densely in ascending id order; the returned slice
// maps matrix index → gonum node id. Each undirected edge {u,v} fills both
// (u,v) and (v,u) with its weight.
//
// Errors: ErrNilMatrix for nil g; ErrBadShape for a graph without nodes;
// ErrInvalidValue for negative or non-finite weights.
// Complexity: O(V log V + E).
func FromUndirected(g graph.WeightedUndirected) (*Sparse, []int64, error) {
	if g == nil {
		return nil, nil, matrixErrorf("FromUndirected", ErrNilMatrix)
	}
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return nil, nil, matrixErrorf("FromUndirected", ErrBadShape)
	}

	ids := make([]int64, len(nodes))
	for k, n := range nodes {
		ids[k] = n.ID()
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	index := make(map[int64]int, len(ids))
	for k, id := range ids {
		index[id] = k
	}

	var entries []Entry
	for _, uid := range ids {
		for _, v := range graph.NodesOf(g.From(uid)) {
			w, ok := g.Weight(uid, v.ID())
			if !ok || w == 0 {
				continue
			}
			// From lists each neighbor once per endpoint, so both
			// orientations are emitted across the two endpoint scans.
			entries = append(entries, Entry{Row: index[uid], Col: index[v.ID()], Value: w})
		}
	}
	s, err := NewSparse(len(ids), len(ids), entries)
	if err != nil {
		return nil, nil, fmt.Errorf("FromUndirected: %w", err)
	}

	return s, ids, nil
}
