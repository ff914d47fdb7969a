// Package peel_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures: complete bipartite blocks, planted dense blocks
//     over seeded random noise.
//   • Jaccard overlap between a detected block and a planted one.

package peel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/peel"
)

// block is a planted (row-set, column-set) pair.
type block struct {
	rows, cols []int
}

// span returns the block [r0, r1) × [c0, c1).
func span(r0, r1, c0, c1 int) block {
	var b block
	for i := r0; i < r1; i++ {
		b.rows = append(b.rows, i)
	}
	for j := c0; j < c1; j++ {
		b.cols = append(b.cols, j)
	}

	return b
}

// planted builds an m×n 0/1 matrix with Bernoulli(p) noise from a seeded RNG
// plus every cell of each block set to 1.
func planted(t *testing.T, seed int64, m, n int, p float64, blocks ...block) *matrix.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var src, dst []int
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				src, dst = append(src, i), append(dst, j)
			}
		}
	}
	for _, b := range blocks {
		for _, i := range b.rows {
			for _, j := range b.cols {
				src, dst = append(src, i), append(dst, j)
			}
		}
	}

	return mustEdges(t, src, dst, matrix.WithShape(m, n))
}

// mustEdges builds a matrix from (src, dst) pairs or fails the test.
func mustEdges(t *testing.T, src, dst []int, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	m, err := matrix.FromEdges(src, dst, opts...)
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}

	return m
}

// complete returns the all-ones rows×cols matrix.
func complete(t *testing.T, rows, cols int) *matrix.Sparse {
	t.Helper()
	b := span(0, rows, 0, cols)

	return planted(t, 0, rows, cols, 0, b)
}

// jaccard = (|R∩R'| + |C∩C'|) / (|R∪R'| + |C∪C'|).
func jaccard(res *peel.Result, b block) float64 {
	ri, ru := overlap(res.Rows, b.rows)
	ci, cu := overlap(res.Cols, b.cols)
	if ru+cu == 0 {
		return 0
	}

	return float64(ri+ci) / float64(ru+cu)
}

// overlap returns |a∩b| and |a∪b| for duplicate-free slices.
func overlap(a, b []int) (inter, union int) {
	seen := make(map[int]bool, len(a))
	for _, x := range a {
		seen[x] = true
	}
	for _, x := range b {
		if seen[x] {
			inter++
		}
	}

	return inter, len(a) + len(b) - inter
}

// remaining replays log[:k] against full node sets.
func remaining(rows, cols int, log []peel.Deletion, k int) ([]int, []int) {
	aliveR := make([]bool, rows)
	aliveC := make([]bool, cols)
	for i := range aliveR {
		aliveR[i] = true
	}
	for j := range aliveC {
		aliveC[j] = true
	}
	for _, d := range log[:k] {
		if d.Side == peel.RowSide {
			aliveR[d.ID] = false
		} else {
			aliveC[d.ID] = false
		}
	}
	var rs, cs []int
	for i, ok := range aliveR {
		if ok {
			rs = append(rs, i)
		}
	}
	for j, ok := range aliveC {
		if ok {
			cs = append(cs, j)
		}
	}

	return rs, cs
}
