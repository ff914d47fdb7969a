package peel_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/peel"
	"github.com/katalvlaran/densest/weighting"
)

// randomMatrix returns an m×n 0/1 matrix with about nnz random cells.
func randomMatrix(b *testing.B, m, n, nnz int, seed int64) *matrix.Sparse {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	src := make([]int, nnz)
	dst := make([]int, nnz)
	for k := range src {
		src[k], dst[k] = r.Intn(m), r.Intn(n)
	}
	s, err := matrix.FromEdges(src, dst, matrix.WithShape(m, n))
	if err != nil {
		b.Fatalf("FromEdges: %v", err)
	}

	return s
}

// BenchmarkDetect measures one bipartite pass per scheme on growing inputs.
func BenchmarkDetect(b *testing.B) {
	cases := []struct {
		m, n, nnz int
	}{
		{1000, 500, 10000},
		{10000, 5000, 100000},
	}
	for _, tc := range cases {
		m := randomMatrix(b, tc.m, tc.n, tc.nnz, 42)
		for _, s := range weighting.Schemes() {
			b.Run(fmt.Sprintf("%dx%d/%v", tc.m, tc.n, s), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := peel.Detect(m, s); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkMonopartite measures Charikar peeling on a random symmetric graph.
func BenchmarkMonopartite(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	const n, edges = 5000, 50000
	var src, dst []int
	for k := 0; k < edges; k++ {
		u, v := r.Intn(n), r.Intn(n)
		src, dst = append(src, u, v), append(dst, v, u)
	}
	adj, err := matrix.FromEdges(src, dst, matrix.WithShape(n, n))
	if err != nil {
		b.Fatalf("FromEdges: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := peel.Monopartite(adj); err != nil {
			b.Fatal(err)
		}
	}
}
