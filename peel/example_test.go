package peel_test

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/peel"
	"github.com/katalvlaran/densest/weighting"
)

// ExampleDetect finds a 3×3 block of users × products that all rated each
// other, next to a few unrelated ratings.
func ExampleDetect() {
	m, _ := matrix.FromEdges(
		[]int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 4, 3},
		[]int{0, 1, 2, 0, 1, 2, 0, 1, 2, 3, 3, 4},
	)
	res, err := peel.Detect(m, weighting.Uniform)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rows=%v cols=%v score=%.2f\n", res.Rows, res.Cols, res.Score)
	// Output: rows=[0 1 2] cols=[0 1 2] score=1.50
}

// ExampleDetectMultiple suppresses each block before looking for the next.
func ExampleDetectMultiple() {
	var src, dst []int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			src, dst = append(src, i), append(dst, j)
		}
	}
	for i := 3; i < 5; i++ {
		for j := 3; j < 5; j++ {
			src, dst = append(src, i), append(dst, j)
		}
	}
	m, _ := matrix.FromEdges(src, dst)

	blocks, err := peel.DetectMultiple(m, peel.DetectorFor(weighting.Uniform), 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for k, b := range blocks {
		fmt.Printf("block %d: rows=%v cols=%v score=%.2f\n", k, b.Rows, b.Cols, b.Score)
	}
	// Output:
	// block 0: rows=[0 1 2] cols=[0 1 2] score=1.50
	// block 1: rows=[3 4] cols=[3 4] score=1.00
}

// ExampleMonopartite peels a gonum graph: a 4-clique with a two-edge tail.
func ExampleMonopartite() {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, e := range [][2]int64{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 5}} {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e[0]), simple.Node(e[1]), 1))
	}
	adj, ids, _ := matrix.FromUndirected(g)

	res, err := peel.Monopartite(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nodes := make([]int64, len(res.Rows))
	for k, i := range res.Rows {
		nodes[k] = ids[i]
	}
	fmt.Printf("nodes=%v score=%.2f\n", nodes, res.Score)
	// Output: nodes=[0 1 2 3] score=3.00
}
