package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/densest/matrix"
)

// ExampleFromEdges builds a 0/1 incidence matrix from (source, destination) pairs.
func ExampleFromEdges() {
	// Users 0..2 rate products 0..3; the repeated (1,1) rating collapses to 1.
	m, err := matrix.FromEdges(
		[]int{0, 0, 1, 1, 1, 2},
		[]int{0, 1, 1, 1, 3, 3},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, cols := m.Dims()
	fmt.Printf("shape=%dx%d nnz=%d\n", rows, cols, m.NNZ())
	fmt.Println("col sums:", m.ColSums())
	// Output:
	// shape=3x4 nnz=5
	// col sums: [1 2 0 2]
}

// ExampleSparse_ZeroBlock suppresses one reported block on a working copy.
func ExampleSparse_ZeroBlock() {
	m, _ := matrix.FromEdges([]int{0, 0, 1, 1}, []int{0, 1, 0, 1})
	work := m.Clone()
	cleared, _ := work.ZeroBlock([]int{0}, []int{0, 1})
	fmt.Println(cleared, work.NNZ(), m.NNZ())
	// Output: 2 2 4
}
