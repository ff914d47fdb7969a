// Package densest finds dense blocks in sparse nonnegative matrices:
// groups of rows and columns that interact far more than the rest of the
// data, such as a ring of accounts all following the same handful of pages.
//
// 🚀 What is densest?
//
//	A small, deterministic toolkit built on greedy peeling:
//		• Sparse matrices: CSR+CSC storage, edge-list and gonum ingestion
//		• Column weighting: uniform, inverse-sqrt, inverse-log suspiciousness
//		• Indexed min-heap: lowest residual degree first, decrease in place
//		• Bipartite peeling (Fraudar-style) with size constraints
//		• Monopartite peeling (Charikar) on symmetric adjacency matrices
//		• Multi-block extraction and a concurrent search across schemes
//
// Everything is organized under four subpackages:
//
//	matrix/    — Sparse storage, builders, sums, block mass and suppression
//	weighting/ — column-weight schemes and the weighted matrix W
//	mintree/   — indexed binary min-heap with tombstoned removals
//	peel/      — the peeling engines, multi-block driver and scheme search
//
// Quick ASCII example (rows × cols, • = 1):
//
//	    0 1 2 3 4
//	  0 • • • . .
//	  1 • • • . .
//	  2 • • • . .
//	  3 . . . • •
//	  4 . . . • .
//
// peel.Detect with the uniform scheme reports rows {0,1,2} × cols {0,1,2}
// with average density 9/6 = 1.5.
//
// A runnable demo lives in examples/.
//
//	go get github.com/katalvlaran/densest
package densest
