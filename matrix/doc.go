// Package matrix offers the sparse incidence matrix consumed by the dense
// block detector.
//
// The matrix package provides:
//
//   - Sparse, an m×n nonnegative matrix stored in both CSR and CSC form so
//     rows and columns can be scanned in O(degree).
//   - Constructors: NewSparse (explicit entries), FromEdges ((src, dst) id
//     pairs, binarized by default), FromDense and FromUndirected (gonum
//     adapters).
//   - Queries: RowSums, ColSums, Mass, IsSymmetric.
//   - Copy-on-write helpers: Clone and ScaleColumns, plus ZeroBlock, the one
//     in-place mutator, meant for a private working copy.
//   - SubsetAboveDegree, a pre-filter that drops low-degree rows and columns
//     and returns index maps back to the original ids.
//
// Errors are package sentinels (ErrShapeMismatch, ErrNotSquare, ...) wrapped
// with call-site context; match them with errors.Is.
package matrix
