// Package peel finds dense blocks in sparse weighted incidence matrices by
// greedy peeling, the core of Fraudar-style fraud-ring detection.
//
// Overview:
//
//   - Bipartite / Detect: rows and columns are two node sides. The engine
//     keeps one mintree.Tree per side holding each node's residual weighted
//     degree, repeatedly deletes the cheaper of the two side minima (rows win
//     ties), and returns the prefix of the deletion sequence with the highest
//     average density mass / (|R|+|C|).
//   - Monopartite: the same discipline on a single symmetric node set
//     (undirected weighted graph), density mass / |S|.
//   - DetectMultiple: runs a Detector k times on a private copy of the
//     matrix, zeroing each reported block before the next round.
//   - SearchSchemes: runs one pass per weighting scheme concurrently.
//
// Size constraint (bipartite only):
//
//   - WithMaxSize(k):          |R|+|C| ≤ k.
//   - WithMaxShape(rows, cols): |R| ≤ rows and |C| ≤ cols.
//
// The first checkpoint that satisfies the constraint is always committed,
// even when its density is lower than the unpeeled graph; afterwards only
// strict improvements are committed. Without a constraint this means the
// full graph is returned only when no deletion happened at all.
//
// Determinism:
//
//   - Index ties resolve to the lowest id; side ties resolve to the row.
//     Two runs over the same matrix produce identical deletion logs.
//
// Observability:
//
//   - WithLogger(zerolog.Logger) emits structured events: "peel: init"
//     (avg, shape), "peel: progress" at Debug every WithLogEvery(n) surviving
//     nodes, and "peel: best" (avg, deleted, shape). The default is
//     zerolog.Nop().
//   - WithOnDelete(func(Step)) observes every deletion.
//
// Errors (sentinel, match with errors.Is):
//
//   - matrix.ErrShapeMismatch  weight vector length differs from Cols().
//   - matrix.ErrNotSquare      Monopartite on a non-square matrix.
//   - mintree.ErrEmptyIndex    internal invariant breach; signals a defect.
//   - matrix.ErrBadShape       a matrix with no rows or no columns.
//   - ErrOptionViolation       invalid option value, k < 1, or a size
//     option passed to Monopartite.
//
// Thread safety: each call owns its indices and logs; SearchSchemes is the
// only function that starts goroutines. Each of them works on a clone, and
// the one OnDelete hook they share is called under a mutex.
package peel
