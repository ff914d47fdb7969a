package peel

import (
	"fmt"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/weighting"
)

// Detector runs one peeling pass on a matrix. DetectMultiple hands it the
// current working copy, which it must treat as read-only.
type Detector func(*matrix.Sparse) (*Result, error)

// DetectorFor returns a bipartite Detector using scheme s. Column weights are
// recomputed on every call, so each round weighs the matrix as it stands
// after earlier blocks were suppressed.
func DetectorFor(s weighting.Scheme, opts ...Option) Detector {
	return func(m *matrix.Sparse) (*Result, error) {
		return Detect(m, s, opts...)
	}
}

// MonopartiteDetector returns a Detector running Monopartite.
func MonopartiteDetector(opts ...Option) Detector {
	return func(m *matrix.Sparse) (*Result, error) {
		return Monopartite(m, opts...)
	}
}

// DetectMultiple extracts k dense blocks in sequence. It clones m, and for
// each round runs detect on the clone, records the result, then zeroes every
// nonzero cell inside the reported block (rows × cols only; other cells on
// the same rows or columns stay live). m itself is never modified.
//
// Errors: matrix.ErrNilMatrix, ErrNilDetector, ErrOptionViolation (k < 1),
// or the first error returned by detect (no partial results are returned).
func DetectMultiple(m *matrix.Sparse, detect Detector, k int) ([]*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("peel: DetectMultiple: %w", err)
	}
	if detect == nil {
		return nil, ErrNilDetector
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be positive (%d)", ErrOptionViolation, k)
	}

	cur := m.Clone()
	out := make([]*Result, 0, k)
	for round := 0; round < k; round++ {
		res, err := detect(cur)
		if err != nil {
			return nil, fmt.Errorf("peel: DetectMultiple: round %d: %w", round, err)
		}
		out = append(out, res)
		if _, err = cur.ZeroBlock(res.Rows, res.Cols); err != nil {
			return nil, fmt.Errorf("peel: DetectMultiple: round %d: %w", round, err)
		}
	}

	return out, nil
}
