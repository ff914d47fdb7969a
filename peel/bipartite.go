// Package peel implements greedy-decreasing peeling on bipartite graphs.
//
// The engine repeatedly deletes whichever surviving row or column currently
// carries the least weighted degree, and remembers the prefix of the deletion
// sequence whose remaining subgraph had the highest average density
// mass / (|R|+|C|).
//
// Complexity:
//
//   - Time:  O((m + n + nnz) log(m + n)): every node is deleted once and every
//     nonzero triggers at most one Decrease on the opposite index.
//   - Space: O(m + n + nnz) for W, the two indices and the deletion log.
package peel

import (
	"fmt"

	"golang.org/x/tools/container/intsets"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/mintree"
	"github.com/katalvlaran/densest/weighting"
)

// Bipartite finds the densest block of m under column weights w.
//
// Preconditions and validation (in order):
//  1. options are valid (ErrOptionViolation).
//  2. m is non-nil (matrix.ErrNilMatrix).
//  3. len(w) == m.Cols() (matrix.ErrShapeMismatch).
//  4. m has at least one row and one column (matrix.ErrBadShape).
//
// The mass of a block is the sum of W[i][j] = m[i][j]·w[j] over its cells.
func Bipartite(m *matrix.Sparse, w []float64, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	W, err := weighting.Weighted(m, w)
	if err != nil {
		return nil, fmt.Errorf("peel: Bipartite: %w", err)
	}

	return peelBipartite(W, cfg)
}

// Detect weighs m with scheme s and runs Bipartite on the result.
func Detect(m *matrix.Sparse, s weighting.Scheme, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	model, err := weighting.Apply(m, s)
	if err != nil {
		return nil, fmt.Errorf("peel: Detect(%v): %w", s, err)
	}

	return peelBipartite(model.W, cfg)
}

// AveDegree runs Detect with uniform column weights.
func AveDegree(m *matrix.Sparse, opts ...Option) (*Result, error) {
	return Detect(m, weighting.Uniform, opts...)
}

// SqrtWeightedAveDegree runs Detect with inverse-sqrt column weights.
func SqrtWeightedAveDegree(m *matrix.Sparse, opts ...Option) (*Result, error) {
	return Detect(m, weighting.InverseSqrt, opts...)
}

// LogWeightedAveDegree runs Detect with inverse-log column weights.
func LogWeightedAveDegree(m *matrix.Sparse, opts ...Option) (*Result, error) {
	return Detect(m, weighting.InverseLog, opts...)
}

// bipartiteRunner holds the mutable state of one bipartite pass. Both sides
// share the same deletion logic; the arrays are indexed by Side.
type bipartiteRunner struct {
	w     *matrix.Sparse   // weighted matrix; read-only
	cfg   Options          // resolved options
	trees [2]*mintree.Tree // residual weighted degree per side
	alive [2][]bool        // membership of R (RowSide) and C (ColSide)
	size  [2]int           // |R|, |C|
	score float64          // mass of W restricted to (R, C)
	log   []Deletion       // append-only deletion log

	bestScore float64
	bestCount int
	committed bool
}

func peelBipartite(W *matrix.Sparse, cfg Options) (*Result, error) {
	rows, cols := W.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("peel: shape (%d, %d): %w", rows, cols, matrix.ErrBadShape)
	}
	r := &bipartiteRunner{
		w:     W,
		cfg:   cfg,
		alive: [2][]bool{make([]bool, rows), make([]bool, cols)},
		size:  [2]int{rows, cols},
		score: W.Total(),
		log:   make([]Deletion, 0, rows+cols),
	}
	for i := range r.alive[RowSide] {
		r.alive[RowSide][i] = true
	}
	for j := range r.alive[ColSide] {
		r.alive[ColSide][j] = true
	}
	r.bestScore = r.score / float64(rows+cols)
	cfg.Logger.Info().
		Float64("avg", r.bestScore).
		Int("rows", rows).
		Int("cols", cols).
		Msg("peel: init")

	var err error
	if r.trees[RowSide], err = mintree.New(W.RowSums()); err != nil {
		return nil, fmt.Errorf("peel: row index: %w", err)
	}
	if r.trees[ColSide], err = mintree.New(W.ColSums()); err != nil {
		return nil, fmt.Errorf("peel: col index: %w", err)
	}

	if err = r.run(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// run is the main peeling loop; it stops once either side is empty.
func (r *bipartiteRunner) run() error {
	for r.size[RowSide] > 0 && r.size[ColSide] > 0 {
		if remain := r.size[RowSide] + r.size[ColSide]; remain%r.cfg.LogEvery == 0 {
			r.cfg.Logger.Debug().Int("remaining", remain).Msg("peel: progress")
		}

		nextRow, rowDelta, err := r.trees[RowSide].ExtractMin()
		if err != nil {
			return fmt.Errorf("peel: rows: %w", err)
		}
		nextCol, colDelta, err := r.trees[ColSide].ExtractMin()
		if err != nil {
			return fmt.Errorf("peel: cols: %w", err)
		}

		// Equal deltas delete the row.
		side, id, delta := RowSide, nextRow, rowDelta
		if rowDelta > colDelta {
			side, id, delta = ColSide, nextCol, colDelta
		}
		if err = r.remove(side, id, delta); err != nil {
			return err
		}
		r.checkpoint(side, id, delta)
	}

	return nil
}

// remove deletes id from side: it discharges delta from the score, lowers
// every still-active neighbor on the other side by the severed edge weight,
// and pins id out of its index.
func (r *bipartiteRunner) remove(side Side, id int, delta float64) error {
	r.score -= delta

	var nbrs []int
	var vals []float64
	if side == RowSide {
		nbrs, vals = r.w.Row(id)
	} else {
		nbrs, vals = r.w.Col(id)
	}
	other := side.Other()
	for k, j := range nbrs {
		if !r.alive[other][j] {
			continue
		}
		if err := r.trees[other].Decrease(j, vals[k]); err != nil {
			return fmt.Errorf("peel: remove %v %d: %w", side, id, err)
		}
	}

	r.alive[side][id] = false
	r.size[side]--
	if err := r.trees[side].PinInfinite(id); err != nil {
		return fmt.Errorf("peel: remove %v %d: %w", side, id, err)
	}
	r.log = append(r.log, Deletion{Side: side, ID: id})

	return nil
}

// checkpoint evaluates the subgraph left after the latest deletion. The
// first checkpoint that satisfies the size constraint is always committed,
// even when it is worse than the unpeeled graph; later ones must improve.
func (r *bipartiteRunner) checkpoint(side Side, id int, delta float64) {
	st := Step{
		Index: len(r.log),
		Side:  side,
		ID:    id,
		Delta: delta,
		Score: r.score,
		Rows:  r.size[RowSide],
		Cols:  r.size[ColSide],
	}
	if st.Rows > 0 && st.Cols > 0 {
		st.Evaluated = true
		st.Avg = r.score / float64(st.Rows+st.Cols)
		if (st.Avg > r.bestScore || !r.committed) && r.cfg.fits(st.Rows, st.Cols) {
			r.bestScore = st.Avg
			r.bestCount = st.Index
			r.committed = true
			st.Committed = true
		}
	}
	r.cfg.OnDelete(st)
}

// result replays the first bestCount log entries against the full node sets.
func (r *bipartiteRunner) result() *Result {
	rows, cols := r.w.Dims()
	var rs, cs intsets.Sparse
	for i := 0; i < rows; i++ {
		rs.Insert(i)
	}
	for j := 0; j < cols; j++ {
		cs.Insert(j)
	}
	for _, d := range r.log[:r.bestCount] {
		if d.Side == RowSide {
			rs.Remove(d.ID)
		} else {
			cs.Remove(d.ID)
		}
	}
	r.cfg.Logger.Info().
		Float64("avg", r.bestScore).
		Int("deleted", r.bestCount).
		Int("rows", rs.Len()).
		Int("cols", cs.Len()).
		Msg("peel: best")

	return &Result{
		Rows:    rs.AppendTo(make([]int, 0, rs.Len())),
		Cols:    cs.AppendTo(make([]int, 0, cs.Len())),
		Score:   r.bestScore,
		Deleted: r.bestCount,
		Log:     r.log,
	}
}
