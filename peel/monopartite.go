package peel

import (
	"fmt"

	"golang.org/x/tools/container/intsets"

	"github.com/katalvlaran/densest/matrix"
	"github.com/katalvlaran/densest/mintree"
)

// Monopartite finds the densest node subset of an undirected weighted graph
// given as its symmetric adjacency matrix (Charikar's greedy peeling).
//
// Each undirected edge occupies two symmetric cells, so the mass of a node
// set S counts every internal edge twice and the density is mass / |S|.
// Deleting a node discharges twice its residual degree (its self-loop, if
// any, only once). The run stops with one node left; a checkpoint becomes
// the best only if it strictly improves on the best so far, starting from the
// full graph. Size options do not apply here and are rejected.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNotSquare, matrix.ErrBadShape (0×0),
// ErrOptionViolation (including WithMaxSize/WithMaxShape).
// Complexity: O((n + nnz) log n) time, O(n + nnz) space.
func Monopartite(adj *matrix.Sparse, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.sized() {
		return nil, fmt.Errorf("%w: size constraints apply to bipartite peeling only", ErrOptionViolation)
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("peel: Monopartite: %w", err)
	}

	n := adj.Rows()
	if n == 0 {
		return nil, fmt.Errorf("peel: Monopartite: %w", matrix.ErrBadShape)
	}
	tree, err := mintree.New(adj.RowSums())
	if err != nil {
		return nil, fmt.Errorf("peel: Monopartite: %w", err)
	}
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	remain := n
	score := adj.Total()
	bestScore := score / float64(n)
	bestCount := 0
	deleted := make([]Deletion, 0, n)
	cfg.Logger.Info().Float64("avg", bestScore).Int("nodes", n).Msg("peel: init")

	for remain > 1 {
		if remain%cfg.LogEvery == 0 {
			cfg.Logger.Debug().Int("remaining", remain).Msg("peel: progress")
		}
		u, delta, err := tree.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("peel: Monopartite: %w", err)
		}

		nbrs, vals := adj.Row(u)
		var self float64
		for k, v := range nbrs {
			if v == u {
				self = vals[k]
				continue
			}
			if !alive[v] {
				continue
			}
			if err = tree.Decrease(v, vals[k]); err != nil {
				return nil, fmt.Errorf("peel: Monopartite: remove %d: %w", u, err)
			}
		}
		score -= 2*delta - self // a loop is stored once, not twice
		alive[u] = false
		remain--
		if err = tree.PinInfinite(u); err != nil {
			return nil, fmt.Errorf("peel: Monopartite: remove %d: %w", u, err)
		}
		deleted = append(deleted, Deletion{Side: RowSide, ID: u})

		st := Step{
			Index:     len(deleted),
			Side:      RowSide,
			ID:        u,
			Delta:     delta,
			Score:     score,
			Rows:      remain,
			Cols:      remain,
			Avg:       score / float64(remain),
			Evaluated: true,
		}
		if st.Avg > bestScore {
			bestScore = st.Avg
			bestCount = st.Index
			st.Committed = true
		}
		cfg.OnDelete(st)
	}

	var keep intsets.Sparse
	for i := 0; i < n; i++ {
		keep.Insert(i)
	}
	for _, d := range deleted[:bestCount] {
		keep.Remove(d.ID)
	}
	nodes := keep.AppendTo(make([]int, 0, keep.Len()))
	cfg.Logger.Info().
		Float64("avg", bestScore).
		Int("deleted", bestCount).
		Int("nodes", len(nodes)).
		Msg("peel: best")

	return &Result{
		Rows:    nodes,
		Cols:    append([]int(nil), nodes...),
		Score:   bestScore,
		Deleted: bestCount,
		Log:     deleted,
	}, nil
}
