package mintree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densest/mintree"
)

func mustTree(t *testing.T, values []float64) *mintree.Tree {
	t.Helper()
	tr, err := mintree.New(values)
	require.NoError(t, err)

	return tr
}

// TestExtractMin_PeekOnly verifies ExtractMin does not remove the minimum.
func TestExtractMin_PeekOnly(t *testing.T) {
	tr := mustTree(t, []float64{5, 2, 7})

	id, v, err := tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 2.0, v)

	id2, _, err := tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, id, id2)
	assert.Equal(t, 3, tr.Active())
}

// TestTieBreakByID checks equal values resolve to the lowest id.
func TestTieBreakByID(t *testing.T) {
	tr := mustTree(t, []float64{3, 1, 1, 1})
	id, _, err := tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	require.NoError(t, tr.PinInfinite(1))
	id, _, err = tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	// Lowering node 0 to the tied value makes it win on id.
	require.NoError(t, tr.Decrease(0, 2))
	id, v, err := tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 1.0, v)
}

// TestDecreaseAndPin walks a full drain of the index.
func TestDecreaseAndPin(t *testing.T) {
	tr := mustTree(t, []float64{4, 6, 5})

	require.NoError(t, tr.Decrease(1, 3)) // 6 -> 3
	id, v, err := tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 3.0, v)

	for _, want := range []int{1, 0, 2} {
		got, _, err := tr.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		require.NoError(t, tr.PinInfinite(got))
	}
	assert.Equal(t, 0, tr.Active())
	assert.Equal(t, 3, tr.Len())

	_, _, err = tr.ExtractMin()
	require.ErrorIs(t, err, mintree.ErrEmptyIndex)
}

// TestRemovedNodes ignore further updates and report inactive.
func TestRemovedNodes(t *testing.T) {
	tr := mustTree(t, []float64{1, 2})
	require.NoError(t, tr.PinInfinite(0))
	require.NoError(t, tr.PinInfinite(0)) // idempotent
	assert.Equal(t, 1, tr.Active())

	require.NoError(t, tr.Decrease(0, 100))
	_, ok := tr.Value(0)
	assert.False(t, ok)

	id, _, err := tr.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestErrors(t *testing.T) {
	tr := mustTree(t, []float64{1})
	require.ErrorIs(t, tr.Decrease(1, 1), mintree.ErrOutOfRange)
	require.ErrorIs(t, tr.Decrease(-1, 1), mintree.ErrOutOfRange)
	require.ErrorIs(t, tr.PinInfinite(3), mintree.ErrOutOfRange)
	require.ErrorIs(t, tr.Decrease(0, -0.5), mintree.ErrNegativeDelta)

	_, err := mintree.New([]float64{0, math.NaN()})
	require.ErrorIs(t, err, mintree.ErrInvalidValue)

	empty := mustTree(t, nil)
	_, _, err = empty.ExtractMin()
	require.ErrorIs(t, err, mintree.ErrEmptyIndex)
}

// TestRandomAgainstScan compares the index with a linear scan under a random
// mix of decreases and removals.
func TestRandomAgainstScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(rng.Intn(50))
	}
	tr := mustTree(t, vals)
	removed := make([]bool, n)

	for step := 0; step < 5*n && tr.Active() > 0; step++ {
		switch rng.Intn(3) {
		case 0, 1:
			i := rng.Intn(n)
			d := float64(rng.Intn(3))
			require.NoError(t, tr.Decrease(i, d))
			if !removed[i] {
				vals[i] -= d
			}
		default:
			id, _, err := tr.ExtractMin()
			require.NoError(t, err)
			require.NoError(t, tr.PinInfinite(id))
			removed[id] = true
		}

		wantID, wantV := -1, 0.0
		for i := 0; i < n; i++ {
			if removed[i] {
				continue
			}
			if wantID < 0 || vals[i] < wantV {
				wantID, wantV = i, vals[i]
			}
		}
		if wantID < 0 {
			break
		}
		id, v, err := tr.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, wantID, id, "step %d", step)
		require.Equal(t, wantV, v, "step %d", step)
	}
}
