// Package mintree implements the dynamic degree index used by greedy peeling:
// a min-priority structure over a fixed universe of node ids 0..n-1 that
// supports peek-minimum, in-place value decrease, and permanent removal.
//
// Overview:
//
//   - Storage is an index-addressable binary heap: a slice of heap slots plus
//     an id→position table, so any node's slot is found in O(1) and repaired
//     with container/heap.Fix in O(log n).
//   - Removal is an explicit tagged state (Active(value) / Removed) rather
//     than a +Inf value. Removed slots order after every active slot, so they
//     sink out of the way and never surface from ExtractMin.
//   - Ties among equal values are broken by node id ascending, which makes
//     every peeling run reproducible.
//
// Complexity:
//
//   - New:         O(n) (heap.Init).
//   - ExtractMin:  O(1) (peek only; removal is PinInfinite).
//   - Decrease:    O(log n).
//   - PinInfinite: O(log n).
//   - Space:       O(n).
//
// Thread safety: a Tree is owned by a single detection pass and is not safe
// for concurrent use.
package mintree

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Tree operations.
var (
	// ErrEmptyIndex indicates ExtractMin was called after every node had
	// been removed. Peeling loops never do this; seeing it means a caller
	// broke its own termination condition.
	ErrEmptyIndex = errors.New("mintree: no active nodes")

	// ErrOutOfRange indicates a node id outside [0, Len()).
	ErrOutOfRange = errors.New("mintree: node id out of range")

	// ErrNegativeDelta indicates Decrease received a negative or NaN delta.
	ErrNegativeDelta = errors.New("mintree: delta must be finite and non-negative")

	// ErrInvalidValue indicates New received a NaN or ±Inf initial value.
	ErrInvalidValue = errors.New("mintree: initial value must be finite")
)

// slot is one heap cell: the node it belongs to and its tagged state.
type slot struct {
	id      int     // node id in [0, n)
	value   float64 // residual degree; meaningless once removed
	removed bool    // Removed tag; false means Active(value)
}

// slotHeap orders slots Active-before-Removed, then by value, then by id.
// pos[id] always holds the heap index of id's slot.
type slotHeap struct {
	slots []slot
	pos   []int
}

func (h *slotHeap) Len() int { return len(h.slots) }

func (h *slotHeap) Less(i, j int) bool {
	a, b := &h.slots[i], &h.slots[j]
	if a.removed != b.removed {
		return !a.removed
	}
	if a.value != b.value {
		return a.value < b.value
	}

	return a.id < b.id
}

func (h *slotHeap) Swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.pos[h.slots[i].id] = i
	h.pos[h.slots[j].id] = j
}

// Push and Pop satisfy heap.Interface; the universe is fixed after New, so
// Tree never calls heap.Push/heap.Pop itself.
func (h *slotHeap) Push(x any) {
	s := x.(slot)
	h.pos[s.id] = len(h.slots)
	h.slots = append(h.slots, s)
}

func (h *slotHeap) Pop() any {
	old := h.slots
	n := len(old)
	s := old[n-1]
	h.slots = old[:n-1]

	return s
}

// Tree is the dynamic degree index over node ids 0..Len()-1.
type Tree struct {
	h      slotHeap
	active int // number of non-removed nodes
}

// New builds an index whose node i starts at values[i]. values is copied.
// Errors: ErrInvalidValue if any value is NaN or ±Inf.
func New(values []float64) (*Tree, error) {
	n := len(values)
	t := &Tree{
		h: slotHeap{
			slots: make([]slot, n),
			pos:   make([]int, n),
		},
		active: n,
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("mintree: New: value[%d]=%g: %w", i, v, ErrInvalidValue)
		}
		t.h.slots[i] = slot{id: i, value: v}
		t.h.pos[i] = i
	}
	heap.Init(&t.h)

	return t, nil
}

// Len returns the universe size (active plus removed nodes).
func (t *Tree) Len() int { return len(t.h.slots) }

// Active returns the number of nodes not yet removed.
func (t *Tree) Active() int { return t.active }

// ExtractMin returns the active node with the smallest value (ties: lowest id)
// without removing it. Call PinInfinite to remove it.
func (t *Tree) ExtractMin() (int, float64, error) {
	if t.active == 0 {
		return 0, 0, ErrEmptyIndex
	}
	top := t.h.slots[0]

	return top.id, top.value, nil
}

// Decrease subtracts delta from id's value. Decreasing a removed node is a
// no-op: removed nodes keep no meaningful value.
func (t *Tree) Decrease(id int, delta float64) error {
	if id < 0 || id >= len(t.h.pos) {
		return fmt.Errorf("mintree: Decrease(%d): %w", id, ErrOutOfRange)
	}
	if !(delta >= 0) || math.IsInf(delta, 1) { // also rejects NaN
		return fmt.Errorf("mintree: Decrease(%d, %g): %w", id, delta, ErrNegativeDelta)
	}
	p := t.h.pos[id]
	if t.h.slots[p].removed || delta == 0 {
		return nil
	}
	t.h.slots[p].value -= delta
	heap.Fix(&t.h, p)

	return nil
}

// PinInfinite permanently removes id from ExtractMin consideration.
// Pinning an already removed node is a no-op.
func (t *Tree) PinInfinite(id int) error {
	if id < 0 || id >= len(t.h.pos) {
		return fmt.Errorf("mintree: PinInfinite(%d): %w", id, ErrOutOfRange)
	}
	p := t.h.pos[id]
	if t.h.slots[p].removed {
		return nil
	}
	t.h.slots[p].removed = true
	t.active--
	heap.Fix(&t.h, p)

	return nil
}

// Value returns id's current value and whether id is still active.
// Out-of-range ids report (0, false).
func (t *Tree) Value(id int) (float64, bool) {
	if id < 0 || id >= len(t.h.pos) {
		return 0, false
	}
	s := t.h.slots[t.h.pos[id]]
	if s.removed {
		return 0, false
	}

	return s.value, true
}
