// Package peel defines the option set, result types and sentinel errors of
// the greedy peeling engines.
package peel

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for peeling runs. Shape and square violations are reported
// with the matrix package sentinels (matrix.ErrShapeMismatch,
// matrix.ErrNotSquare); an exhausted degree index with mintree.ErrEmptyIndex.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("peel: invalid option supplied")

	// ErrNilDetector is returned by DetectMultiple when detect is nil.
	ErrNilDetector = errors.New("peel: detector is nil")
)

// DefaultLogEvery is the progress-line interval, in remaining nodes, used
// when a logger is attached.
const DefaultLogEvery = 100000

// Side names which half of a bipartite graph a node belongs to.
type Side int

const (
	// RowSide is the source side (matrix rows).
	RowSide Side = iota
	// ColSide is the destination side (matrix columns).
	ColSide
)

// Other returns the opposite side.
func (s Side) Other() Side { return 1 - s }

// String returns "row" or "col".
func (s Side) String() string {
	if s == RowSide {
		return "row"
	}

	return "col"
}

// Deletion is one entry of the deletion log. The subgraph left after the
// first k deletions is always the full node sets minus Log[:k].
type Deletion struct {
	Side Side
	ID   int
}

// Step is reported to the OnDelete hook after every deletion.
type Step struct {
	Index     int     // 1-based deletion count
	Side      Side    // side of the deleted node (always RowSide for monopartite)
	ID        int     // deleted node id
	Delta     float64 // residual weighted degree removed with the node
	Score     float64 // remaining mass after the deletion
	Rows      int     // surviving rows (nodes, for monopartite)
	Cols      int     // surviving columns (nodes, for monopartite)
	Avg       float64 // density of the remaining subgraph; 0 when not evaluated
	Evaluated bool    // false when one side became empty and no density was taken
	Committed bool    // true when this checkpoint became the new best
}

// Result is the densest block found by a peeling run.
type Result struct {
	Rows    []int      // surviving row ids, ascending
	Cols    []int      // surviving column ids, ascending (== Rows for monopartite)
	Score   float64    // best average density
	Deleted int        // number of log entries removed to reach the best checkpoint
	Log     []Deletion // full deletion log of the run
}

// Size returns |Rows| + |Cols|.
func (r *Result) Size() int { return len(r.Rows) + len(r.Cols) }

// Option configures a peeling run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// engine is invoked.
type Option func(*Options)

// Options holds the size constraint, logging and hooks of a run.
type Options struct {
	// MaxSize bounds |R|+|C| of any committed checkpoint; 0 disables it.
	MaxSize int

	// MaxRows and MaxCols bound |R| and |C| independently; 0 disables them.
	// Setting either one replaces MaxSize.
	MaxRows, MaxCols int

	// Logger receives structured progress events; zerolog.Nop() by default.
	Logger zerolog.Logger

	// LogEvery emits a progress line whenever the surviving node count is a
	// multiple of it.
	LogEvery int

	// OnDelete is called after every deletion.
	OnDelete func(Step)

	err error
}

// DefaultOptions returns Options with no size constraint, a disabled logger
// and a no-op OnDelete hook.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		LogEvery: DefaultLogEvery,
		OnDelete: func(Step) {},
	}
}

// WithMaxSize bounds the total node count |R|+|C| of the returned block.
// k must be positive. Bipartite engines only; Monopartite rejects it.
func WithMaxSize(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.record(fmt.Errorf("%w: MaxSize must be positive (%d)", ErrOptionViolation, k))
			return
		}
		o.MaxSize = k
		o.MaxRows, o.MaxCols = 0, 0
	}
}

// WithMaxShape bounds |R| ≤ rows and |C| ≤ cols independently.
// Bipartite engines only; Monopartite rejects it.
func WithMaxShape(rows, cols int) Option {
	return func(o *Options) {
		if rows <= 0 || cols <= 0 {
			o.record(fmt.Errorf("%w: MaxShape must be positive (%d, %d)", ErrOptionViolation, rows, cols))
			return
		}
		o.MaxRows, o.MaxCols = rows, cols
		o.MaxSize = 0
	}
}

// WithLogger attaches a progress logger. Init and best events are logged at
// Info, periodic progress at Debug. Under SearchSchemes the logger is shared
// by concurrent passes, so its writer must accept concurrent writes.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithLogEvery sets the progress-line interval.
func WithLogEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.record(fmt.Errorf("%w: LogEvery must be positive (%d)", ErrOptionViolation, n))
			return
		}
		o.LogEvery = n
	}
}

// WithOnDelete registers a hook called after every deletion.
func WithOnDelete(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDelete = fn
		}
	}
}

func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// fits reports whether a (rows, cols) checkpoint satisfies the size constraint.
func (o *Options) fits(rows, cols int) bool {
	switch {
	case o.MaxRows > 0 || o.MaxCols > 0:
		return (o.MaxRows == 0 || rows <= o.MaxRows) && (o.MaxCols == 0 || cols <= o.MaxCols)
	case o.MaxSize > 0:
		return rows+cols <= o.MaxSize
	default:
		return true
	}
}

// sized reports whether any size constraint is set.
func (o *Options) sized() bool {
	return o.MaxSize > 0 || o.MaxRows > 0 || o.MaxCols > 0
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
