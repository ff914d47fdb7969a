// SPDX-License-Identifier: MIT
// Package: densest/weighting
//
// weighting.go: column weighting schemes and the weighted matrix W.
//
// Contract:
//   - Uniform:     w[j] = 1                        (plain average-degree objective).
//   - InverseSqrt: w[j] = 1 / sqrt(colSum[j] + 5).
//   - InverseLog:  w[j] = 1 / ln(colSum[j] + 5).
//   - W[i][j] = M[i][j] · w[j]; W is a new matrix, M is never mutated.
//
// The +5 smoothing keeps weights finite and bounded for empty or low-degree
// columns; an empty column simply gets its smoothed weight and contributes
// no mass.
//
// Complexity:
//   - ColumnWeights: O(nnz + n).
//   - Apply:         O(nnz + n).

package weighting

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/densest/matrix"
)

// Smoothing is the additive constant applied to every column sum before the
// inverse-sqrt and inverse-log transforms.
const Smoothing = 5.0

// ErrUnknownScheme indicates a Scheme value (or name) outside the supported set.
var ErrUnknownScheme = errors.New("weighting: unknown scheme")

// Scheme selects how column degrees are turned into column weights.
type Scheme int

const (
	// Uniform weighs every column 1.
	Uniform Scheme = iota
	// InverseSqrt weighs column j by 1/sqrt(colSum[j]+Smoothing).
	InverseSqrt
	// InverseLog weighs column j by 1/ln(colSum[j]+Smoothing).
	InverseLog
)

// Schemes lists every supported scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{Uniform, InverseSqrt, InverseLog}
}

// String returns the canonical scheme name.
func (s Scheme) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case InverseSqrt:
		return "inverse-sqrt"
	case InverseLog:
		return "inverse-log"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme resolves a scheme name. Accepted (case-insensitive):
// "uniform"/"avg", "inverse-sqrt"/"sqrt", "inverse-log"/"log".
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform", "avg":
		return Uniform, nil
	case "inverse-sqrt", "sqrt":
		return InverseSqrt, nil
	case "inverse-log", "log":
		return InverseLog, nil
	}

	return 0, fmt.Errorf("ParseScheme(%q): %w", name, ErrUnknownScheme)
}

// weightOf maps one column sum to its weight under s.
func (s Scheme) weightOf(colSum float64) float64 {
	switch s {
	case InverseSqrt:
		return 1 / math.Sqrt(colSum+Smoothing)
	case InverseLog:
		return 1 / math.Log(colSum+Smoothing)
	default:
		return 1
	}
}

// valid reports whether s is one of the declared schemes.
func (s Scheme) valid() bool { return s >= Uniform && s <= InverseLog }

// ColumnWeights returns the weight vector w (len m.Cols()) for scheme s.
func ColumnWeights(m *matrix.Sparse, s Scheme) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ColumnWeights: %w", err)
	}
	if !s.valid() {
		return nil, fmt.Errorf("ColumnWeights(%v): %w", s, ErrUnknownScheme)
	}

	sums := m.ColSums()
	w := make([]float64, len(sums))
	for j, c := range sums {
		w[j] = s.weightOf(c)
	}

	return w, nil
}

// Weighted returns W with W[i][j] = m[i][j]·w[j].
// Errors: matrix.ErrShapeMismatch when len(w) != m.Cols().
func Weighted(m *matrix.Sparse, w []float64) (*matrix.Sparse, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Weighted: %w", err)
	}
	W, err := m.ScaleColumns(w)
	if err != nil {
		return nil, fmt.Errorf("Weighted: %w", err)
	}

	return W, nil
}

// Model bundles one weighting pass: the scheme, its column weights and W.
type Model struct {
	Scheme  Scheme
	Weights []float64      // len Cols(); read-only after Apply
	W       *matrix.Sparse // weighted matrix; never mutated
}

// Apply computes the column weights of m under s and the weighted matrix W.
func Apply(m *matrix.Sparse, s Scheme) (*Model, error) {
	w, err := ColumnWeights(m, s)
	if err != nil {
		return nil, err
	}
	W, err := Weighted(m, w)
	if err != nil {
		return nil, err
	}

	return &Model{Scheme: s, Weights: w, W: W}, nil
}
