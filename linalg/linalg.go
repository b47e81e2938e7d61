// SPDX-License-Identifier: MIT
// Package linalg: rank and 1-dimensional nullspace via partial-pivot
// Gaussian elimination with an epsilon zero-policy.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// DefaultEps is the zero threshold used when no option overrides it.
const DefaultEps = 1e-9

// Sentinel errors for kernel operations.
var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("linalg: empty matrix")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("linalg: ragged matrix")

	// ErrBadEpsilon indicates a non-positive or non-finite epsilon.
	ErrBadEpsilon = errors.New("linalg: epsilon must be positive and finite")

	// ErrKernelDim indicates a nullspace whose dimension is not exactly one.
	ErrKernelDim = errors.New("linalg: nullspace is not one-dimensional")
)

// Option configures an elimination run.
type Option func(*config)

type config struct {
	eps float64
}

// WithEpsilon overrides the zero threshold.
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.eps = eps }
}

// Rank returns the rank of m.
// Complexity: O(r·c·min(r,c)).
func Rank(m [][]float64, opts ...Option) (int, error) {
	work, cfg, err := prepare(m, opts)
	if err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}
	pivots := eliminate(work, cfg.eps)

	return len(pivots), nil
}

// Kernel returns a generator of the nullspace of m when that nullspace
// is exactly one-dimensional, and ErrKernelDim otherwise.
// Complexity: O(r·c·min(r,c)).
func Kernel(m [][]float64, opts ...Option) ([]float64, error) {
	work, cfg, err := prepare(m, opts)
	if err != nil {
		return nil, fmt.Errorf("Kernel: %w", err)
	}

	cols := len(work[0])
	pivots := eliminate(work, cfg.eps)
	if cols-len(pivots) != 1 {
		return nil, fmt.Errorf("Kernel: %d free columns: %w", cols-len(pivots), ErrKernelDim)
	}

	// 1) Locate the single free column.
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p.col] = true
	}
	free := -1
	for c := 0; c < cols; c++ {
		if !isPivot[c] {
			free = c
			break
		}
	}

	// 2) Set the free coordinate to 1; eliminate() leaves the matrix in
	// reduced row-echelon form, so each pivot coordinate reads off as
	// the negated free-column entry of its row.
	x := make([]float64, cols)
	x[free] = 1
	for _, p := range pivots {
		x[p.col] = -work[p.row][free]
	}

	return x, nil
}

// pivot records where a pivot landed during elimination.
type pivot struct {
	row, col int
}

// prepare validates the input, clones it (inputs are never mutated) and
// resolves options.
func prepare(m [][]float64, opts []Option) ([][]float64, config, error) {
	cfg := config{eps: DefaultEps}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.eps > 0) || math.IsInf(cfg.eps, 1) {
		return nil, cfg, ErrBadEpsilon
	}
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, cfg, ErrEmptyMatrix
	}

	cols := len(m[0])
	work := make([][]float64, len(m))
	for i, row := range m {
		if len(row) != cols {
			return nil, cfg, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrRagged)
		}
		work[i] = make([]float64, cols)
		copy(work[i], row)
	}

	return work, cfg, nil
}

// eliminate brings work into reduced row-echelon form in place and
// returns the pivot positions in column order. Partial pivoting keeps
// the run numerically stable; entries below eps count as zero.
func eliminate(work [][]float64, eps float64) []pivot {
	rows, cols := len(work), len(work[0])
	var pivots []pivot

	r := 0
	for c := 0; c < cols && r < rows; c++ {
		// 1) Partial pivot: the largest magnitude in column c from row r down.
		lead := r
		for i := r + 1; i < rows; i++ {
			if math.Abs(work[i][c]) > math.Abs(work[lead][c]) {
				lead = i
			}
		}
		if math.Abs(work[lead][c]) <= eps {
			continue // column is numerically zero below r
		}
		work[r], work[lead] = work[lead], work[r]

		// 2) Normalize the pivot row.
		pv := work[r][c]
		for j := c; j < cols; j++ {
			work[r][j] /= pv
		}

		// 3) Clear the column everywhere else (full reduction).
		for i := 0; i < rows; i++ {
			if i == r || math.Abs(work[i][c]) <= eps {
				continue
			}
			factor := work[i][c]
			for j := c; j < cols; j++ {
				work[i][j] -= factor * work[r][j]
			}
		}

		pivots = append(pivots, pivot{row: r, col: c})
		r++
	}

	return pivots
}
