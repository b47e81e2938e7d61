// SPDX-License-Identifier: MIT
package pointconfig

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/orimat/linalg"
	"github.com/katalvlaran/orimat/oriom"
	"github.com/katalvlaran/orimat/signedset"
)

// Sentinel errors for configuration construction.
var (
	// ErrNoPoints indicates an empty point list.
	ErrNoPoints = errors.New("pointconfig: no points")

	// ErrDimensionMismatch indicates points of differing lengths.
	ErrDimensionMismatch = errors.New("pointconfig: points have mixed dimensions")

	// ErrLabelCount indicates a label list whose length differs from the
	// number of points.
	ErrLabelCount = errors.New("pointconfig: label count mismatch")

	// ErrBadEpsilon indicates a non-positive epsilon.
	ErrBadEpsilon = errors.New("pointconfig: epsilon must be positive")
)

// Option adjusts configuration construction.
type Option func(*Configuration)

// WithEpsilon overrides the sign-extraction threshold (default
// linalg.DefaultEps).
func WithEpsilon(eps float64) Option {
	return func(c *Configuration) { c.eps = eps }
}

// WithLabels names the points instead of the default p1..pn.
// Must match the number of points.
func WithLabels(labels ...string) Option {
	return func(c *Configuration) { c.labels = labels }
}

// Configuration is a finite list of points in Rᵈ. Immutable after
// construction. Duplicate points are allowed and become parallel
// elements of the resulting oriented matroid.
type Configuration struct {
	points [][]float64 // homogenized: d+1 coordinates, last is 1
	dim    int         // ambient dimension d
	labels []string
	eps    float64
}

// New validates the points and builds a configuration.
func New(points [][]float64, opts ...Option) (*Configuration, error) {
	c := &Configuration{eps: linalg.DefaultEps}
	for _, opt := range opts {
		opt(c)
	}
	if c.eps <= 0 {
		return nil, fmt.Errorf("New: %w", ErrBadEpsilon)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoPoints)
	}
	if c.labels != nil && len(c.labels) != len(points) {
		return nil, fmt.Errorf("New: %d labels for %d points: %w",
			len(c.labels), len(points), ErrLabelCount)
	}

	c.dim = len(points[0])
	c.points = make([][]float64, len(points))
	for i, p := range points {
		if len(p) != c.dim {
			return nil, fmt.Errorf("New: point %d: %w", i, ErrDimensionMismatch)
		}
		c.points[i] = append(append([]float64(nil), p...), 1)
	}

	if c.labels == nil {
		c.labels = make([]string, len(c.points))
		for i := range c.points {
			c.labels[i] = "p" + strconv.Itoa(i+1)
		}
	}

	return c, nil
}

// Labels returns the point labels in construction order.
func (c *Configuration) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)

	return out
}

// Dimension returns the ambient dimension d.
func (c *Configuration) Dimension() int {
	return c.dim
}

// CircuitData returns the signed minimal affine dependencies of the
// configuration, each followed by its negation. An affinely
// independent configuration yields an empty list.
func (c *Configuration) CircuitData() []signedset.Parts {
	var data []signedset.Parts

	// Any d+2 homogenized points are dependent, so circuits never have
	// more points than that.
	maxSize := c.dim + 2
	if maxSize > len(c.points) {
		maxSize = len(c.points)
	}
	for size := 2; size <= maxSize; size++ {
		c.scanSubsets(size, &data)
	}

	return data
}

// Circuits builds the validated circuit oriented matroid of the
// configuration.
func (c *Configuration) Circuits() (*oriom.Circuits, error) {
	m, err := oriom.NewCircuitsFromParts(c.CircuitData(), c.Labels())
	if err != nil {
		return nil, fmt.Errorf("pointconfig: Circuits: %w", err)
	}

	return m, nil
}

// scanSubsets walks the size-subsets of points in lexicographic index
// order and appends every circuit found among them.
func (c *Configuration) scanSubsets(size int, data *[]signedset.Parts) {
	combo := make([]int, size)
	var walk func(pos, next int)
	walk = func(pos, next int) {
		if pos == size {
			c.emit(combo, data)

			return
		}
		for i := next; i <= len(c.points)-(size-pos); i++ {
			combo[pos] = i
			walk(pos+1, i+1)
		}
	}
	walk(0, 0)
}

// emit checks one subset for a minimal dependency and appends the
// signed pair and its negation when found.
func (c *Configuration) emit(combo []int, data *[]signedset.Parts) {
	// 1) Dependency space of the chosen homogenized points, solved as
	// the kernel of the (d+1)×size coefficient matrix.
	rows := make([][]float64, c.dim+1)
	for r := range rows {
		rows[r] = make([]float64, len(combo))
		for j, idx := range combo {
			rows[r][j] = c.points[idx][r]
		}
	}
	coef, err := linalg.Kernel(rows, linalg.WithEpsilon(c.eps))
	if err != nil {
		return // independent, or dependency space too large to be minimal
	}

	// 2) A zero coefficient means a proper subset already carries the
	// dependency; this one is not a circuit.
	for _, x := range coef {
		if math.Abs(x) <= c.eps {
			return
		}
	}

	// 3) Orient so the lowest-index support point is positive.
	if coef[0] < 0 {
		for j := range coef {
			coef[j] = -coef[j]
		}
	}
	var pos, neg []string
	for j, idx := range combo {
		if coef[j] > 0 {
			pos = append(pos, c.labels[idx])
		} else {
			neg = append(neg, c.labels[idx])
		}
	}

	*data = append(*data,
		signedset.Parts{Positives: pos, Negatives: neg},
		signedset.Parts{Positives: neg, Negatives: pos},
	)
}
