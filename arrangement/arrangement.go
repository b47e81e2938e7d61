// SPDX-License-Identifier: MIT
package arrangement

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/orimat/linalg"
	"github.com/katalvlaran/orimat/oriom"
)

// Sentinel errors for arrangement construction.
var (
	// ErrNoHyperplanes indicates an empty normal list.
	ErrNoHyperplanes = errors.New("arrangement: no hyperplanes")

	// ErrDimensionMismatch indicates normals of differing lengths.
	ErrDimensionMismatch = errors.New("arrangement: normals have mixed dimensions")

	// ErrZeroNormal indicates a normal vector that is zero within epsilon.
	ErrZeroNormal = errors.New("arrangement: zero normal vector")

	// ErrNotEssential indicates normals that do not span the ambient space.
	ErrNotEssential = errors.New("arrangement: normals do not span the ambient space")

	// ErrLabelCount indicates a label list whose length differs from the
	// number of hyperplanes.
	ErrLabelCount = errors.New("arrangement: label count mismatch")

	// ErrBadEpsilon indicates a non-positive epsilon.
	ErrBadEpsilon = errors.New("arrangement: epsilon must be positive")
)

// Option adjusts arrangement construction.
type Option func(*Arrangement)

// WithEpsilon overrides the sign-extraction threshold (default
// linalg.DefaultEps).
func WithEpsilon(eps float64) Option {
	return func(a *Arrangement) { a.eps = eps }
}

// WithLabels names the hyperplanes instead of the default h1..hn.
// Must match the number of normals.
func WithLabels(labels ...string) Option {
	return func(a *Arrangement) { a.labels = labels }
}

// Arrangement is a central hyperplane arrangement in Rᵈ, given by one
// normal vector per hyperplane. Immutable after construction.
type Arrangement struct {
	normals [][]float64
	labels  []string
	eps     float64
}

// New validates the normals and builds an essential central arrangement.
// Steps:
//  1. Apply options, validate epsilon and label count.
//  2. Reject empty input, mixed dimensions and zero normals.
//  3. Reject non-essential arrangements (rank of the normals < d).
func New(normals [][]float64, opts ...Option) (*Arrangement, error) {
	a := &Arrangement{eps: linalg.DefaultEps}
	for _, opt := range opts {
		opt(a)
	}
	if a.eps <= 0 {
		return nil, fmt.Errorf("New: %w", ErrBadEpsilon)
	}
	if len(normals) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoHyperplanes)
	}
	if a.labels != nil && len(a.labels) != len(normals) {
		return nil, fmt.Errorf("New: %d labels for %d hyperplanes: %w",
			len(a.labels), len(normals), ErrLabelCount)
	}

	d := len(normals[0])
	a.normals = make([][]float64, len(normals))
	for i, n := range normals {
		if len(n) != d {
			return nil, fmt.Errorf("New: normal %d: %w", i, ErrDimensionMismatch)
		}
		zero := true
		for _, x := range n {
			if math.Abs(x) > a.eps {
				zero = false
				break
			}
		}
		if zero {
			return nil, fmt.Errorf("New: normal %d: %w", i, ErrZeroNormal)
		}
		a.normals[i] = append([]float64(nil), n...)
	}

	r, err := linalg.Rank(a.normals, linalg.WithEpsilon(a.eps))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if r < d {
		return nil, fmt.Errorf("New: rank %d in dimension %d: %w", r, d, ErrNotEssential)
	}

	if a.labels == nil {
		a.labels = make([]string, len(a.normals))
		for i := range a.normals {
			a.labels[i] = "h" + strconv.Itoa(i+1)
		}
	}

	return a, nil
}

// Labels returns the hyperplane labels in construction order.
func (a *Arrangement) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)

	return out
}

// Dimension returns the ambient dimension d.
func (a *Arrangement) Dimension() int {
	return len(a.normals[0])
}

// CovectorData returns every covector of the arrangement as a sign
// vector over Labels(): for a point v ∈ Rᵈ the covector is
// (sign(v·n1), …, sign(v·nn)), and every sign vector that some v
// realizes appears exactly once. The list is sorted for determinism
// and always contains the zero vector (v = 0).
func (a *Arrangement) CovectorData() [][]int {
	d := a.Dimension()
	seen := make(map[string][]int)
	add := func(s []int) bool {
		k := encode(s)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = s

		return true
	}

	// 1) Seed with the zero covector (the origin lies on every hyperplane).
	add(make([]int, len(a.normals)))

	// 2) Cocircuits: each independent (d−1)-subset of normals leaves a
	// line orthogonal to all of them; its two directions sign the
	// hyperplanes. Dependent subsets (kernel dimension ≠ 1) are skipped.
	for _, v := range a.orthogonalLines(d) {
		s := a.signVector(v)
		add(s)
		add(negate(s))
	}

	// 3) Close under composition: X∘Y keeps X where X is nonzero and
	// falls back to Y elsewhere. Every covector is a composition of
	// cocircuits, so the fixpoint is the full covector set.
	for changed := true; changed; {
		changed = false
		elems := make([][]int, 0, len(seen))
		for _, s := range seen {
			elems = append(elems, s)
		}
		for _, x := range elems {
			for _, y := range elems {
				if add(compose(x, y)) {
					changed = true
				}
			}
		}
	}

	// 4) Deterministic output order.
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][]int, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}

	return out
}

// Covectors builds the validated covector oriented matroid of the
// arrangement.
func (a *Arrangement) Covectors() (*oriom.Covectors, error) {
	m, err := oriom.NewCovectors(a.CovectorData(), a.Labels())
	if err != nil {
		return nil, fmt.Errorf("arrangement: Covectors: %w", err)
	}

	return m, nil
}

// orthogonalLines yields one generator per (d−1)-subset of normals
// whose common orthogonal space is a line. In dimension 1 the whole
// space is that line.
func (a *Arrangement) orthogonalLines(d int) [][]float64 {
	if d == 1 {
		return [][]float64{{1}}
	}

	var lines [][]float64
	combo := make([]int, d-1)
	var walk func(pos, next int)
	walk = func(pos, next int) {
		if pos == d-1 {
			rows := make([][]float64, d-1)
			for i, idx := range combo {
				rows[i] = a.normals[idx]
			}
			v, err := linalg.Kernel(rows, linalg.WithEpsilon(a.eps))
			if err == nil {
				lines = append(lines, v)
			}

			return
		}
		for i := next; i <= len(a.normals)-(d-1-pos); i++ {
			combo[pos] = i
			walk(pos+1, i+1)
		}
	}
	walk(0, 0)

	return lines
}

// signVector signs v against every normal with the epsilon threshold.
func (a *Arrangement) signVector(v []float64) []int {
	out := make([]int, len(a.normals))
	for i, n := range a.normals {
		var dot float64
		for j := range n {
			dot += n[j] * v[j]
		}
		switch {
		case dot > a.eps:
			out[i] = 1
		case dot < -a.eps:
			out[i] = -1
		}
	}

	return out
}

func negate(s []int) []int {
	out := make([]int, len(s))
	for i, x := range s {
		out[i] = -x
	}

	return out
}

func compose(x, y []int) []int {
	out := make([]int, len(x))
	for i := range x {
		if x[i] != 0 {
			out[i] = x[i]
		} else {
			out[i] = y[i]
		}
	}

	return out
}

func encode(s []int) string {
	var b strings.Builder
	for _, x := range s {
		switch x {
		case 1:
			b.WriteByte('+')
		case -1:
			b.WriteByte('-')
		default:
			b.WriteByte('0')
		}
	}

	return b.String()
}
