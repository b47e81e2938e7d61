// Package faces: the face lattice — the face poset completed with one
// synthetic top element.
package faces

import (
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// Lattice is the (big) face lattice: the face poset plus a synthetic
// top greater than every covector. The top is addressed by TopIndex();
// it carries no signed set of its own.
type Lattice struct {
	poset *Poset
}

// NewFaceLattice builds the face lattice of a covector collection.
// Complexity: O(n²·m), dominated by the underlying face poset.
func NewFaceLattice(covectors []signedset.SignedSet) *Lattice {
	return &Lattice{poset: NewFacePoset(covectors)}
}

// Poset returns the underlying face poset (without the synthetic top).
func (l *Lattice) Poset() *Poset {
	return l.poset
}

// Len returns the number of lattice elements, synthetic top included.
func (l *Lattice) Len() int {
	return l.poset.Len() + 1
}

// TopIndex returns the index of the synthetic top.
func (l *Lattice) TopIndex() int {
	return l.poset.Len()
}

// Leq reports the lattice order: the poset order extended so that
// everything (top included) is ≤ top.
func (l *Lattice) Leq(i, j int) bool {
	top := l.TopIndex()
	switch {
	case j == top:
		return i >= 0 && i <= top
	case i == top:
		return false
	default:
		return l.poset.Leq(i, j)
	}
}

// Bottom returns the index of the unique minimal covector (the zero
// covector in a valid system). Returns ErrNoBottom when the poset has
// no unique minimum.
func (l *Lattice) Bottom() (int, error) {
	mins := l.poset.Minimal()
	if len(mins) != 1 {
		return 0, fmt.Errorf("Bottom: %d minimal elements: %w", len(mins), ErrNoBottom)
	}

	return l.poset.IndexOf(mins[0]), nil
}

// Interval returns the indices of every lattice element z with
// lo ≤ z ≤ hi. Either bound may be the synthetic top. When lo and hi
// are incomparable the interval is empty and the slice is nil; only
// indices outside the lattice are an error.
func (l *Lattice) Interval(lo, hi int) ([]int, error) {
	top := l.TopIndex()
	if lo < 0 || lo > top || hi < 0 || hi > top {
		return nil, fmt.Errorf("Interval(%d,%d): %w", lo, hi, ErrOutOfRange)
	}
	if lo == top {
		// Only the top sits above the top.
		if hi == top {
			return []int{top}, nil
		}

		return nil, nil
	}
	if hi != top {
		return l.poset.Interval(lo, hi)
	}

	// [lo, top]: every poset element above lo, plus the top itself.
	var out []int
	for z := 0; z < l.poset.Len(); z++ {
		if l.poset.Leq(lo, z) {
			out = append(out, z)
		}
	}
	out = append(out, top)

	return out, nil
}
