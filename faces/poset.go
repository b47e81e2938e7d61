// Package faces: the Poset type and its builders.
package faces

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// Sentinel errors for order-structure construction and queries.
var (
	// ErrNotATope indicates a base element that is not a maximal covector.
	ErrNotATope = errors.New("faces: base element is not a tope")

	// ErrOutOfRange indicates an element index outside the poset.
	ErrOutOfRange = errors.New("faces: element index out of range")

	// ErrNoBottom indicates an interval query on a poset without the
	// requested bottom element.
	ErrNoBottom = errors.New("faces: poset has no such element")
)

// Poset is a finite partial order over signed sets, stored as an
// explicit reflexive ≤ matrix. Instances are built once and never
// mutated afterwards.
type Poset struct {
	elements []signedset.SignedSet
	leq      [][]bool // leq[i][j] ⟺ elements[i] ≤ elements[j]
}

// NewFacePoset builds the (big) face poset of a covector collection:
// Y ≤ X iff Y is conformal with X and supp(Y) ⊆ supp(X).
// Antisymmetry and transitivity follow from the covector axioms and are
// not re-verified here.
// Complexity: O(n²·m) for n covectors over m labels.
func NewFacePoset(covectors []signedset.SignedSet) *Poset {
	p := newPoset(covectors)
	for i, y := range p.elements {
		for j, x := range p.elements {
			if y.ConformsWith(x) && y.Support().IsSubsetOf(x.Support()) {
				p.leq[i][j] = true
			}
		}
	}

	return p
}

// NewTopePoset orders the given topes by inclusion of separation sets
// from the base tope: X ≤ Y iff S(B,X) ⊆ S(B,Y). The order is only
// well-defined relative to base; different base topes induce different
// (isomorphic) posets. Returns ErrNotATope when base is not among topes.
func NewTopePoset(topes []signedset.SignedSet, base signedset.SignedSet) (*Poset, error) {
	found := false
	for _, t := range topes {
		if t.Equal(base) {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("NewTopePoset: %w", ErrNotATope)
	}

	p := newPoset(topes)
	for i, x := range p.elements {
		sx := base.SeparationSet(x)
		for j, y := range p.elements {
			if sx.IsSubsetOf(base.SeparationSet(y)) {
				p.leq[i][j] = true
			}
		}
	}

	return p, nil
}

// newPoset allocates the element list and an all-false relation matrix.
func newPoset(elements []signedset.SignedSet) *Poset {
	els := make([]signedset.SignedSet, len(elements))
	copy(els, elements)
	leq := make([][]bool, len(els))
	for i := range leq {
		leq[i] = make([]bool, len(els))
	}

	return &Poset{elements: els, leq: leq}
}

// Len returns the number of elements.
func (p *Poset) Len() int {
	return len(p.elements)
}

// Element returns the element at index i.
func (p *Poset) Element(i int) (signedset.SignedSet, error) {
	if i < 0 || i >= len(p.elements) {
		return signedset.SignedSet{}, fmt.Errorf("Element(%d): %w", i, ErrOutOfRange)
	}

	return p.elements[i], nil
}

// Elements returns all elements in insertion order.
func (p *Poset) Elements() []signedset.SignedSet {
	out := make([]signedset.SignedSet, len(p.elements))
	copy(out, p.elements)

	return out
}

// IndexOf returns the index of x, or -1 when absent.
func (p *Poset) IndexOf(x signedset.SignedSet) int {
	for i, e := range p.elements {
		if e.Equal(x) {
			return i
		}
	}

	return -1
}

// Leq reports whether elements[i] ≤ elements[j].
func (p *Poset) Leq(i, j int) bool {
	return i >= 0 && j >= 0 && i < len(p.leq) && j < len(p.leq) && p.leq[i][j]
}

// less reports the strict order elements[i] < elements[j].
func (p *Poset) less(i, j int) bool {
	return i != j && p.leq[i][j]
}

// Maximal returns the elements with no strict upper bound.
func (p *Poset) Maximal() []signedset.SignedSet {
	var out []signedset.SignedSet
	for i := range p.elements {
		top := true
		for j := range p.elements {
			if p.less(i, j) {
				top = false
				break
			}
		}
		if top {
			out = append(out, p.elements[i])
		}
	}

	return out
}

// Minimal returns the elements with no strict lower bound.
func (p *Poset) Minimal() []signedset.SignedSet {
	var out []signedset.SignedSet
	for i := range p.elements {
		bottom := true
		for j := range p.elements {
			if p.less(j, i) {
				bottom = false
				break
			}
		}
		if bottom {
			out = append(out, p.elements[i])
		}
	}

	return out
}

// Interval returns the indices of every element z with lo ≤ z ≤ hi,
// in insertion order (lo and hi included when comparable). Incomparable
// bounds yield an empty interval, not an error.
func (p *Poset) Interval(lo, hi int) ([]int, error) {
	if lo < 0 || lo >= len(p.elements) || hi < 0 || hi >= len(p.elements) {
		return nil, fmt.Errorf("Interval(%d,%d): %w", lo, hi, ErrOutOfRange)
	}
	var out []int
	for z := range p.elements {
		if p.leq[lo][z] && p.leq[z][hi] {
			out = append(out, z)
		}
	}

	return out, nil
}

// IsBooleanInterval reports whether the interval [lo,hi] is isomorphic
// to a Boolean lattice, tested by counting: the interval must have
// exactly 2^k elements for k the number of its atoms (minimal elements
// strictly above lo).
func (p *Poset) IsBooleanInterval(lo, hi int) (bool, error) {
	iv, err := p.Interval(lo, hi)
	if err != nil {
		return false, fmt.Errorf("IsBooleanInterval: %w", err)
	}

	// 1) Collect the atoms: z ∈ I, z ≠ lo, with nothing of I strictly between.
	atoms := 0
	for _, z := range iv {
		if z == lo {
			continue
		}
		isAtom := true
		for _, w := range iv {
			if w != lo && w != z && p.less(lo, w) && p.less(w, z) {
				isAtom = false
				break
			}
		}
		if isAtom && p.less(lo, z) {
			atoms++
		}
	}

	// 2) Boolean iff size is exactly 2^atoms. Guard the shift against
	// degenerate intervals larger than any sane atom count.
	if atoms >= 63 {
		return false, nil
	}

	return len(iv) == 1<<uint(atoms), nil
}

// Height returns the length (element count) of the longest chain.
// Complexity: O(n²) with memoization over the strict order.
func (p *Poset) Height() int {
	memo := make([]int, len(p.elements))
	var chain func(i int) int
	chain = func(i int) int {
		if memo[i] != 0 {
			return memo[i]
		}
		best := 1
		for j := range p.elements {
			if p.less(j, i) {
				if h := chain(j) + 1; h > best {
					best = h
				}
			}
		}
		memo[i] = best

		return best
	}

	h := 0
	for i := range p.elements {
		if c := chain(i); c > h {
			h = c
		}
	}

	return h
}
