// Package oriom: structural queries and minors on a validated covector
// system. Everything here is expressed through the signed-set algebra
// and the face structures; minors rebuild through the public
// constructor path and therefore re-validate.
package oriom

import (
	"fmt"

	"github.com/katalvlaran/orimat/faces"
	"github.com/katalvlaran/orimat/signedset"
)

// FacePoset returns the (big) face poset: Y ≤ X iff S(Y,X) = ∅ and
// supp(Y) ⊆ supp(X). Complexity: O(n²·m).
func (l *Covectors) FacePoset() *faces.Poset {
	return faces.NewFacePoset(l.elements)
}

// FaceLattice returns the face poset completed with a synthetic top.
func (l *Covectors) FaceLattice() *faces.Lattice {
	return faces.NewFaceLattice(l.elements)
}

// Topes returns the maximal covectors of the face poset.
func (l *Covectors) Topes() []signedset.SignedSet {
	return l.FacePoset().Maximal()
}

// TopePoset orders the topes by inclusion of separation sets from the
// base tope. The base must itself be a tope.
func (l *Covectors) TopePoset(base signedset.SignedSet) (*faces.Poset, error) {
	p, err := faces.NewTopePoset(l.Topes(), base)
	if err != nil {
		return nil, fmt.Errorf("TopePoset: %w", err)
	}

	return p, nil
}

// Deletion returns the minor M\A: every covector projected onto
// E\A, over the shrunken groundset. Projections that collapse to the
// same signed set are kept once. The result re-validates on
// construction.
func (l *Covectors) Deletion(subset ...string) (*Covectors, error) {
	drop, err := l.checkSubset("Deletion", subset)
	if err != nil {
		return nil, err
	}

	projected := make([]signedset.SignedSet, 0, len(l.elements))
	for _, x := range l.elements {
		projected = append(projected, x.Restrict(drop))
	}

	m, err := NewCovectorsFromElements(dedupe(projected))
	if err != nil {
		return nil, fmt.Errorf("Deletion: %w", err)
	}

	return m, nil
}

// Restriction returns the minor M/A: only covectors vanishing on all of
// A survive, projected onto E\A. The result re-validates on
// construction.
func (l *Covectors) Restriction(subset ...string) (*Covectors, error) {
	drop, err := l.checkSubset("Restriction", subset)
	if err != nil {
		return nil, err
	}

	projected := make([]signedset.SignedSet, 0, len(l.elements))
	for _, x := range l.elements {
		if drop.IsSubsetOf(x.Zeroes()) {
			projected = append(projected, x.Restrict(drop))
		}
	}

	m, err := NewCovectorsFromElements(dedupe(projected))
	if err != nil {
		return nil, fmt.Errorf("Restriction: %w", err)
	}

	return m, nil
}

// Loops returns the groundset elements every tope assigns zero. By the
// covector axioms one tope suffices: a zero at e in any tope forces a
// zero at e in all of them.
func (l *Covectors) Loops() []string {
	topes := l.Topes()
	if len(topes) == 0 {
		return nil
	}
	t := topes[0]

	var loops []string
	for _, e := range l.ground {
		s, err := t.Sign(e)
		if err == nil && s == 0 {
			loops = append(loops, e)
		}
	}

	return loops
}

// AreParallel reports whether the non-loop elements e and f are
// parallel: X(e) = 0 implies X(f) = 0 for every covector X.
// Loops and unknown labels are domain errors.
func (l *Covectors) AreParallel(e, f string) (bool, error) {
	gs := signedset.NewSet(l.ground...)
	loops := signedset.NewSet(l.Loops()...)
	for _, label := range []string{e, f} {
		if !gs.Has(label) {
			return false, fmt.Errorf("AreParallel(%q): %w", label, signedset.ErrNotInGroundset)
		}
		if loops.Has(label) {
			return false, fmt.Errorf("AreParallel(%q): %w", label, ErrLoopElement)
		}
	}

	return l.areParallel(e, f), nil
}

// areParallel is the loop-free inner test.
func (l *Covectors) areParallel(e, f string) bool {
	for _, x := range l.elements {
		se, _ := x.Sign(e)
		sf, _ := x.Sign(f)
		if se == 0 && sf != 0 {
			return false
		}
	}

	return true
}

// IsSimple reports whether the oriented matroid has no loops and no
// parallel pair among the 2-subsets of the groundset.
// Complexity: O(|E|²·n).
func (l *Covectors) IsSimple() bool {
	if len(l.Loops()) > 0 {
		return false
	}
	for i := 0; i < len(l.ground); i++ {
		for j := i + 1; j < len(l.ground); j++ {
			if l.areParallel(l.ground[i], l.ground[j]) {
				return false
			}
		}
	}

	return true
}

// IsAcyclic reports whether some tope has an empty negative part.
func (l *Covectors) IsAcyclic() bool {
	for _, t := range l.Topes() {
		if t.Negatives().Len() == 0 {
			return true
		}
	}

	return false
}

// IsSimplicial reports whether every tope T is simplicial: the interval
// [0,T] in the face lattice is isomorphic to a Boolean lattice, tested
// by counting 2^atoms elements.
func (l *Covectors) IsSimplicial() (bool, error) {
	lattice := l.FaceLattice()
	poset := lattice.Poset()
	bottom, err := lattice.Bottom()
	if err != nil {
		return false, fmt.Errorf("IsSimplicial: %w", err)
	}

	for _, t := range l.Topes() {
		ti := poset.IndexOf(t)
		ok, err := poset.IsBooleanInterval(bottom, ti)
		if err != nil {
			return false, fmt.Errorf("IsSimplicial: %w", err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// checkSubset verifies every label of subset belongs to the groundset
// and returns the labels as a set.
func (l *Covectors) checkSubset(op string, subset []string) (signedset.Set, error) {
	gs := signedset.NewSet(l.ground...)
	drop := signedset.NewSet(subset...)
	for _, label := range drop.Sorted() {
		if !gs.Has(label) {
			return nil, fmt.Errorf("%s(%q): %w", op, label, signedset.ErrNotInGroundset)
		}
	}

	return drop, nil
}

// dedupe keeps the first occurrence of each distinct signed set,
// preserving order. The element family is a set: constructors collapse
// repeated inputs, and projection collapses faces of a minor onto each
// other. The face poset requires distinct elements to stay
// antisymmetric.
func dedupe(elements []signedset.SignedSet) []signedset.SignedSet {
	seen := make(map[string]struct{}, len(elements))
	out := make([]signedset.SignedSet, 0, len(elements))
	for _, x := range elements {
		fp := x.Fingerprint()
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, x)
	}

	return out
}
