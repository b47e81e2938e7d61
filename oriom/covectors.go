// Package oriom: the covector representation.
//
// Covector axioms over a family L of signed subsets of E
// (Theorem 4.1.1 in the standard reference):
//
//	L1. the all-zero element is in L
//	L2. L = −L (closed under negation)
//	L3. X∘Y ∈ L for all X,Y ∈ L (checked for every ordered pair)
//	L4. weak elimination on the separation set: e ∈ S(X,Y) ⟹ ∃ Z ∈ L
//	    with Z(e) = 0 and Z(f) = (X∘Y)(f) for every f ∉ S(X,Y)
//
// Off the separation set X∘Y and Y∘X agree pointwise, so checking L4
// against X∘Y loses nothing despite composition being asymmetric.
//
// Complexity of Validate: O(n³·m), dominated by L4.
package oriom

import (
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// Covectors is an oriented matroid given by its covectors.
// Immutable after construction; derived cocircuits and rank are
// memoized.
type Covectors struct {
	ground     []string
	elements   []signedset.SignedSet
	cocircuits []signedset.SignedSet // lazy: support-minimal nonzero covectors
	rank       int                   // memoized; -1 until computed
}

// NewCovectors builds and validates a covector oriented matroid from
// sign vectors aligned with ground (nil ground ⇒ positional labels).
func NewCovectors(data [][]int, ground []string) (*Covectors, error) {
	els, gs, err := materializeSigns(data, ground)
	if err != nil {
		return nil, fmt.Errorf("NewCovectors: %w", err)
	}

	return newCovectors(els, gs)
}

// NewCovectorsFromParts builds and validates a covector oriented
// matroid from (positives, negatives[, zeroes]) triples.
func NewCovectorsFromParts(data []signedset.Parts, ground []string) (*Covectors, error) {
	els, gs, err := materializeParts(data, ground)
	if err != nil {
		return nil, fmt.Errorf("NewCovectors: %w", err)
	}

	return newCovectors(els, gs)
}

// NewCovectorsFromElements builds and validates a covector oriented
// matroid from ready-made signed sets sharing one groundset.
func NewCovectorsFromElements(elements []signedset.SignedSet) (*Covectors, error) {
	els, gs, err := adoptElements(elements)
	if err != nil {
		return nil, fmt.Errorf("NewCovectors: %w", err)
	}

	return newCovectors(els, gs)
}

func newCovectors(elements []signedset.SignedSet, ground []string) (*Covectors, error) {
	l := &Covectors{ground: ground, elements: elements, rank: -1}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("NewCovectors: %w", err)
	}

	return l, nil
}

// Groundset returns the ordered groundset labels.
func (l *Covectors) Groundset() []string {
	out := make([]string, len(l.ground))
	copy(out, l.ground)

	return out
}

// Elements returns the defining family — the covectors.
func (l *Covectors) Elements() []signedset.SignedSet {
	out := make([]signedset.SignedSet, len(l.elements))
	copy(out, l.elements)

	return out
}

// Covectors returns the covector family (alias of Elements for this
// representation).
func (l *Covectors) Covectors() []signedset.SignedSet {
	return l.Elements()
}

// Validate checks the covector axioms and returns the first violation.
func (l *Covectors) Validate() error {
	idx := index(l.elements)

	zeroFound := false
	for i, x := range l.elements {
		// L1 bookkeeping: remember whether the zero covector appears.
		if x.IsZero() {
			zeroFound = true
		}
		// L2: the opposite must be present.
		if !contains(idx, x.Negate()) {
			return fmt.Errorf("covector %d: %w", i, ErrMissingOpposite)
		}

		for j, y := range l.elements {
			// L3: composition of the ordered pair stays in the family.
			xy, err := x.Compose(y)
			if err != nil {
				return fmt.Errorf("covectors %d and %d: %w", i, j, err)
			}
			if !contains(idx, xy) {
				return fmt.Errorf("covectors %d and %d: %w", i, j, ErrCompositionNotClosed)
			}

			// L4: for every e in the separation set there is a Z vanishing
			// at e that matches X∘Y everywhere outside the separation set.
			sep := x.SeparationSet(y)
			if sep.Len() == 0 {
				continue
			}
			outside := signedset.NewSet(l.ground...).Diff(sep)
			for _, e := range sep.Sorted() {
				if !l.eliminationWitness(xy, e, outside) {
					return fmt.Errorf("covectors %d and %d eliminating %q: weak %w",
						i, j, e, ErrEliminationFailed)
				}
			}
		}
	}
	if !zeroFound {
		return ErrZeroElementRequired
	}

	return nil
}

// eliminationWitness searches for Z with Z(e) = 0 agreeing with xy on
// every label outside the separation set.
func (l *Covectors) eliminationWitness(xy signedset.SignedSet, e string, outside signedset.Set) bool {
	for _, z := range l.elements {
		s, err := z.Sign(e)
		if err != nil || s != 0 {
			continue
		}
		match := true
		for _, f := range outside.Sorted() {
			zs, _ := z.Sign(f)
			xys, _ := xy.Sign(f)
			if zs != xys {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// Cocircuits returns the cocircuits of the oriented matroid: the
// support-minimal nonzero covectors. Computed once and memoized.
func (l *Covectors) Cocircuits() []signedset.SignedSet {
	if l.cocircuits == nil {
		l.cocircuits = supportMinimal(l.elements)
	}
	out := make([]signedset.SignedSet, len(l.cocircuits))
	copy(out, l.cocircuits)

	return out
}

// Rank returns the rank of the underlying matroid: the flats are the
// zero sets of the covectors ordered by inclusion, and the rank is the
// length of the longest flat chain minus one. Memoized.
func (l *Covectors) Rank() int {
	if l.rank >= 0 {
		return l.rank
	}
	flats := distinctZeroSets(l.elements)
	l.rank = flatsRank(flats)

	return l.rank
}
