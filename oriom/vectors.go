// Package oriom: the vector representation.
//
// Vector axioms over a family V of signed subsets of E
// (Theorem 3.7.5 / Corollary 3.7.9 in the standard reference):
//
//	V1. the all-zero element is in V
//	V2. V = −V (closed under negation)
//	V3. X∘Y ∈ V for all X,Y ∈ V
//	V4. vector elimination: e ∈ X⁺ ∩ Y⁻ ⟹ ∃ Z ∈ V with
//	    Z⁺ ⊆ (X⁺ ∪ Y⁺)\{e}, Z⁻ ⊆ (X⁻ ∪ Y⁻)\{e} and
//	    (supp X \ supp Y) ∪ (supp Y \ supp X) ∪ (X⁺∩Y⁺) ∪ (X⁻∩Y⁻) ⊆ supp Z
//
// Complexity of Validate: O(n³·m), dominated by V4.
package oriom

import (
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// Vectors is an oriented matroid given by its signed vectors.
// Immutable after construction; derived circuits are memoized.
type Vectors struct {
	ground   []string
	elements []signedset.SignedSet
	circuits []signedset.SignedSet // lazy: support-minimal nonzero vectors
	rank     int                   // memoized; -1 until computed
}

// NewVectors builds and validates a vector oriented matroid from sign
// vectors aligned with ground (nil ground ⇒ positional labels).
func NewVectors(data [][]int, ground []string) (*Vectors, error) {
	els, gs, err := materializeSigns(data, ground)
	if err != nil {
		return nil, fmt.Errorf("NewVectors: %w", err)
	}

	return newVectors(els, gs)
}

// NewVectorsFromParts builds and validates a vector oriented matroid
// from (positives, negatives[, zeroes]) triples.
func NewVectorsFromParts(data []signedset.Parts, ground []string) (*Vectors, error) {
	els, gs, err := materializeParts(data, ground)
	if err != nil {
		return nil, fmt.Errorf("NewVectors: %w", err)
	}

	return newVectors(els, gs)
}

// NewVectorsFromElements builds and validates a vector oriented matroid
// from ready-made signed sets sharing one groundset.
func NewVectorsFromElements(elements []signedset.SignedSet) (*Vectors, error) {
	els, gs, err := adoptElements(elements)
	if err != nil {
		return nil, fmt.Errorf("NewVectors: %w", err)
	}

	return newVectors(els, gs)
}

func newVectors(elements []signedset.SignedSet, ground []string) (*Vectors, error) {
	v := &Vectors{ground: ground, elements: elements, rank: -1}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("NewVectors: %w", err)
	}

	return v, nil
}

// Groundset returns the ordered groundset labels.
func (v *Vectors) Groundset() []string {
	out := make([]string, len(v.ground))
	copy(out, v.ground)

	return out
}

// Elements returns the defining family — the vectors.
func (v *Vectors) Elements() []signedset.SignedSet {
	out := make([]signedset.SignedSet, len(v.elements))
	copy(out, v.elements)

	return out
}

// Vectors returns the vector family (alias of Elements for this
// representation).
func (v *Vectors) Vectors() []signedset.SignedSet {
	return v.Elements()
}

// Validate checks the vector axioms and returns the first violation.
func (v *Vectors) Validate() error {
	idx := index(v.elements)

	zeroFound := false
	for i, x := range v.elements {
		// V1 bookkeeping: remember whether the zero element appears.
		if x.IsZero() {
			zeroFound = true
		}
		// V2: the opposite must be present.
		if !contains(idx, x.Negate()) {
			return fmt.Errorf("vector %d: %w", i, ErrMissingOpposite)
		}

		for j, y := range v.elements {
			// V3: composition stays in the family.
			xy, err := x.Compose(y)
			if err != nil {
				return fmt.Errorf("vectors %d and %d: %w", i, j, err)
			}
			if !contains(idx, xy) {
				return fmt.Errorf("vectors %d and %d: %w", i, j, ErrCompositionNotClosed)
			}

			// V4: vector elimination. The witness support must cover the
			// symmetric difference of supports plus the agreeing signs.
			cover := x.Support().Diff(y.Support()).
				Union(y.Support().Diff(x.Support())).
				Union(x.Positives().Inter(y.Positives())).
				Union(x.Negatives().Inter(y.Negatives()))
			for _, e := range x.Positives().Inter(y.Negatives()).Sorted() {
				if !v.eliminationWitness(x, y, e, cover) {
					return fmt.Errorf("vectors %d and %d eliminating %q: vector %w",
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

// eliminationWitness searches for Z with Z⁺ ⊆ (X⁺ ∪ Y⁺)\{e},
// Z⁻ ⊆ (X⁻ ∪ Y⁻)\{e} and cover ⊆ supp(Z).
func (v *Vectors) eliminationWitness(x, y signedset.SignedSet, e string, cover signedset.Set) bool {
	p := x.Positives().Union(y.Positives()).Diff(signedset.NewSet(e))
	n := x.Negatives().Union(y.Negatives()).Diff(signedset.NewSet(e))
	for _, z := range v.elements {
		if z.Positives().IsSubsetOf(p) && z.Negatives().IsSubsetOf(n) &&
			cover.IsSubsetOf(z.Support()) {
			return true
		}
	}

	return false
}

// Circuits returns the circuits of the oriented matroid: the
// support-minimal nonzero vectors. Computed once and memoized.
// Complexity: O(n²·m).
func (v *Vectors) Circuits() []signedset.SignedSet {
	if v.circuits == nil {
		v.circuits = supportMinimal(v.elements)
	}
	out := make([]signedset.SignedSet, len(v.circuits))
	copy(out, v.circuits)

	return out
}

// Rank returns the rank of the underlying matroid, computed from the
// derived circuits. Memoized after the first call.
func (v *Vectors) Rank() int {
	if v.rank >= 0 {
		return v.rank
	}
	circuits := v.Circuits()
	supports := make([]signedset.Set, len(circuits))
	for i, x := range circuits {
		supports[i] = x.Support()
	}
	v.rank = circuitRank(v.ground, supports)

	return v.rank
}

// supportMinimal extracts the nonzero elements whose support properly
// contains no other nonzero element's support.
func supportMinimal(elements []signedset.SignedSet) []signedset.SignedSet {
	out := make([]signedset.SignedSet, 0)
	for i, x := range elements {
		if x.IsZero() {
			continue
		}
		minimal := true
		for j, y := range elements {
			if i == j || y.IsZero() {
				continue
			}
			ys, xs := y.Support(), x.Support()
			if ys.IsSubsetOf(xs) && !ys.Equal(xs) {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, x)
		}
	}

	return out
}
