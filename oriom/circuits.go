// Package oriom: the circuit representation.
//
// Circuit axioms over a family C of signed subsets of E
// (Definition 3.2.1 in the standard reference):
//
//	C1. ∅ ∉ C (no all-zero element)
//	C2. C = −C (closed under negation)
//	C3. supp(X) ⊆ supp(Y) ⟹ X = Y or X = −Y
//	C4. weak elimination: X ≠ −Y, e ∈ X⁺ ∩ Y⁻ ⟹ ∃ Z ∈ C with
//	    Z⁺ ⊆ (X⁺ ∪ Y⁺)\{e} and Z⁻ ⊆ (X⁻ ∪ Y⁻)\{e}
//
// Complexity of Validate: O(n³·m) for n circuits over m labels,
// dominated by C4.
package oriom

import (
	"fmt"

	"github.com/katalvlaran/orimat/signedset"
)

// Circuits is an oriented matroid given by its signed circuits.
// Immutable after construction.
type Circuits struct {
	ground   []string
	elements []signedset.SignedSet
	rank     int // memoized; -1 until computed
}

// NewCircuits builds and validates a circuit oriented matroid from sign
// vectors aligned with ground (nil ground ⇒ positional labels).
func NewCircuits(data [][]int, ground []string) (*Circuits, error) {
	els, gs, err := materializeSigns(data, ground)
	if err != nil {
		return nil, fmt.Errorf("NewCircuits: %w", err)
	}

	return newCircuits(els, gs)
}

// NewCircuitsFromParts builds and validates a circuit oriented matroid
// from (positives, negatives[, zeroes]) triples.
func NewCircuitsFromParts(data []signedset.Parts, ground []string) (*Circuits, error) {
	els, gs, err := materializeParts(data, ground)
	if err != nil {
		return nil, fmt.Errorf("NewCircuits: %w", err)
	}

	return newCircuits(els, gs)
}

// NewCircuitsFromElements builds and validates a circuit oriented
// matroid from ready-made signed sets sharing one groundset.
func NewCircuitsFromElements(elements []signedset.SignedSet) (*Circuits, error) {
	els, gs, err := adoptElements(elements)
	if err != nil {
		return nil, fmt.Errorf("NewCircuits: %w", err)
	}

	return newCircuits(els, gs)
}

func newCircuits(elements []signedset.SignedSet, ground []string) (*Circuits, error) {
	c := &Circuits{ground: ground, elements: elements, rank: -1}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("NewCircuits: %w", err)
	}

	return c, nil
}

// Groundset returns the ordered groundset labels.
func (c *Circuits) Groundset() []string {
	out := make([]string, len(c.ground))
	copy(out, c.ground)

	return out
}

// Elements returns the defining family — the circuits.
func (c *Circuits) Elements() []signedset.SignedSet {
	out := make([]signedset.SignedSet, len(c.elements))
	copy(out, c.elements)

	return out
}

// Circuits returns the circuit family (alias of Elements for this
// representation).
func (c *Circuits) Circuits() []signedset.SignedSet {
	return c.Elements()
}

// Validate checks the circuit axioms and returns the first violation.
// A nil error means every axiom holds.
func (c *Circuits) Validate() error {
	idx := index(c.elements)

	for i, x := range c.elements {
		// C1: the zero signed set is forbidden.
		if x.IsZero() {
			return fmt.Errorf("circuit %d: %w", i, ErrZeroElementForbidden)
		}
		// C2: the opposite must be present.
		if !contains(idx, x.Negate()) {
			return fmt.Errorf("circuit %d: %w", i, ErrMissingOpposite)
		}

		for j, y := range c.elements {
			// C3: nested supports only between an element and its opposite.
			if x.Support().IsSubsetOf(y.Support()) {
				if !x.Equal(y) && !x.Equal(y.Negate()) {
					return fmt.Errorf("circuits %d and %d: %w", i, j, ErrSupportContained)
				}
			}
			// C4: weak elimination for every e ∈ X⁺ ∩ Y⁻, X ≠ −Y.
			if x.Equal(y.Negate()) {
				continue
			}
			for _, e := range x.Positives().Inter(y.Negatives()).Sorted() {
				if !c.eliminationWitness(x, y, e) {
					return fmt.Errorf("circuits %d and %d eliminating %q: weak %w",
						i, j, e, ErrEliminationFailed)
				}
			}
		}
	}

	return nil
}

// eliminationWitness searches for Z with Z⁺ ⊆ (X⁺ ∪ Y⁺)\{e} and
// Z⁻ ⊆ (X⁻ ∪ Y⁻)\{e}.
func (c *Circuits) eliminationWitness(x, y signedset.SignedSet, e string) bool {
	p := x.Positives().Union(y.Positives()).Diff(signedset.NewSet(e))
	n := x.Negatives().Union(y.Negatives()).Diff(signedset.NewSet(e))
	for _, z := range c.elements {
		if z.Positives().IsSubsetOf(p) && z.Negatives().IsSubsetOf(n) {
			return true
		}
	}

	return false
}

// Rank returns the rank of the underlying matroid: the size of the
// largest subset of the groundset containing no circuit support.
// Memoized after the first call.
// Complexity: O(2^|E|·n·m) worst case — groundsets here are small.
func (c *Circuits) Rank() int {
	if c.rank >= 0 {
		return c.rank
	}
	supports := make([]signedset.Set, len(c.elements))
	for i, x := range c.elements {
		supports[i] = x.Support()
	}
	c.rank = circuitRank(c.ground, supports)

	return c.rank
}
