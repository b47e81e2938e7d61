// Package signedset: the SignedSet value type and its algebra.
//
// Every operation here is pure: receivers are never mutated, results
// are fresh values sharing no mutable state with their inputs. The
// partition invariant (positives ∪ negatives ∪ zeroes == groundset,
// pairwise disjoint) is established at construction and relied upon
// everywhere below.
package signedset

import (
	"fmt"
	"strconv"
	"strings"
)

// SignedSet assigns one of {+1, 0, -1} to every label of a fixed,
// ordered groundset. The zero value is not usable; build instances via
// the From* constructors or Clone.
type SignedSet struct {
	pos    Set
	neg    Set
	zero   Set
	ground []string
}

// Groundset returns the ordered groundset labels.
func (x SignedSet) Groundset() []string {
	out := make([]string, len(x.ground))
	copy(out, x.ground)

	return out
}

// Positives returns a copy of the positive label set.
func (x SignedSet) Positives() Set { return x.pos.Clone() }

// Negatives returns a copy of the negative label set.
func (x SignedSet) Negatives() Set { return x.neg.Clone() }

// Zeroes returns a copy of the zero label set.
func (x SignedSet) Zeroes() Set { return x.zero.Clone() }

// Support returns the set of labels with a nonzero sign.
func (x SignedSet) Support() Set {
	return x.pos.Union(x.neg)
}

// Sign returns the sign of label: +1, 0 or -1.
// Returns ErrNotInGroundset when label is unknown.
func (x SignedSet) Sign(label string) (int, error) {
	switch {
	case x.pos.Has(label):
		return 1, nil
	case x.neg.Has(label):
		return -1, nil
	case x.zero.Has(label):
		return 0, nil
	}

	return 0, fmt.Errorf("Sign(%q): %w", label, ErrNotInGroundset)
}

// sign is the internal lookup used when the label is already known to
// be in the groundset (partition invariant makes the fallthrough zero).
func (x SignedSet) sign(label string) int {
	if x.pos.Has(label) {
		return 1
	}
	if x.neg.Has(label) {
		return -1
	}

	return 0
}

// Negate returns the opposite signed set: positives and negatives swap,
// zeroes are unchanged.
func (x SignedSet) Negate() SignedSet {
	return SignedSet{
		pos:    x.neg.Clone(),
		neg:    x.pos.Clone(),
		zero:   x.zero.Clone(),
		ground: x.ground,
	}
}

// IsZero reports whether the support is empty (the all-zero signed set).
func (x SignedSet) IsZero() bool {
	return len(x.pos) == 0 && len(x.neg) == 0
}

// Compose returns the composition X∘Y: for every groundset label e,
// (X∘Y)(e) = X(e) when X(e) ≠ 0, otherwise Y(e).
//
// Composition is not commutative in general; callers must compose in
// the order their semantics require. Returns ErrNotInGroundset when
// other does not carry a sign for some label of x's groundset.
// Complexity: O(|E|).
func (x SignedSet) Compose(other SignedSet) (SignedSet, error) {
	pos := make(Set, len(x.pos)+len(other.pos))
	neg := make(Set, len(x.neg)+len(other.neg))
	zero := make(Set)

	for _, e := range x.ground {
		s := x.sign(e)
		if s == 0 {
			// x is silent on e: defer to other, which must know e.
			var err error
			if s, err = other.Sign(e); err != nil {
				return SignedSet{}, fmt.Errorf("Compose: %w", err)
			}
		}
		switch s {
		case 1:
			pos[e] = struct{}{}
		case -1:
			neg[e] = struct{}{}
		default:
			zero[e] = struct{}{}
		}
	}

	return SignedSet{pos: pos, neg: neg, zero: zero, ground: x.ground}, nil
}

// SeparationSet returns S(X,Y) = { e | X(e) = -Y(e) ≠ 0 }: the labels
// where the two signed sets hold strictly opposite nonzero signs.
func (x SignedSet) SeparationSet(other SignedSet) Set {
	return x.pos.Inter(other.neg).Union(x.neg.Inter(other.pos))
}

// ConformsWith reports whether x and other are conformal, i.e. their
// separation set is empty. Conformality is symmetric.
func (x SignedSet) ConformsWith(other SignedSet) bool {
	return len(x.SeparationSet(other)) == 0
}

// IsRestrictionOf reports whether x's positives and negatives are both
// contained in other's. Restriction implies conformality but not the
// converse (support need not match).
func (x SignedSet) IsRestrictionOf(other SignedSet) bool {
	return x.pos.IsSubsetOf(other.pos) && x.neg.IsSubsetOf(other.neg)
}

// Reorient flips the sign of every label in changeSet and returns the
// result. Returns ErrNotInGroundset when changeSet mentions a label
// outside the groundset.
func (x SignedSet) Reorient(changeSet ...string) (SignedSet, error) {
	change := NewSet(changeSet...)
	gs := NewSet(x.ground...)
	for _, l := range change.Sorted() {
		if !gs.Has(l) {
			return SignedSet{}, fmt.Errorf("Reorient(%q): %w", l, ErrNotInGroundset)
		}
	}

	// {}_{-A}X⁺ = (X⁺ \ A) ∪ (X⁻ ∩ A), and symmetrically for X⁻.
	pos := x.pos.Diff(change).Union(x.neg.Inter(change))
	neg := x.neg.Diff(change).Union(x.pos.Inter(change))

	return SignedSet{pos: pos, neg: neg, zero: x.zero.Clone(), ground: x.ground}, nil
}

// Equal reports whether x and other match on all three component sets.
// Support equality alone is not enough.
func (x SignedSet) Equal(other SignedSet) bool {
	return x.pos.Equal(other.pos) && x.neg.Equal(other.neg) && x.zero.Equal(other.zero)
}

// Clone returns an independent copy of x.
func (x SignedSet) Clone() SignedSet {
	ground := make([]string, len(x.ground))
	copy(ground, x.ground)

	return SignedSet{
		pos:    x.pos.Clone(),
		neg:    x.neg.Clone(),
		zero:   x.zero.Clone(),
		ground: ground,
	}
}

// Fingerprint returns a canonical string key derived from the frozen
// component triple. Two SignedSets are Equal iff their fingerprints
// match, so the fingerprint is usable as a map key for membership
// indexes.
func (x SignedSet) Fingerprint() string {
	var b strings.Builder
	b.WriteString(strings.Join(x.pos.Sorted(), ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(x.neg.Sorted(), ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(x.zero.Sorted(), ","))

	return b.String()
}

// Signs returns the sign vector in groundset order. Together with
// FromSigns this round-trips exactly for any groundset ordering.
func (x SignedSet) Signs() []int {
	out := make([]int, len(x.ground))
	for i, e := range x.ground {
		out[i] = x.sign(e)
	}

	return out
}

// Restrict projects x onto ground \ drop: dropped labels vanish from
// all three component sets and from the groundset. Labels in drop that
// are not in the groundset are ignored; minors own that validation.
func (x SignedSet) Restrict(drop Set) SignedSet {
	ground := make([]string, 0, len(x.ground))
	for _, e := range x.ground {
		if !drop.Has(e) {
			ground = append(ground, e)
		}
	}

	return SignedSet{
		pos:    x.pos.Diff(drop),
		neg:    x.neg.Diff(drop),
		zero:   x.zero.Diff(drop),
		ground: ground,
	}
}

// FormatAs renders x in the requested display mode.
func (x SignedSet) FormatAs(mode Format) string {
	if mode == FormatVector {
		parts := make([]string, len(x.ground))
		for i, e := range x.ground {
			parts[i] = strconv.Itoa(x.sign(e))
		}

		return "(" + strings.Join(parts, ",") + ")"
	}

	return "+: " + strings.Join(x.pos.Sorted(), ",") +
		"\n-: " + strings.Join(x.neg.Sorted(), ",") +
		"\n0: " + strings.Join(x.zero.Sorted(), ",")
}

// String renders x in vector form.
func (x SignedSet) String() string {
	return x.FormatAs(FormatVector)
}
