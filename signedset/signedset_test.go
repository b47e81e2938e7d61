package signedset_test

import (
	"testing"

	"github.com/katalvlaran/orimat/signedset"
	"github.com/stretchr/testify/require"
)

// mustSigns builds a SignedSet from a sign vector or fails the test.
func mustSigns(t *testing.T, ground []string, signs []int) signedset.SignedSet {
	t.Helper()
	x, err := signedset.FromSigns(ground, signs)
	require.NoError(t, err)

	return x
}

var e3 = []string{"e1", "e2", "e3"}

// TestSign_LookupAndDomainError verifies per-label sign lookup and the
// domain failure on unknown labels.
func TestSign_LookupAndDomainError(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})

	s, err := x.Sign("e1")
	require.NoError(t, err)
	require.Equal(t, 1, s)

	s, err = x.Sign("e2")
	require.NoError(t, err)
	require.Equal(t, -1, s)

	s, err = x.Sign("e3")
	require.NoError(t, err)
	require.Equal(t, 0, s)

	_, err = x.Sign("nope")
	require.ErrorIs(t, err, signedset.ErrNotInGroundset)
}

// TestNegate_Involution verifies Negate swaps the sign sets and that
// applying it twice restores the original value.
func TestNegate_Involution(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})
	n := x.Negate()

	require.Equal(t, []int{-1, 1, 0}, n.Signs())
	require.True(t, n.Negate().Equal(x))
}

// TestCompose_IdentityAndPrecedence verifies X∘X = X and that the left
// operand's nonzero signs win.
func TestCompose_IdentityAndPrecedence(t *testing.T) {
	x := mustSigns(t, e3, []int{1, 0, -1})
	y := mustSigns(t, e3, []int{-1, 1, 0})

	// Composition with self is the identity.
	xx, err := x.Compose(x)
	require.NoError(t, err)
	require.True(t, xx.Equal(x))

	// X wins wherever it is nonzero; Y fills the gaps.
	xy, err := x.Compose(y)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, -1}, xy.Signs())
}

// TestCompose_NotCommutative exhibits a pair where X∘Y ≠ Y∘X.
func TestCompose_NotCommutative(t *testing.T) {
	x := mustSigns(t, []string{"e"}, []int{1})
	y := mustSigns(t, []string{"e"}, []int{-1})

	xy, err := x.Compose(y)
	require.NoError(t, err)
	yx, err := y.Compose(x)
	require.NoError(t, err)

	require.False(t, xy.Equal(yx))
	require.Equal(t, []int{1}, xy.Signs())
	require.Equal(t, []int{-1}, yx.Signs())
}

// TestSeparationSet_AndConformality verifies S(X,Y) extraction and the
// symmetry of conformality.
func TestSeparationSet_AndConformality(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})
	y := mustSigns(t, e3, []int{-1, -1, 1})

	// Only e1 carries strictly opposite nonzero signs.
	require.ElementsMatch(t, []string{"e1"}, x.SeparationSet(y).Sorted())
	require.False(t, x.ConformsWith(y))
	require.Equal(t, x.ConformsWith(y), y.ConformsWith(x))

	// Conformal pair: x's support extends z's without conflicts.
	z := mustSigns(t, e3, []int{1, 0, 0})
	require.True(t, z.ConformsWith(x))
	require.True(t, x.ConformsWith(z))
}

// TestIsRestrictionOf distinguishes restriction from mere conformality.
func TestIsRestrictionOf(t *testing.T) {
	small := mustSigns(t, e3, []int{1, 0, 0})
	big := mustSigns(t, e3, []int{1, -1, 0})

	require.True(t, small.IsRestrictionOf(big))
	require.False(t, big.IsRestrictionOf(small))
	// Restriction is reflexive.
	require.True(t, big.IsRestrictionOf(big))
}

// TestReorient verifies sign flips on the change set and the domain
// failure for labels outside the groundset.
func TestReorient(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})

	r, err := x.Reorient("e1", "e3")
	require.NoError(t, err)
	require.Equal(t, []int{-1, -1, 0}, r.Signs())

	// Double reorientation by the same set restores the original.
	rr, err := r.Reorient("e1", "e3")
	require.NoError(t, err)
	require.True(t, rr.Equal(x))

	_, err = x.Reorient("bogus")
	require.ErrorIs(t, err, signedset.ErrNotInGroundset)
}

// TestEqual_RequiresExactTriple verifies that support equality is not
// enough: all three component sets must match.
func TestEqual_RequiresExactTriple(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})
	sameSupport := mustSigns(t, e3, []int{-1, 1, 0})

	require.True(t, x.Support().Equal(sameSupport.Support()))
	require.False(t, x.Equal(sameSupport))
	require.NotEqual(t, x.Fingerprint(), sameSupport.Fingerprint())

	twin := mustSigns(t, e3, []int{1, -1, 0})
	require.True(t, x.Equal(twin))
	require.Equal(t, x.Fingerprint(), twin.Fingerprint())
}

// TestIsZero verifies the zero predicate.
func TestIsZero(t *testing.T) {
	require.True(t, mustSigns(t, e3, []int{0, 0, 0}).IsZero())
	require.False(t, mustSigns(t, e3, []int{0, 1, 0}).IsZero())
}

// TestSigns_RoundTrip verifies vector → SignedSet → vector identity for
// different groundset orderings.
func TestSigns_RoundTrip(t *testing.T) {
	cases := []struct {
		ground []string
		signs  []int
	}{
		{[]string{"a", "b", "c"}, []int{1, -1, 0}},
		{[]string{"c", "a", "b"}, []int{0, 0, 1}},
		{[]string{"z", "y"}, []int{-1, -1}},
	}
	for _, tc := range cases {
		x := mustSigns(t, tc.ground, tc.signs)
		require.Equal(t, tc.signs, x.Signs())
		require.Equal(t, tc.ground, x.Groundset())
	}
}

// TestRestrict projects away labels and shrinks the groundset.
func TestRestrict(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})
	r := x.Restrict(signedset.NewSet("e2"))

	require.Equal(t, []string{"e1", "e3"}, r.Groundset())
	require.Equal(t, []int{1, 0}, r.Signs())
}

// TestFormatAs verifies both display modes.
func TestFormatAs(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})

	require.Equal(t, "(1,-1,0)", x.FormatAs(signedset.FormatVector))
	require.Equal(t, "(1,-1,0)", x.String())
	require.Equal(t, "+: e1\n-: e2\n0: e3", x.FormatAs(signedset.FormatSet))
}

// TestAccessors_ReturnCopies verifies that mutating a returned set does
// not corrupt the immutable value.
func TestAccessors_ReturnCopies(t *testing.T) {
	x := mustSigns(t, e3, []int{1, -1, 0})

	p := x.Positives()
	p.Add("e3")

	s, err := x.Sign("e3")
	require.NoError(t, err)
	require.Equal(t, 0, s)
}
