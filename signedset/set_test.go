package signedset_test

import (
	"testing"

	"github.com/katalvlaran/orimat/signedset"
	"github.com/stretchr/testify/require"
)

// TestSet_Algebra exercises the core set operations used by the axiom
// checks: union, intersection, difference, subset and equality.
func TestSet_Algebra(t *testing.T) {
	a := signedset.NewSet("1", "2", "3")
	b := signedset.NewSet("3", "4")

	require.True(t, a.Has("2"))
	require.False(t, a.Has("4"))
	require.Equal(t, 3, a.Len())

	require.ElementsMatch(t, []string{"1", "2", "3", "4"}, a.Union(b).Sorted())
	require.ElementsMatch(t, []string{"3"}, a.Inter(b).Sorted())
	require.ElementsMatch(t, []string{"1", "2"}, a.Diff(b).Sorted())

	require.True(t, signedset.NewSet("1", "3").IsSubsetOf(a))
	require.False(t, b.IsSubsetOf(a))
	require.True(t, a.Equal(signedset.NewSet("3", "2", "1")))
	require.False(t, a.Equal(b))
}

// TestSet_OperationsDoNotMutate verifies that union/intersection/diff
// leave their operands untouched — callers rely on value semantics.
func TestSet_OperationsDoNotMutate(t *testing.T) {
	a := signedset.NewSet("x", "y")
	b := signedset.NewSet("y", "z")

	_ = a.Union(b)
	_ = a.Inter(b)
	_ = a.Diff(b)

	require.ElementsMatch(t, []string{"x", "y"}, a.Sorted())
	require.ElementsMatch(t, []string{"y", "z"}, b.Sorted())
}

// TestSet_CloneIsIndependent verifies Clone detaches storage.
func TestSet_CloneIsIndependent(t *testing.T) {
	a := signedset.NewSet("p")
	c := a.Clone()
	c.Add("q")

	require.False(t, a.Has("q"))
	require.True(t, c.Has("q"))
}

// TestSet_SortedIsDeterministic verifies the iteration contract.
func TestSet_SortedIsDeterministic(t *testing.T) {
	s := signedset.NewSet("b", "a", "c")
	require.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	require.Equal(t, s.Sorted(), s.Sorted())
}
