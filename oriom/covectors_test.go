package oriom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orimat/oriom"
	"github.com/katalvlaran/orimat/signedset"
)

func TestNewCovectors_RankOne(t *testing.T) {
	m, err := oriom.NewCovectors([][]int{{1}, {-1}, {0}}, []string{"e"})
	require.NoError(t, err)

	require.NoError(t, m.Validate())
	assert.Equal(t, 1, m.Rank())
	assert.Len(t, m.Topes(), 2)
	assert.Len(t, m.Cocircuits(), 2)
}

func TestNewCovectors_Rank2System(t *testing.T) {
	m := rank2System(t)

	assert.Equal(t, rank2Ground, m.Groundset())
	assert.Equal(t, 2, m.Rank())
	assert.Len(t, m.Elements(), 13)
	assert.Len(t, m.Cocircuits(), 6)
}

func TestNewCovectors_DuplicateRowsCollapse(t *testing.T) {
	m, err := oriom.NewCovectors([][]int{{1}, {1}, {-1}, {0}}, []string{"e"})
	require.NoError(t, err)

	// The family is a set: the repeated row is kept once, so both rays
	// stay maximal.
	assert.Len(t, m.Elements(), 3)
	assert.Len(t, m.Topes(), 2)
}

func TestNewCovectors_MissingOpposite(t *testing.T) {
	_, err := oriom.NewCovectors([][]int{{0, 0}, {1, 1}}, []string{"a", "b"})
	require.ErrorIs(t, err, oriom.ErrMissingOpposite)
}

func TestNewCovectors_CompositionNotClosed(t *testing.T) {
	// (0,+1)∘(+1,+1) lands outside the family.
	_, err := oriom.NewCovectors([][]int{
		{1, 1}, {-1, -1}, {0, 1}, {1, 0}, {-1, 0}, {0, -1},
	}, []string{"a", "b"})
	require.ErrorIs(t, err, oriom.ErrCompositionNotClosed)
}

func TestNewCovectors_EliminationFailed(t *testing.T) {
	// Eliminating b between (+,+) and (+,−) needs (+,0), which is absent.
	_, err := oriom.NewCovectors([][]int{
		{0, 0}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1},
	}, []string{"a", "b"})
	require.ErrorIs(t, err, oriom.ErrEliminationFailed)
}

func TestNewCovectors_Empty(t *testing.T) {
	_, err := oriom.NewCovectors(nil, []string{"a"})
	require.ErrorIs(t, err, oriom.ErrEmptyCollection)
}

func TestNewCovectorsFromElements_MixedGroundsets(t *testing.T) {
	x := mustSigns(t, []string{"a", "b"}, []int{0, 0})
	y := mustSigns(t, []string{"b", "a"}, []int{0, 0})
	_, err := oriom.NewCovectorsFromElements([]signedset.SignedSet{x, y})
	require.ErrorIs(t, err, oriom.ErrMixedGroundsets)
}

func TestCovectors_CompositionStaysInFamily(t *testing.T) {
	m := rank2System(t)
	x := mustSigns(t, rank2Ground, []int{1, 1, 0})
	y := mustSigns(t, rank2Ground, []int{0, -1, -1})

	inFamily := make(map[string]struct{})
	for _, z := range m.Elements() {
		inFamily[z.Fingerprint()] = struct{}{}
	}

	xy, err := x.Compose(y)
	require.NoError(t, err)
	yx, err := y.Compose(x)
	require.NoError(t, err)

	// Composition is not commutative, yet both orders stay covectors.
	assert.False(t, xy.Equal(yx))
	assert.Contains(t, inFamily, xy.Fingerprint())
	assert.Contains(t, inFamily, yx.Fingerprint())
}

func TestCovectors_CocircuitsAreRays(t *testing.T) {
	m := rank2System(t)
	for _, c := range m.Cocircuits() {
		// Every cocircuit of the three-line system vanishes on exactly
		// one line.
		assert.Equal(t, 1, c.Zeroes().Len(), "cocircuit %v", c)
	}
}
