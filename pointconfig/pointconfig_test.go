package pointconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orimat/oriom"
	"github.com/katalvlaran/orimat/pointconfig"
	"github.com/katalvlaran/orimat/signedset"
)

func TestNew_Errors(t *testing.T) {
	t.Run("no points", func(t *testing.T) {
		_, err := pointconfig.New(nil)
		require.ErrorIs(t, err, pointconfig.ErrNoPoints)
	})
	t.Run("mixed dimensions", func(t *testing.T) {
		_, err := pointconfig.New([][]float64{{0, 0}, {1}})
		require.ErrorIs(t, err, pointconfig.ErrDimensionMismatch)
	})
	t.Run("label count", func(t *testing.T) {
		_, err := pointconfig.New([][]float64{{0}, {1}}, pointconfig.WithLabels("a"))
		require.ErrorIs(t, err, pointconfig.ErrLabelCount)
	})
	t.Run("bad epsilon", func(t *testing.T) {
		_, err := pointconfig.New([][]float64{{0}}, pointconfig.WithEpsilon(-1))
		require.ErrorIs(t, err, pointconfig.ErrBadEpsilon)
	})
}

func TestCircuitData_CollinearTriple(t *testing.T) {
	// 0, 1, 2 on the line: the middle point is the negative part of the
	// unique affine dependency p1 − 2·p2 + p3 = 0.
	c, err := pointconfig.New([][]float64{{0}, {1}, {2}})
	require.NoError(t, err)

	data := c.CircuitData()
	require.Len(t, data, 2)
	assert.Equal(t, signedset.Parts{
		Positives: []string{"p1", "p3"},
		Negatives: []string{"p2"},
	}, data[0])
	assert.Equal(t, signedset.Parts{
		Positives: []string{"p2"},
		Negatives: []string{"p1", "p3"},
	}, data[1])
}

func TestCircuitData_DuplicatePoints(t *testing.T) {
	c, err := pointconfig.New([][]float64{{0, 0}, {0, 0}, {1, 0}})
	require.NoError(t, err)

	data := c.CircuitData()
	// The repeated point is the only dependency: {p1, p2} in both signs.
	require.Len(t, data, 2)
	assert.ElementsMatch(t, []string{"p1"}, data[0].Positives)
	assert.ElementsMatch(t, []string{"p2"}, data[0].Negatives)
}

func TestCircuitData_UnitSquare(t *testing.T) {
	// No three corners are collinear; the single circuit pairs opposite
	// corners: p1 + p4 = p2 + p3.
	c, err := pointconfig.New([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	data := c.CircuitData()
	require.Len(t, data, 2)
	assert.Equal(t, []string{"p1", "p4"}, data[0].Positives)
	assert.Equal(t, []string{"p2", "p3"}, data[0].Negatives)
}

func TestCircuits_UnitSquare(t *testing.T) {
	c, err := pointconfig.New([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	m, err := c.Circuits()
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, m.Groundset())
	// Affine rank of the plane: any three corners are independent.
	assert.Equal(t, 3, m.Rank())
}

func TestCircuits_IndependentPoints(t *testing.T) {
	// A triangle has no affine dependency, hence no circuits to build on.
	c, err := pointconfig.New([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Empty(t, c.CircuitData())
	_, err = c.Circuits()
	require.ErrorIs(t, err, oriom.ErrEmptyCollection)
}
