package oriom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orimat/oriom"
	"github.com/katalvlaran/orimat/signedset"
)

func TestNewVectors_Valid(t *testing.T) {
	m, err := oriom.NewVectors([][]int{{0, 0}, {1, 1}, {-1, -1}}, []string{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, m.Validate())
	assert.Equal(t, 1, m.Rank())

	// The two nonzero vectors are support-minimal, hence the circuits.
	circuits := m.Circuits()
	require.Len(t, circuits, 2)
	for _, x := range circuits {
		assert.False(t, x.IsZero())
	}
}

func TestNewVectors_MissingOpposite(t *testing.T) {
	_, err := oriom.NewVectors([][]int{{1, 1}}, []string{"a", "b"})
	require.ErrorIs(t, err, oriom.ErrMissingOpposite)
}

func TestNewVectors_EliminationNeedsZero(t *testing.T) {
	// Without the zero vector nothing can witness eliminating a between
	// (+a+b) and (−a−b).
	_, err := oriom.NewVectors([][]int{{1, 1}, {-1, -1}}, []string{"a", "b"})
	require.ErrorIs(t, err, oriom.ErrEliminationFailed)
}

func TestNewVectors_CompositionNotClosed(t *testing.T) {
	_, err := oriom.NewVectors([][]int{
		{1, 1}, {-1, -1}, {0, -1}, {0, 1}, {-1, 0}, {1, 0},
	}, []string{"a", "b"})
	require.ErrorIs(t, err, oriom.ErrCompositionNotClosed)
}

func TestNewVectors_AllSignVectorsRankZero(t *testing.T) {
	// The full sign-vector cube on two labels is the vector family of
	// the two-loop matroid.
	m, err := oriom.NewVectors([][]int{
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 0, m.Rank())
	// Circuits are the single-label vectors.
	circuits := m.Circuits()
	require.Len(t, circuits, 4)
	for _, x := range circuits {
		assert.Equal(t, 1, x.Support().Len())
	}
}

func TestNewVectorsFromParts_InferredGroundset(t *testing.T) {
	data := []signedset.Parts{
		{Zeroes: []string{"a", "b"}},
		{Positives: []string{"b"}, Negatives: []string{"a"}},
		{Positives: []string{"a"}, Negatives: []string{"b"}},
	}
	m, err := oriom.NewVectorsFromParts(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, m.Groundset())
}

func TestVectors_Empty(t *testing.T) {
	_, err := oriom.NewVectors(nil, []string{"a"})
	require.ErrorIs(t, err, oriom.ErrEmptyCollection)
}
