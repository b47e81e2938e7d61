package oriom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orimat/oriom"
	"github.com/katalvlaran/orimat/signedset"
)

// rank2Rows is the covector system of three concurrent lines in the
// plane over h1,h2,h3: 6 topes, 6 rays and the zero covector.
var rank2Rows = [][]int{
	{1, 1, 1}, {1, 1, 0}, {1, 1, -1}, {1, 0, -1}, {1, -1, -1}, {0, -1, -1},
	{-1, -1, -1}, {0, 1, 1}, {-1, 1, 1}, {-1, 0, 1}, {-1, -1, 0}, {-1, -1, 1},
	{0, 0, 0},
}

var rank2Ground = []string{"h1", "h2", "h3"}

// rank2System materializes rank2Rows into a validated covector system.
func rank2System(t *testing.T) *oriom.Covectors {
	t.Helper()
	m, err := oriom.NewCovectors(rank2Rows, rank2Ground)
	require.NoError(t, err)

	return m
}

// mustSigns builds one signed set over ground, failing the test on error.
func mustSigns(t *testing.T, ground []string, signs []int) signedset.SignedSet {
	t.Helper()
	x, err := signedset.FromSigns(ground, signs)
	require.NoError(t, err)

	return x
}
