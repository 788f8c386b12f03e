package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seekbench/search"
)

func TestSolve_AllAlgorithms_ValidPath(t *testing.T) {
	for _, algo := range search.Algorithms() {
		algo := algo
		t.Run(algo.String(), func(t *testing.T) {
			g := buildLine(3)
			res, err := search.Solve[string](g, algo)
			require.NoError(t, err)

			cost, ok := search.ValidatePath[string](g, res.Path)
			assert.True(t, ok, "path must chain legal successor edges into a goal")
			assert.Equal(t, res.Cost, cost)
		})
	}
}

func TestSolve_AllAlgorithms_Unsolvable(t *testing.T) {
	for _, algo := range search.Algorithms() {
		algo := algo
		t.Run(algo.String(), func(t *testing.T) {
			res, err := search.Solve[string](buildUnsolvable(), algo)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, search.ErrNoSolution)
		})
	}
}

func TestSolve_UnknownAlgorithm(t *testing.T) {
	res, err := search.Solve[string](buildLine(1), search.Algorithm(42))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm_RoundTrip(t *testing.T) {
	for _, algo := range search.Algorithms() {
		parsed, err := search.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, parsed)
	}

	_, err := search.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_Informed(t *testing.T) {
	assert.False(t, search.AlgoBFS.Informed())
	assert.False(t, search.AlgoDFS.Informed())
	assert.False(t, search.AlgoID.Informed())
	assert.True(t, search.AlgoAStar.Informed())
	assert.True(t, search.AlgoIDAStar.Informed())
}

func TestValidatePath_RejectsBrokenChains(t *testing.T) {
	g := buildLine(3)

	_, ok := search.ValidatePath[string](g, []string{"S", "N2", "N3"})
	assert.False(t, ok, "skipped edge")

	_, ok = search.ValidatePath[string](g, []string{"N1", "N2", "N3"})
	assert.False(t, ok, "wrong initial state")

	_, ok = search.ValidatePath[string](g, []string{"S", "N1", "N2"})
	assert.False(t, ok, "does not end in a goal")
}
