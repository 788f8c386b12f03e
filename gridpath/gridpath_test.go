package gridpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seekbench/gridpath"
	"seekbench/search"
)

func TestNewGrid_BadDimensions(t *testing.T) {
	_, err := gridpath.NewGrid(0, 5)
	assert.ErrorIs(t, err, gridpath.ErrBadDimensions)
}

func TestGrid_ShortestPathIsManhattan(t *testing.T) {
	// On an open unit-cost grid the optimal length is exactly the
	// Manhattan distance between the corners.
	g, err := gridpath.NewGrid(7, 5)
	require.NoError(t, err)

	for _, algo := range []search.Algorithm{search.AlgoBFS, search.AlgoID, search.AlgoAStar, search.AlgoIDAStar} {
		res, err := search.Solve[gridpath.Cell](g, algo)
		require.NoError(t, err, algo.String())
		assert.Equal(t, 10, res.Length(), algo.String())
	}
}

func TestGrid_HeuristicExactAtCorners(t *testing.T) {
	g, err := gridpath.NewGrid(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 6.0, g.Heuristic(gridpath.Cell{0, 0}))
	assert.Equal(t, 0.0, g.Heuristic(gridpath.Cell{3, 3}))
}

func TestGrid_DepthCapClamped(t *testing.T) {
	small, err := gridpath.NewGrid(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, small.MaxDepth())

	big, err := gridpath.NewGrid(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 500, big.MaxDepth())
}

func TestNewRandomGraph_BadNodeCount(t *testing.T) {
	_, err := gridpath.NewRandomGraph(1, 7)
	assert.ErrorIs(t, err, gridpath.ErrBadNodeCount)
}

func TestRandomGraph_DeterministicPerSeed(t *testing.T) {
	a, err := gridpath.NewRandomGraph(30, 99)
	require.NoError(t, err)
	b, err := gridpath.NewRandomGraph(30, 99)
	require.NoError(t, err)

	for n := 0; n < 30; n++ {
		assert.Equal(t, a.Successors(n), b.Successors(n), "node %d", n)
	}
}

func TestRandomGraph_SearchTerminates(t *testing.T) {
	// Connectivity is not guaranteed; either outcome is acceptable, but
	// the search must terminate and any returned path must be legal.
	g, err := gridpath.NewRandomGraph(40, 3)
	require.NoError(t, err)

	res, err := search.AStar[int](g)
	if err != nil {
		assert.True(t, errors.Is(err, search.ErrNoSolution))
		return
	}
	cost, ok := search.ValidatePath[int](g, res.Path)
	assert.True(t, ok)
	assert.Equal(t, res.Cost, cost)
}

func TestRandomGraph_IDAStarAgreesWithAStar(t *testing.T) {
	// Weighted edges push path costs well past the node-count depth cap;
	// IDA* must still find the same optimal cost A* does instead of
	// reporting exhaustion early.
	for _, seed := range []int64{3, 7, 11} {
		g, err := gridpath.NewRandomGraph(4, seed)
		require.NoError(t, err)

		astar, aErr := search.AStar[int](g)
		idastar, iErr := search.IDAStar[int](g)
		if aErr != nil {
			assert.ErrorIs(t, aErr, search.ErrNoSolution, "seed %d", seed)
			assert.ErrorIs(t, iErr, search.ErrNoSolution, "seed %d", seed)
			continue
		}
		require.NoError(t, iErr, "seed %d", seed)
		assert.Equal(t, astar.Cost, idastar.Cost, "seed %d", seed)
	}
}

func TestRandomGraph_ZeroHeuristic(t *testing.T) {
	g, err := gridpath.NewRandomGraph(10, 1)
	require.NoError(t, err)
	for n := 0; n < 10; n++ {
		assert.Equal(t, 0.0, g.Heuristic(n))
	}
}

func TestDescribe(t *testing.T) {
	g, err := gridpath.NewGrid(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "grid 3x2 start (0,0) goal (2,1)", g.Describe())

	r, err := gridpath.NewRandomGraph(5, 11)
	require.NoError(t, err)
	assert.Equal(t, "random graph n=5 seed=11 start 0 goal 4", r.Describe())
}
