package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_AveragesOverCompletedOnly(t *testing.T) {
	records := []Record{
		{Problem: ProblemGrid, Algorithm: "astar", Outcome: OutcomeCompleted,
			ElapsedMS: 10, MemoryKB: 2, NodesVisited: 100, NodesGenerated: 200,
			SolutionLength: 8, SolutionCost: 8, BranchingFactor: 1.5},
		{Problem: ProblemGrid, Algorithm: "astar", Outcome: OutcomeCompleted,
			ElapsedMS: 30, MemoryKB: 4, NodesVisited: 300, NodesGenerated: 600,
			SolutionLength: 10, SolutionCost: 10, BranchingFactor: 2.5},
		// Timed out: counted, never averaged.
		{Problem: ProblemGrid, Algorithm: "astar", Outcome: OutcomeTimedOut,
			ElapsedMS: 60000, NodesVisited: 999999},
	}

	summaries := Summarize(records)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 3, s.Instances)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.TimedOut)
	assert.Zero(t, s.Failed)
	assert.InDelta(t, 20.0, s.AvgTimeMS, 1e-9)
	assert.InDelta(t, 3.0, s.AvgMemoryKB, 1e-9)
	assert.InDelta(t, 200.0, s.AvgNodesVisited, 1e-9)
	assert.InDelta(t, 400.0, s.AvgNodesGenerated, 1e-9)
	assert.InDelta(t, 9.0, s.AvgSolutionLength, 1e-9)
	assert.InDelta(t, 9.0, s.AvgSolutionCost, 1e-9)
	assert.InDelta(t, 2.0, s.AvgBranchingFactor, 1e-9)
}

func TestSummarize_GroupsAndSorts(t *testing.T) {
	records := []Record{
		{Problem: ProblemPuzzle, Algorithm: "dfs", Outcome: OutcomeCompleted},
		{Problem: ProblemGrid, Algorithm: "bfs", Outcome: OutcomeCompleted},
		{Problem: ProblemGrid, Algorithm: "astar", Outcome: OutcomeError},
		{Problem: ProblemPuzzle, Algorithm: "bfs", Outcome: OutcomeNoSolution},
	}

	summaries := Summarize(records)
	require.Len(t, summaries, 4)

	// grid < puzzle, then by algorithm.
	assert.Equal(t, ProblemGrid, summaries[0].Problem)
	assert.Equal(t, "astar", summaries[0].Algorithm)
	assert.Equal(t, 1, summaries[0].Failed)
	assert.Equal(t, ProblemGrid, summaries[1].Problem)
	assert.Equal(t, "bfs", summaries[1].Algorithm)
	assert.Equal(t, ProblemPuzzle, summaries[2].Problem)
	assert.Equal(t, "bfs", summaries[2].Algorithm)
	assert.Equal(t, 1, summaries[2].Failed)
	assert.Equal(t, ProblemPuzzle, summaries[3].Problem)
	assert.Equal(t, "dfs", summaries[3].Algorithm)
}

func TestSummarize_AllFailedLeavesZeroAverages(t *testing.T) {
	summaries := Summarize([]Record{
		{Problem: ProblemRandom, Algorithm: "idastar", Outcome: OutcomeTimedOut, NodesVisited: 500},
	})
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].Completed)
	assert.Zero(t, summaries[0].AvgNodesVisited)
	assert.Zero(t, summaries[0].AvgTimeMS)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
