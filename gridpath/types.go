// Package gridpath defines types and sentinel errors for the
// shortest-path domains of seekbench.
package gridpath

import "errors"

// Sentinel errors for domain construction.
var (
	// ErrBadDimensions indicates a grid with no rows or no columns.
	ErrBadDimensions = errors.New("gridpath: width and height must be at least 1")
	// ErrBadNodeCount indicates a random graph with fewer than 2 nodes.
	ErrBadNodeCount = errors.New("gridpath: node count must be at least 2")
)

// Cell is one grid coordinate. The zero value is the start corner.
type Cell struct {
	X, Y int
}

// Grid is a W×H unit-cost grid: start at the top-left corner, goal at
// the bottom-right, 4-directional moves. Immutable once built.
type Grid struct {
	width, height int
	goal          Cell
}

// RandomGraph is a seeded random weighted digraph: ≈3·n directed edges
// with costs 1..9 between uniformly chosen distinct endpoints, start at
// node 0, goal at node n-1. The same seed regenerates the same graph.
// A path from start to goal is not guaranteed; exhaustion is a valid
// outcome. Immutable once built.
type RandomGraph struct {
	nodes int
	adj   [][]edge
	start int
	goal  int
	seed  int64
}

// edge is one outgoing adjacency entry.
type edge struct {
	to   int
	cost float64
}
