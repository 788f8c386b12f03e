// Package gridpath implements the shortest-path reference domains: a
// unit-cost grid with a Manhattan heuristic and a seeded random weighted
// digraph with the zero heuristic.
package gridpath

import (
	"fmt"

	"seekbench/search"
)

// NewGrid returns a W×H grid instance.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	return &Grid{width: width, height: height, goal: Cell{width - 1, height - 1}}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InitialState returns the top-left corner.
func (g *Grid) InitialState() Cell { return Cell{0, 0} }

// IsGoal reports whether s is the bottom-right corner.
func (g *Grid) IsGoal(s Cell) bool { return s == g.goal }

// Successors returns the in-bounds 4-neighbours in right, down, left,
// up order, each at cost 1.
func (g *Grid) Successors(s Cell) []search.Successor[Cell] {
	succ := make([]search.Successor[Cell], 0, 4)
	if s.X < g.width-1 {
		succ = append(succ, search.Successor[Cell]{State: Cell{s.X + 1, s.Y}, Cost: 1})
	}
	if s.Y < g.height-1 {
		succ = append(succ, search.Successor[Cell]{State: Cell{s.X, s.Y + 1}, Cost: 1})
	}
	if s.X > 0 {
		succ = append(succ, search.Successor[Cell]{State: Cell{s.X - 1, s.Y}, Cost: 1})
	}
	if s.Y > 0 {
		succ = append(succ, search.Successor[Cell]{State: Cell{s.X, s.Y - 1}, Cost: 1})
	}
	return succ
}

// Heuristic returns the Manhattan distance to the goal corner, which is
// exact on an open grid and therefore admissible and consistent.
func (g *Grid) Heuristic(s Cell) float64 {
	dx := g.goal.X - s.X
	if dx < 0 {
		dx = -dx
	}
	dy := g.goal.Y - s.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// MaxDepth caps depth-limited strategies at the cell count, clamped to
// 500 so huge grids do not send iterative deepening into absurd limits.
func (g *Grid) MaxDepth() int {
	d := g.width * g.height
	if d > 500 {
		d = 500
	}
	return d
}

// StateBytes reports the footprint of one Cell.
func (g *Grid) StateBytes() int { return 16 }

// Describe identifies the instance for reports.
func (g *Grid) Describe() string {
	return fmt.Sprintf("grid %dx%d start (0,0) goal (%d,%d)",
		g.width, g.height, g.goal.X, g.goal.Y)
}
