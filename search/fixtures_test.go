package search_test

import (
	"strconv"

	"seekbench/search"
)

// graphSpace is an explicit adjacency-list state space for tests.
// Successor order follows insertion order, so expansions are stable.
type graphSpace struct {
	initial string
	goals   map[string]bool
	edges   map[string][]search.Successor[string]
	h       map[string]float64
	depth   int // domain depth bound; 0 = none
}

func newGraphSpace(initial string) *graphSpace {
	return &graphSpace{
		initial: initial,
		goals:   make(map[string]bool),
		edges:   make(map[string][]search.Successor[string]),
		h:       make(map[string]float64),
	}
}

func (g *graphSpace) addEdge(from, to string, cost float64) {
	g.edges[from] = append(g.edges[from], search.Successor[string]{State: to, Cost: cost})
}

func (g *graphSpace) InitialState() string { return g.initial }

func (g *graphSpace) IsGoal(s string) bool { return g.goals[s] }

func (g *graphSpace) Successors(s string) []search.Successor[string] { return g.edges[s] }

func (g *graphSpace) Heuristic(s string) float64 { return g.h[s] }

func (g *graphSpace) MaxDepth() int { return g.depth }

// buildLine creates S→N1→N2→…→Nn with unit costs; Nn is the goal.
func buildLine(n int) *graphSpace {
	g := newGraphSpace("S")
	prev := "S"
	for i := 1; i <= n; i++ {
		cur := "N" + strconv.Itoa(i)
		g.addEdge(prev, cur, 1)
		prev = cur
	}
	g.goals[prev] = true
	return g
}

// buildDiamond creates the classic weighted trap: the short path S→G costs
// 5, the longer path S→A→G costs 2 in total. Length-optimal and
// cost-optimal answers differ.
func buildDiamond() *graphSpace {
	g := newGraphSpace("S")
	g.addEdge("S", "G", 5)
	g.addEdge("S", "A", 1)
	g.addEdge("A", "G", 1)
	g.goals["G"] = true
	return g
}

// buildCycle creates S⇄A⇄B with the goal unreachable branch removed:
// only cycle edges plus B→G.
func buildCycle() *graphSpace {
	g := newGraphSpace("S")
	g.addEdge("S", "A", 1)
	g.addEdge("A", "S", 1)
	g.addEdge("A", "B", 1)
	g.addEdge("B", "A", 1)
	g.addEdge("B", "G", 1)
	g.goals["G"] = true
	return g
}

// buildUnsolvable creates a two-component space where the goal sits in
// the component the initial state cannot reach.
func buildUnsolvable() *graphSpace {
	g := newGraphSpace("S")
	g.addEdge("S", "A", 1)
	g.addEdge("A", "S", 1)
	g.goals["G"] = true // exists, but nothing leads to it
	g.depth = 16
	return g
}

// cell is a grid coordinate used by gridSpace.
type cell struct{ X, Y int }

// gridSpace is an open W×H unit-cost grid: start (0,0), a configurable
// goal, and a Manhattan heuristic scaled by Weight so tests can weaken it
// toward zero.
type gridSpace struct {
	W, H   int
	Goal   cell
	Weight float64
}

func (g *gridSpace) InitialState() cell { return cell{0, 0} }

func (g *gridSpace) IsGoal(s cell) bool { return s == g.Goal }

func (g *gridSpace) Successors(s cell) []search.Successor[cell] {
	// Stable order: up, right, down, left.
	dirs := [4]cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	succ := make([]search.Successor[cell], 0, 4)
	for _, d := range dirs {
		n := cell{s.X + d.X, s.Y + d.Y}
		if n.X < 0 || n.Y < 0 || n.X >= g.W || n.Y >= g.H {
			continue
		}
		succ = append(succ, search.Successor[cell]{State: n, Cost: 1})
	}
	return succ
}

func (g *gridSpace) Heuristic(s cell) float64 {
	return g.Weight * float64(abs(g.Goal.X-s.X)+abs(g.Goal.Y-s.Y))
}

func (g *gridSpace) MaxDepth() int { return g.W * g.H }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
