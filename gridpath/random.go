package gridpath

import (
	"fmt"
	"math/rand"

	"seekbench/search"
)

// NewRandomGraph returns a seeded random digraph over n nodes with 3·n
// edge draws (self-loops discarded), costs uniform in 1..9.
func NewRandomGraph(n int, seed int64) (*RandomGraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
	}
	g := &RandomGraph{
		nodes: n,
		adj:   make([][]edge, n),
		start: 0,
		goal:  n - 1,
		seed:  seed,
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 3*n; i++ {
		from := rng.Intn(n)
		to := rng.Intn(n)
		cost := float64(1 + rng.Intn(9))
		if from == to {
			continue
		}
		g.adj[from] = append(g.adj[from], edge{to: to, cost: cost})
	}
	return g, nil
}

// Nodes returns the node count.
func (g *RandomGraph) Nodes() int { return g.nodes }

// Seed returns the generation seed.
func (g *RandomGraph) Seed() int64 { return g.seed }

// InitialState returns node 0.
func (g *RandomGraph) InitialState() int { return g.start }

// IsGoal reports whether s is the last node.
func (g *RandomGraph) IsGoal(s int) bool { return s == g.goal }

// Successors returns the outgoing adjacency of s in generation order,
// which is fixed at construction and therefore stable.
func (g *RandomGraph) Successors(s int) []search.Successor[int] {
	out := g.adj[s]
	succ := make([]search.Successor[int], len(out))
	for i, e := range out {
		succ[i] = search.Successor[int]{State: e.to, Cost: e.cost}
	}
	return succ
}

// Heuristic returns 0. A random graph offers no geometry to estimate
// from, and a fabricated estimate risks overestimating, which would
// silently void the informed algorithms' optimality. Zero is trivially
// admissible.
func (g *RandomGraph) Heuristic(int) float64 { return 0 }

// MaxDepth caps depth-limited strategies at the node count: a simple
// path cannot be longer.
func (g *RandomGraph) MaxDepth() int { return g.nodes }

// StateBytes reports the footprint of one node ID.
func (g *RandomGraph) StateBytes() int { return 8 }

// Describe identifies the instance; the seed alone reproduces it.
func (g *RandomGraph) Describe() string {
	return fmt.Sprintf("random graph n=%d seed=%d start %d goal %d",
		g.nodes, g.seed, g.start, g.goal)
}
