package search

import (
	"container/heap"
	"fmt"
)

// AStar performs best-first search ordered by f = g + h over sp.
//
// Contracts:
//   - sp.Heuristic must be admissible for the returned path to be
//     cost-optimal, and consistent for the no-reopening discipline below
//     to be safe. Violations are a domain bug the core cannot detect.
//   - Ties on f are broken FIFO by insertion order, so repeated runs on
//     the same instance expand identical sequences.
//
// The goal test runs on pop, not on generation: a goal first seen via an
// expensive edge may still be reached more cheaply later, and popping in
// f order is what rules that out.
//
// Memory grows with frontier plus closed set, which can be exponential in
// depth. That is intentional: exposing this against the linear-memory
// strategies is the point of the benchmark.
//
// Complexity: O((V + E) log V) heap operations over the explored portion
// of the space, under the lazy decrease-key strategy (duplicates pushed,
// stale entries skipped on pop).
func AStar[S comparable](sp Space[S], opts ...Option) (*Result[S], error) {
	// 1) Validate inputs and build options.
	if sp == nil {
		return nil, ErrNilSpace
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Validate the heuristic at the root; a negative estimate breaks
	//    the f ordering immediately, so fail fast.
	start := sp.InitialState()
	h0 := sp.Heuristic(start)
	if h0 < 0 {
		return nil, fmt.Errorf("%w: negative heuristic %g at initial state", ErrOptionViolation, h0)
	}

	// 3) Initialize the runner: frontier, best-known-g map, closed set.
	r := &astarRunner[S]{
		sp:     sp,
		o:      o,
		gScore: make(map[S]float64),
		closed: make(map[S]struct{}),
	}
	heap.Init(&r.pq)
	r.push(&node[S]{state: start, h: h0})

	// 4) Run the main loop.
	return r.process()
}

// astarRunner holds the mutable state of a single A* execution.
type astarRunner[S comparable] struct {
	sp     Space[S]
	o      Options
	pq     nodePQ[S]
	gScore map[S]float64 // best known g per generated state
	closed map[S]struct{}
	seq    int64 // insertion order for FIFO tie-breaks
}

// push records n's g as best-known and adds it to the frontier.
func (r *astarRunner[S]) push(n *node[S]) {
	n.seq = r.seq
	r.seq++
	r.gScore[n.state] = n.g
	heap.Push(&r.pq, n)
	r.o.Counters.countGenerated()
}

// process pops nodes in (f, seq) order until a goal is reached or the
// frontier empties.
func (r *astarRunner[S]) process() (*Result[S], error) {
	c := r.o.Counters
	for r.pq.Len() > 0 {
		if err := cancelled(r.o.Ctx); err != nil {
			return nil, err
		}

		cur := heap.Pop(&r.pq).(*node[S])
		// Stale entry: a cheaper path to this state was pushed after
		// this one. Skip without expanding.
		if best, ok := r.gScore[cur.state]; ok && cur.g > best {
			continue
		}
		if _, done := r.closed[cur.state]; done {
			continue
		}
		r.closed[cur.state] = struct{}{}
		c.countVisited()

		if r.sp.IsGoal(cur.state) {
			return cur.result(), nil
		}

		for _, succ := range r.sp.Successors(cur.state) {
			if _, done := r.closed[succ.State]; done {
				// Consistent heuristic: closed states are final.
				continue
			}
			g := cur.g + succ.Cost
			if best, ok := r.gScore[succ.State]; ok && g >= best {
				continue
			}
			r.push(cur.child(succ, r.sp.Heuristic(succ.State), 0))
		}

		c.observeFrontier(int64(r.pq.Len()))
		c.observeRetained(int64(r.pq.Len() + len(r.gScore)))
	}

	return nil, ErrNoSolution
}
