package search

import "math"

// IDAStar performs iterative-deepening A* over sp.
//
// Recursive depth-first search bounded by a cost threshold on f = g + h,
// initialized to the heuristic of the initial state. Each failed pass
// returns the minimum f that exceeded the threshold among pruned branches,
// and that value becomes the next threshold, so thresholds grow along the
// actual f landscape rather than by fixed steps.
//
// Memory is strictly linear in the current path: there is no closed set,
// and revisits across branches are the accepted price. A path-local set
// breaks cycles along the branch being explored.
//
// Given an admissible heuristic the first solution found within a
// threshold is cost-optimal. Returns ErrNoSolution when no branch was
// pruned (space exhausted) or when the threshold would have to exceed
// the WithMaxCost cap; no pass ever runs at a threshold beyond the cap.
func IDAStar[S comparable](sp Space[S], opts ...Option) (*Result[S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	start := sp.InitialState()
	h0 := sp.Heuristic(start)
	threshold := h0
	maxCost := costBound(o)
	o.Counters.countGenerated()

	// An admissible h(start) above the cap already proves every solution
	// costs more than the cap allows.
	if threshold > maxCost {
		return nil, ErrNoSolution
	}

	w := &idaWalker[S]{sp: sp, o: o, onPath: make(map[S]struct{})}
	for {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}

		root := &node[S]{state: start, h: h0}
		res, next, err := w.bounded(root, threshold)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
		if next == math.Inf(1) || next > maxCost {
			return nil, ErrNoSolution
		}
		threshold = next
	}
}

// idaWalker holds the mutable state of the cost-bounded recursion.
type idaWalker[S comparable] struct {
	sp     Space[S]
	o      Options
	onPath map[S]struct{}
}

// bounded explores from n, pruning any node whose f exceeds threshold.
// On failure it returns the smallest f among pruned branches, +Inf when
// nothing was pruned.
func (w *idaWalker[S]) bounded(n *node[S], threshold float64) (*Result[S], float64, error) {
	if err := cancelled(w.o.Ctx); err != nil {
		return nil, 0, err
	}
	c := w.o.Counters
	// Pruned branches are generated but never visited; counting them as
	// expansions would overstate IDA* against the frontier strategies.
	if f := n.f(); f > threshold {
		return nil, f, nil
	}
	c.countVisited()

	if w.sp.IsGoal(n.state) {
		return n.result(), 0, nil
	}

	w.onPath[n.state] = struct{}{}
	c.observeRetained(int64(len(w.onPath)))
	c.observeFrontier(int64(len(w.onPath)))
	defer delete(w.onPath, n.state)

	minNext := math.Inf(1)
	for _, succ := range w.sp.Successors(n.state) {
		if _, cyc := w.onPath[succ.State]; cyc {
			continue
		}
		child := n.child(succ, w.sp.Heuristic(succ.State), c.Generated())
		c.countGenerated()

		res, next, err := w.bounded(child, threshold)
		if err != nil {
			return nil, 0, err
		}
		if res != nil {
			return res, 0, nil
		}
		if next < minNext {
			minNext = next
		}
	}

	return nil, minNext, nil
}
