package search

// IterativeDeepening runs repeated depth-limited DFS with the limit
// starting at 0 and growing by 1 after each unsuccessful full pass.
//
// Each pass re-explores from scratch — no state carries over — trading
// recomputation for memory linear in the current limit. Because every
// shallower limit is exhausted before a deeper one is tried, the first
// solution found has minimal depth, which is cost-optimal when all edge
// costs are equal. Counters accumulate across passes: the recomputation
// is part of what the benchmark measures.
//
// Returns ErrNoSolution once a pass completes without any branch being
// pruned by the limit (the space is exhausted), or when the limit reaches
// the resolved depth bound.
func IterativeDeepening[S comparable](sp Space[S], opts ...Option) (*Result[S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	bound := depthBound(sp, o)
	o.Counters.countGenerated()

	for limit := 0; limit <= bound; limit++ {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}

		// Fresh pass: a new walker, a new root, no carried-over state.
		w := &dlsWalker[S]{sp: sp, o: o, onPath: make(map[S]struct{})}
		root := &node[S]{state: sp.InitialState()}

		res, cutoff, err := w.dls(root, limit)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
		if !cutoff {
			// Nothing was pruned at this limit, so deeper passes would
			// re-walk exactly the same space.
			return nil, ErrNoSolution
		}
	}

	return nil, ErrNoSolution
}
