package search

// DFS performs depth-first search over sp, bounded by the resolved depth
// cap (WithMaxDepth, then the domain's DepthBounder, then a hard default).
//
// There is no global visited set: alternate branches may re-explore the
// same states, which keeps memory linear in the current path. Cycles are
// broken by a path-local set covering only the branch currently on the
// recursion stack. The first goal found on any path is returned; neither
// optimality nor, on very deep spaces, termination within resource limits
// is guaranteed — the caller's timeout is the backstop.
func DFS[S comparable](sp Space[S], opts ...Option) (*Result[S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &dlsWalker[S]{sp: sp, o: o, onPath: make(map[S]struct{})}
	root := &node[S]{state: sp.InitialState()}
	o.Counters.countGenerated()

	res, _, err := w.dls(root, depthBound(sp, o))
	if err != nil {
		return nil, err
	}
	if res == nil {
		// Exhausted within the bound. Whether deeper levels would have
		// helped is indistinguishable here, so both cases report the
		// same way.
		return nil, ErrNoSolution
	}
	return res, nil
}

// dlsWalker holds the mutable state of one depth-limited DFS pass.
// It is shared by DFS and IterativeDeepening.
type dlsWalker[S comparable] struct {
	sp     Space[S]
	o      Options
	onPath map[S]struct{} // states on the current branch, for cycle detection
}

// dls explores from n with at most limit edges remaining.
// Returns the solution if one was found, and a cutoff flag reporting
// whether any branch was pruned by the limit (so callers can tell
// "exhausted" from "too shallow").
func (w *dlsWalker[S]) dls(n *node[S], limit int) (*Result[S], bool, error) {
	if err := cancelled(w.o.Ctx); err != nil {
		return nil, false, err
	}
	c := w.o.Counters
	c.countVisited()

	if w.sp.IsGoal(n.state) {
		return n.result(), false, nil
	}
	if limit <= 0 {
		return nil, true, nil
	}

	w.onPath[n.state] = struct{}{}
	c.observeRetained(int64(len(w.onPath)))
	defer delete(w.onPath, n.state)

	// Goal-test every sibling at generation before descending into any
	// subtree: a goal one edge away must not lose to a deep dive down an
	// earlier branch.
	succs := w.sp.Successors(n.state)
	children := make([]*node[S], 0, len(succs))
	for _, succ := range succs {
		if _, cyc := w.onPath[succ.State]; cyc {
			continue
		}
		child := n.child(succ, 0, c.Generated())
		c.countGenerated()
		c.observeFrontier(int64(len(w.onPath)))

		if w.sp.IsGoal(child.state) {
			c.countVisited()
			return child.result(), false, nil
		}
		children = append(children, child)
	}

	cutoff := false
	for _, child := range children {
		res, cut, err := w.dls(child, limit-1)
		if err != nil {
			return nil, false, err
		}
		if res != nil {
			return res, false, nil
		}
		cutoff = cutoff || cut
	}

	return nil, cutoff, nil
}
