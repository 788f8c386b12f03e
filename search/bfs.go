package search

// BFS performs breadth-first search over sp.
//
// Frontier is a FIFO queue seeded with the initial state; a visited set
// keyed by state guarantees each reachable state is enqueued at most once.
// The goal test runs on dequeue. The first goal reached is returned, which
// is cost-optimal only when all edge costs are equal — callers comparing
// against weighted domains must treat BFS results as length-optimal, not
// cost-optimal.
//
// Complete on finite spaces: returns ErrNoSolution when the queue empties.
// Memory grows with the full visited set; this is the trade-off the
// benchmark exists to expose.
func BFS[S comparable](sp Space[S], opts ...Option) (*Result[S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	c := o.Counters

	root := &node[S]{state: sp.InitialState()}
	queue := []*node[S]{root}
	visited := map[S]struct{}{root.state: {}}
	c.countGenerated()

	for len(queue) > 0 {
		if err := cancelled(o.Ctx); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]
		c.countVisited()

		if sp.IsGoal(cur.state) {
			return cur.result(), nil
		}

		for _, succ := range sp.Successors(cur.state) {
			if _, seen := visited[succ.State]; seen {
				continue
			}
			visited[succ.State] = struct{}{}
			queue = append(queue, cur.child(succ, 0, c.Generated()))
			c.countGenerated()
		}

		c.observeFrontier(int64(len(queue)))
		c.observeRetained(int64(len(visited) + len(queue)))
	}

	return nil, ErrNoSolution
}
