package search

// node is one entry of a frontier: a state plus the bookkeeping needed to
// reconstruct the solution path and order priority frontiers.
// Nodes are owned by the algorithm that created them and never escape the
// package; solutions are extracted as plain state slices.
type node[S comparable] struct {
	state  S
	parent *node[S]
	g      float64 // accumulated path cost
	h      float64 // heuristic estimate, 0 for uninformed strategies
	depth  int
	seq    int64 // insertion order, tie-break for priority frontiers
}

// f is the priority key of informed strategies.
func (n *node[S]) f() float64 { return n.g + n.h }

// child derives a successor node, inheriting accounting from n.
func (n *node[S]) child(s Successor[S], h float64, seq int64) *node[S] {
	return &node[S]{
		state:  s.State,
		parent: n,
		g:      n.g + s.Cost,
		h:      h,
		depth:  n.depth + 1,
		seq:    seq,
	}
}

// extract walks the parent chain and returns the state sequence from the
// initial state to n, inclusive.
func (n *node[S]) extract() []S {
	path := make([]S, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// result packages a goal node as a Result.
func (n *node[S]) result() *Result[S] {
	return &Result[S]{Path: n.extract(), Cost: n.g}
}
