package search

import "fmt"

// Solve routes to the requested algorithm. It is the single entry point
// the benchmark layer uses, so every strategy is invoked with an identical
// signature and identical option handling.
//
// Errors: ErrNilSpace, ErrOptionViolation, ErrUnknownAlgorithm,
// ErrNoSolution, or a context error when the advisory cancellation fired.
func Solve[S comparable](sp Space[S], algo Algorithm, opts ...Option) (*Result[S], error) {
	switch algo {
	case AlgoBFS:
		return BFS(sp, opts...)
	case AlgoDFS:
		return DFS(sp, opts...)
	case AlgoID:
		return IterativeDeepening(sp, opts...)
	case AlgoAStar:
		return AStar(sp, opts...)
	case AlgoIDAStar:
		return IDAStar(sp, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// ValidatePath reports whether path is a legal solution for sp: it starts
// at the initial state, every consecutive pair is a successor edge, and
// the last state is a goal. Returns the summed edge cost when valid.
// Used by tests and by callers that persist solutions.
func ValidatePath[S comparable](sp Space[S], path []S) (float64, bool) {
	if sp == nil || len(path) == 0 {
		return 0, false
	}
	if path[0] != sp.InitialState() {
		return 0, false
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		cost, ok := edgeCost(sp, path[i], path[i+1])
		if !ok {
			return 0, false
		}
		total += cost
	}
	if !sp.IsGoal(path[len(path)-1]) {
		return 0, false
	}
	return total, true
}

// edgeCost looks up the cheapest edge from→to, if any exists. Domains
// may carry parallel edges; a rational search always takes the cheapest.
func edgeCost[S comparable](sp Space[S], from, to S) (float64, bool) {
	best, found := 0.0, false
	for _, succ := range sp.Successors(from) {
		if succ.State == to && (!found || succ.Cost < best) {
			best, found = succ.Cost, true
		}
	}
	return best, found
}
