// Package search defines the state-space contract, shared result types,
// node accounting counters, and sentinel errors for the search subpackage
// of seekbench.
package search

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for search execution.
var (
	// ErrNilSpace is returned if a nil state space is passed.
	ErrNilSpace = errors.New("search: state space is nil")

	// ErrNoSolution is returned when the reachable state space is exhausted
	// (within the configured depth or cost bound) without finding a goal.
	ErrNoSolution = errors.New("search: no solution found")

	// ErrUnknownAlgorithm is returned by Solve and ParseAlgorithm for a
	// variant outside the closed algorithm set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Successor is one outgoing edge of a state: the reached state plus the
// non-negative cost of the move.
type Successor[S comparable] struct {
	State S
	Cost  float64
}

// Space is the contract every problem domain implements. Implementations
// must be pure: Successors must return the same finite, ordered slice for
// the same state on every call, with no side effects.
type Space[S comparable] interface {
	// InitialState returns the start state of the instance.
	InitialState() S

	// IsGoal reports whether s satisfies the goal condition.
	IsGoal(s S) bool

	// Successors returns every state reachable from s in one move,
	// each with its edge cost, in a stable order.
	Successors(s S) []Successor[S]

	// Heuristic estimates the remaining cost from s to the nearest goal.
	// It must never be negative and, for the informed algorithms to keep
	// their optimality guarantees, must never overestimate. Uninformed
	// domains return 0.
	Heuristic(s S) float64
}

// Describer is an optional capability of a Space: a human-readable
// snapshot of the instance, sufficient to recognize it in reports.
type Describer interface {
	Describe() string
}

// Sizer is an optional capability of a Space: the approximate in-memory
// footprint of one state in bytes, used for the peak-memory estimate.
type Sizer interface {
	StateBytes() int
}

// DepthBounder is an optional capability of a Space: a domain-supplied
// cap on search depth (and, for IDA*, on the cost threshold) beyond which
// exploration is pointless for this instance.
type DepthBounder interface {
	MaxDepth() int
}

const (
	// defaultStateBytes is used when a Space does not implement Sizer.
	defaultStateBytes = 64

	// defaultDepthBound caps depth-limited strategies when neither an
	// option nor the domain supplies a bound.
	defaultDepthBound = 1 << 20
)

// Algorithm identifies one of the five supported search strategies.
// The set is closed; Solve rejects anything else.
type Algorithm int

const (
	// AlgoBFS expands states in FIFO order with full deduplication.
	AlgoBFS Algorithm = iota
	// AlgoDFS dives along one branch with path-local cycle detection.
	AlgoDFS
	// AlgoID repeats depth-limited DFS with growing limits.
	AlgoID
	// AlgoAStar expands by f = g + h with FIFO tie-breaks among equal f.
	AlgoAStar
	// AlgoIDAStar repeats cost-bounded DFS with growing f thresholds.
	AlgoIDAStar
)

// Algorithms lists every supported strategy in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBFS, AlgoDFS, AlgoID, AlgoAStar, AlgoIDAStar}
}

// String returns the canonical short name used in records and on the CLI.
func (a Algorithm) String() string {
	switch a {
	case AlgoBFS:
		return "bfs"
	case AlgoDFS:
		return "dfs"
	case AlgoID:
		return "id"
	case AlgoAStar:
		return "astar"
	case AlgoIDAStar:
		return "idastar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a short name back to its Algorithm.
// Returns ErrUnknownAlgorithm for anything outside the closed set.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs":
		return AlgoBFS, nil
	case "dfs":
		return AlgoDFS, nil
	case "id":
		return AlgoID, nil
	case "astar":
		return AlgoAStar, nil
	case "idastar":
		return AlgoIDAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Informed reports whether the strategy consumes the heuristic.
func (a Algorithm) Informed() bool {
	return a == AlgoAStar || a == AlgoIDAStar
}

// Result holds a successful search outcome.
type Result[S comparable] struct {
	// Path is the full state sequence, initial state first, goal last.
	Path []S

	// Cost is the sum of edge costs along Path.
	Cost float64
}

// Length returns the number of edges on the solution path.
func (r *Result[S]) Length() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Counters accumulates node accounting for one algorithm run.
//
// Fields are atomic because exactly one other party may read them while the
// run is live: the timeout supervisor, which salvages partial counts when it
// abandons a worker at the deadline. The algorithm itself is the only writer.
type Counters struct {
	visited     atomic.Int64
	generated   atomic.Int64
	maxFrontier atomic.Int64
	maxRetained atomic.Int64
}

// Visited returns how many states were expanded so far.
func (c *Counters) Visited() int64 { return c.visited.Load() }

// Generated returns how many successor states were produced so far.
func (c *Counters) Generated() int64 { return c.generated.Load() }

// MaxFrontier returns the peak size of the open set.
func (c *Counters) MaxFrontier() int64 { return c.maxFrontier.Load() }

// MaxRetained returns the peak number of states held in memory at once
// (frontier plus closed set, or recursion path for the linear-memory
// strategies). Multiplied by the per-state footprint it yields the
// peak-memory estimate.
func (c *Counters) MaxRetained() int64 { return c.maxRetained.Load() }

func (c *Counters) countVisited() { c.visited.Add(1) }

func (c *Counters) countGenerated() { c.generated.Add(1) }

// observeFrontier records the current open-set size. Single writer, so a
// plain load/compare/store is race-free against concurrent readers.
func (c *Counters) observeFrontier(n int64) {
	if n > c.maxFrontier.Load() {
		c.maxFrontier.Store(n)
	}
}

// observeRetained records the current count of states held in memory.
func (c *Counters) observeRetained(n int64) {
	if n > c.maxRetained.Load() {
		c.maxRetained.Store(n)
	}
}

// StateBytes returns the per-state footprint for sp, falling back to a
// conservative default when the domain does not implement Sizer.
func StateBytes[S comparable](sp Space[S]) int {
	if sz, ok := sp.(Sizer); ok {
		if b := sz.StateBytes(); b > 0 {
			return b
		}
	}
	return defaultStateBytes
}

// Describe returns the instance snapshot for sp, or "" when the domain
// does not implement Describer.
func Describe[S comparable](sp Space[S]) string {
	if d, ok := sp.(Describer); ok {
		return d.Describe()
	}
	return ""
}
