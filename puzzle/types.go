// Package puzzle defines types, options, and sentinel errors for the
// sliding-tile puzzle domain of seekbench.
package puzzle

import "errors"

// Sentinel errors for puzzle construction.
var (
	// ErrBadSize indicates a side length below 2.
	ErrBadSize = errors.New("puzzle: size must be at least 2")
	// ErrBadState indicates a tile vector that is not a permutation of
	// 0..size²-1.
	ErrBadState = errors.New("puzzle: state is not a permutation of the tile set")
)

// Heuristic selects the distance estimate the puzzle reports to informed
// algorithms. All variants are admissible.
type Heuristic int

const (
	// Manhattan sums per-tile grid distances to the home position.
	Manhattan Heuristic = iota
	// Hamming counts misplaced tiles.
	Hamming
	// NoHeuristic reports 0, degrading informed strategies to their
	// uninformed behavior.
	NoHeuristic
)

// String returns the name used in instance descriptors.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Hamming:
		return "hamming"
	default:
		return "none"
	}
}

// Puzzle is one N×N sliding-tile instance. States are strings of size²
// bytes, one tile per byte, blank = 0, row-major; the goal is tiles in
// ascending order with the blank at index 0. Immutable once built.
type Puzzle struct {
	size    int
	initial string
	goal    string
	heur    Heuristic
	seed    int64 // scramble seed, 0 for hand-built instances
}
