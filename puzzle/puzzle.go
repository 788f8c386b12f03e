// Package puzzle implements the classic N×N sliding-tile puzzle as a
// search.Space, with Manhattan and Hamming heuristics and a seeded
// scramble generator that only produces solvable instances.
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"

	"seekbench/search"
)

// Tiles are stored one byte each, so side lengths above 15 would wrap
// tile values past 255 and collide with the blank.
const maxSize = 15

// New returns a solved instance: the trivial fixture where every
// algorithm must report a zero-length solution.
func New(size int, h Heuristic) (*Puzzle, error) {
	if size < 2 || size > maxSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	goal := goalState(size)
	return &Puzzle{size: size, initial: goal, goal: goal, heur: h}, nil
}

// FromState returns an instance starting at the given tile vector
// (row-major, blank = 0). The vector must be a permutation of
// 0..size²-1; solvability is the caller's concern.
func FromState(size int, tiles []uint8, h Heuristic) (*Puzzle, error) {
	if size < 2 || size > maxSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	n := size * size
	if len(tiles) != n {
		return nil, fmt.Errorf("%w: want %d tiles, got %d", ErrBadState, n, len(tiles))
	}
	seen := make([]bool, n)
	for _, t := range tiles {
		if int(t) >= n || seen[t] {
			return nil, fmt.Errorf("%w: tile %d", ErrBadState, t)
		}
		seen[t] = true
	}
	return &Puzzle{size: size, initial: string(tiles), goal: goalState(size), heur: h}, nil
}

// Scrambled returns an instance produced by a random walk of the given
// number of moves backward from the goal, so a solution always exists.
// The same seed regenerates the exact same instance.
func Scrambled(size, moves int, seed int64, h Heuristic) (*Puzzle, error) {
	p, err := New(size, h)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	cur := p.goal
	for i := 0; i < moves; i++ {
		succ := p.Successors(cur)
		cur = succ[rng.Intn(len(succ))].State
	}
	p.initial = cur
	p.seed = seed
	return p, nil
}

// Size returns the side length.
func (p *Puzzle) Size() int { return p.size }

// Seed returns the scramble seed, 0 for hand-built instances.
func (p *Puzzle) Seed() int64 { return p.seed }

// InitialState returns the scrambled (or given) start state.
func (p *Puzzle) InitialState() string { return p.initial }

// IsGoal reports whether every tile is home.
func (p *Puzzle) IsGoal(s string) bool { return s == p.goal }

// Successors slides the blank up, down, left, right where possible, in
// that fixed order. Every move costs 1.
func (p *Puzzle) Successors(s string) []search.Successor[string] {
	blank := strings.IndexByte(s, 0)
	row, col := blank/p.size, blank%p.size

	succ := make([]search.Successor[string], 0, 4)
	if row > 0 {
		succ = append(succ, search.Successor[string]{State: swap(s, blank, blank-p.size), Cost: 1})
	}
	if row < p.size-1 {
		succ = append(succ, search.Successor[string]{State: swap(s, blank, blank+p.size), Cost: 1})
	}
	if col > 0 {
		succ = append(succ, search.Successor[string]{State: swap(s, blank, blank-1), Cost: 1})
	}
	if col < p.size-1 {
		succ = append(succ, search.Successor[string]{State: swap(s, blank, blank+1), Cost: 1})
	}
	return succ
}

// Heuristic reports the configured admissible estimate.
func (p *Puzzle) Heuristic(s string) float64 {
	switch p.heur {
	case Manhattan:
		return float64(p.manhattan(s))
	case Hamming:
		return float64(p.hamming(s))
	default:
		return 0
	}
}

// manhattan sums each tile's grid distance to its home cell. The blank
// does not count, otherwise the estimate could overshoot.
func (p *Puzzle) manhattan(s string) int {
	d := 0
	for i := 0; i < len(s); i++ {
		tile := int(s[i])
		if tile == 0 {
			continue
		}
		d += absInt(i/p.size-tile/p.size) + absInt(i%p.size-tile%p.size)
	}
	return d
}

// hamming counts misplaced tiles, blank excluded.
func (p *Puzzle) hamming(s string) int {
	d := 0
	for i := 0; i < len(s); i++ {
		if s[i] != 0 && int(s[i]) != i {
			d++
		}
	}
	return d
}

// MaxDepth bounds depth-limited strategies at size²·10, mirroring the
// scramble length cap so solvable instances stay in reach.
func (p *Puzzle) MaxDepth() int { return p.size * p.size * 10 }

// StateBytes reports the per-state footprint: one byte per tile.
func (p *Puzzle) StateBytes() int { return p.size * p.size }

// Describe renders the initial layout as a grid, blank as dots.
func (p *Puzzle) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "puzzle %dx%d heuristic=%s", p.size, p.size, p.heur)
	for i := 0; i < len(p.initial); i++ {
		if i%p.size == 0 {
			b.WriteByte('\n')
		}
		if p.initial[i] == 0 {
			b.WriteString("  .")
		} else {
			fmt.Fprintf(&b, "%3d", p.initial[i])
		}
	}
	return b.String()
}

// goalState builds the ascending tile string for one side length.
func goalState(size int) string {
	tiles := make([]byte, size*size)
	for i := range tiles {
		tiles[i] = byte(i)
	}
	return string(tiles)
}

// swap returns s with bytes i and j exchanged.
func swap(s string, i, j int) string {
	b := []byte(s)
	b[i], b[j] = b[j], b[i]
	return string(b)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
