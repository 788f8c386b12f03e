package bench

import (
	"context"
	"time"

	"seekbench/search"
)

// Metrics captures the measurable outcome of one algorithm invocation.
type Metrics struct {
	ElapsedMS       float64
	MemoryKB        int64
	NodesVisited    int64
	NodesGenerated  int64
	MaxFrontier     int64
	SolutionLength  int
	SolutionCost    float64
	BranchingFactor float64
}

// Measure runs one search under timing instrumentation. The caller owns
// the Counters so partial figures stay readable if it abandons the run;
// everything else the recorder touches lives outside the algorithm's hot
// path, keeping the memory figures honest.
func Measure[S comparable](ctx context.Context, sp search.Space[S], algo search.Algorithm, c *search.Counters) (Metrics, error) {
	stateBytes := search.StateBytes(sp)

	start := time.Now()
	res, err := search.Solve(sp, algo, search.WithContext(ctx), search.WithCounters(c))
	elapsed := time.Since(start)

	m := snapshot(c, stateBytes, elapsed)
	if err != nil {
		return m, err
	}
	m.SolutionLength = res.Length()
	m.SolutionCost = res.Cost
	m.BranchingFactor = EffectiveBranchingFactor(c.Generated(), res.Length())
	return m, nil
}

// snapshot freezes the counter-derived figures. Also used by the timeout
// supervisor to salvage partial metrics from an abandoned worker.
func snapshot(c *search.Counters, stateBytes int, elapsed time.Duration) Metrics {
	return Metrics{
		ElapsedMS:      float64(elapsed.Microseconds()) / 1000.0,
		MemoryKB:       c.MaxRetained() * int64(stateBytes) / 1024,
		NodesVisited:   c.Visited(),
		NodesGenerated: c.Generated(),
		MaxFrontier:    c.MaxFrontier(),
	}
}

// EffectiveBranchingFactor solves N = 1 + b + b² + … + b^d for b by
// bisection: the branching factor a uniform tree of depth d would need
// to contain the observed N nodes. Returns 0 when d is 0 (no solution,
// or the trivial one) — the figure is undefined there.
func EffectiveBranchingFactor(total int64, depth int) float64 {
	if depth <= 0 || total <= int64(depth) {
		return 0
	}

	n := float64(total)
	series := func(b float64) float64 {
		sum, pow := 1.0, 1.0
		for i := 0; i < depth; i++ {
			pow *= b
			sum += pow
		}
		return sum
	}

	// b lies in [1, N]: at b=1 the series is d+1 ≤ N, at b=N it
	// overshoots. 64 halvings pin it well past float precision.
	lo, hi := 1.0, n
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if series(mid) < n {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
