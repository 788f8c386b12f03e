// Package seekbench benchmarks classical state-space search algorithms
// against interchangeable problem domains.
//
// Five strategies share one Space contract and one instrumentation
// surface:
//
//	• Breadth-first search   — fewest-moves optimal, frontier-hungry
//	• Depth-first search     — cheap on memory, no optimality claim
//	• Iterative deepening    — BFS optimality at DFS memory cost
//	• A*                     — cost-optimal under an admissible heuristic
//	• Iterative-deepening A* — A* optimality in linear memory
//
// Everything is organized under four subpackages plus a CLI:
//
//	search/   — the five algorithms, options, counters & path validation
//	puzzle/   — sliding tile puzzles with Manhattan/Hamming heuristics
//	gridpath/ — 2D grid pathfinding & seeded random weighted graphs
//	bench/    — concurrent runner, per-run deadlines, metrics & JSON records
//	cmd/      — the seekbench binary (run, report)
//
// Quick example:
//
//	g, _ := gridpath.NewGrid(8, 8)
//	res, err := search.Solve(g, search.AlgoAStar)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("moves:", res.Length(), "cost:", res.Cost)
//
// For a full benchmark over the algorithm × instance cross-product, see
// bench.Runner and the seekbench CLI.
package seekbench
