// Package search implements five classical state-space search strategies
// behind one uniform contract, instrumented for benchmarking.
//
// Overview:
//
//   - A problem domain implements Space[S]: initial state, goal test,
//     successor generation with edge costs, and an admissible heuristic
//     (zero for uninformed domains). S is any comparable type; domains
//     pick cheap value representations (encoded strings, small structs,
//     integer IDs) so states can key maps directly.
//   - Solve dispatches on a closed Algorithm set: bfs, dfs, id, astar,
//     idastar. Every strategy shares the same signature, the same
//     functional options, and the same Counters accounting, so results
//     are comparable across strategies.
//
// Strategy guarantees (finite spaces, timeout not exceeded):
//
//   - bfs     — complete; length-optimal; cost-optimal only for unit costs.
//   - dfs     — finds some solution within the depth bound; no optimality.
//   - id      — complete within the depth bound; length-optimal;
//     cost-optimal only for unit costs.
//   - astar   — complete; cost-optimal under an admissible, consistent
//     heuristic; goal test on pop.
//   - idastar — complete within the cost bound; cost-optimal under an
//     admissible heuristic; memory linear in solution depth.
//
// Node accounting:
//
//   - Visited counts states actually expanded; Generated counts every
//     successor produced. The distinction feeds the effective-branching-
//     factor metric downstream.
//   - MaxFrontier and MaxRetained capture peak open-set size and peak
//     total states held, the inputs to the peak-memory estimate.
//   - Counters are atomic with a single writer: the only concurrent
//     reader is a supervisor salvaging partial counts at a deadline.
//
// Cancellation is advisory: loops check the option context once per
// expansion and recursion step. A Successors call that never returns
// cannot be interrupted; supervisors abandon such workers instead.
//
// Determinism: successor order is domain-stable by contract, the A*
// frontier breaks f ties FIFO by insertion order, and no strategy
// consults time or randomness, so identical inputs expand identical
// node sequences on every run.
package search
