// Package bench schedules search algorithms against problem instances
// and records what happened.
//
// The unit of work is one (algorithm, instance) pair. Runner expands a
// Config into the full cross-product, runs the pairs over a bounded
// worker pool, and emits exactly one Record per pair:
//
//	completed    — a solution came back and its metrics are final
//	no_solution  — the space was exhausted without reaching a goal
//	timed_out    — the deadline fired; partial counters were salvaged
//	error        — a domain error or panic was caught at the run boundary
//
// Timeouts never block the pool: the supervisor abandons the worker at
// the deadline after cancelling its context, and the worker's atomic
// counters remain readable so the record still carries the partial
// nodes-visited and nodes-generated figures.
//
// Failed runs are data, not errors. Runner.Run returns an error only
// for configuration, instance generation, or persistence problems.
//
// Records marshal to a stable snake_case JSON schema consumed by
// external analysis tooling; Summarize folds them into per-(problem,
// algorithm) averages over completed runs.
package bench
