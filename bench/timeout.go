package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seekbench/search"
)

// Task is one schedulable (algorithm, instance) pair with the state type
// erased, so heterogeneous domains share a single runner.
type Task struct {
	Problem   string
	Algorithm search.Algorithm
	Size      int
	Instance  int
	Seed      int64

	describe   string
	stateBytes int
	run        func(ctx context.Context, c *search.Counters) (Metrics, error)
}

// NewTask binds a typed state space to a runnable task.
func NewTask[S comparable](problem string, size, instance int, seed int64, algo search.Algorithm, sp search.Space[S]) Task {
	return Task{
		Problem:    problem,
		Algorithm:  algo,
		Size:       size,
		Instance:   instance,
		Seed:       seed,
		describe:   search.Describe(sp),
		stateBytes: search.StateBytes(sp),
		run: func(ctx context.Context, c *search.Counters) (Metrics, error) {
			return Measure(ctx, sp, algo, c)
		},
	}
}

// runResult is the one-shot message a worker posts on completion.
type runResult struct {
	metrics Metrics
	err     error
}

// runBounded executes one task on a dedicated goroutine under a
// deadline. Per run the life cycle is Pending → Running → one of
// {Completed, TimedOut, Failed (error/no-solution)}; exactly one Record
// comes back regardless of the terminal state.
//
// Cancellation is advisory: on deadline the context is cancelled so a
// cooperative search can wind down, but the worker is abandoned either
// way — the caller is never blocked past the deadline. An abandoned
// worker keeps consuming resources until it exits on its own; under
// repeated timeouts that is a known leak, accepted over force-killing
// arbitrary recursive code.
func runBounded(ctx context.Context, t Task, timeout time.Duration) Record {
	rec := Record{
		Problem:      t.Problem,
		Algorithm:    t.Algorithm.String(),
		Size:         t.Size,
		Instance:     t.Instance,
		Seed:         t.Seed,
		InitialState: t.describe,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	c := &search.Counters{}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so an abandoned worker can post and exit instead of
	// blocking forever.
	done := make(chan runResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- runResult{err: fmt.Errorf("domain panic: %v", r)}
			}
		}()
		m, err := t.run(runCtx, c)
		done <- runResult{metrics: m, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		rec.applyMetrics(res.metrics)
		switch {
		case res.err == nil:
			rec.Outcome = OutcomeCompleted
		case errors.Is(res.err, search.ErrNoSolution):
			rec.Outcome = OutcomeNoSolution
			rec.Error = res.err.Error()
		default:
			rec.Outcome = OutcomeError
			rec.Error = res.err.Error()
		}
	case <-timer.C:
		// Salvage whatever the worker counted before abandoning it.
		rec.applyMetrics(snapshot(c, t.stateBytes, timeout))
		rec.Outcome = OutcomeTimedOut
		rec.Error = fmt.Sprintf("timeout after %s (partial: %dv/%dg)",
			timeout, c.Visited(), c.Generated())
	}

	return rec
}
