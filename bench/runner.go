package bench

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"seekbench/gridpath"
	"seekbench/internal/logging"
	"seekbench/puzzle"
	"seekbench/search"
)

// Runner schedules the algorithm × instance cross-product over a bounded
// worker pool and collects one Record per pair.
type Runner struct {
	cfg Config
}

// NewRunner validates the configuration and builds a runner. A
// configuration error here is fatal; everything later is per-run and
// lands in a Record instead.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg}, nil
}

// Run executes the full benchmark and returns records sorted by
// (problem, algorithm, instance). Failed runs are records, not errors;
// Run itself fails only on instance generation or persistence.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	logger := logging.New("runner")

	tasks, err := r.buildTasks()
	if err != nil {
		return nil, err
	}

	workers := r.cfg.WorkerCount()
	timeout := r.cfg.Deadline()
	logger.Info("benchmark start",
		"tasks", len(tasks), "workers", workers, "timeout", timeout)

	records := make([]Record, 0, len(tasks))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			rec := runBounded(gctx, t, timeout)
			mu.Lock()
			records = append(records, rec)
			done := len(records)
			mu.Unlock()
			logger.Debug("run finished",
				"problem", rec.Problem, "algorithm", rec.Algorithm,
				"instance", rec.Instance, "outcome", rec.Outcome,
				"elapsed_ms", rec.ElapsedMS, "progress",
				fmt.Sprintf("%d/%d", done, len(tasks)))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, every failure is a Record

	// Workers finish in arbitrary order; restore the schedule order so
	// output is stable run to run.
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Problem != b.Problem {
			return a.Problem < b.Problem
		}
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		return a.Instance < b.Instance
	})

	logSummary(logger, records)

	if r.cfg.Output != "" {
		if err := WriteRecords(r.cfg.Output, records); err != nil {
			return records, err
		}
		logger.Info("results written", "path", r.cfg.Output)
	}
	return records, nil
}

// buildTasks expands the configuration into the full cross-product. Each
// instance is built once and shared by every algorithm, so the figures
// compare like with like.
func (r *Runner) buildTasks() ([]Task, error) {
	algos, err := r.cfg.SelectedAlgorithms()
	if err != nil {
		return nil, err
	}
	problems, err := r.cfg.SelectedProblems()
	if err != nil {
		return nil, err
	}

	base := r.cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	tasks := make([]Task, 0, len(problems)*r.cfg.Iterations*len(algos))
	for _, p := range problems {
		for i := 0; i < r.cfg.Iterations; i++ {
			batch, err := r.instanceTasks(p, i, base+int64(i), algos)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, batch...)
		}
	}
	return tasks, nil
}

// instanceTasks builds one instance of the given problem and fans it out
// across the selected algorithms. State types differ per domain, so the
// typed Space is erased here and never escapes.
func (r *Runner) instanceTasks(problem string, instance int, seed int64, algos []search.Algorithm) ([]Task, error) {
	size := r.cfg.Size
	switch problem {
	case ProblemPuzzle:
		sp, err := puzzle.Scrambled(size, size*size*10, seed, puzzle.Manhattan)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		return tasksFor[string](problem, size, instance, seed, algos, sp), nil
	case ProblemGrid:
		sp, err := gridpath.NewGrid(size, size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		// Grids are fully determined by size; no seed to record.
		return tasksFor[gridpath.Cell](problem, size, instance, 0, algos, sp), nil
	case ProblemRandom:
		sp, err := gridpath.NewRandomGraph(size, seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		return tasksFor[int](problem, size, instance, seed, algos, sp), nil
	}
	return nil, fmt.Errorf("%w: unknown problem %q", ErrConfig, problem)
}

func tasksFor[S comparable](problem string, size, instance int, seed int64, algos []search.Algorithm, sp search.Space[S]) []Task {
	out := make([]Task, 0, len(algos))
	for _, a := range algos {
		out = append(out, NewTask(problem, size, instance, seed, a, sp))
	}
	return out
}

// logSummary reports per-(problem, algorithm) aggregates at Info level.
func logSummary(logger *slog.Logger, records []Record) {
	for _, s := range Summarize(records) {
		logger.Info("summary",
			"problem", s.Problem, "algorithm", s.Algorithm,
			"instances", s.Instances, "completed", s.Completed,
			"timed_out", s.TimedOut, "failed", s.Failed,
			"avg_time_ms", s.AvgTimeMS, "avg_memory_kb", s.AvgMemoryKB,
			"avg_visited", s.AvgNodesVisited, "avg_length", s.AvgSolutionLength,
			"avg_ebf", s.AvgBranchingFactor)
	}
}
