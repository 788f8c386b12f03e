package main

import (
	"github.com/spf13/cobra"

	"seekbench/bench"
)

var runFlags struct {
	config     string
	algorithm  string
	problem    string
	size       int
	iterations int
	threads    int
	timeout    int
	seed       int64
	output     string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite and write a JSON report",
	Long: `Run schedules every selected algorithm against every generated
instance over a bounded worker pool. Each run gets its own deadline;
a run that blows the deadline is abandoned and recorded as timed out
without stopping the rest of the suite.`,
	RunE: runBenchmark,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.config, "config", "", "YAML config file; flags override its values")
	f.StringVar(&runFlags.algorithm, "algorithm", "all", "Algorithm to benchmark (all, bfs, dfs, id, astar, idastar)")
	f.StringVar(&runFlags.problem, "problem", "all", "Problem domain (all, puzzle, grid, random)")
	f.IntVar(&runFlags.size, "size", 3, "Instance size: puzzle/grid side length, random-graph node count")
	f.IntVar(&runFlags.iterations, "iterations", 10, "Instances per problem")
	f.IntVar(&runFlags.threads, "threads", 0, "Worker pool size (0 = CPU count)")
	f.IntVar(&runFlags.timeout, "timeout", 60, "Per-run timeout in seconds")
	f.Int64Var(&runFlags.seed, "seed", 0, "Base seed for instance generation (0 = clock)")
	f.StringVar(&runFlags.output, "output", "results/benchmark_results.json", "Results file; empty disables persistence")
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	cfg := bench.DefaultConfig()
	if runFlags.config != "" {
		loaded, err := bench.LoadConfig(runFlags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flagOverrides := map[string]func(){
		"algorithm":  func() { cfg.Algorithm = runFlags.algorithm },
		"problem":    func() { cfg.Problem = runFlags.problem },
		"size":       func() { cfg.Size = runFlags.size },
		"iterations": func() { cfg.Iterations = runFlags.iterations },
		"threads":    func() { cfg.Threads = runFlags.threads },
		"timeout":    func() { cfg.TimeoutSeconds = runFlags.timeout },
		"seed":       func() { cfg.Seed = runFlags.seed },
		"output":     func() { cfg.Output = runFlags.output },
	}
	for name, apply := range flagOverrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	runner, err := bench.NewRunner(cfg)
	if err != nil {
		return err
	}
	_, err = runner.Run(cmd.Context())
	return err
}
