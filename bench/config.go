package bench

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"seekbench/search"
)

// ErrConfig is returned for invalid runner configuration. Configuration
// errors are the only fatal kind: they abort before any run starts.
var ErrConfig = errors.New("bench: invalid configuration")

// Problem names accepted by Config.Problem.
const (
	ProblemPuzzle = "puzzle"
	ProblemGrid   = "grid"
	ProblemRandom = "random"
)

// Problems lists the known domains in presentation order.
func Problems() []string {
	return []string{ProblemPuzzle, ProblemGrid, ProblemRandom}
}

// Config drives one benchmark invocation. Zero values mean "use the
// default"; Validate runs after defaults are applied.
type Config struct {
	// Algorithm is "all" or one of bfs, dfs, id, astar, idastar.
	Algorithm string `yaml:"algorithm" json:"algorithm"`

	// Problem is "all" or one of puzzle, grid, random.
	Problem string `yaml:"problem" json:"problem"`

	// Size scales the instance: puzzle side length, grid side length,
	// random-graph node count.
	Size int `yaml:"size" json:"size"`

	// Iterations is the number of instances generated per problem.
	Iterations int `yaml:"iterations" json:"iterations"`

	// Threads bounds the worker pool; 0 auto-detects the CPU count.
	Threads int `yaml:"threads" json:"threads"`

	// TimeoutSeconds is the per-run deadline.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`

	// Seed anchors instance generation; 0 draws from the clock. The
	// per-instance seed (base + instance index) lands in each Record,
	// so any instance can be regenerated exactly.
	Seed int64 `yaml:"seed" json:"seed"`

	// Output is the JSON destination; empty skips persistence.
	Output string `yaml:"output" json:"output"`
}

// DefaultConfig mirrors the CLI defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm:      "all",
		Problem:        "all",
		Size:           3,
		Iterations:     10,
		Threads:        0,
		TimeoutSeconds: 60,
		Output:         "results/benchmark_results.json",
	}
}

// LoadConfig reads a YAML config file over the defaults, so a partial
// file only overrides what it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports the first violation wrapped
// in ErrConfig.
func (c Config) Validate() error {
	if _, err := c.SelectedAlgorithms(); err != nil {
		return err
	}
	if _, err := c.SelectedProblems(); err != nil {
		return err
	}
	if c.Size < 2 {
		return fmt.Errorf("%w: size must be at least 2, got %d", ErrConfig, c.Size)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrConfig, c.Iterations)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads cannot be negative, got %d", ErrConfig, c.Threads)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: timeout must be at least 1s, got %d", ErrConfig, c.TimeoutSeconds)
	}
	return nil
}

// SelectedAlgorithms expands the algorithm selection.
func (c Config) SelectedAlgorithms() ([]search.Algorithm, error) {
	if c.Algorithm == "all" || c.Algorithm == "" {
		return search.Algorithms(), nil
	}
	a, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return []search.Algorithm{a}, nil
}

// SelectedProblems expands the problem selection.
func (c Config) SelectedProblems() ([]string, error) {
	if c.Problem == "all" || c.Problem == "" {
		return Problems(), nil
	}
	for _, p := range Problems() {
		if c.Problem == p {
			return []string{p}, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown problem %q", ErrConfig, c.Problem)
}

// Deadline returns the per-run timeout as a duration.
func (c Config) Deadline() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WorkerCount resolves the pool size, auto-detecting on 0.
func (c Config) WorkerCount() int {
	if c.Threads > 0 {
		return c.Threads
	}
	return runtime.NumCPU()
}
