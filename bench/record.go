package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Outcome classifies how a run terminated. Values are part of the
// persisted schema; do not renumber or rename.
type Outcome string

const (
	// OutcomeCompleted means a valid solution path was returned.
	OutcomeCompleted Outcome = "completed"
	// OutcomeNoSolution means the space was exhausted without a goal.
	OutcomeNoSolution Outcome = "no_solution"
	// OutcomeTimedOut means the deadline fired and the worker was abandoned.
	OutcomeTimedOut Outcome = "timed_out"
	// OutcomeError means a domain error or panic was caught at the
	// run boundary.
	OutcomeError Outcome = "error"
)

// Record is one (algorithm, instance) benchmark row. Field names are
// the contract with downstream analysis tooling and stay stable across
// versions.
type Record struct {
	Problem   string  `json:"problem"`
	Algorithm string  `json:"algorithm"`
	Size      int     `json:"size"`
	Instance  int     `json:"instance"`
	Outcome   Outcome `json:"outcome"`
	Error     string  `json:"error,omitempty"`

	ElapsedMS       float64 `json:"elapsed_ms"`
	MemoryKB        int64   `json:"memory_kb"`
	NodesVisited    int64   `json:"nodes_visited"`
	NodesGenerated  int64   `json:"nodes_generated"`
	MaxFrontier     int64   `json:"max_frontier"`
	SolutionLength  int     `json:"solution_length"`
	SolutionCost    float64 `json:"solution_cost"`
	BranchingFactor float64 `json:"branching_factor"`

	// InitialState and Seed reproduce the instance: the seed alone for
	// generated instances, the snapshot for hand-built ones.
	InitialState string `json:"initial_state,omitempty"`
	Seed         int64  `json:"seed,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// applyMetrics copies measured figures into the record.
func (r *Record) applyMetrics(m Metrics) {
	r.ElapsedMS = m.ElapsedMS
	r.MemoryKB = m.MemoryKB
	r.NodesVisited = m.NodesVisited
	r.NodesGenerated = m.NodesGenerated
	r.MaxFrontier = m.MaxFrontier
	r.SolutionLength = m.SolutionLength
	r.SolutionCost = m.SolutionCost
	r.BranchingFactor = m.BranchingFactor
}

// WriteRecords persists records as an indented JSON array, creating the
// parent directory when needed.
func WriteRecords(path string, records []Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("bench: create output dir: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("bench: marshal records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bench: write %s: %w", path, err)
	}
	return nil
}

// ReadRecords loads a persisted record array.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: read %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("bench: parse %s: %w", path, err)
	}
	return records, nil
}
