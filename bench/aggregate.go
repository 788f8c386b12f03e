package bench

import "sort"

// Summary aggregates the records of one (problem, algorithm) pair.
// Averages cover completed runs only; a timed-out A* would otherwise
// drag its averages toward whatever it managed before the deadline.
type Summary struct {
	Problem   string `json:"problem"`
	Algorithm string `json:"algorithm"`

	Instances int `json:"instances"`
	Completed int `json:"completed"`
	TimedOut  int `json:"timed_out"`
	Failed    int `json:"failed"`

	AvgTimeMS          float64 `json:"avg_time_ms"`
	AvgMemoryKB        float64 `json:"avg_memory_kb"`
	AvgNodesVisited    float64 `json:"avg_nodes_visited"`
	AvgNodesGenerated  float64 `json:"avg_nodes_generated"`
	AvgSolutionLength  float64 `json:"avg_solution_length"`
	AvgSolutionCost    float64 `json:"avg_solution_cost"`
	AvgBranchingFactor float64 `json:"avg_branching_factor"`
}

// Summarize folds records into per-(problem, algorithm) summaries,
// sorted by problem then algorithm.
func Summarize(records []Record) []Summary {
	type key struct{ problem, algorithm string }
	byPair := make(map[key]*Summary)

	for _, rec := range records {
		k := key{rec.Problem, rec.Algorithm}
		s, ok := byPair[k]
		if !ok {
			s = &Summary{Problem: rec.Problem, Algorithm: rec.Algorithm}
			byPair[k] = s
		}
		s.Instances++
		switch rec.Outcome {
		case OutcomeCompleted:
			s.Completed++
			s.AvgTimeMS += rec.ElapsedMS
			s.AvgMemoryKB += float64(rec.MemoryKB)
			s.AvgNodesVisited += float64(rec.NodesVisited)
			s.AvgNodesGenerated += float64(rec.NodesGenerated)
			s.AvgSolutionLength += float64(rec.SolutionLength)
			s.AvgSolutionCost += rec.SolutionCost
			s.AvgBranchingFactor += rec.BranchingFactor
		case OutcomeTimedOut:
			s.TimedOut++
		default:
			s.Failed++
		}
	}

	out := make([]Summary, 0, len(byPair))
	for _, s := range byPair {
		if s.Completed > 0 {
			n := float64(s.Completed)
			s.AvgTimeMS /= n
			s.AvgMemoryKB /= n
			s.AvgNodesVisited /= n
			s.AvgNodesGenerated /= n
			s.AvgSolutionLength /= n
			s.AvgSolutionCost /= n
			s.AvgBranchingFactor /= n
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Problem != out[j].Problem {
			return out[i].Problem < out[j].Problem
		}
		return out[i].Algorithm < out[j].Algorithm
	})
	return out
}
