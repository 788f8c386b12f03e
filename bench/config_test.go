package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seekbench/search"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown algorithm", func(c *Config) { c.Algorithm = "dijkstra" }},
		{"unknown problem", func(c *Config) { c.Problem = "chess" }},
		{"size too small", func(c *Config) { c.Size = 1 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative threads", func(c *Config) { c.Threads = -1 }},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrConfig)
		})
	}
}

func TestConfig_Selections(t *testing.T) {
	cfg := DefaultConfig()

	algos, err := cfg.SelectedAlgorithms()
	require.NoError(t, err)
	assert.Len(t, algos, 5)

	problems, err := cfg.SelectedProblems()
	require.NoError(t, err)
	assert.Equal(t, []string{ProblemPuzzle, ProblemGrid, ProblemRandom}, problems)

	cfg.Algorithm = "idastar"
	cfg.Problem = "grid"
	algos, err = cfg.SelectedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []search.Algorithm{search.AlgoIDAStar}, algos)
	problems, err = cfg.SelectedProblems()
	require.NoError(t, err)
	assert.Equal(t, []string{ProblemGrid}, problems)
}

func TestConfig_Deadline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutSeconds = 90
	assert.Equal(t, 90*time.Second, cfg.Deadline())
	assert.Positive(t, cfg.WorkerCount())
}

func TestLoadConfig_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: astar\nsize: 8\nseed: 42\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, 8, cfg.Size)
	assert.Equal(t, int64(42), cfg.Seed)
	// Untouched fields keep their defaults.
	assert.Equal(t, "all", cfg.Problem)
	assert.Equal(t, 10, cfg.Iterations)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfig)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [oops"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrConfig)
}
