package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzles.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadPuzzlesConfig_Success(t *testing.T) {
	path := writeConfig(t, `year: 2023
input_dir: inputs
puzzles:
  - day: 1
    enabled: true
  - day: 5
    enabled: false
    input: custom/almanac.txt
    parts: [2]
almanac:
  workers: 3
`)

	cfg, err := LoadPuzzlesConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2023, cfg.Year)
	assert.Equal(t, 3, cfg.Almanac.Workers)
	require.Len(t, cfg.Puzzles, 2)

	first := cfg.Puzzles[0]
	assert.True(t, first.Enabled)
	assert.Equal(t, filepath.Join("inputs", "day_1"), first.Input)
	assert.Equal(t, []int{1, 2}, first.Parts)

	fifth := cfg.Puzzles[1]
	assert.False(t, fifth.Enabled)
	assert.Equal(t, "custom/almanac.txt", fifth.Input)
	assert.Equal(t, []int{2}, fifth.Parts)
}

func TestLoadPuzzlesConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "puzzles:\n  - day: 2\n    enabled: true\n")

	cfg, err := LoadPuzzlesConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2023, cfg.Year)
	assert.Equal(t, "data", cfg.InputDir)
	assert.Equal(t, runtime.NumCPU(), cfg.Almanac.Workers)
	assert.Equal(t, filepath.Join("data", "day_2"), cfg.Puzzles[0].Input)
}

func TestLoadPuzzlesConfig_MissingFileUsesDefault(t *testing.T) {
	cfg, err := LoadPuzzlesConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Len(t, cfg.Puzzles, 5)
	for i, p := range cfg.Puzzles {
		assert.Equal(t, i+1, p.Day)
		assert.True(t, p.Enabled)
	}
}

func TestLoadPuzzlesConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "puzzles: [day: 1", wantErr: "failed to parse"},
		{name: "day zero", content: "puzzles:\n  - day: 0\n", wantErr: "out of range"},
		{name: "day 26", content: "puzzles:\n  - day: 26\n", wantErr: "out of range"},
		{name: "duplicate", content: "puzzles:\n  - day: 1\n  - day: 1\n", wantErr: "listed twice"},
		{name: "bad part", content: "puzzles:\n  - day: 1\n    parts: [3]\n", wantErr: "must be 1 or 2"},
		{name: "negative workers", content: "almanac:\n  workers: -2\n", wantErr: "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPuzzlesConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Puzzle(t *testing.T) {
	cfg := Default()

	p := cfg.Puzzle(3)
	assert.Equal(t, filepath.Join("data", "day_3"), p.Input)

	unlisted := cfg.Puzzle(9)
	assert.Equal(t, 9, unlisted.Day)
	assert.Equal(t, filepath.Join("data", "day_9"), unlisted.Input)
	assert.Equal(t, []int{1, 2}, unlisted.Parts)
}
