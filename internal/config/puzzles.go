package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "configs/puzzles.yaml"
	defaultYear     = 2023
	defaultInputDir = "data"
	lastDay         = 25
)

// Days solved by this repository when no configuration file exists.
var defaultDays = []int{1, 2, 3, 4, 5}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	for _, d := range defaultDays {
		cfg.Puzzles = append(cfg.Puzzles, PuzzleConfig{Day: d, Enabled: true})
	}
	applyDefaults(cfg)
	return cfg
}

// LoadPuzzlesConfig reads the YAML file at path, or DefaultPath when path is
// empty. A missing file yields Default().
func LoadPuzzlesConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Year == 0 {
		cfg.Year = defaultYear
	}
	if cfg.InputDir == "" {
		cfg.InputDir = defaultInputDir
	}
	if cfg.Almanac.Workers == 0 {
		cfg.Almanac.Workers = runtime.NumCPU()
	}
	for i := range cfg.Puzzles {
		p := &cfg.Puzzles[i]
		if p.Input == "" {
			p.Input = cfg.InputPath(p.Day)
		}
		if len(p.Parts) == 0 {
			p.Parts = []int{1, 2}
		}
	}
}

// InputPath is the default input location for day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day_%d", day))
}

// Puzzle returns the entry for day, or a default one if day is not listed.
func (c *Config) Puzzle(day int) PuzzleConfig {
	for _, p := range c.Puzzles {
		if p.Day == day {
			return p
		}
	}
	return PuzzleConfig{Day: day, Enabled: true, Input: c.InputPath(day), Parts: []int{1, 2}}
}

func (c *Config) Validate() error {
	if c.Almanac.Workers < 0 {
		return fmt.Errorf("almanac.workers must be positive, got %d", c.Almanac.Workers)
	}

	seen := make(map[int]bool, len(c.Puzzles))
	for _, p := range c.Puzzles {
		if p.Day < 1 || p.Day > lastDay {
			return fmt.Errorf("day %d out of range 1..%d", p.Day, lastDay)
		}
		if seen[p.Day] {
			return fmt.Errorf("day %d listed twice", p.Day)
		}
		seen[p.Day] = true

		for _, part := range p.Parts {
			if part != 1 && part != 2 {
				return fmt.Errorf("day %d: part %d must be 1 or 2", p.Day, part)
			}
		}
	}
	return nil
}
