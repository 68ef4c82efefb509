package setup

import (
	"fmt"
	"os"
	"strconv"

	aoc2023day01 "github.com/povarna/generative-ai-agents/aoc/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/generative-ai-agents/aoc/aoc/2023/day02"
	aoc2023day03 "github.com/povarna/generative-ai-agents/aoc/aoc/2023/day03"
	aoc2023day04 "github.com/povarna/generative-ai-agents/aoc/aoc/2023/day04"
	aoc2023day05 "github.com/povarna/generative-ai-agents/aoc/aoc/2023/day05"
	"github.com/povarna/generative-ai-agents/aoc/internal/config"
	"github.com/povarna/generative-ai-agents/aoc/internal/puzzle"
	"github.com/rs/zerolog"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	LogLevel          string
	PuzzlesConfigPath string
	Workers           int
}

type Dependencies struct {
	Puzzles  *config.Config
	Registry *puzzle.Registry
	Runner   *puzzle.Runner
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PuzzlesConfigPath: getEnv("PUZZLES_CONFIG_PATH", config.DefaultPath),
		Workers:           getEnvInt("AOC_WORKERS", 0),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	puzzles, err := config.LoadPuzzlesConfig(cfg.PuzzlesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzles config: %w", err)
	}
	if cfg.Workers > 0 {
		puzzles.Almanac.Workers = cfg.Workers
	}

	registry := puzzle.NewRegistry()
	registry.Register(1, aoc2023day01.New(logger))
	registry.Register(2, aoc2023day02.New(logger))
	registry.Register(3, aoc2023day03.New(logger))
	registry.Register(4, aoc2023day04.New(logger))
	registry.Register(5, aoc2023day05.New(puzzles.Almanac.Workers, logger))

	logger.Debug().
		Str("config", cfg.PuzzlesConfigPath).
		Ints("days", registry.Days()).
		Int("workers", puzzles.Almanac.Workers).
		Msg("solvers registered")

	return &Dependencies{
		Puzzles:  puzzles,
		Registry: registry,
		Runner:   puzzle.NewRunner(registry, logger),
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
