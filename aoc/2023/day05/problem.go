package aoc2023day05

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/aoc/internal/almanac"
	"github.com/rs/zerolog"
)

type Solver struct {
	workers int
	logger  *zerolog.Logger
}

// New returns a solver that resolves seed ranges with up to workers
// goroutines.
func New(workers int, logger *zerolog.Logger) *Solver {
	return &Solver{workers: workers, logger: logger}
}

// Part1 returns the lowest location any listed seed maps to.
func (s *Solver) Part1(ctx context.Context, input string) (uint64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("no seeds listed: %w", almanac.ErrEmptyReduction)
	}

	lowest := a.Pipeline.Resolve(a.Seeds[0])
	for _, seed := range a.Seeds {
		location := a.Pipeline.Resolve(seed)
		if s.logger.Trace().Enabled() {
			s.logger.Trace().Uint64("seed", seed).Interface("lineage", a.Pipeline.Trace(seed)).Msg("seed resolved")
		}
		lowest = min(lowest, location)
	}

	s.logger.Debug().Int("seeds", len(a.Seeds)).Int("stages", len(a.Pipeline.Stages())).Uint64("lowest", lowest).Msg("seeds resolved")
	return lowest, nil
}

// Part2 reads the seeds as (start, length) pairs and returns the lowest
// location reached by any seed in any range.
func (s *Solver) Part2(ctx context.Context, input string) (uint64, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	lowest, err := almanac.LowestLocation(ctx, a.Pipeline, ranges, s.workers)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve seed ranges: %w", err)
	}

	s.logger.Debug().Int("ranges", len(ranges)).Int("workers", s.workers).Uint64("lowest", lowest).Msg("seed ranges resolved")
	return lowest, nil
}
