package puzzle

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Job asks for one part of one day, read from InputPath.
type Job struct {
	Day       int
	Part      int
	InputPath string
}

type Result struct {
	Day      int
	Part     int
	Answer   uint64
	Err      error
	Duration time.Duration
}

type Runner struct {
	registry *Registry
	logger   *zerolog.Logger
}

func NewRunner(registry *Registry, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		logger:   logger,
	}
}

// Solve runs a single job.
func (r *Runner) Solve(ctx context.Context, job Job) (uint64, error) {
	solver, err := r.registry.Get(job.Day)
	if err != nil {
		return 0, err
	}
	if job.Part != 1 && job.Part != 2 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPart, job.Part)
	}

	input, err := ReadInput(job.InputPath)
	if err != nil {
		return 0, err
	}

	answer, err := solvePart(ctx, solver, job.Part, input)
	if err != nil {
		return 0, fmt.Errorf("day %d part %d: %w", job.Day, job.Part, err)
	}
	return answer, nil
}

// Run solves every job concurrently. Results come back ordered by day, then
// part; a failed job does not stop the others.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	results := make(chan Result, len(jobs))
	var wg sync.WaitGroup

	for _, job := range jobs {
		wg.Add(1)
		go func(j Job) {
			defer wg.Done()
			results <- r.run(ctx, j)
		}(job)
	}

	wg.Wait()
	close(results)

	collected := make([]Result, 0, len(jobs))
	for res := range results {
		collected = append(collected, res)
	}
	slices.SortFunc(collected, func(a, b Result) int {
		if c := cmp.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		return cmp.Compare(a.Part, b.Part)
	})

	return collected
}

func (r *Runner) run(ctx context.Context, job Job) Result {
	start := time.Now()
	answer, err := r.Solve(ctx, job)
	res := Result{
		Day:      job.Day,
		Part:     job.Part,
		Answer:   answer,
		Err:      err,
		Duration: time.Since(start),
	}

	if err != nil {
		r.logger.Error().
			Err(err).
			Int("day", job.Day).
			Int("part", job.Part).
			Str("input", job.InputPath).
			Msg("puzzle failed")
		return res
	}

	r.logger.Info().
		Int("day", job.Day).
		Int("part", job.Part).
		Uint64("answer", answer).
		Dur("duration", res.Duration).
		Msg("puzzle solved")
	return res
}
