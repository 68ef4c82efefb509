package puzzle

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

// Solver answers both parts of one day's puzzle.
type Solver interface {
	Part1(ctx context.Context, input string) (uint64, error)
	Part2(ctx context.Context, input string) (uint64, error)
}

var (
	ErrUnknownDay  = errors.New("unknown day")
	ErrUnknownPart = errors.New("unknown part")
)

// Registry maps a day number to its solver.
type Registry struct {
	solvers map[int]Solver
}

func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds s for day, replacing any earlier solver.
func (r *Registry) Register(day int, s Solver) {
	r.solvers[day] = s
}

func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

func solvePart(ctx context.Context, s Solver, part int, input string) (uint64, error) {
	switch part {
	case 1:
		return s.Part1(ctx, input)
	case 2:
		return s.Part2(ctx, input)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownPart, part)
	}
}
