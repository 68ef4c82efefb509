package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc/internal/puzzle"
	"github.com/spf13/cobra"
)

func newSolveCmd(opts *options) *cobra.Command {
	var (
		part  int
		input string
	)

	cmd := &cobra.Command{
		Use:   "solve DAY",
		Short: "Solve one day's puzzle",
		Long: `Solve one day's puzzle. With --part the answer alone is printed,
otherwise both parts are printed one per line.`,
		Example: `  aoc solve 5 --part 2
  aoc solve day1 --input data/day_1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0], part, input)
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (1 or 2); both when omitted")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input file (defaults to the configured input for the day)")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *options, dayArg string, part int, input string) error {
	day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(dayArg), "day"))
	if err != nil {
		return fmt.Errorf("invalid day %q", dayArg)
	}

	deps, err := opts.wire()
	if err != nil {
		return err
	}

	if input == "" {
		input = deps.Puzzles.Puzzle(day).Input
	}
	out := cmd.OutOrStdout()

	if part != 0 {
		answer, err := deps.Runner.Solve(cmd.Context(), puzzle.Job{Day: day, Part: part, InputPath: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, answer)
		return nil
	}

	for _, p := range []int{1, 2} {
		answer, err := deps.Runner.Solve(cmd.Context(), puzzle.Job{Day: day, Part: p, InputPath: input})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "AoC%d, Day%d, Part%d solution is: %d\n", deps.Puzzles.Year, day, p, answer)
	}
	return nil
}
