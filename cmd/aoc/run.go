package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/povarna/generative-ai-agents/aoc/internal/puzzle"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve every enabled puzzle in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd, opts, noColor)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output (NO_COLOR is honored too)")

	return cmd
}

func runAll(cmd *cobra.Command, opts *options, noColor bool) error {
	deps, err := opts.wire()
	if err != nil {
		return err
	}

	var jobs []puzzle.Job
	for _, p := range deps.Puzzles.Puzzles {
		if !p.Enabled {
			deps.Logger.Debug().Int("day", p.Day).Msg("puzzle disabled in config, skipping")
			continue
		}
		for _, part := range p.Parts {
			jobs = append(jobs, puzzle.Job{Day: p.Day, Part: part, InputPath: p.Input})
		}
	}

	results := deps.Runner.Run(cmd.Context(), jobs)
	colored := !noColor && os.Getenv("NO_COLOR") == ""

	failed := renderResults(cmd.OutOrStdout(), deps.Puzzles.Year, results, colored)
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	return nil
}

// renderResults writes the results table and returns how many failed.
func renderResults(w io.Writer, year int, results []puzzle.Result, colored bool) int {
	okStyle := color.New(color.FgGreen)
	failStyle := color.New(color.FgRed, color.Bold)
	if !colored {
		okStyle.DisableColor()
		failStyle.DisableColor()
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("Advent of Code %d", year))
	tbl.AppendHeader(table.Row{"Day", "Part", "Answer", "Time", "Status"})

	failed := 0
	for _, r := range results {
		elapsed := r.Duration.Round(time.Microsecond)
		if r.Err != nil {
			failed++
			tbl.AppendRow(table.Row{r.Day, r.Part, "-", elapsed, failStyle.Sprintf("error: %v", r.Err)})
			continue
		}
		tbl.AppendRow(table.Row{r.Day, r.Part, r.Answer, elapsed, okStyle.Sprint("ok")})
	}

	tbl.AppendFooter(table.Row{"", "", "", "Solved", fmt.Sprintf("%d/%d", len(results)-failed, len(results))})
	tbl.Render()

	return failed
}
