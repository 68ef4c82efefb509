package aoc2023day03

import (
	"context"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
	"github.com/rs/zerolog"
)

// partNumber is a run of digits on one row, columns [start, end).
type partNumber struct {
	value uint64
	row   int
	start int
	end   int
}

// touches reports whether the cell (row, col) is in the 8-neighbourhood of n.
func (n partNumber) touches(row, col int) bool {
	return row >= n.row-1 && row <= n.row+1 && col >= n.start-1 && col <= n.end
}

type schematic struct {
	grid    []string
	numbers []partNumber
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c)
}

type Solver struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Part1 sums every number adjacent to a symbol, diagonals included.
func (s *Solver) Part1(ctx context.Context, input string) (uint64, error) {
	sc, err := parseInput(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	parts := 0
	for _, num := range sc.numbers {
		if sc.nextToSymbol(num) {
			total += num.value
			parts++
		}
	}

	s.logger.Debug().Int("numbers", len(sc.numbers)).Int("parts", parts).Msg("part numbers found")
	return total, nil
}

// Part2 sums the gear ratios: a '*' next to exactly two numbers contributes
// their product.
func (s *Solver) Part2(ctx context.Context, input string) (uint64, error) {
	sc, err := parseInput(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	gears := 0
	for i, row := range sc.grid {
		for j := range len(row) {
			if row[j] != '*' {
				continue
			}
			var adjacent []uint64
			for _, num := range sc.numbers {
				if num.touches(i, j) {
					adjacent = append(adjacent, num.value)
				}
			}
			if len(adjacent) == 2 {
				total += adjacent[0] * adjacent[1]
				gears++
			}
		}
	}

	s.logger.Debug().Int("gears", gears).Msg("gear ratios summed")
	return total, nil
}

func (sc *schematic) nextToSymbol(num partNumber) bool {
	for row := max(num.row-1, 0); row <= min(num.row+1, len(sc.grid)-1); row++ {
		line := sc.grid[row]
		for col := max(num.start-1, 0); col <= min(num.end, len(line)-1); col++ {
			if isSymbol(line[col]) {
				return true
			}
		}
	}
	return false
}

func parseInput(input string) (*schematic, error) {
	sc := &schematic{}

	for n, line := range parse.Lines(input) {
		line = strings.TrimSpace(line)
		row := len(sc.grid)
		sc.grid = append(sc.grid, line)

		for j := 0; j < len(line); {
			if !isDigit(line[j]) {
				j++
				continue
			}
			start := j
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			value, err := parse.ToUint(line[start:j])
			if err != nil {
				return nil, parse.Errorf(n, line, "%v", err)
			}
			sc.numbers = append(sc.numbers, partNumber{value: value, row: row, start: start, end: j})
		}
	}

	if len(sc.grid) == 0 {
		return nil, &parse.Error{Reason: "empty schematic"}
	}
	return sc, nil
}
