package aoc2023day01

import (
	"context"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
	"github.com/rs/zerolog"
)

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type Solver struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Part1 sums the two-digit calibration values made of each line's first and
// last digit.
func (s *Solver) Part1(ctx context.Context, input string) (uint64, error) {
	return s.calibrate(input, false)
}

// Part2 also counts spelled-out digits. Words may share letters, so
// "eightwo" starts with 8 and ends with 2.
func (s *Solver) Part2(ctx context.Context, input string) (uint64, error) {
	return s.calibrate(input, true)
}

func (s *Solver) calibrate(input string, spelled bool) (uint64, error) {
	var result uint64
	lines := 0

	for n, line := range parse.Lines(input) {
		first, ok := firstDigit(line, spelled)
		if !ok {
			return 0, parse.Errorf(n, line, "no digit found")
		}
		last, _ := lastDigit(line, spelled)

		result += uint64(first*10 + last)
		lines++
	}

	s.logger.Debug().Int("lines", lines).Bool("spelled", spelled).Uint64("sum", result).Msg("calibration values summed")
	return result, nil
}

func firstDigit(line string, spelled bool) (int, bool) {
	for i := range len(line) {
		if d, ok := digitAt(line, i, spelled); ok {
			return d, true
		}
	}
	return 0, false
}

func lastDigit(line string, spelled bool) (int, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			return d, true
		}
	}
	return 0, false
}

func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for idx, word := range digitWords {
		if strings.HasPrefix(line[i:], word) {
			return idx + 1, true
		}
	}
	return 0, false
}
