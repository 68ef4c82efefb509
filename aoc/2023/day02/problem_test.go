package aoc2023day02

import (
	"context"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func newTestSolver() *Solver {
	logger := zerolog.Nop()
	return New(&logger)
}

func TestPart1(t *testing.T) {
	got, err := newTestSolver().Part1(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), got)
}

func TestPart2(t *testing.T) {
	got, err := newTestSolver().Part2(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(2286), got)
}

func TestParseGame(t *testing.T) {
	g, err := parseGame(1, "Game 12: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	require.NoError(t, err)

	assert.Equal(t, uint64(12), g.ID)
	assert.Equal(t, []Draw{
		{Red: 4, Blue: 3},
		{Red: 1, Green: 2, Blue: 6},
		{Green: 2},
	}, g.Draws)
	assert.Equal(t, uint64(48), g.power())
}

func TestParseGame_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "no colon", line: "Game 1 3 blue"},
		{name: "no prefix", line: "Match 1: 3 blue"},
		{name: "bad id", line: "Game x: 3 blue"},
		{name: "bad count", line: "Game 1: three blue"},
		{name: "unknown color", line: "Game 1: 3 purple"},
		{name: "missing color", line: "Game 1: 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGame(7, tt.line)
			assert.ErrorIs(t, err, parse.ErrMalformedInput)
		})
	}
}
