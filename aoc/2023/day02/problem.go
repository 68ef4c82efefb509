package aoc2023day02

import (
	"context"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
	"github.com/rs/zerolog"
)

// Draw is the number of cubes of each color shown at once.
type Draw struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

type Game struct {
	ID    uint64
	Draws []Draw
}

// bag is what the elf claims to hold.
var bag = Draw{Red: 12, Green: 13, Blue: 14}

func (g Game) possible(with Draw) bool {
	for _, d := range g.Draws {
		if d.Red > with.Red || d.Green > with.Green || d.Blue > with.Blue {
			return false
		}
	}
	return true
}

// power multiplies the fewest cubes of each color that make the game possible.
func (g Game) power() uint64 {
	var least Draw
	for _, d := range g.Draws {
		least.Red = max(least.Red, d.Red)
		least.Green = max(least.Green, d.Green)
		least.Blue = max(least.Blue, d.Blue)
	}
	return least.Red * least.Green * least.Blue
}

type Solver struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Part1 sums the ids of the games that fit in the bag.
func (s *Solver) Part1(ctx context.Context, input string) (uint64, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}

	var result uint64
	possible := 0
	for _, g := range games {
		if g.possible(bag) {
			result += g.ID
			possible++
		}
	}

	s.logger.Debug().Int("games", len(games)).Int("possible", possible).Msg("games checked against bag")
	return result, nil
}

// Part2 sums the power of every game.
func (s *Solver) Part2(ctx context.Context, input string) (uint64, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}

	var result uint64
	for _, g := range games {
		result += g.power()
	}
	return result, nil
}

func parseGames(input string) ([]Game, error) {
	var games []Game
	for n, line := range parse.Lines(input) {
		g, err := parseGame(n, line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// parseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(n int, line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, parse.Errorf(n, line, "missing ':' after game id")
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(header), "Game ")
	if !ok {
		return Game{}, parse.Errorf(n, line, "line must start with \"Game \"")
	}
	id, err := parse.ToUint(idText)
	if err != nil {
		return Game{}, parse.Errorf(n, line, "%v", err)
	}

	game := Game{ID: id}
	for drawText := range strings.SplitSeq(body, ";") {
		var d Draw
		for cubeText := range strings.SplitSeq(drawText, ",") {
			fields := strings.Fields(cubeText)
			if len(fields) != 2 {
				return Game{}, parse.Errorf(n, line, "expected \"<count> <color>\", got %q", strings.TrimSpace(cubeText))
			}
			count, err := parse.ToUint(fields[0])
			if err != nil {
				return Game{}, parse.Errorf(n, line, "%v", err)
			}
			switch fields[1] {
			case "red":
				d.Red += count
			case "green":
				d.Green += count
			case "blue":
				d.Blue += count
			default:
				return Game{}, parse.Errorf(n, line, "unknown color %q", fields[1])
			}
		}
		game.Draws = append(game.Draws, d)
	}

	return game, nil
}
