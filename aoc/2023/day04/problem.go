package aoc2023day04

import (
	"context"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
	"github.com/rs/zerolog"
)

type Card struct {
	ID      uint64
	Winning []uint64
	Have    []uint64
}

// matches counts the numbers we have that are also winning numbers.
func (c Card) matches() int {
	winning := make(map[uint64]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		winning[w] = struct{}{}
	}

	count := 0
	for _, h := range c.Have {
		if _, ok := winning[h]; ok {
			count++
		}
	}
	return count
}

func (c Card) points() uint64 {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

type Solver struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Solver {
	return &Solver{logger: logger}
}

// Part1 sums the points of every card.
func (s *Solver) Part1(ctx context.Context, input string) (uint64, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range cards {
		total += c.points()
	}
	return total, nil
}

// Part2 counts cards once every card has won copies of the cards after it.
// Copies past the end of the table are not awarded.
func (s *Solver) Part2(ctx context.Context, input string) (uint64, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}

	copies := make([]uint64, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	var total uint64
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	s.logger.Debug().Int("cards", len(cards)).Uint64("total", total).Msg("scratchcards propagated")
	return total, nil
}

func parseCards(input string) ([]Card, error) {
	var cards []Card
	for n, line := range parse.Lines(input) {
		c, err := parseCard(n, line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// parseCard reads "Card   1: 41 48 83 | 83 86  6".
func parseCard(n int, line string) (Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, parse.Errorf(n, line, "missing ':' after card id")
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(header), "Card")
	if !ok {
		return Card{}, parse.Errorf(n, line, "line must start with \"Card\"")
	}
	id, err := parse.ToUint(idText)
	if err != nil {
		return Card{}, parse.Errorf(n, line, "%v", err)
	}

	winningText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, parse.Errorf(n, line, "missing '|' between number lists")
	}
	winning, err := parse.Uints(winningText)
	if err != nil {
		return Card{}, parse.Errorf(n, line, "%v", err)
	}
	have, err := parse.Uints(haveText)
	if err != nil {
		return Card{}, parse.Errorf(n, line, "%v", err)
	}

	return Card{ID: id, Winning: winning, Have: have}, nil
}
