package almanac

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	stageSep    = "-to-"
)

// Almanac is a parsed day 5 document.
type Almanac struct {
	Seeds    []uint64
	Pipeline *Pipeline
}

// SeedRanges reads Seeds as consecutive (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, &parse.Error{Reason: fmt.Sprintf("seed list has odd length %d, expected start/length pairs", len(a.Seeds))}
	}

	ranges := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, Range{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return ranges, nil
}

type block struct {
	name    string
	from    string
	to      string
	entries []Entry
}

// Parse reads a "seeds:" line followed by "x-to-y map:" blocks of
// "destination source length" lines. Each block must start at the category
// the previous one ended at. A block without lines is an identity stage.
func Parse(input string) (*Almanac, error) {
	var (
		seeds     []uint64
		seedsSeen bool
		current   *block
		stages    []*Table
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		t, err := NewTable(current.name, current.entries)
		if err != nil {
			return &parse.Error{Reason: err.Error()}
		}
		stages = append(stages, t)
		return nil
	}

	for n, line := range parse.Lines(input) {
		text := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(text, seedsPrefix):
			if seedsSeen {
				return nil, parse.Errorf(n, line, "duplicate seeds line")
			}
			nums, err := parse.Uints(strings.TrimPrefix(text, seedsPrefix))
			if err != nil {
				return nil, parse.Errorf(n, line, "%v", err)
			}
			seeds = nums
			seedsSeen = true

		case !seedsSeen:
			return nil, parse.Errorf(n, line, "expected %q line first", seedsPrefix)

		case strings.HasSuffix(text, mapSuffix):
			name := strings.TrimSuffix(text, mapSuffix)
			from, to, ok := strings.Cut(name, stageSep)
			if !ok || from == "" || to == "" {
				return nil, parse.Errorf(n, line, "map header must look like \"source-to-destination map:\"")
			}
			if current != nil && current.to != from {
				return nil, parse.Errorf(n, line, "stage %q does not continue from %q", name, current.to)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			current = &block{name: name, from: from, to: to}

		default:
			if current == nil {
				return nil, parse.Errorf(n, line, "range entry outside of a map block")
			}
			nums, err := parse.Uints(text)
			if err != nil {
				return nil, parse.Errorf(n, line, "%v", err)
			}
			if len(nums) != 3 {
				return nil, parse.Errorf(n, line, "expected 3 numbers, got %d", len(nums))
			}
			e := Entry{DestStart: nums[0], SourceStart: nums[1], Length: nums[2]}
			if err := e.validate(); err != nil {
				return nil, parse.Errorf(n, line, "%v", err)
			}
			current.entries = append(current.entries, e)
		}
	}

	if !seedsSeen {
		return nil, &parse.Error{Reason: "missing seeds line"}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return &Almanac{Seeds: seeds, Pipeline: NewPipeline(stages...)}, nil
}
