// Package almanac remaps integer keys and integer ranges through a chain of
// piecewise-linear tables, the way the 2023 day 5 almanac maps seeds to
// locations.
package almanac

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

var (
	// ErrInvalidEntry is returned by NewTable for an entry with a zero length
	// or one whose source or destination block runs past the uint64 range.
	ErrInvalidEntry = errors.New("invalid range entry")

	// ErrEmptyReduction is returned when a minimum is requested over nothing.
	ErrEmptyReduction = errors.New("no input to reduce")
)

// Entry maps Length consecutive keys starting at SourceStart onto the block
// starting at DestStart.
type Entry struct {
	SourceStart uint64
	Length      uint64
	DestStart   uint64
}

func (e Entry) sourceEnd() uint64 {
	return e.SourceStart + e.Length
}

func (e Entry) contains(key uint64) bool {
	return key >= e.SourceStart && key < e.sourceEnd()
}

func (e Entry) translate(key uint64) uint64 {
	return key - e.SourceStart + e.DestStart
}

func (e Entry) validate() error {
	if e.Length == 0 {
		return fmt.Errorf("%w: %+v has zero length", ErrInvalidEntry, e)
	}
	if e.SourceStart > math.MaxUint64-e.Length || e.DestStart > math.MaxUint64-e.Length {
		return fmt.Errorf("%w: %+v overflows", ErrInvalidEntry, e)
	}
	return nil
}

// Range is the half-open interval [Start, Start+Length).
type Range struct {
	Start  uint64
	Length uint64
}

// Table is one remapping stage. Entries are sorted by SourceStart and never
// change after NewTable returns. Keys outside every entry map to themselves.
type Table struct {
	name    string
	entries []Entry
}

// NewTable copies entries and sorts them by source start. Source blocks are
// expected not to overlap; that is not checked.
func NewTable(name string, entries []Entry) (*Table, error) {
	sorted := slices.Clone(entries)
	for _, e := range sorted {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
	}
	slices.SortFunc(sorted, func(a, b Entry) int {
		switch {
		case a.SourceStart < b.SourceStart:
			return -1
		case a.SourceStart > b.SourceStart:
			return 1
		}
		return 0
	})

	return &Table{name: name, entries: sorted}, nil
}

func (t *Table) Name() string {
	return t.name
}

// Entries returns a copy of the sorted entries.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// search returns the index of the first entry whose source block ends after
// key. With non-overlapping sorted entries the ends are sorted too.
func (t *Table) search(key uint64) int {
	return sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].sourceEnd() > key
	})
}

// MapKey returns the destination of key.
func (t *Table) MapKey(key uint64) uint64 {
	i := t.search(key)
	if i < len(t.entries) && t.entries[i].contains(key) {
		return t.entries[i].translate(key)
	}
	return key
}

// MapRange splits r at entry boundaries and returns the image of every piece,
// in the order the pieces occur from r.Start. Uncovered pieces keep their
// keys. The output lengths always add up to r.Length.
func (t *Table) MapRange(r Range) []Range {
	if r.Length == 0 {
		return nil
	}

	out := make([]Range, 0, 1)
	key, remaining := r.Start, r.Length

	for i := t.search(key); i < len(t.entries) && remaining > 0; i++ {
		e := t.entries[i]

		if e.SourceStart > key {
			gap := e.SourceStart - key
			if gap >= remaining {
				// the rest of the range ends before this entry starts
				break
			}
			out = append(out, Range{Start: key, Length: gap})
			key += gap
			remaining -= gap
		}

		covered := min(remaining, e.sourceEnd()-key)
		out = append(out, Range{Start: e.translate(key), Length: covered})
		key += covered
		remaining -= covered
	}

	if remaining > 0 {
		out = append(out, Range{Start: key, Length: remaining})
	}

	return out
}
