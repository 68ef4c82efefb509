// Package parse holds the small helpers every puzzle uses to read its
// line-oriented input, and the error they report when a line does not fit.
package parse

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrMalformedInput is matched by every *Error.
var ErrMalformedInput = errors.New("malformed input")

// Error describes a line that does not match the expected grammar.
// Line is 1-based; zero means the problem is not tied to a single line.
type Error struct {
	Line   int
	Text   string
	Reason string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed input: %s", e.Reason)
	}
	return fmt.Sprintf("malformed input at line %d (%q): %s", e.Line, e.Text, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrMalformedInput
}

// Errorf builds an *Error for the given line.
func Errorf(line int, text string, format string, args ...any) *Error {
	return &Error{
		Line:   line,
		Text:   text,
		Reason: fmt.Sprintf(format, args...),
	}
}

// ToUint converts a decimal field to uint64.
func ToUint(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, ErrMalformedInput)
	}

	return n, nil
}

// Uints converts whitespace separated decimal fields.
func Uints(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	nums := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := ToUint(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}

	return nums, nil
}

// Lines yields every line of input that is not blank, together with its
// 1-based line number. Trailing carriage returns are dropped.
func Lines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for line := range strings.SplitSeq(input, "\n") {
			n++
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(n, line) {
				return
			}
		}
	}
}
