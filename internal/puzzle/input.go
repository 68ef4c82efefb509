package puzzle

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/aoc/internal/parse"
)

// ReadInput loads a puzzle input file. A file that cannot be read is
// reported as malformed input.
func ReadInput(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, errors.Join(parse.ErrMalformedInput, err))
	}
	return string(bytes), nil
}
