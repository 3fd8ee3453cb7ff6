package pattern

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/cheerioskun/grepninja/internal/models"
)

// SplitList splits a pattern list given with -e into one spec per line.
// Empty entries are kept: an empty pattern matches every line.
func SplitList(list string, syntax models.SyntaxMode, ignoreCase bool) []models.PatternSpec {
	return models.NewPatternSpecs(strings.Split(list, "\n"), syntax, ignoreCase)
}

// LoadFile reads a pattern file and returns one spec per non-empty line, in
// file order. A trailing carriage return is kept as part of the pattern.
func LoadFile(fs afero.Fs, path string, syntax models.SyntaxMode, ignoreCase bool) ([]models.PatternSpec, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	lines := lo.Filter(strings.Split(string(data), "\n"), func(line string, _ int) bool {
		return line != ""
	})

	return models.NewPatternSpecs(lines, syntax, ignoreCase), nil
}
