package model

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a set of live cells given as (row, col) offsets from a placement origin
type Pattern [][2]int

var patterns = map[string]Pattern{
	"block":   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	"toad":    {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	"beacon":  {{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
}

// PatternNames returns the known pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupPattern returns the named pattern
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q, known patterns: %s",
			name, strings.Join(PatternNames(), ", "))
	}
	return p, nil
}

// PlacePattern sets the named pattern's cells alive with its origin at (row, col).
// The grid is left untouched if any cell would fall outside it.
func PlacePattern(g *Grid, name string, row, col int) error {
	p, err := LookupPattern(name)
	if err != nil {
		return err
	}
	for _, off := range p {
		if !g.inBounds(row+off[0], col+off[1]) {
			return errors.Wrapf(ErrIndexOutOfBounds, "[PlacePattern] %q at (%d,%d) does not fit %dx%d",
				name, row, col, g.rows, g.cols)
		}
	}
	for _, off := range p {
		g.cells[(row+off[0])*g.cols+col+off[1]] = 1
	}
	return nil
}

// Randomize fills the grid with living cells at the given density, deterministically for a seed
func Randomize(g *Grid, density float64, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cells {
		g.cells[i] = 0
		if rng.Float64() < density {
			g.cells[i] = 1
		}
	}
}
