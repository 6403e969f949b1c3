package biome

import (
	"errors"

	"github.com/katalvlaran/wayfind/noise"
)

// ErrNoRanges indicates a Mapper was constructed without any ranges.
var ErrNoRanges = errors.New("biome: mapper needs at least one range")

// Range maps noise values in [Lo, Hi) to a terrain kind.
type Range struct {
	Lo, Hi float64
	Kind   Terrain
}

// Mapper classifies noise values into terrain kinds through an ordered
// list of ranges. Classification picks the first range containing the
// value; values matched by no range (boundary rounding, configuration
// gaps) fall back to the last configured range.
type Mapper struct {
	ranges []Range
}

// NewMapper builds a Mapper from the given ordered ranges.
// Returns ErrNoRanges if none are supplied.
func NewMapper(ranges ...Range) (*Mapper, error) {
	if len(ranges) == 0 {
		return nil, ErrNoRanges
	}
	owned := make([]Range, len(ranges))
	copy(owned, ranges)
	return &Mapper{ranges: owned}, nil
}

// DefaultMapper returns the standard distribution: 40% Solid, then 20%
// each of Sandy, Rocky, and Swamp across the noise interval [0, 1].
func DefaultMapper() *Mapper {
	return &Mapper{ranges: []Range{
		{Lo: 0.0, Hi: 0.4, Kind: Solid},
		{Lo: 0.4, Hi: 0.6, Kind: Sandy},
		{Lo: 0.6, Hi: 0.8, Kind: Rocky},
		{Lo: 0.8, Hi: 1.0, Kind: Swamp},
	}}
}

// Classify maps a noise value to a terrain kind. It never fails for
// values in [0, 1]: unmatched values map to the last configured range.
func (m *Mapper) Classify(v float64) Terrain {
	for _, r := range m.ranges {
		if v >= r.Lo && v < r.Hi {
			return r.Kind
		}
	}
	return m.ranges[len(m.ranges)-1].Kind
}

// Grid samples f over a width×height rectangle with the given fractal
// parameters and classifies every cell, returning the terrain matrix
// indexed [y][x].
func (m *Mapper) Grid(f *noise.Field, width, height, octaves int, scale float64) [][]Terrain {
	out := make([][]Terrain, height)
	for y := 0; y < height; y++ {
		out[y] = make([]Terrain, width)
		for x := 0; x < width; x++ {
			out[y][x] = m.Classify(f.Fractal(float64(x), float64(y), octaves, 0.5, scale))
		}
	}
	return out
}

// Stats counts terrain kinds in a grid. Useful for distribution
// diagnostics in the CLI.
func Stats(grid [][]Terrain) map[Terrain]int {
	counts := make(map[Terrain]int, len(terrainCosts))
	for _, row := range grid {
		for _, t := range row {
			counts[t]++
		}
	}
	return counts
}
