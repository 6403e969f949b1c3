// Package biome_test validates the terrain enumeration and the
// noise-to-terrain classification rules.
package biome_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wayfind/biome"
	"github.com/katalvlaran/wayfind/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTerrain_CostsStrictlyIncreasing is the enumeration invariant the
// heuristic lower bound depends on.
func TestTerrain_CostsStrictlyIncreasing(t *testing.T) {
	kinds := biome.Kinds()
	require.Len(t, kinds, 4)
	for i := 1; i < len(kinds); i++ {
		assert.Greater(t, kinds[i].Cost(), kinds[i-1].Cost(),
			"%s must cost more than %s", kinds[i], kinds[i-1])
	}
	assert.Positive(t, biome.MinCost())
	assert.Equal(t, kinds[0].Cost(), biome.MinCost())
}

func TestTerrain_Properties(t *testing.T) {
	cases := []struct {
		kind   biome.Terrain
		cost   int
		symbol byte
		name   string
	}{
		{biome.Solid, 1, '.', "Solid"},
		{biome.Sandy, 4, '~', "Sandy"},
		{biome.Rocky, 10, '^', "Rocky"},
		{biome.Swamp, 20, '&', "Swamp"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.cost, tc.kind.Cost())
			assert.Equal(t, tc.symbol, tc.kind.Symbol())
			assert.Equal(t, tc.name, tc.kind.String())
		})
	}
}

func TestNewMapper_NoRanges(t *testing.T) {
	_, err := biome.NewMapper()
	assert.True(t, errors.Is(err, biome.ErrNoRanges))
}

// TestMapper_Classify covers band membership, boundary values, and the
// last-range fallback that makes classification total over [0, 1].
func TestMapper_Classify(t *testing.T) {
	m := biome.DefaultMapper()
	cases := []struct {
		name string
		v    float64
		want biome.Terrain
	}{
		{"Zero", 0.0, biome.Solid},
		{"MidSolid", 0.2, biome.Solid},
		{"SandyLowerBound", 0.4, biome.Sandy},
		{"MidSandy", 0.5, biome.Sandy},
		{"RockyLowerBound", 0.6, biome.Rocky},
		{"SwampLowerBound", 0.8, biome.Swamp},
		{"OneFallsBack", 1.0, biome.Swamp},
		{"AboveOneFallsBack", 1.5, biome.Swamp},
		{"BelowZeroFallsBack", -0.1, biome.Swamp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Classify(tc.v))
		})
	}
}

// TestMapper_ClassifyGap: a configuration with a gap still classifies
// every value, absorbing unmatched ones into the last range.
func TestMapper_ClassifyGap(t *testing.T) {
	m, err := biome.NewMapper(
		biome.Range{Lo: 0.0, Hi: 0.3, Kind: biome.Solid},
		biome.Range{Lo: 0.5, Hi: 1.0, Kind: biome.Rocky},
	)
	require.NoError(t, err)
	assert.Equal(t, biome.Solid, m.Classify(0.1))
	assert.Equal(t, biome.Rocky, m.Classify(0.4), "gap values fall back to the last range")
	assert.Equal(t, biome.Rocky, m.Classify(0.7))
}

// TestMapper_Grid checks dimensions, determinism, and that every cell
// got a valid kind.
func TestMapper_Grid(t *testing.T) {
	m := biome.DefaultMapper()
	f := noise.New(42)

	g1 := m.Grid(f, 20, 10, 4, 0.1)
	require.Len(t, g1, 10)
	for _, row := range g1 {
		require.Len(t, row, 20)
		for _, kind := range row {
			assert.Contains(t, biome.Kinds(), kind)
		}
	}

	g2 := m.Grid(noise.New(42), 20, 10, 4, 0.1)
	assert.Equal(t, g1, g2, "same seed must produce the same terrain grid")
}

func TestStats(t *testing.T) {
	grid := [][]biome.Terrain{
		{biome.Solid, biome.Solid, biome.Sandy},
		{biome.Rocky, biome.Solid, biome.Swamp},
	}
	counts := biome.Stats(grid)
	assert.Equal(t, 3, counts[biome.Solid])
	assert.Equal(t, 1, counts[biome.Sandy])
	assert.Equal(t, 1, counts[biome.Rocky])
	assert.Equal(t, 1, counts[biome.Swamp])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 6, total)
}
