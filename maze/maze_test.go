// Package maze_test validates carving, even-dimension handling, the
// connectivity guarantee, and determinism of maze generation.
package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachableFrom flood-fills the grid from pos and returns the count of
// reached passable cells. Independent of the package's own repair code.
func reachableFrom(g *maze.Grid, pos maze.Position) int {
	seen := map[maze.Position]bool{pos: true}
	queue := []maze.Position{pos}
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			n := maze.Position{X: p.X + d[0], Y: p.Y + d[1]}
			if !seen[n] && g.IsPath(n.X, n.Y) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}

func TestGenerate_Validation(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		rng  *rand.Rand
		err  error
	}{
		{"NilRand", 15, 11, nil, maze.ErrNilRand},
		{"TooNarrow", 2, 11, rand.New(rand.NewSource(1)), maze.ErrTooSmall},
		{"TooShort", 15, 1, rand.New(rand.NewSource(1)), maze.ErrTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Generate(tc.w, tc.h, tc.rng)
			assert.True(t, errors.Is(err, tc.err), "Generate(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
		})
	}
}

// TestGenerate_Dimensions verifies the returned grid keeps the
// requested dimensions, even ones included.
func TestGenerate_Dimensions(t *testing.T) {
	for _, dims := range [][2]int{{15, 11}, {16, 12}, {15, 12}, {16, 11}, {3, 3}} {
		g, err := maze.Generate(dims[0], dims[1], rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, dims[0], g.Width)
		assert.Equal(t, dims[1], g.Height)
	}
}

// TestGenerate_FullyConnected is the output contract: 100% of listed
// passable positions must be mutually reachable under 4-connectivity.
func TestGenerate_FullyConnected(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		for _, dims := range [][2]int{{15, 11}, {20, 16}, {31, 31}, {10, 10}} {
			g, err := maze.Generate(dims[0], dims[1], rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			passable := g.Passable()
			require.NotEmpty(t, passable)
			got := reachableFrom(g, passable[0])
			assert.Equal(t, len(passable), got,
				"seed %d size %dx%d: %d of %d passable cells reachable",
				seed, dims[0], dims[1], got, len(passable))
		}
	}
}

// TestGenerate_Deterministic confirms identical seeds yield identical
// wall matrices.
func TestGenerate_Deterministic(t *testing.T) {
	g1, err := maze.Generate(25, 19, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	g2, err := maze.Generate(25, 19, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, g1.Walls(), g2.Walls())
	assert.Equal(t, g1.String(), g2.String())
}

// TestGenerate_SeedsDiffer confirms distinct seeds carve distinct
// mazes on a non-trivial grid.
func TestGenerate_SeedsDiffer(t *testing.T) {
	g1, err := maze.Generate(25, 19, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	g2, err := maze.Generate(25, 19, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.NotEqual(t, g1.String(), g2.String())
}

// TestGrid_Accessors exercises IsPath/IsWall bounds behavior and the
// Walls deep copy.
func TestGrid_Accessors(t *testing.T) {
	g, err := maze.Generate(15, 11, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.True(t, g.IsWall(-1, 0), "out-of-bounds must count as wall")
	assert.True(t, g.IsWall(15, 0))
	assert.True(t, g.IsWall(0, 11))
	assert.True(t, g.IsPath(1, 1), "carve origin must be passable")

	walls := g.Walls()
	walls[1][1] = true
	assert.True(t, g.IsPath(1, 1), "Walls() must be a deep copy")
}

// TestGenerate_PassableMatchesGrid cross-checks the coordinate list
// against the wall matrix.
func TestGenerate_PassableMatchesGrid(t *testing.T) {
	g, err := maze.Generate(21, 17, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	seen := make(map[maze.Position]bool)
	for _, p := range g.Passable() {
		assert.True(t, g.IsPath(p.X, p.Y))
		seen[p] = true
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsPath(x, y) {
				assert.True(t, seen[maze.Position{X: x, Y: y}], "missing (%d,%d) in Passable()", x, y)
			}
		}
	}
}
