// Package maze defines the grid type and sentinel errors for maze
// carving and connectivity repair.
package maze

import "errors"

// Sentinel errors for maze generation.
var (
	// ErrNilRand indicates a nil random source was supplied.
	ErrNilRand = errors.New("maze: random source is nil")

	// ErrTooSmall indicates a requested dimension below the 3×3 minimum.
	ErrTooSmall = errors.New("maze: dimensions must be at least 3×3")
)

// extendProbability is the chance of adding an extra passage per border
// slot when a carved odd-sized maze is re-expanded to even dimensions.
const extendProbability = 0.3

// Position is a cell coordinate within a maze grid.
type Position struct {
	X, Y int
}

// Grid is a carved maze: Walls()[y][x] == true means wall, false means
// passable. After Generate returns, every passable cell is reachable
// from every other passable cell under 4-connectivity.
type Grid struct {
	// Width and Height are the final grid dimensions.
	Width, Height int

	walls [][]bool
}

// newFilled returns a width×height grid consisting entirely of walls.
func newFilled(width, height int) *Grid {
	walls := make([][]bool, height)
	for y := range walls {
		walls[y] = make([]bool, width)
		for x := range walls[y] {
			walls[y][x] = true
		}
	}
	return &Grid{Width: width, Height: height, walls: walls}
}

// IsPath reports whether (x, y) is inside the grid and passable.
func (g *Grid) IsPath(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height && !g.walls[y][x]
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds coordinates
// count as walls.
func (g *Grid) IsWall(x, y int) bool {
	return !g.IsPath(x, y)
}

// Walls returns a deep copy of the boolean wall matrix, indexed
// [y][x], so callers cannot mutate the carved maze.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Height)
	for y := range out {
		out[y] = make([]bool, g.Width)
		copy(out[y], g.walls[y])
	}
	return out
}

// Passable returns every passable coordinate in row-major order
// (y ascending, then x ascending).
func (g *Grid) Passable() []Position {
	var out []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.walls[y][x] {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// String renders the maze with '#' walls and '.' passages, one row per
// line. Intended for debugging and tests.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.walls[y][x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
