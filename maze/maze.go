// Package maze implements recursive-backtracking maze carving over an
// odd×odd grid, with even-dimension reduction, border re-expansion,
// and a flood-fill connectivity repair pass.
package maze

import "math/rand"

// Generate carves a width×height maze using recursive backtracking.
//
// Even dimensions are reduced to the nearest smaller odd size for
// carving and the grid is re-expanded afterwards, adding scattered
// border passages with probability extendProbability per slot. A
// repair pass then guarantees that every passable cell is reachable
// from every other passable cell.
//
// Returns ErrNilRand if rng is nil, ErrTooSmall if either dimension is
// below 3.
func Generate(width, height int, rng *rand.Rand) (*Grid, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if width < 3 || height < 3 {
		return nil, ErrTooSmall
	}

	// Carving requires odd dimensions; reduce and re-expand later.
	oddW, oddH := width, height
	if oddW%2 == 0 {
		oddW--
	}
	if oddH%2 == 0 {
		oddH--
	}

	g := newFilled(oddW, oddH)
	g.walls[1][1] = false
	g.carve(1, 1, rng)
	g.repair()

	if oddW != width || oddH != height {
		g = g.expand(width, height, rng)
		// Border passages may land beside walls only; stitch them in.
		g.repair()
	}

	return g, nil
}

// carve recursively clears corridors from (x, y): it shuffles the four
// two-cell jumps, and for each jump whose target is still a wall,
// clears the intermediate wall cell and the target, then recurses.
func (g *Grid) carve(x, y int, rng *rand.Rand) {
	jumps := [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}
	rng.Shuffle(len(jumps), func(i, j int) {
		jumps[i], jumps[j] = jumps[j], jumps[i]
	})

	for _, d := range jumps {
		nx, ny := x+d[0], y+d[1]
		if nx <= 0 || nx >= g.Width-1 || ny <= 0 || ny >= g.Height-1 {
			continue
		}
		if !g.walls[ny][nx] {
			continue
		}
		// Clear the wall between the current cell and the target.
		g.walls[y+d[1]/2][x+d[0]/2] = false
		g.walls[ny][nx] = false
		g.carve(nx, ny, rng)
	}
}

// expand copies the carved grid into a larger all-wall grid of the
// originally requested dimensions, then adds scattered passages along
// the re-grown border strips.
func (g *Grid) expand(width, height int, rng *rand.Rand) *Grid {
	out := newFilled(width, height)
	for y := 0; y < g.Height && y < height; y++ {
		for x := 0; x < g.Width && x < width; x++ {
			out.walls[y][x] = g.walls[y][x]
		}
	}

	if width > g.Width {
		// Extra passages punched eastwards from the old right border.
		for y := 1; y < g.Height && y < height; y += 2 {
			if rng.Float64() < extendProbability {
				out.walls[y][g.Width] = false
				if g.Width+1 < width {
					out.walls[y][g.Width+1] = false
				}
			}
		}
	}
	if height > g.Height {
		// Extra passages punched southwards from the old bottom border.
		for x := 1; x < g.Width && x < width; x += 2 {
			if rng.Float64() < extendProbability {
				out.walls[g.Height][x] = false
				if g.Height+1 < height {
					out.walls[g.Height+1][x] = false
				}
			}
		}
	}

	return out
}
