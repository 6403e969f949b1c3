package maze

// repair guarantees global connectivity of the passable region.
//
// It flood-fills from the first passable cell, then stitches every
// passable cell the fill did not reach: first by carving a straight
// corridor toward the nearest reachable passable cell in one of the
// four cardinal directions, and, for the rare cell with no reachable
// cell on any of its axes, by carving an L-shaped corridor to the
// flood-fill origin.
func (g *Grid) repair() {
	start, ok := g.firstPassable()
	if !ok {
		// No passages at all: open a single interior cell.
		g.walls[1][1] = false
		return
	}

	visited := g.floodFill(start)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.walls[y][x] || visited[y][x] {
				continue
			}
			if !g.stitch(x, y, visited) {
				g.carveCorridorTo(x, y, start, visited)
			}
		}
	}
}

// firstPassable returns the first passable cell in row-major order.
func (g *Grid) firstPassable() (Position, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.walls[y][x] {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// floodFill marks every passable cell reachable from start under
// 4-connectivity.
func (g *Grid) floodFill(start Position) [][]bool {
	visited := make([][]bool, g.Height)
	for y := range visited {
		visited[y] = make([]bool, g.Width)
	}
	queue := []Position{start}
	visited[start.Y][start.X] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
				continue
			}
			if visited[ny][nx] || g.walls[ny][nx] {
				continue
			}
			visited[ny][nx] = true
			queue = append(queue, Position{X: nx, Y: ny})
		}
	}

	return visited
}

// stitch carves a straight corridor from the isolated cell (x, y)
// toward the nearest reachable passable cell in one of the four
// cardinal directions. Carved cells and the origin are marked visited.
// Reports whether a reachable cell was found on any axis.
func (g *Grid) stitch(x, y int, visited [][]bool) bool {
	maxDist := g.Width
	if g.Height > maxDist {
		maxDist = g.Height
	}

	for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		for dist := 1; dist < maxDist; dist++ {
			nx, ny := x+d[0]*dist, y+d[1]*dist
			if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
				break
			}
			if g.walls[ny][nx] || !visited[ny][nx] {
				continue
			}
			// Found the reachable region: open every cell in between.
			for i := 1; i < dist; i++ {
				px, py := x+d[0]*i, y+d[1]*i
				g.walls[py][px] = false
				visited[py][px] = true
			}
			visited[y][x] = true
			return true
		}
	}

	return false
}

// carveCorridorTo opens an L-shaped corridor from (x, y) to the target
// cell, horizontal leg first, marking every opened cell visited. Used
// as the stitching fallback so repair can never leave a passable cell
// stranded.
func (g *Grid) carveCorridorTo(x, y int, target Position, visited [][]bool) {
	step := func(v, to int) int {
		if v < to {
			return v + 1
		}
		if v > to {
			return v - 1
		}
		return v
	}

	cx, cy := x, y
	visited[cy][cx] = true
	for cx != target.X {
		cx = step(cx, target.X)
		g.walls[cy][cx] = false
		visited[cy][cx] = true
	}
	for cy != target.Y {
		cy = step(cy, target.Y)
		g.walls[cy][cx] = false
		visited[cy][cx] = true
	}
}
