package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/biome"
	"github.com/katalvlaran/wayfind/world"
)

// runner is the common signature of all four strategies.
type runner func(*world.Graph, world.NodeID, world.NodeID, ...Option) (Result, error)

var allStrategies = []struct {
	name string
	run  runner
}{
	{"BFS", BFS},
	{"DFS", DFS},
	{"Greedy", Greedy},
	{"A*", AStar},
}

// openGrid builds a fully connected w×h grid (every cell passable)
// with the given terrain rows, returning the node at each (x, y).
func openGrid(t *testing.T, terrain [][]biome.Terrain) (*world.Graph, [][]world.NodeID) {
	t.Helper()
	h := len(terrain)
	w := len(terrain[0])
	b := world.NewBuilder(w, h)
	ids := make([][]world.NodeID, h)
	for y := 0; y < h; y++ {
		ids[y] = make([]world.NodeID, w)
		for x := 0; x < w; x++ {
			id, err := b.AddNode(world.Coord{X: x, Y: y}, terrain[y][x])
			require.NoError(t, err)
			ids[y][x] = id
			if x > 0 {
				require.NoError(t, b.Connect(ids[y][x-1], id))
			}
			if y > 0 {
				require.NoError(t, b.Connect(ids[y-1][x], id))
			}
		}
	}
	g, err := b.Build(ids[0][0], ids[h-1][w-1])
	require.NoError(t, err)
	return g, ids
}

func solidRows(w, h int) [][]biome.Terrain {
	rows := make([][]biome.Terrain, h)
	for y := range rows {
		rows[y] = make([]biome.Terrain, w)
	}
	return rows
}

func TestPathCost_MissingArc(t *testing.T) {
	g, ids := openGrid(t, solidRows(3, 3))

	// A proper corridor sums normally.
	cost, err := pathCost(g, []world.NodeID{ids[0][0], ids[0][1], ids[0][2]})
	require.NoError(t, err)
	require.Equal(t, 2, cost)

	// A diagonal hop has no arc: the walk reports ErrMissingArc
	// instead of a bogus total.
	_, err = pathCost(g, []world.NodeID{ids[0][0], ids[1][1]})
	require.ErrorIs(t, err, ErrMissingArc)
}

func TestSearch_Validation(t *testing.T) {
	g, ids := openGrid(t, solidRows(2, 2))
	for _, s := range allStrategies {
		t.Run(s.name, func(t *testing.T) {
			_, err := s.run(nil, 0, 0)
			require.ErrorIs(t, err, ErrGraphNil)

			_, err = s.run(g, world.NodeID(99), ids[0][0])
			require.ErrorIs(t, err, ErrNodeNotFound)

			_, err = s.run(g, ids[0][0], world.NodeID(-2))
			require.ErrorIs(t, err, ErrNodeNotFound)

			_, err = s.run(g, ids[0][0], ids[1][1], WithMaxExpansions(-1))
			require.ErrorIs(t, err, ErrBadLimit)
		})
	}
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g, ids := openGrid(t, solidRows(3, 3))
	for _, s := range allStrategies {
		t.Run(s.name, func(t *testing.T) {
			res, err := s.run(g, ids[1][1], ids[1][1])
			require.NoError(t, err)
			require.True(t, res.Success)
			require.Equal(t, []world.NodeID{ids[1][1]}, res.Path)
			require.Zero(t, res.Cost)
			require.Zero(t, res.Expanded)
		})
	}
}

func TestSearch_ZeroCeilingFailsImmediately(t *testing.T) {
	g, ids := openGrid(t, solidRows(3, 3))
	for _, s := range allStrategies {
		t.Run(s.name, func(t *testing.T) {
			res, err := s.run(g, ids[0][0], ids[2][2], WithMaxExpansions(0))
			require.NoError(t, err)
			require.False(t, res.Success)
			require.Empty(t, res.Path)
			require.Zero(t, res.Expanded)
		})
	}
}

func TestSearch_DirectionalCosts(t *testing.T) {
	// Two adjacent cells, Solid at (0,0) and Sandy at (1,0): entering
	// the Sandy cell costs 4, returning to the Solid cell costs 1.
	rows := [][]biome.Terrain{{biome.Solid, biome.Sandy}}
	g, ids := openGrid(t, rows)

	res, err := BFS(g, ids[0][0], ids[0][1])
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 4, res.Cost)

	res, err = BFS(g, ids[0][1], ids[0][0])
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 1, res.Cost)
}

func TestBFS_HopShortest(t *testing.T) {
	g, err := world.Generate(31)
	require.NoError(t, err)

	res, err := BFS(g, g.Start(), g.Goal())
	require.NoError(t, err)
	require.True(t, res.Success)
	// The guaranteed path is also hop-shortest; lengths must agree.
	require.Len(t, res.Path, len(g.GuaranteedPath()))
}

func TestSearch_PathValidity(t *testing.T) {
	g, err := world.Generate(42)
	require.NoError(t, err)

	for _, s := range allStrategies {
		t.Run(s.name, func(t *testing.T) {
			res, err := s.run(g, g.Start(), g.Goal())
			require.NoError(t, err)
			require.True(t, res.Success)
			require.Equal(t, g.Start(), res.Path[0])
			require.Equal(t, g.Goal(), res.Path[len(res.Path)-1])

			var total int
			for i := 1; i < len(res.Path); i++ {
				c, ok := g.ArcCost(res.Path[i-1], res.Path[i])
				require.True(t, ok, "hop %d not adjacent", i)
				require.Equal(t, g.Node(res.Path[i]).Terrain.Cost(), c)
				total += c
			}
			require.Equal(t, total, res.Cost)
		})
	}
}

// bruteForceMinCost enumerates every simple path from curr to goal
// and returns the cheapest total cost. Exponential; small grids only.
func bruteForceMinCost(g *world.Graph, curr, goal world.NodeID, seen map[world.NodeID]bool) (int, bool) {
	if curr == goal {
		return 0, true
	}
	seen[curr] = true
	defer delete(seen, curr)

	best, found := 0, false
	for _, arc := range g.Neighbors(curr) {
		if seen[arc.To] {
			continue
		}
		rest, ok := bruteForceMinCost(g, arc.To, goal, seen)
		if ok && (!found || arc.Cost+rest < best) {
			best, found = arc.Cost+rest, true
		}
	}
	return best, found
}

func TestAStar_Optimal(t *testing.T) {
	rows := [][]biome.Terrain{
		{biome.Solid, biome.Swamp, biome.Solid, biome.Sandy},
		{biome.Sandy, biome.Rocky, biome.Sandy, biome.Solid},
		{biome.Solid, biome.Solid, biome.Swamp, biome.Solid},
	}
	g, ids := openGrid(t, rows)
	start, goal := ids[0][0], ids[2][3]

	want, ok := bruteForceMinCost(g, start, goal, map[world.NodeID]bool{})
	require.True(t, ok)

	res, err := AStar(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, want, res.Cost)
}

func TestAStar_OptimalOnGeneratedWorlds(t *testing.T) {
	for _, seed := range []int64{3, 8, 21} {
		g, err := world.Generate(seed, world.WithDimensions(9, 7), world.WithMinNodes(0), world.WithMinRewards(1))
		require.NoError(t, err, "seed %d", seed)

		want, ok := bruteForceMinCost(g, g.Start(), g.Goal(), map[world.NodeID]bool{})
		require.True(t, ok)

		res, err := AStar(g, g.Start(), g.Goal())
		require.NoError(t, err)
		require.True(t, res.Success)
		require.Equal(t, want, res.Cost, "seed %d", seed)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g, err := world.Generate(99)
	require.NoError(t, err)

	for _, s := range allStrategies {
		t.Run(s.name, func(t *testing.T) {
			a, err := s.run(g, g.Start(), g.Goal())
			require.NoError(t, err)
			b, err := s.run(g, g.Start(), g.Goal())
			require.NoError(t, err)
			require.Equal(t, a.Path, b.Path)
			require.Equal(t, a.Cost, b.Cost)
			require.Equal(t, a.Expanded, b.Expanded)
		})
	}
}

func TestGreedy_ConvergesFasterThanBFS(t *testing.T) {
	// On an open reward-free grid the aggressive heuristic degrades
	// to plain goal distance, so greedy beelines while BFS floods.
	g, ids := openGrid(t, solidRows(7, 7))
	start, goal := ids[0][0], ids[6][6]

	greedy, err := Greedy(g, start, goal)
	require.NoError(t, err)
	require.True(t, greedy.Success)

	bfs, err := BFS(g, start, goal)
	require.NoError(t, err)
	require.True(t, bfs.Success)

	require.Less(t, greedy.Expanded, bfs.Expanded)
}

func TestGreedy_CustomHeuristic(t *testing.T) {
	g, ids := openGrid(t, solidRows(4, 4))
	var calls int
	h := func(g *world.Graph, _ *world.RewardState, n, goal world.NodeID) float64 {
		calls++
		return float64(g.Node(n).Coord.ManhattanTo(g.Node(goal).Coord))
	}
	res, err := Greedy(g, ids[0][0], ids[3][3], WithHeuristic(h))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Positive(t, calls)
}

func TestRunAll(t *testing.T) {
	g, err := world.Generate(7)
	require.NoError(t, err)

	results, err := RunAll(g, g.Start(), g.Goal())
	require.NoError(t, err)
	require.Len(t, results, 4)
	require.Equal(t, []string{"BFS", "DFS", "Greedy", "A*"},
		[]string{results[0].Algorithm, results[1].Algorithm, results[2].Algorithm, results[3].Algorithm})

	var astar, bfs Result
	for _, res := range results {
		require.True(t, res.Success, res.Algorithm)
		require.Equal(t, RewardsOnPath(g, res.Path), res.Rewards)
		switch res.Algorithm {
		case "A*":
			astar = res
		case "BFS":
			bfs = res
		}
	}
	// A* never pays more than any other strategy's route.
	for _, res := range results {
		require.LessOrEqual(t, astar.Cost, res.Cost, res.Algorithm)
	}
	require.NotZero(t, bfs.Expanded)
}

func TestRewardsOnPath(t *testing.T) {
	b := world.NewBuilder(3, 1)
	var ids []world.NodeID
	for x := 0; x < 3; x++ {
		id, err := b.AddNode(world.Coord{X: x, Y: 0}, biome.Solid)
		require.NoError(t, err)
		ids = append(ids, id)
		if x > 0 {
			require.NoError(t, b.Connect(ids[x-1], id))
		}
	}
	require.NoError(t, b.SetReward(ids[1]))
	g, err := b.Build(ids[0], ids[2])
	require.NoError(t, err)

	require.Equal(t, []world.NodeID{ids[1]}, RewardsOnPath(g, ids))
	require.Empty(t, RewardsOnPath(g, []world.NodeID{ids[0], ids[2]}))
}
