package heuristic

import (
	"math"

	"github.com/katalvlaran/wayfind/biome"
	"github.com/katalvlaran/wayfind/world"
)

// Reward-adjustment tuning. A reward counts as "near" within
// bonusRadius Manhattan steps; the bonus depends on how much the
// visit would lengthen the direct route.
const (
	bonusRadius    = 3
	tightDetour    = 2
	looseDetour    = 4
	tightBonus     = -5.0
	looseBonus     = -2.0
	greedyRadius   = 3
	greedyDiscount = 0.5
)

// Func estimates the remaining cost from n to goal on g. rs carries
// the per-run reward-collection overlay and may be nil when the
// estimator ignores rewards.
type Func func(g *world.Graph, rs *world.RewardState, n, goal world.NodeID) float64

// Manhattan returns |dx| + |dy| between two coordinates.
func Manhattan(a, b world.Coord) int {
	return a.ManhattanTo(b)
}

// Euclidean returns the straight-line distance between two
// coordinates.
func Euclidean(a, b world.Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Terrain estimates the remaining cost as Manhattan distance times
// the globally cheapest terrain cost. The minimum is a fixed property
// of the terrain enumeration, not derived from g, which keeps the
// estimate a safe lower bound without scanning the node set.
// Admissible and consistent.
func Terrain(g *world.Graph, _ *world.RewardState, n, goal world.NodeID) float64 {
	d := g.Node(n).Coord.ManhattanTo(g.Node(goal).Coord)
	if d == 0 {
		return 0
	}
	return float64(d * biome.MinCost())
}

// rewardBonus sums the detour incentives for uncollected rewards
// within bonusRadius of n: a reward whose visit lengthens the direct
// n→goal route by at most tightDetour steps earns tightBonus, by at
// most looseDetour steps looseBonus. The sum is negative or zero.
func rewardBonus(g *world.Graph, rs *world.RewardState, n, goal world.NodeID) float64 {
	rewards := g.RewardNodes()
	if len(rewards) == 0 {
		return 0
	}
	nc := g.Node(n).Coord
	gc := g.Node(goal).Coord
	direct := nc.ManhattanTo(gc)

	var bonus float64
	for _, r := range rewards {
		if rs != nil && rs.Collected(r) {
			continue
		}
		rc := g.Node(r).Coord
		toReward := nc.ManhattanTo(rc)
		if toReward > bonusRadius {
			continue
		}
		detour := toReward + rc.ManhattanTo(gc) - direct
		switch {
		case detour <= tightDetour:
			bonus += tightBonus
		case detour <= looseDetour:
			bonus += looseBonus
		}
	}
	return bonus
}

// Combined is Terrain plus the reward detour bonus, clamped at zero.
//
// The clamp keeps the estimate non-negative but does not make it
// admissible: the bonus can undercut the true remaining cost in
// configurations where no cheap detour actually exists. Callers that
// need guaranteed A* optimality should use Terrain instead.
func Combined(g *world.Graph, rs *world.RewardState, n, goal world.NodeID) float64 {
	h := Terrain(g, nil, n, goal) + rewardBonus(g, rs, n, goal)
	if h < 0 {
		return 0
	}
	return h
}

// AggressiveGreedy ignores terrain. When the nearest uncollected
// reward lies within greedyRadius it returns half the distance to
// that reward, discarding goal distance entirely; otherwise it falls
// back to raw Manhattan distance to the goal. Deliberately
// inadmissible.
func AggressiveGreedy(g *world.Graph, rs *world.RewardState, n, goal world.NodeID) float64 {
	nc := g.Node(n).Coord
	base := float64(nc.ManhattanTo(g.Node(goal).Coord))

	nearest := math.MaxInt
	for _, r := range g.RewardNodes() {
		if rs != nil && rs.Collected(r) {
			continue
		}
		if d := nc.ManhattanTo(g.Node(r).Coord); d < nearest {
			nearest = d
		}
	}
	if nearest <= greedyRadius {
		return float64(nearest) * greedyDiscount
	}
	return base
}
