package search

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/wayfind/heuristic"
	"github.com/katalvlaran/wayfind/world"
)

// Greedy runs greedy best-first search: the frontier is a priority
// queue ordered by h(n) alone, so the node that looks closest is
// always expanded next and accumulated cost never influences the
// order. The default estimator is heuristic.AggressiveGreedy, which
// steers hard toward nearby uncollected rewards; override it with
// WithHeuristic. No optimality guarantee — the attraction to rewards
// is the point.
func Greedy(g *world.Graph, start, goal world.NodeID, opts ...Option) (Result, error) {
	cfg, err := buildOptions(g, start, goal, opts)
	if err != nil {
		return Result{}, err
	}
	if start == goal {
		return trivialResult("Greedy", start), nil
	}
	began := time.Now()

	h := cfg.Heuristic
	if h == nil {
		h = heuristic.AggressiveGreedy
	}

	parent := make([]world.NodeID, g.NodeCount())
	visited := make([]bool, g.NodeCount())
	for i := range parent {
		parent[i] = world.None
	}

	pq := make(frontier, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, frontierNode{
		id:       start,
		priority: h(g, cfg.Rewards, start, goal),
		coord:    g.Node(start).Coord,
	})
	visited[start] = true

	var expanded int
	for pq.Len() > 0 && expanded < cfg.MaxExpansions {
		curr := heap.Pop(&pq).(frontierNode)
		expanded++

		if curr.id == goal {
			path := reconstruct(parent, curr.id)
			cost, err := pathCost(g, path)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Algorithm: "Greedy",
				Path:      path,
				Cost:      cost,
				Expanded:  expanded,
				Elapsed:   time.Since(began),
				Success:   true,
			}, nil
		}

		for _, arc := range g.Neighbors(curr.id) {
			if visited[arc.To] {
				continue
			}
			visited[arc.To] = true
			parent[arc.To] = curr.id
			heap.Push(&pq, frontierNode{
				id:       arc.To,
				g:        curr.g + arc.Cost,
				priority: h(g, cfg.Rewards, arc.To, goal),
				coord:    g.Node(arc.To).Coord,
			})
		}
	}

	return Result{
		Algorithm: "Greedy",
		Expanded:  expanded,
		Elapsed:   time.Since(began),
	}, nil
}
