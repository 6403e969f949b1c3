package search

import (
	"container/heap"
	"math"
	"time"

	"github.com/katalvlaran/wayfind/heuristic"
	"github.com/katalvlaran/wayfind/world"
)

// AStar runs A* from start to goal: the frontier is a priority queue
// ordered by f(n) = g(n) + h(n). The default estimator is
// heuristic.Terrain, which is admissible and consistent, so the
// returned path is cost-optimal.
//
// Relaxation uses lazy deletion instead of decrease-key: finding a
// cheaper route to a node pushes a fresh entry, and the stale one is
// discarded on pop by comparison against the best-known-g map —
// without counting an expansion. The reported Cost is the tracked g
// of the goal entry, not a recomputation.
func AStar(g *world.Graph, start, goal world.NodeID, opts ...Option) (Result, error) {
	cfg, err := buildOptions(g, start, goal, opts)
	if err != nil {
		return Result{}, err
	}
	if start == goal {
		return trivialResult("A*", start), nil
	}
	began := time.Now()

	h := cfg.Heuristic
	if h == nil {
		h = heuristic.Terrain
	}

	parent := make([]world.NodeID, g.NodeCount())
	bestG := make([]int, g.NodeCount())
	for i := range parent {
		parent[i] = world.None
		bestG[i] = math.MaxInt
	}
	bestG[start] = 0

	pq := make(frontier, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, frontierNode{
		id:       start,
		priority: h(g, cfg.Rewards, start, goal),
		coord:    g.Node(start).Coord,
	})

	var expanded int
	for pq.Len() > 0 && expanded < cfg.MaxExpansions {
		curr := heap.Pop(&pq).(frontierNode)

		// Stale entry: a cheaper route to this node was already
		// relaxed. Skip without counting the expansion.
		if curr.g > bestG[curr.id] {
			continue
		}
		expanded++

		if curr.id == goal {
			return Result{
				Algorithm: "A*",
				Path:      reconstruct(parent, curr.id),
				Cost:      curr.g,
				Expanded:  expanded,
				Elapsed:   time.Since(began),
				Success:   true,
			}, nil
		}

		for _, arc := range g.Neighbors(curr.id) {
			newG := curr.g + arc.Cost
			if newG >= bestG[arc.To] {
				continue
			}
			bestG[arc.To] = newG
			parent[arc.To] = curr.id
			heap.Push(&pq, frontierNode{
				id:       arc.To,
				g:        newG,
				priority: float64(newG) + h(g, cfg.Rewards, arc.To, goal),
				coord:    g.Node(arc.To).Coord,
			})
		}
	}

	return Result{
		Algorithm: "A*",
		Expanded:  expanded,
		Elapsed:   time.Since(began),
	}, nil
}
