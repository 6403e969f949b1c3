package search

import (
	"time"

	"github.com/katalvlaran/wayfind/world"
)

// BFS runs breadth-first search from start to goal. It explores the
// graph level by level through a FIFO queue, marking nodes visited on
// enqueue, and therefore finds the hop-shortest path regardless of
// arc costs. The reported Cost is recomputed by summing the actual
// arc costs along the reconstructed route.
func BFS(g *world.Graph, start, goal world.NodeID, opts ...Option) (Result, error) {
	cfg, err := buildOptions(g, start, goal, opts)
	if err != nil {
		return Result{}, err
	}
	if start == goal {
		return trivialResult("BFS", start), nil
	}
	began := time.Now()

	parent := make([]world.NodeID, g.NodeCount())
	visited := make([]bool, g.NodeCount())
	for i := range parent {
		parent[i] = world.None
	}
	queue := []world.NodeID{start}
	visited[start] = true

	var expanded int
	for len(queue) > 0 && expanded < cfg.MaxExpansions {
		curr := queue[0]
		queue = queue[1:]
		expanded++

		if curr == goal {
			path := reconstruct(parent, curr)
			cost, err := pathCost(g, path)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Algorithm: "BFS",
				Path:      path,
				Cost:      cost,
				Expanded:  expanded,
				Elapsed:   time.Since(began),
				Success:   true,
			}, nil
		}

		for _, arc := range g.Neighbors(curr) {
			if !visited[arc.To] {
				visited[arc.To] = true
				parent[arc.To] = curr
				queue = append(queue, arc.To)
			}
		}
	}

	return Result{
		Algorithm: "BFS",
		Expanded:  expanded,
		Elapsed:   time.Since(began),
	}, nil
}
