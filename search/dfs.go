package search

import (
	"time"

	"github.com/katalvlaran/wayfind/world"
)

// DFS runs depth-first search from start to goal, exploring as deep
// as possible through a LIFO stack before backtracking. Neighbors are
// pushed in reverse adjacency order so the first-listed neighbor is
// explored first, keeping the traversal order stable across runs. The
// found path carries no optimality guarantee of any kind.
func DFS(g *world.Graph, start, goal world.NodeID, opts ...Option) (Result, error) {
	cfg, err := buildOptions(g, start, goal, opts)
	if err != nil {
		return Result{}, err
	}
	if start == goal {
		return trivialResult("DFS", start), nil
	}
	began := time.Now()

	parent := make([]world.NodeID, g.NodeCount())
	visited := make([]bool, g.NodeCount())
	for i := range parent {
		parent[i] = world.None
	}
	stack := []world.NodeID{start}
	visited[start] = true

	var expanded int
	for len(stack) > 0 && expanded < cfg.MaxExpansions {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		expanded++

		if curr == goal {
			path := reconstruct(parent, curr)
			cost, err := pathCost(g, path)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Algorithm: "DFS",
				Path:      path,
				Cost:      cost,
				Expanded:  expanded,
				Elapsed:   time.Since(began),
				Success:   true,
			}, nil
		}

		arcs := g.Neighbors(curr)
		for i := len(arcs) - 1; i >= 0; i-- {
			if to := arcs[i].To; !visited[to] {
				visited[to] = true
				parent[to] = curr
				stack = append(stack, to)
			}
		}
	}

	return Result{
		Algorithm: "DFS",
		Expanded:  expanded,
		Elapsed:   time.Since(began),
	}, nil
}
