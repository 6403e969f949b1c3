package search

import (
	"fmt"

	"github.com/katalvlaran/wayfind/world"
)

// buildOptions applies functional options over the defaults and
// validates the common inputs. A zero ceiling is legal (it fails the
// run immediately); a negative one is an error.
func buildOptions(g *world.Graph, start, goal world.NodeID, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, ErrGraphNil
	}
	if int(start) < 0 || int(start) >= g.NodeCount() {
		return cfg, fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if int(goal) < 0 || int(goal) >= g.NodeCount() {
		return cfg, fmt.Errorf("%w: goal %d", ErrNodeNotFound, goal)
	}
	if cfg.MaxExpansions < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrBadLimit, cfg.MaxExpansions)
	}
	return cfg, nil
}

// trivialResult is the common zero-length case: start equals goal, so
// every strategy returns a single-node path at zero cost with zero
// expansions.
func trivialResult(name string, start world.NodeID) Result {
	return Result{
		Algorithm: name,
		Path:      []world.NodeID{start},
		Success:   true,
	}
}

// reconstruct walks parent links from the terminal node back to the
// root, then reverses the collected nodes into start→goal order.
func reconstruct(parent []world.NodeID, terminal world.NodeID) []world.NodeID {
	var path []world.NodeID
	for id := terminal; id != world.None; id = parent[id] {
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// pathCost sums the actual arc costs along a reconstructed path.
// BFS, DFS and greedy use it because their frontier priority does not
// track true cost; A* reports its own g instead.
func pathCost(g *world.Graph, path []world.NodeID) (int, error) {
	var total int
	for i := 1; i < len(path); i++ {
		c, ok := g.ArcCost(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: hop %d→%d", ErrMissingArc, path[i-1], path[i])
		}
		total += c
	}
	return total, nil
}

// RewardsOnPath lists the reward nodes lying on path, in path order.
func RewardsOnPath(g *world.Graph, path []world.NodeID) []world.NodeID {
	var rewards []world.NodeID
	for _, id := range path {
		if g.Node(id).HasReward {
			rewards = append(rewards, id)
		}
	}
	return rewards
}

// RunAll executes all four strategies over the same graph and
// start/goal pair, in the fixed order BFS, DFS, Greedy, A*. Each run
// receives its own fresh reward overlay, so no strategy observes
// another's collections, and each successful Result has its Rewards
// field filled in.
func RunAll(g *world.Graph, start, goal world.NodeID, opts ...Option) ([]Result, error) {
	strategies := []func(*world.Graph, world.NodeID, world.NodeID, ...Option) (Result, error){
		BFS, DFS, Greedy, AStar,
	}

	results := make([]Result, 0, len(strategies))
	for _, run := range strategies {
		runOpts := opts
		if g != nil {
			runOpts = append(append([]Option{}, opts...),
				WithRewardState(world.NewRewardState(g)))
		}
		res, err := run(g, start, goal, runOpts...)
		if err != nil {
			return nil, err
		}
		if res.Success {
			res.Rewards = RewardsOnPath(g, res.Path)
		}
		results = append(results, res)
	}
	return results, nil
}
