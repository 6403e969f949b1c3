package world

// Graph is an immutable weighted world graph. Nodes live in a
// contiguous slice addressed by NodeID; adjacency is an ordered list
// of arcs per node, each arc weighted with the destination terrain's
// movement cost.
//
// A Graph is safe for concurrent readers. Reward collection state is
// deliberately not stored here — see RewardState.
type Graph struct {
	width, height int
	nodes         []Node
	index         map[Coord]NodeID
	adj           [][]Arc
	rewards       []NodeID
	start, goal   NodeID
	guaranteed    []NodeID
}

// Width returns the horizontal extent of the world in cells.
func (g *Graph) Width() int { return g.width }

// Height returns the vertical extent of the world in cells.
func (g *Graph) Height() int { return g.height }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node addressed by id. It panics for ids outside
// [0, NodeCount), like any slice access.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// At returns the id of the node at coordinate c, or (None, false) if
// no node occupies that cell (a wall).
func (g *Graph) At(c Coord) (NodeID, bool) {
	id, ok := g.index[c]
	if !ok {
		return None, false
	}
	return id, true
}

// Nodes returns a copy of the full node list in id order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Neighbors returns a copy of the ordered arc list of id: each entry
// names an adjacent node and the cost of entering it.
func (g *Graph) Neighbors(id NodeID) []Arc {
	arcs := g.adj[id]
	out := make([]Arc, len(arcs))
	copy(out, arcs)
	return out
}

// Degree returns the number of arcs leaving id without copying.
func (g *Graph) Degree(id NodeID) int { return len(g.adj[id]) }

// ArcCost returns the cost of the arc from→to and whether such an arc
// exists.
func (g *Graph) ArcCost(from, to NodeID) (int, bool) {
	for _, a := range g.adj[from] {
		if a.To == to {
			return a.Cost, true
		}
	}
	return 0, false
}

// Start returns the generated start node id (None for built graphs
// without one).
func (g *Graph) Start() NodeID { return g.start }

// Goal returns the generated goal node id (None for built graphs
// without one).
func (g *Graph) Goal() NodeID { return g.goal }

// RewardNodes returns a copy of the ids of all nodes carrying a
// reward, in placement order.
func (g *Graph) RewardNodes() []NodeID {
	out := make([]NodeID, len(g.rewards))
	copy(out, g.rewards)
	return out
}

// GuaranteedPath returns a copy of the hop-shortest start→goal path
// computed during generation, or nil for built graphs without one.
func (g *Graph) GuaranteedPath() []NodeID {
	if g.guaranteed == nil {
		return nil
	}
	out := make([]NodeID, len(g.guaranteed))
	copy(out, g.guaranteed)
	return out
}

// PathBetween returns a hop-shortest path from→to found by
// breadth-first traversal in adjacency order, or nil if to is
// unreachable. The path includes both endpoints.
func (g *Graph) PathBetween(from, to NodeID) []NodeID {
	if from == to {
		return []NodeID{from}
	}

	parent := make([]NodeID, len(g.nodes))
	for i := range parent {
		parent[i] = None
	}
	parent[from] = from

	queue := []NodeID{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range g.adj[cur] {
			if parent[a.To] != None {
				continue
			}
			parent[a.To] = cur
			if a.To == to {
				return unwind(parent, to)
			}
			queue = append(queue, a.To)
		}
	}

	return nil
}

// unwind walks the parent links from dest back to the root and
// reverses the collected ids.
func unwind(parent []NodeID, dest NodeID) []NodeID {
	var path []NodeID
	for cur := dest; ; {
		path = append(path, cur)
		if parent[cur] == cur {
			break
		}
		cur = parent[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ValidateConnectivity reports whether every node is reachable from an
// arbitrary root by breadth-first traversal. Empty graphs are not
// connected.
func (g *Graph) ValidateConnectivity() bool {
	if len(g.nodes) == 0 {
		return false
	}

	seen := make([]bool, len(g.nodes))
	seen[0] = true
	queue := []NodeID{0}
	count := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, a := range g.adj[cur] {
			if !seen[a.To] {
				seen[a.To] = true
				count++
				queue = append(queue, a.To)
			}
		}
	}

	return count == len(g.nodes)
}
