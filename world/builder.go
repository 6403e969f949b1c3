package world

import (
	"fmt"

	"github.com/katalvlaran/wayfind/biome"
)

// Builder assembles a Graph node by node. Generate uses it internally;
// it is exported for tests and callers that bring their own topology.
//
// Arc costs are derived automatically: connecting a and b adds the arc
// a→b at b's terrain cost and the arc b→a at a's terrain cost.
type Builder struct {
	width, height int
	nodes         []Node
	index         map[Coord]NodeID
	adj           [][]Arc
	rewards       []NodeID
}

// NewBuilder returns an empty Builder for a width×height world.
func NewBuilder(width, height int) *Builder {
	return &Builder{
		width:  width,
		height: height,
		index:  make(map[Coord]NodeID),
	}
}

// AddNode creates a node at c with the given terrain and returns its
// id. Returns ErrDuplicateNode if c is already occupied.
func (b *Builder) AddNode(c Coord, t biome.Terrain) (NodeID, error) {
	if _, ok := b.index[c]; ok {
		return None, fmt.Errorf("%w: %s", ErrDuplicateNode, c)
	}
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Coord: c, Terrain: t})
	b.index[c] = id
	b.adj = append(b.adj, nil)
	return id, nil
}

// NodeAt returns the id of the node at c, or (None, false).
func (b *Builder) NodeAt(c Coord) (NodeID, bool) {
	id, ok := b.index[c]
	if !ok {
		return None, false
	}
	return id, true
}

// Node returns the node addressed by id.
func (b *Builder) Node(id NodeID) Node { return b.nodes[id] }

// NodeCount returns the number of nodes added so far.
func (b *Builder) NodeCount() int { return len(b.nodes) }

// Connect links u and v bidirectionally. The u→v arc costs v's
// terrain, the v→u arc costs u's terrain. Connecting an already
// connected pair is a no-op. Returns ErrUnknownNode for ids outside
// the builder's range.
func (b *Builder) Connect(u, v NodeID) error {
	if !b.valid(u) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, u)
	}
	if !b.valid(v) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, v)
	}
	if b.connected(u, v) {
		return nil
	}
	b.adj[u] = append(b.adj[u], Arc{To: v, Cost: b.nodes[v].Terrain.Cost()})
	b.adj[v] = append(b.adj[v], Arc{To: u, Cost: b.nodes[u].Terrain.Cost()})
	return nil
}

// SetReward marks the node as carrying a reward. Idempotent.
// Returns ErrUnknownNode for ids outside the builder's range.
func (b *Builder) SetReward(id NodeID) error {
	if !b.valid(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if b.nodes[id].HasReward {
		return nil
	}
	b.nodes[id].HasReward = true
	b.rewards = append(b.rewards, id)
	return nil
}

// PathBetween returns a hop-shortest path from→to over the arcs added
// so far, or nil if unreachable. Used by reward placement before the
// graph is sealed.
func (b *Builder) PathBetween(from, to NodeID) []NodeID {
	g := Graph{nodes: b.nodes, adj: b.adj}
	return g.PathBetween(from, to)
}

// Build seals the builder into an immutable Graph with the given start
// and goal, computing the guaranteed hop-shortest path between them.
//
// Returns ErrEmptyGraph if no nodes were added, ErrUnknownNode for bad
// endpoint ids, and ErrNoPath if the goal is unreachable from the
// start. The builder must not be used after a successful Build.
func (b *Builder) Build(start, goal NodeID) (*Graph, error) {
	if len(b.nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	if !b.valid(start) {
		return nil, fmt.Errorf("%w: start %d", ErrUnknownNode, start)
	}
	if !b.valid(goal) {
		return nil, fmt.Errorf("%w: goal %d", ErrUnknownNode, goal)
	}

	g := &Graph{
		width:   b.width,
		height:  b.height,
		nodes:   b.nodes,
		index:   b.index,
		adj:     b.adj,
		rewards: b.rewards,
		start:   start,
		goal:    goal,
	}
	g.guaranteed = g.PathBetween(start, goal)
	if g.guaranteed == nil {
		return nil, fmt.Errorf("%w: %s → %s",
			ErrNoPath, b.nodes[start].Coord, b.nodes[goal].Coord)
	}

	return g, nil
}

func (b *Builder) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(b.nodes)
}

func (b *Builder) connected(u, v NodeID) bool {
	for _, a := range b.adj[u] {
		if a.To == v {
			return true
		}
	}
	return false
}
