// Package world defines the node, arc, and identifier types shared by
// graph assembly, reward state, and the search engine.
package world

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/biome"
)

// Sentinel errors for world construction and generation.
var (
	// ErrOptionViolation indicates an invalid generation option value.
	ErrOptionViolation = errors.New("world: invalid option supplied")

	// ErrNoPath indicates no path exists between the chosen start and
	// goal; generation fails rather than producing an unusable world.
	ErrNoPath = errors.New("world: no path between start and goal")

	// ErrDuplicateNode indicates a builder coordinate was added twice.
	ErrDuplicateNode = errors.New("world: node already exists at coordinate")

	// ErrUnknownNode indicates a node id outside the builder's range.
	ErrUnknownNode = errors.New("world: unknown node id")

	// ErrEmptyGraph indicates a build was attempted with no nodes.
	ErrEmptyGraph = errors.New("world: graph has no nodes")
)

// NodeID addresses a node inside a Graph's contiguous node store.
type NodeID int32

// None is the null NodeID, returned by lookups that find nothing.
const None NodeID = -1

// Coord is an integer cell coordinate. Two nodes are equal iff their
// coordinates match; terrain and reward placement are attributes, not
// identity.
type Coord struct {
	X, Y int
}

// ManhattanTo returns the Manhattan distance |dx| + |dy| to o.
func (c Coord) ManhattanTo(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Less orders coordinates lexicographically by (X, Y), the tie-break
// order used by priority frontiers.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Node is a world cell: its coordinate, its terrain kind, and whether
// a reward was placed on it. Collection state lives in RewardState,
// not on the node, so the graph stays immutable after construction.
type Node struct {
	Coord
	Terrain   biome.Terrain
	HasReward bool
}

// Arc is one directed adjacency entry: the destination node and the
// cost of entering it (the destination terrain's movement cost).
type Arc struct {
	To   NodeID
	Cost int
}

// neighborOffsets is the fixed 4-connectivity order used everywhere a
// node's neighbors are enumerated; keeping one order makes traversal
// results reproducible.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
