package agent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/world"
)

// Sentinel errors for agent operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("agent: graph is nil")

	// ErrNodeNotFound is returned when a node ID is outside the graph.
	ErrNodeNotFound = errors.New("agent: node not found")

	// ErrNotAdjacent is returned when MoveTo targets a node with no
	// arc from the current position.
	ErrNotAdjacent = errors.New("agent: destination not adjacent")

	// ErrPathMismatch is returned when SimulatePath receives a path
	// that does not begin at the agent's starting position.
	ErrPathMismatch = errors.New("agent: path does not begin at start")
)

// Stats is a snapshot of an agent's progress.
type Stats struct {
	Position  world.Coord
	Objective world.Coord
	Cost      int
	Steps     int
	Collected int
	AtGoal    bool
}

// Agent walks a world.Graph arc by arc, accumulating cost and
// collecting rewards through its own overlay.
type Agent struct {
	g        *world.Graph
	start    world.NodeID
	goal     world.NodeID
	position world.NodeID
	trail    []world.NodeID
	cost     int
	rewards  *world.RewardState
}

// New places an agent at start with the given objective.
func New(g *world.Graph, start, goal world.NodeID) (*Agent, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if int(start) < 0 || int(start) >= g.NodeCount() {
		return nil, fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if int(goal) < 0 || int(goal) >= g.NodeCount() {
		return nil, fmt.Errorf("%w: goal %d", ErrNodeNotFound, goal)
	}
	a := &Agent{
		g:       g,
		start:   start,
		goal:    goal,
		rewards: world.NewRewardState(g),
	}
	a.Reset()
	return a, nil
}

// Position returns the agent's current node.
func (a *Agent) Position() world.NodeID { return a.position }

// Objective returns the agent's goal node.
func (a *Agent) Objective() world.NodeID { return a.goal }

// Cost returns the accumulated movement cost.
func (a *Agent) Cost() int { return a.cost }

// AtGoal reports whether the agent stands on its objective.
func (a *Agent) AtGoal() bool { return a.position == a.goal }

// Trail returns a copy of the nodes walked so far, starting position
// included.
func (a *Agent) Trail() []world.NodeID {
	out := make([]world.NodeID, len(a.trail))
	copy(out, a.trail)
	return out
}

// Rewards exposes the agent's reward overlay, for rendering the walk
// with collected rewards distinguished.
func (a *Agent) Rewards() *world.RewardState { return a.rewards }

// Collected returns the reward nodes picked up so far, in placement
// order.
func (a *Agent) Collected() []world.NodeID {
	var out []world.NodeID
	for _, id := range a.g.RewardNodes() {
		if a.rewards.Collected(id) {
			out = append(out, id)
		}
	}
	return out
}

// MoveTo steps the agent onto an adjacent node, paying the arc cost
// and collecting the destination's reward if one is still there. The
// collected flag reports whether a reward was picked up.
func (a *Agent) MoveTo(to world.NodeID) (collected bool, err error) {
	if int(to) < 0 || int(to) >= a.g.NodeCount() {
		return false, fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	cost, ok := a.g.ArcCost(a.position, to)
	if !ok {
		return false, fmt.Errorf("%w: %s → %s", ErrNotAdjacent,
			a.g.Node(a.position).Coord, a.g.Node(to).Coord)
	}
	a.position = to
	a.trail = append(a.trail, to)
	a.cost += cost
	return a.rewards.Collect(to), nil
}

// Reset returns the agent to its starting position with an empty
// trail, zero cost and a cleared reward overlay. The graph itself is
// untouched.
func (a *Agent) Reset() {
	a.position = a.start
	a.trail = append(a.trail[:0], a.start)
	a.cost = 0
	a.rewards.Reset()
}

// SimulatePath resets the agent and replays a full path through
// MoveTo. The path must begin at the agent's starting position and
// every consecutive pair must be adjacent; on failure the agent is
// left wherever the replay stopped.
func (a *Agent) SimulatePath(path []world.NodeID) error {
	if len(path) == 0 || path[0] != a.start {
		return ErrPathMismatch
	}
	a.Reset()
	for _, id := range path[1:] {
		if _, err := a.MoveTo(id); err != nil {
			return err
		}
	}
	return nil
}

// Stats snapshots the agent's progress.
func (a *Agent) Stats() Stats {
	return Stats{
		Position:  a.g.Node(a.position).Coord,
		Objective: a.g.Node(a.goal).Coord,
		Cost:      a.cost,
		Steps:     len(a.trail) - 1,
		Collected: a.rewards.CollectedCount(),
		AtGoal:    a.AtGoal(),
	}
}

// String renders a one-line status like
// "Agent[pos: (2, 3), goal: (7, 5), cost: 14]".
func (a *Agent) String() string {
	return fmt.Sprintf("Agent[pos: %s, goal: %s, cost: %d]",
		a.g.Node(a.position).Coord, a.g.Node(a.goal).Coord, a.cost)
}
