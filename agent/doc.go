// Package agent models a walker over a world.Graph: it holds a
// current position, an objective, an accumulated movement cost and
// the trail walked so far, collecting rewards into a per-agent
// overlay as it steps onto them.
//
// An Agent only moves along existing arcs (MoveTo rejects
// non-adjacent destinations) and pays the arc's cost, so replaying a
// search result through SimulatePath yields exactly the cost the
// search reported. Reset returns the agent to its starting state
// without touching the graph.
package agent
