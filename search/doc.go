// Package search implements the four route-finding strategies over a
// world.Graph: breadth-first, depth-first, greedy best-first, and A*.
//
// What:
//
// All four share one frontier-node shape (node, accumulated cost,
// priority, parent) and one termination rule: report failure once the
// expanded-node count reaches a configurable ceiling, report success
// the instant the popped node is the goal. They differ only in
// frontier discipline and priority:
//
//	BFS     FIFO queue,      level order,        hop-shortest path
//	DFS     LIFO stack,      deepest first,      no guarantee
//	Greedy  priority queue,  h(n) alone,         fast, no optimality
//	A*      priority queue,  f(n) = g(n) + h(n), optimal for admissible h
//
// Priority ties break on the smaller (x, y) coordinate, so runs over
// identical input expand nodes in an identical order.
//
// A* keeps a best-known-g map and tolerates stale frontier entries,
// discarding them on pop without counting an expansion (lazy deletion
// instead of decrease-key). Its reported cost is the tracked g; the
// other three recompute path cost by summing the actual arc costs of
// the reconstructed route.
//
// Why:
//
// A single Result shape per run (path, cost, expansions, elapsed,
// success, rewards on the path) lets callers compare strategies over
// the same world without caring which discipline produced it; RunAll
// does exactly that, giving each algorithm a fresh reward overlay.
//
// Errors:
//
//   - ErrGraphNil      — nil graph pointer.
//   - ErrNodeNotFound  — start or goal outside the node set.
//   - ErrBadLimit      — negative expansion ceiling.
//
// Complexity: BFS/DFS are O(V + E); the priority-queue variants are
// O((V + E) log V) with O(E) worst-case heap entries under lazy
// deletion.
package search
