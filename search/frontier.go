package search

import "github.com/katalvlaran/wayfind/world"

// frontierNode is the shape shared by every strategy's frontier:
// the node, its accumulated cost g, its ordering priority and the
// coordinate used for deterministic tie-breaking. Parents live in a
// separate per-run array indexed by node.
type frontierNode struct {
	id       world.NodeID
	g        int
	priority float64
	coord    world.Coord
}

// frontier is a min-heap of frontierNode ordered by (priority, x, y):
// smaller priority wins, exact ties fall to the lexicographically
// smaller coordinate. The explicit comparator guarantees an identical
// expansion order across runs with identical input.
//
// Under A*'s lazy deletion the heap may hold stale duplicates for a
// node; the pop loop discards them against the best-known-g map.
type frontier []frontierNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].coord.Less(f[j].coord)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
