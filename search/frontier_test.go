package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/world"
)

func TestFrontier_OrdersByPriority(t *testing.T) {
	pq := make(frontier, 0, 4)
	heap.Init(&pq)
	heap.Push(&pq, frontierNode{id: 0, priority: 3, coord: world.Coord{X: 0, Y: 0}})
	heap.Push(&pq, frontierNode{id: 1, priority: 1, coord: world.Coord{X: 5, Y: 5}})
	heap.Push(&pq, frontierNode{id: 2, priority: 2, coord: world.Coord{X: 9, Y: 9}})

	require.Equal(t, world.NodeID(1), heap.Pop(&pq).(frontierNode).id)
	require.Equal(t, world.NodeID(2), heap.Pop(&pq).(frontierNode).id)
	require.Equal(t, world.NodeID(0), heap.Pop(&pq).(frontierNode).id)
}

func TestFrontier_TieBreaksOnCoordinate(t *testing.T) {
	// Equal priorities resolve to the lexicographically smaller
	// (x, y) coordinate, x first.
	pq := make(frontier, 0, 4)
	heap.Init(&pq)
	heap.Push(&pq, frontierNode{id: 0, priority: 7, coord: world.Coord{X: 2, Y: 1}})
	heap.Push(&pq, frontierNode{id: 1, priority: 7, coord: world.Coord{X: 1, Y: 9}})
	heap.Push(&pq, frontierNode{id: 2, priority: 7, coord: world.Coord{X: 1, Y: 2}})
	heap.Push(&pq, frontierNode{id: 3, priority: 7, coord: world.Coord{X: 2, Y: 0}})

	var got []world.NodeID
	for pq.Len() > 0 {
		got = append(got, heap.Pop(&pq).(frontierNode).id)
	}
	require.Equal(t, []world.NodeID{2, 1, 3, 0}, got)
}
