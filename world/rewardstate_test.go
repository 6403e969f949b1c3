package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/biome"
)

// rewardWorld is a 1×3 corridor with a reward on the middle cell.
func rewardWorld(t *testing.T) (*Graph, NodeID) {
	t.Helper()
	b := NewBuilder(3, 1)
	ids := make([]NodeID, 3)
	for x := 0; x < 3; x++ {
		id, err := b.AddNode(Coord{X: x, Y: 0}, biome.Solid)
		require.NoError(t, err)
		ids[x] = id
		if x > 0 {
			require.NoError(t, b.Connect(ids[x-1], id))
		}
	}
	require.NoError(t, b.SetReward(ids[1]))
	g, err := b.Build(ids[0], ids[2])
	require.NoError(t, err)
	return g, ids[1]
}

func TestRewardState_CollectOnce(t *testing.T) {
	g, mid := rewardWorld(t)
	rs := NewRewardState(g)

	require.False(t, rs.Collected(mid))
	require.True(t, rs.Collect(mid))
	require.True(t, rs.Collected(mid))
	require.False(t, rs.Collect(mid), "second collect must report false")
	require.Equal(t, 1, rs.CollectedCount())
}

func TestRewardState_NonRewardNode(t *testing.T) {
	g, _ := rewardWorld(t)
	rs := NewRewardState(g)
	require.False(t, rs.Collect(g.Start()))
	require.Equal(t, 0, rs.CollectedCount())
}

func TestRewardState_Reset(t *testing.T) {
	g, mid := rewardWorld(t)
	rs := NewRewardState(g)
	require.True(t, rs.Collect(mid))
	rs.Reset()
	require.False(t, rs.Collected(mid))
	require.Equal(t, 0, rs.CollectedCount())
	require.True(t, rs.Collect(mid), "collectable again after reset")
}

func TestRewardState_Remaining(t *testing.T) {
	g, mid := rewardWorld(t)
	rs := NewRewardState(g)
	require.Equal(t, []NodeID{mid}, rs.Remaining())
	rs.Collect(mid)
	require.Empty(t, rs.Remaining())
}

func TestRewardState_IndependentOverlays(t *testing.T) {
	g, mid := rewardWorld(t)
	a := NewRewardState(g)
	b := NewRewardState(g)
	require.True(t, a.Collect(mid))
	require.False(t, b.Collected(mid), "overlays must not share state")
	require.True(t, b.Collect(mid))
}
