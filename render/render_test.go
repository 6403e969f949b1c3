package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/biome"
	"github.com/katalvlaran/wayfind/world"
)

// tinyWorld is a 3×2 area with a walled bottom-left corner:
//
//	. $ ^
//	# # &
func tinyWorld(t *testing.T) (*world.Graph, []world.NodeID) {
	t.Helper()
	b := world.NewBuilder(3, 2)
	plan := []struct {
		c world.Coord
		t biome.Terrain
	}{
		{world.Coord{X: 0, Y: 0}, biome.Solid},
		{world.Coord{X: 1, Y: 0}, biome.Sandy},
		{world.Coord{X: 2, Y: 0}, biome.Rocky},
		{world.Coord{X: 2, Y: 1}, biome.Swamp},
	}
	ids := make([]world.NodeID, len(plan))
	for i, p := range plan {
		id, err := b.AddNode(p.c, p.t)
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, b.Connect(ids[0], ids[1]))
	require.NoError(t, b.Connect(ids[1], ids[2]))
	require.NoError(t, b.Connect(ids[2], ids[3]))
	require.NoError(t, b.SetReward(ids[1]))
	g, err := b.Build(ids[0], ids[3])
	require.NoError(t, err)
	return g, ids
}

func TestMap_Plain(t *testing.T) {
	g, _ := tinyWorld(t)
	want := strings.Join([]string{
		"    0 1 2",
		"   ------",
		" 0|. $ ^",
		" 1|# # &",
	}, "\n")
	require.Equal(t, want, Map(g))
}

func TestMap_Path(t *testing.T) {
	g, ids := tinyWorld(t)
	// Start and goal override terrain; the reward interior cell keeps
	// its '$'.
	out := Map(g, WithPath([]world.NodeID{ids[0], ids[1], ids[2], ids[3]}))
	want := strings.Join([]string{
		"    0 1 2",
		"   ------",
		" 0|S $ .",
		" 1|# # G",
	}, "\n")
	require.Equal(t, want, out)
}

func TestMap_AgentAndHighlight(t *testing.T) {
	g, ids := tinyWorld(t)
	out := Map(g,
		WithPath([]world.NodeID{ids[0], ids[1], ids[2], ids[3]}),
		WithAgentAt(ids[2]),
		WithHighlight([]world.NodeID{ids[3]}),
	)
	want := strings.Join([]string{
		"    0 1 2",
		"   ------",
		" 0|S $ A",
		" 1|# # +",
	}, "\n")
	require.Equal(t, want, out)
}

func TestMap_CollectedReward(t *testing.T) {
	g, ids := tinyWorld(t)
	rs := world.NewRewardState(g)
	require.True(t, rs.Collect(ids[1]))
	out := Map(g, WithRewardState(rs))
	require.Contains(t, out, "*")
	require.NotContains(t, out, "$")
}

func TestMap_NilAndEmpty(t *testing.T) {
	require.Equal(t, "empty graph", Map(nil))
}

func TestMap_Legend(t *testing.T) {
	g, _ := tinyWorld(t)
	out := Map(g, WithLegend())
	require.Contains(t, out, "=== LEGEND ===")
	require.Contains(t, out, "S = start")
	for _, k := range biome.Kinds() {
		require.Contains(t, out, k.String())
	}
}

func TestLegend_ListsAllTerrains(t *testing.T) {
	legend := Legend()
	require.Contains(t, legend, "Solid (1)")
	require.Contains(t, legend, "Sandy (4)")
	require.Contains(t, legend, "Rocky (10)")
	require.Contains(t, legend, "Swamp (20)")
}
