package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfind/biome"
	"github.com/katalvlaran/wayfind/world"
)

// Fixed map glyphs; terrain cells use biome symbols.
const (
	wallSymbol      = '#'
	rewardSymbol    = '$'
	collectedSymbol = '*'
	pathSymbol      = '.'
	startSymbol     = 'S'
	goalSymbol      = 'G'
	agentSymbol     = 'A'
	highlightSymbol = '+'
)

// Options holds the optional map decorations.
type Options struct {
	path      []world.NodeID
	highlight []world.NodeID
	agentAt   world.NodeID
	rewards   *world.RewardState
	legend    bool
}

// Option decorates a rendered map via functional arguments.
type Option func(*Options)

// WithPath overlays a route: its endpoints render as 'S' and 'G',
// interior cells as '.' unless they carry a reward.
func WithPath(path []world.NodeID) Option {
	return func(o *Options) { o.path = path }
}

// WithHighlight marks specific nodes with '+', overriding everything
// else at those cells.
func WithHighlight(nodes []world.NodeID) Option {
	return func(o *Options) { o.highlight = nodes }
}

// WithAgentAt marks the agent's position with 'A'.
func WithAgentAt(id world.NodeID) Option {
	return func(o *Options) { o.agentAt = id }
}

// WithRewardState distinguishes collected rewards ('*') from
// uncollected ones ('$'). Without it every reward renders as '$'.
func WithRewardState(rs *world.RewardState) Option {
	return func(o *Options) { o.rewards = rs }
}

// WithLegend appends the symbol legend below the map.
func WithLegend() Option {
	return func(o *Options) { o.legend = true }
}

// Map renders g with numbered row/column gutters and the requested
// decorations.
func Map(g *world.Graph, opts ...Option) string {
	cfg := Options{agentAt: world.None}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil || g.NodeCount() == 0 {
		return "empty graph"
	}

	w, h := g.Width(), g.Height()
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]byte, w)
		for x := 0; x < w; x++ {
			cells[y][x] = wallSymbol
			id, ok := g.At(world.Coord{X: x, Y: y})
			if !ok {
				continue
			}
			n := g.Node(id)
			switch {
			case n.HasReward && cfg.rewards != nil && cfg.rewards.Collected(id):
				cells[y][x] = collectedSymbol
			case n.HasReward:
				cells[y][x] = rewardSymbol
			default:
				cells[y][x] = n.Terrain.Symbol()
			}
		}
	}

	put := func(id world.NodeID, symbol byte) {
		c := g.Node(id).Coord
		cells[c.Y][c.X] = symbol
	}
	for i, id := range cfg.path {
		switch {
		case i == 0:
			put(id, startSymbol)
		case i == len(cfg.path)-1:
			put(id, goalSymbol)
		case !g.Node(id).HasReward:
			put(id, pathSymbol)
		}
	}
	if cfg.agentAt != world.None {
		put(cfg.agentAt, agentSymbol)
	}
	for _, id := range cfg.highlight {
		put(id, highlightSymbol)
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < w; x++ {
		fmt.Fprintf(&sb, "%2d", x)
	}
	sb.WriteByte('\n')
	sb.WriteString("   ")
	sb.WriteString(strings.Repeat("--", w))
	sb.WriteByte('\n')
	for y := 0; y < h; y++ {
		fmt.Fprintf(&sb, "%2d|", y)
		for x := 0; x < w; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cells[y][x])
		}
		sb.WriteByte('\n')
	}

	out := strings.TrimRight(sb.String(), "\n")
	if cfg.legend {
		out += "\n" + Legend()
	}
	return out
}

// Legend returns the symbol reference block shown below maps.
func Legend() string {
	lines := []string{
		"=== LEGEND ===",
		"S = start         G = goal",
		"A = agent         . = path",
		"$ = reward        * = collected",
		"# = wall          + = highlight",
		"",
		"TERRAIN:",
	}
	kinds := biome.Kinds()
	for i := 0; i < len(kinds); i += 2 {
		left := fmt.Sprintf("%c = %s (%d)", kinds[i].Symbol(), kinds[i], kinds[i].Cost())
		if i+1 < len(kinds) {
			right := fmt.Sprintf("%c = %s (%d)", kinds[i+1].Symbol(), kinds[i+1], kinds[i+1].Cost())
			lines = append(lines, fmt.Sprintf("%-17s %s", left, right))
		} else {
			lines = append(lines, left)
		}
	}
	lines = append(lines, "==============")
	return strings.Join(lines, "\n")
}
