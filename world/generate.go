package world

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wayfind/biome"
	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/noise"
)

// Retry multipliers applied to the requested dimensions when the
// carved maze misses the passable-node floor.
const (
	retryWidthFactor  = 1.5
	retryHeightFactor = 1.2
)

// GenOptions holds the tunable parameters of world generation.
type GenOptions struct {
	// Width and Height are the requested maze dimensions in cells.
	Width, Height int

	// MinNodes is the passable-node floor; a carve below it triggers
	// one regeneration at enlarged dimensions.
	MinNodes int

	// BiomeScale is the base noise frequency (smaller = smoother).
	BiomeScale float64

	// BiomeOctaves is the number of fractal layers.
	BiomeOctaves int

	// MinRewards is the lower bound on placed rewards; the actual
	// count is max(MinRewards, nodes/8).
	MinRewards int

	// RewardRadius bounds how far off the guaranteed path the
	// remaining rewards may be placed (Manhattan distance to the
	// nearest path node).
	RewardRadius int

	// Mapper classifies noise values into terrain kinds.
	Mapper *biome.Mapper

	// Warnf receives non-fatal generation diagnostics (floor misses,
	// post-generation connectivity violations). No-op by default.
	Warnf func(format string, args ...any)
}

// GenOption configures world generation via functional arguments.
type GenOption func(*GenOptions)

// DefaultGenOptions returns the baseline configuration: a 20×15 maze,
// a floor of 30 passable nodes, biome scale 0.08 over 3 octaves, at
// least 5 rewards within radius 5 of the guaranteed path, and a no-op
// warning hook.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Width:        20,
		Height:       15,
		MinNodes:     30,
		BiomeScale:   0.08,
		BiomeOctaves: 3,
		MinRewards:   5,
		RewardRadius: 5,
		Mapper:       biome.DefaultMapper(),
		Warnf:        func(string, ...any) {},
	}
}

// WithDimensions sets the requested maze dimensions.
func WithDimensions(width, height int) GenOption {
	return func(o *GenOptions) {
		o.Width = width
		o.Height = height
	}
}

// WithMinNodes sets the passable-node floor.
func WithMinNodes(n int) GenOption {
	return func(o *GenOptions) { o.MinNodes = n }
}

// WithBiomeScale sets the base noise frequency.
func WithBiomeScale(scale float64) GenOption {
	return func(o *GenOptions) { o.BiomeScale = scale }
}

// WithBiomeOctaves sets the number of fractal noise layers.
func WithBiomeOctaves(n int) GenOption {
	return func(o *GenOptions) { o.BiomeOctaves = n }
}

// WithMinRewards sets the lower bound on placed rewards.
func WithMinRewards(n int) GenOption {
	return func(o *GenOptions) { o.MinRewards = n }
}

// WithRewardRadius sets the off-path reward proximity radius.
func WithRewardRadius(r int) GenOption {
	return func(o *GenOptions) { o.RewardRadius = r }
}

// WithMapper replaces the terrain classifier.
func WithMapper(m *biome.Mapper) GenOption {
	return func(o *GenOptions) {
		if m != nil {
			o.Mapper = m
		}
	}
}

// WithWarnf registers a hook for non-fatal generation diagnostics.
func WithWarnf(fn func(format string, args ...any)) GenOption {
	return func(o *GenOptions) {
		if fn != nil {
			o.Warnf = fn
		}
	}
}

// validate checks option sanity and returns ErrOptionViolation with
// context for the first violation found.
func (o *GenOptions) validate() error {
	switch {
	case o.Width < 3 || o.Height < 3:
		return fmt.Errorf("%w: dimensions %dx%d below 3x3", ErrOptionViolation, o.Width, o.Height)
	case o.MinNodes < 0:
		return fmt.Errorf("%w: MinNodes %d negative", ErrOptionViolation, o.MinNodes)
	case o.BiomeScale <= 0:
		return fmt.Errorf("%w: BiomeScale %v must be positive", ErrOptionViolation, o.BiomeScale)
	case o.BiomeOctaves < 1:
		return fmt.Errorf("%w: BiomeOctaves %d below 1", ErrOptionViolation, o.BiomeOctaves)
	case o.MinRewards < 0:
		return fmt.Errorf("%w: MinRewards %d negative", ErrOptionViolation, o.MinRewards)
	case o.RewardRadius < 0:
		return fmt.Errorf("%w: RewardRadius %d negative", ErrOptionViolation, o.RewardRadius)
	}
	return nil
}

// Generate runs the full world-generation pipeline from a seed:
//
//  1. Carve a maze; if the passable count misses MinNodes, warn and
//     regenerate once at dimensions scaled by 1.5×/1.2×.
//  2. Classify a biome terrain grid over the (possibly enlarged) area.
//  3. Create one node per passable position and connect 4-neighbors
//     bidirectionally with destination-cost arcs.
//  4. Pick a start uniformly at random and the goal as the passable
//     position maximizing Manhattan distance from it.
//  5. Compute the guaranteed hop-shortest start→goal path; fail with
//     ErrNoPath if none exists.
//  6. Spread rewards: half at even strides along the path interior,
//     the rest on off-path nodes ranked by distance to the path
//     within RewardRadius, random sampling filling any shortfall.
//  7. Re-verify global connectivity; violations are warned, not fatal.
//
// Identical seed and options always produce the identical world.
func Generate(seed int64, opts ...GenOption) (*Graph, error) {
	o := DefaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	// 1. Carve, with one enlarged retry below the node floor.
	width, height := o.Width, o.Height
	grid, err := maze.Generate(width, height, rng)
	if err != nil {
		return nil, fmt.Errorf("world: carving failed: %w", err)
	}
	valid := grid.Passable()
	if len(valid) < o.MinNodes {
		o.Warnf("carved maze has %d passable cells (floor %d); retrying at larger dimensions", len(valid), o.MinNodes)
		width = int(float64(width) * retryWidthFactor)
		height = int(float64(height) * retryHeightFactor)
		if grid, err = maze.Generate(width, height, rng); err != nil {
			return nil, fmt.Errorf("world: carving failed: %w", err)
		}
		valid = grid.Passable()
	}

	// 2. Biome terrain over the whole (possibly enlarged) area.
	field := noise.New(seed)
	terrain := o.Mapper.Grid(field, width, height, o.BiomeOctaves, o.BiomeScale)

	// 3. Nodes for passable positions, then 4-neighbor arcs.
	b := NewBuilder(width, height)
	for _, p := range valid {
		if _, err = b.AddNode(Coord{X: p.X, Y: p.Y}, terrain[p.Y][p.X]); err != nil {
			return nil, err
		}
	}
	for _, p := range valid {
		u, _ := b.NodeAt(Coord{X: p.X, Y: p.Y})
		for _, d := range neighborOffsets {
			if v, ok := b.NodeAt(Coord{X: p.X + d[0], Y: p.Y + d[1]}); ok {
				if err = b.Connect(u, v); err != nil {
					return nil, err
				}
			}
		}
	}

	// 4. Start at random; goal at maximum Manhattan distance.
	start := NodeID(rng.Intn(b.NodeCount()))
	startCoord := b.Node(start).Coord
	goal, best := start, -1
	for id := NodeID(0); int(id) < b.NodeCount(); id++ {
		if d := startCoord.ManhattanTo(b.Node(id).Coord); d > best {
			goal, best = id, d
		}
	}

	// 5. Guaranteed path (recomputed identically by Build below).
	path := b.PathBetween(start, goal)
	if path == nil {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, startCoord, b.Node(goal).Coord)
	}

	// 6. Reward placement.
	total := o.MinRewards
	if n := b.NodeCount() / 8; n > total {
		total = n
	}
	if err = placeRewards(b, path, total, o.RewardRadius, rng); err != nil {
		return nil, err
	}

	g, err := b.Build(start, goal)
	if err != nil {
		return nil, err
	}

	// 7. Best-effort connectivity re-check.
	if !g.ValidateConnectivity() {
		o.Warnf("generated graph is not fully connected (%d nodes)", g.NodeCount())
	}

	return g, nil
}
