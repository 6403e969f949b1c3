package world

import (
	"math/rand"
	"sort"
)

// placeRewards marks total reward nodes on the builder. Roughly half
// land at even strides along the guaranteed path's interior (endpoints
// excluded), the remainder on off-path nodes ranked by Manhattan
// distance to the nearest path node, capped at radius. Any shortfall
// is filled by uniform sampling over the remaining nodes.
func placeRewards(b *Builder, path []NodeID, total, radius int, rng *rand.Rand) error {
	if total <= 0 {
		return nil
	}
	onPath := make(map[NodeID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	placed := make(map[NodeID]bool, total)
	mark := func(id NodeID) error {
		if placed[id] {
			return nil
		}
		if err := b.SetReward(id); err != nil {
			return err
		}
		placed[id] = true
		return nil
	}

	// On-path share: even strides over the interior.
	var interior []NodeID
	if len(path) > 2 {
		interior = path[1 : len(path)-1]
	}
	numPath := total / 2
	if numPath < 1 {
		numPath = 1
	}
	if len(interior) > 0 {
		if numPath >= len(interior) {
			for _, id := range interior {
				if err := mark(id); err != nil {
					return err
				}
			}
		} else {
			step := len(interior) / numPath
			for i := 0; i < numPath; i++ {
				if err := mark(interior[i*step]); err != nil {
					return err
				}
			}
		}
	}

	// Off-path share: nearest-to-path first, within radius.
	type candidate struct {
		id   NodeID
		dist int
	}
	var near []candidate
	for id := NodeID(0); int(id) < b.NodeCount(); id++ {
		if onPath[id] || placed[id] {
			continue
		}
		c := b.Node(id).Coord
		best := radius + 1
		for _, pid := range path {
			if d := c.ManhattanTo(b.Node(pid).Coord); d < best {
				best = d
			}
		}
		if best <= radius {
			near = append(near, candidate{id: id, dist: best})
		}
	}
	sort.Slice(near, func(i, j int) bool {
		if near[i].dist != near[j].dist {
			return near[i].dist < near[j].dist
		}
		return near[i].id < near[j].id
	})
	for _, c := range near {
		if len(placed) >= total {
			return nil
		}
		if err := mark(c.id); err != nil {
			return err
		}
	}

	// Shortfall: uniform sample over the remaining off-path nodes.
	// The guaranteed path and its endpoints never receive random
	// fill, so a sparse world simply ends up with fewer rewards.
	if len(placed) < total {
		var rest []NodeID
		for id := NodeID(0); int(id) < b.NodeCount(); id++ {
			if !placed[id] && !onPath[id] {
				rest = append(rest, id)
			}
		}
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, id := range rest {
			if len(placed) >= total {
				break
			}
			if err := mark(id); err != nil {
				return err
			}
		}
	}
	return nil
}
