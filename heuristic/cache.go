package heuristic

import "github.com/katalvlaran/wayfind/world"

// Cache memoizes Manhattan distances between coordinate pairs for
// the duration of one search invocation. It is created by the caller,
// passed where needed, and discarded when the invocation returns;
// nothing in this package retains one.
type Cache struct {
	dists map[[2]world.Coord]int
}

// NewCache returns an empty distance cache.
func NewCache() *Cache {
	return &Cache{dists: make(map[[2]world.Coord]int)}
}

// Manhattan returns the memoized |dx| + |dy| between a and b.
func (c *Cache) Manhattan(a, b world.Coord) int {
	key := [2]world.Coord{a, b}
	if d, ok := c.dists[key]; ok {
		return d
	}
	d := a.ManhattanTo(b)
	c.dists[key] = d
	return d
}

// Len reports how many pairs are cached.
func (c *Cache) Len() int { return len(c.dists) }

// Clear drops all cached pairs, keeping the cache usable.
func (c *Cache) Clear() {
	for k := range c.dists {
		delete(c.dists, k)
	}
}
