package biome

// Terrain enumerates the terrain kinds of a world, ordered by strictly
// increasing movement cost.
type Terrain int

const (
	// Solid is firm ground, the cheapest terrain to enter.
	Solid Terrain = iota
	// Sandy is loose ground that slows movement.
	Sandy
	// Rocky is broken ground that is expensive to cross.
	Rocky
	// Swamp is waterlogged ground, the most expensive terrain.
	Swamp
)

// terrainCosts holds the immutable movement cost per terrain kind.
// Costs are strictly increasing across the enumeration.
var terrainCosts = [...]int{1, 4, 10, 20}

// terrainSymbols holds the display symbol per terrain kind.
var terrainSymbols = [...]byte{'.', '~', '^', '&'}

// terrainNames holds the String() name per terrain kind.
var terrainNames = [...]string{"Solid", "Sandy", "Rocky", "Swamp"}

// Cost returns the movement cost charged for entering a cell of this
// terrain. It is always positive.
func (t Terrain) Cost() int { return terrainCosts[t] }

// Symbol returns the single-character display symbol of the terrain.
func (t Terrain) Symbol() byte { return terrainSymbols[t] }

func (t Terrain) String() string { return terrainNames[t] }

// Kinds returns all terrain kinds in enumeration (ascending-cost) order.
func Kinds() []Terrain {
	return []Terrain{Solid, Sandy, Rocky, Swamp}
}

// MinCost returns the global minimum movement cost across all terrain
// kinds. It is a constant of the enumeration, not derived from any
// particular world, which keeps heuristics built on it safe lower
// bounds regardless of local terrain.
func MinCost() int { return terrainCosts[Solid] }
