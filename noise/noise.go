package noise

import (
	"math"
	"math/rand"
)

// gradients is the fixed 2D gradient set. Eight directions: the four
// diagonals and the four cardinals.
var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Field is a seeded 2D gradient-noise generator.
// It is immutable after construction and safe for concurrent use.
type Field struct {
	// perm is the permutation table, duplicated to avoid index wrapping.
	perm [512]int
}

// New constructs a Field whose permutation table is a seed-derived
// shuffle of [0, 256). Identical seeds yield identical Fields.
func New(seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))

	var base [256]int
	for i := range base {
		base[i] = i
	}
	rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	f := &Field{}
	for i, v := range base {
		f.perm[i] = v
		f.perm[i+256] = v
	}

	return f
}

// fade is the smoothstep curve 6t⁵ − 15t⁴ + 10t³, which has zero first
// and second derivatives at t=0 and t=1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b by t.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad returns the dot product of a hashed lattice gradient with the
// distance vector (x, y).
func grad(hash int, x, y float64) float64 {
	g := gradients[hash&7]
	return g[0]*x + g[1]*y
}

// Sample returns the gradient-noise value at (x, y), in [-1, 1].
// It is deterministic for a given Field and pure: no state is mutated.
func (f *Field) Sample(x, y float64) float64 {
	// Lattice cell containing the point.
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	// Position relative to the cell origin.
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	// Fade curves for the bilinear blend.
	u := fade(xf)
	v := fade(yf)

	// Hash the four cell corners.
	a := f.perm[xi] + yi
	aa := f.perm[a]
	ab := f.perm[a+1]
	b := f.perm[xi+1] + yi
	ba := f.perm[b]
	bb := f.perm[b+1]

	// Blend the four corner gradient contributions.
	return lerp(v,
		lerp(u, grad(f.perm[aa], xf, yf), grad(f.perm[ba], xf-1, yf)),
		lerp(u, grad(f.perm[ab], xf, yf-1), grad(f.perm[bb], xf-1, yf-1)),
	)
}

// Fractal sums octaves layers of Sample at doubling frequency and
// persistence-decaying amplitude, starting from the base frequency
// scale, then normalizes by the summed amplitude and rescales the
// result from [-1, 1] to [0, 1].
//
// octaves below 1 is treated as 1; persistence is typically in (0, 1].
func (f *Field) Fractal(x, y float64, octaves int, persistence, scale float64) float64 {
	if octaves < 1 {
		octaves = 1
	}

	var (
		value     float64
		amplitude = 1.0
		frequency = scale
		maxValue  float64
	)
	for i := 0; i < octaves; i++ {
		value += f.Sample(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	// Normalize to [-1, 1], then rescale to [0, 1].
	return (value/maxValue + 1) * 0.5
}
