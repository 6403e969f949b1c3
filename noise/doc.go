// Package noise provides seeded 2D coherent gradient noise with fractal
// octave summation, the terrain source for biome generation.
//
// What:
//
//   - Field: an immutable, seed-derived permutation table plus a fixed
//     set of eight lattice gradients.
//   - Sample(x, y): classic gradient noise in [-1, 1] — smoothstep fade,
//     bilinear blend of the four lattice-corner gradient contributions.
//   - Fractal(x, y, octaves, persistence, scale): sums octaves of Sample
//     at doubling frequency and decaying amplitude, normalizes by the
//     summed amplitude, and rescales to [0, 1].
//
// Why:
//
//   - Biome synthesis: smooth at small scales, varied at large ones.
//   - Reproducible worlds: a Field is a pure function of its seed; the
//     same seed and coordinates always produce the same value.
//
// Complexity:
//
//   - Sample:  O(1) per call.
//   - Fractal: O(octaves) per call.
//
// Determinism:
//
//   - The permutation table is shuffled once at construction from the
//     seed; Sample and Fractal never mutate state and are safe for
//     concurrent use.
package noise
