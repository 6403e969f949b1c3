// Package biome defines terrain kinds with movement costs and display
// symbols, and maps coherent-noise values onto them through ordered
// range buckets.
//
// What:
//
//   - Terrain: fixed enumeration {Solid, Sandy, Rocky, Swamp} with
//     strictly increasing movement costs (1, 4, 10, 20) and display
//     symbols ('.', '~', '^', '&').
//   - Mapper: a configurable ordered list of [lo, hi) ranges covering
//     [0, 1]; Classify picks the first matching range and falls back
//     to the last configured range for boundary values, so every
//     value in [0, 1] maps to a terrain.
//   - Grid: samples a noise.Field over a rectangle and classifies each
//     cell, producing the terrain matrix consumed by world assembly.
//
// Why:
//
//   - Edge weighting: a terrain's cost is the weight of every edge
//     entering one of its cells.
//   - Heuristic bounds: MinCost is the global lower bound used by the
//     admissible terrain heuristic.
//
// Errors:
//
//   - ErrNoRanges: a Mapper was constructed with no ranges.
//
// Misconfigured ranges (gaps, unmapped values) never fail at
// classification time; the last configured range absorbs them.
package biome
