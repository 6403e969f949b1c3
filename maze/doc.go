// Package maze carves spanning, fully-connected mazes over boolean
// grids using recursive backtracking, with a flood-fill repair pass
// that stitches any stray passable region back into the main component.
//
// What:
//
//   - Generate(width, height, rng): carve a maze; true cells are walls,
//     false cells are passable.
//   - Even dimensions are reduced to the nearest smaller odd size for
//     carving, then the grid is re-expanded to the requested size with
//     a low-probability border-extension pass that adds scattered
//     extra passages.
//   - Grid.Passable(): the explicit list of passable coordinates, all
//     of which are mutually reachable under 4-connectivity.
//
// Why:
//
//   - World generation: the passable set becomes the node set of a
//     weighted world graph.
//   - Guaranteed reachability: search strategies can assume a single
//     connected component.
//
// Complexity:
//
//   - Generate: O(W×H) carving, O(W×H) repair, O(W×H×max(W,H)) worst
//     case for corridor stitching.
//
// Errors:
//
//   - ErrNilRand:  a nil *rand.Rand was supplied.
//   - ErrTooSmall: either dimension is below 3.
//
// Determinism:
//
//   - All randomness flows through the supplied *rand.Rand; the same
//     source state always yields the same maze.
package maze
