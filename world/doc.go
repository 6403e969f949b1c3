// Package world assembles maze-carved passable positions and biome
// terrain into a weighted, 4-connected graph with guided reward
// placement, and owns the per-run reward-collection overlay.
//
// What:
//
//   - Graph: an immutable node store (contiguous slice addressed by
//     NodeID, with a coordinate index) plus ordered adjacency lists.
//     The cost of the arc A→B is B's terrain cost, so A→B and B→A
//     legitimately differ.
//   - Generate: the full pipeline — carve a maze, retry once at larger
//     dimensions if the passable floor is missed, classify biomes,
//     connect 4-neighbors, pick a start and a farthest-Manhattan goal,
//     compute a guaranteed hop-shortest path, spread rewards half on
//     that path and half near it, and verify global connectivity.
//   - Builder: hand-assembly of small graphs for tests and callers
//     that bring their own topology.
//   - RewardState: a per-run overlay of collected flags over the
//     graph's immutable reward placement, so independent runs never
//     contaminate each other.
//
// Why:
//
//   - Search strategies operate uniformly over Graph + RewardState.
//   - Determinism: Generate is a pure function of its seed and options.
//
// Invariants:
//
//   - Every generated graph is globally connected (breadth-first
//     reachability from an arbitrary root); a post-generation
//     violation is reported through the Warnf hook, never fatal.
//   - Node identity is the coordinate pair; terrain and reward
//     placement are attributes.
//
// Errors:
//
//   - ErrOptionViolation: invalid generation options.
//   - ErrNoPath:          no path between the chosen start and goal.
//   - ErrDuplicateNode, ErrUnknownNode, ErrEmptyGraph: builder misuse.
package world
