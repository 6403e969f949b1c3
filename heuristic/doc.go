// Package heuristic provides the cost estimators consumed by the
// search package: raw distance primitives, an admissible
// terrain-aware lower bound, a reward-adjusted combined estimate, and
// a deliberately inadmissible attractor for greedy best-first search.
//
// What:
//   - Manhattan / Euclidean: plain coordinate distances.
//   - Terrain: Manhattan distance times the cheapest terrain cost.
//     Admissible and consistent: no real path can cost less than
//     hop count times the cheapest possible step.
//   - Combined: Terrain plus a negative bonus for uncollected rewards
//     whose detour is small, clamped at zero. The clamp prevents
//     negative estimates but does NOT restore admissibility; see the
//     function doc.
//   - AggressiveGreedy: ignores terrain entirely and, when an
//     uncollected reward is near, returns half the distance to it,
//     overriding goal distance. Only sensible for greedy search.
//
// Why:
//
// A* optimality depends on an admissible estimate, so it consumes
// Terrain. Greedy best-first has no optimality guarantee to protect,
// so it can afford an estimate that actively steers toward rewards.
//
// Complexity: Terrain is O(1); Combined and AggressiveGreedy are
// O(r) in the number of reward nodes. A Cache can memoize Manhattan
// lookups for one search invocation; it is owned by the caller and
// never shared between runs.
package heuristic
