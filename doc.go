// Package wayfind generates procedurally varied weighted grid worlds —
// mazes overlaid with noise-derived terrain biomes and scattered
// collectible rewards — and evaluates informed and uninformed search
// strategies over them.
//
// 🚀 What is wayfind?
//
//	A deterministic, seed-driven world laboratory that brings together:
//		• Coherent noise: seeded gradient noise with fractal octave summation
//		• Maze carving: recursive backtracking + flood-fill connectivity repair
//		• Biomes: noise-to-terrain classification with per-terrain movement costs
//		• World graphs: 4-connected weighted graphs with destination-cost edges
//		• Rewards: guided placement along a guaranteed path, per-run overlays
//		• Search: BFS, DFS, Greedy Best-First and A* with deterministic tie-breaks
//		• Heuristics: admissible terrain bounds and reward-aware attractors
//
// ✨ Why wayfind?
//
//   - Reproducible – identical seed, identical world, identical results
//   - Honest costs – edge weight is the destination terrain's cost, so
//     A→B and B→A legitimately differ
//   - Comparable – every strategy emits the same Result record, ready for
//     side-by-side tables
//
// Everything is organized as one package per concern:
//
//	noise/       — seeded 2D gradient noise and fractal summation
//	maze/        — maze carving and connectivity repair
//	biome/       — terrain kinds and noise-value classification
//	world/       — graph assembly, reward placement, reward-state overlays
//	heuristic/   — cost estimators consumed by the search engine
//	search/      — the four search strategies and their Result record
//	agent/       — step-by-step path walking with reward pickup
//	render/      — textual map rendering with legend
//	report/      — comparative tables and text report export
//	worldconfig/ — environment-backed configuration
//	cmd/wayfind/ — interactive console front-end
//
// Quick ASCII example of a rendered world:
//
//	S . ~ $
//	# ^ # ~
//	. . . G
//
// where 'S' is the start, 'G' the goal, '$' an uncollected reward, '#'
// a wall, and '.', '~', '^', '&' terrain of increasing movement cost.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
