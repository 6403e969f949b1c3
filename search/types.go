package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/wayfind/heuristic"
	"github.com/katalvlaran/wayfind/world"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNodeNotFound is returned when the start or goal ID is absent.
	ErrNodeNotFound = errors.New("search: node not found")

	// ErrBadLimit is returned for a negative expansion ceiling.
	ErrBadLimit = errors.New("search: negative expansion limit")

	// ErrMissingArc is returned when a reconstructed path contains a
	// hop the graph has no arc for, which means the graph was mutated
	// while a run was in flight.
	ErrMissingArc = errors.New("search: missing arc along path")
)

// DefaultMaxExpansions caps how many nodes one run may expand before
// it reports failure. Generated worlds stay far below it; the ceiling
// exists to bound runaway exploration on malformed input.
const DefaultMaxExpansions = 10000

// Result records one algorithm run in a shape common to all four
// strategies, so callers can tabulate and compare them directly.
type Result struct {
	// Algorithm is the human-readable strategy name ("BFS", "A*", …).
	Algorithm string

	// Path is the reconstructed start→goal route, empty on failure.
	Path []world.NodeID

	// Cost is the summed arc cost of Path (A* reports its tracked g,
	// the others recompute from the arcs).
	Cost int

	// Expanded counts popped-and-processed frontier nodes; stale A*
	// entries skipped by lazy deletion are not counted.
	Expanded int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Success reports whether the goal was reached before the
	// expansion ceiling.
	Success bool

	// Rewards lists the reward nodes lying on Path, in path order.
	Rewards []world.NodeID
}

// Options holds parameters shared by all four strategies.
type Options struct {
	// MaxExpansions is the expansion ceiling; zero forbids any
	// expansion and fails immediately, negative is rejected.
	MaxExpansions int

	// Heuristic overrides the strategy's default estimator. Ignored
	// by BFS and DFS. Greedy defaults to heuristic.AggressiveGreedy,
	// A* to heuristic.Terrain.
	Heuristic heuristic.Func

	// Rewards is the per-run collection overlay consulted by
	// reward-aware heuristics. Nil means every reward counts as
	// uncollected.
	Rewards *world.RewardState
}

// Option configures a search run via functional arguments.
type Option func(*Options)

// DefaultOptions returns an Options with the default expansion
// ceiling, no heuristic override and no reward overlay.
func DefaultOptions() Options {
	return Options{MaxExpansions: DefaultMaxExpansions}
}

// WithMaxExpansions sets the expansion ceiling. Negative values are
// surfaced as ErrBadLimit when the search is invoked.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithHeuristic overrides the default cost estimator of the
// priority-queue strategies.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithRewardState supplies the reward-collection overlay consulted by
// reward-aware heuristics.
func WithRewardState(rs *world.RewardState) Option {
	return func(o *Options) { o.Rewards = rs }
}
