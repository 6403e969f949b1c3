package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wayfind/search"
	"github.com/katalvlaran/wayfind/world"
)

// ErrNoResults is returned when an operation needs at least one
// recorded result.
var ErrNoResults = errors.New("report: no results recorded")

// Weighted-score factors for Best: solution cost dominates, run time
// and expansions matter equally, collected rewards earn a discount.
const (
	costWeight    = 0.5
	timeWeight    = 0.2
	expandWeight  = 0.2
	rewardsWeight = 0.1
)

// EnvInfo describes the world a comparison ran against.
type EnvInfo struct {
	Nodes   int
	Width   int
	Height  int
	Start   world.Coord
	Goal    world.Coord
	Rewards int
	Seed    int64
}

// Comparison accumulates the results of several strategies over one
// world and renders them as tables, analyses and saved reports.
type Comparison struct {
	// RunID uniquely identifies this comparison run.
	RunID uuid.UUID

	// Timestamp records when the comparison was created.
	Timestamp time.Time

	env     EnvInfo
	hasEnv  bool
	results []search.Result
}

// New returns an empty comparison with a fresh run ID.
func New() *Comparison {
	return &Comparison{
		RunID:     uuid.New(),
		Timestamp: time.Now(),
	}
}

// Add records one strategy's result, keeping insertion order.
func (c *Comparison) Add(res search.Result) {
	c.results = append(c.results, res)
}

// SetEnvironment captures the world the results were produced on.
func (c *Comparison) SetEnvironment(g *world.Graph, seed int64) {
	if g == nil {
		return
	}
	c.env = EnvInfo{
		Nodes:   g.NodeCount(),
		Width:   g.Width(),
		Height:  g.Height(),
		Start:   g.Node(g.Start()).Coord,
		Goal:    g.Node(g.Goal()).Coord,
		Rewards: len(g.RewardNodes()),
		Seed:    seed,
	}
	c.hasEnv = true
}

// Environment returns the captured world description; ok is false if
// SetEnvironment was never called.
func (c *Comparison) Environment() (EnvInfo, bool) { return c.env, c.hasEnv }

// Results returns a copy of the recorded results in insertion order.
func (c *Comparison) Results() []search.Result {
	out := make([]search.Result, len(c.results))
	copy(out, c.results)
	return out
}

// Table renders the ASCII comparison table.
func (c *Comparison) Table() string {
	if len(c.results) == 0 {
		return "no results to compare"
	}

	var lines []string
	rule := strings.Repeat("=", 85)
	lines = append(lines, rule)
	lines = append(lines, "                        SEARCH STRATEGY COMPARISON")
	lines = append(lines, rule)
	if c.hasEnv {
		lines = append(lines,
			fmt.Sprintf("Environment: %dx%d (%d nodes), seed %d",
				c.env.Width, c.env.Height, c.env.Nodes, c.env.Seed),
			fmt.Sprintf("Start: %s -> Goal: %s", c.env.Start, c.env.Goal),
			fmt.Sprintf("Rewards available: %d", c.env.Rewards),
			fmt.Sprintf("Run %s at %s", c.RunID, c.Timestamp.Format("2006-01-02 15:04:05")),
			strings.Repeat("-", 85),
		)
	}
	lines = append(lines,
		fmt.Sprintf("%-10s | %-7s | %-8s | %-8s | %-10s | %-7s | %-6s",
			"Algorithm", "Success", "Cost", "Expanded", "Time", "Rewards", "Steps"),
		strings.Repeat("-", 85),
	)
	for _, res := range c.results {
		success, cost, steps := "[X]", "-", "-"
		if res.Success {
			success = "[OK]"
			cost = fmt.Sprintf("%d", res.Cost)
			steps = fmt.Sprintf("%d", len(res.Path)-1)
		}
		lines = append(lines, fmt.Sprintf("%-10s | %-7s | %-8s | %-8d | %-10s | %-7d | %-6s",
			res.Algorithm, success, cost, res.Expanded, res.Elapsed.Round(time.Microsecond),
			len(res.Rewards), steps))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

// Analysis renders the detailed breakdown: successful strategies
// ranked by cost, failures with their expansion counts, and the
// per-criterion leaders.
func (c *Comparison) Analysis() string {
	if len(c.results) == 0 {
		return "no results to analyze"
	}

	var won, lost []search.Result
	for _, res := range c.results {
		if res.Success {
			won = append(won, res)
		} else {
			lost = append(lost, res)
		}
	}
	sort.SliceStable(won, func(i, j int) bool { return won[i].Cost < won[j].Cost })

	var lines []string
	rule := strings.Repeat("=", 60)
	lines = append(lines, rule, "                  DETAILED ANALYSIS", rule)

	if len(won) > 0 {
		lines = append(lines, "", "STRATEGIES THAT FOUND A SOLUTION:", strings.Repeat("-", 40))
		for i, res := range won {
			lines = append(lines,
				"",
				fmt.Sprintf("#%d  %s", i+1, res.Algorithm),
				fmt.Sprintf("    solution cost:  %d", res.Cost),
				fmt.Sprintf("    expanded nodes: %d", res.Expanded),
				fmt.Sprintf("    elapsed:        %s", res.Elapsed.Round(time.Microsecond)),
				fmt.Sprintf("    rewards on way: %d", len(res.Rewards)),
				fmt.Sprintf("    path length:    %d nodes", len(res.Path)),
			)
		}
	}
	if len(lost) > 0 {
		lines = append(lines, "", fmt.Sprintf("STRATEGIES THAT FAILED (%d):", len(lost)), strings.Repeat("-", 40))
		for _, res := range lost {
			lines = append(lines, fmt.Sprintf("- %s: %d nodes expanded in %s",
				res.Algorithm, res.Expanded, res.Elapsed.Round(time.Microsecond)))
		}
	}
	if len(won) > 1 {
		cheapest, fastest, leanest, richest := won[0], won[0], won[0], won[0]
		for _, res := range won[1:] {
			if res.Elapsed < fastest.Elapsed {
				fastest = res
			}
			if res.Expanded < leanest.Expanded {
				leanest = res
			}
			if len(res.Rewards) > len(richest.Rewards) {
				richest = res
			}
		}
		lines = append(lines, "", "EFFICIENCY:", strings.Repeat("-", 30),
			fmt.Sprintf("Cheapest solution: %s (cost %d)", cheapest.Algorithm, cheapest.Cost),
			fmt.Sprintf("Fastest run:       %s (%s)", fastest.Algorithm, fastest.Elapsed.Round(time.Microsecond)),
			fmt.Sprintf("Fewest expansions: %s (%d nodes)", leanest.Algorithm, leanest.Expanded),
		)
		if len(richest.Rewards) > 0 {
			lines = append(lines, fmt.Sprintf("Most rewards:      %s (%d)", richest.Algorithm, len(richest.Rewards)))
		}
	}
	lines = append(lines, "", rule)
	return strings.Join(lines, "\n")
}

// Best picks the winning strategy by a weighted score over
// normalized cost, run time and expansions, with a discount per
// collected reward. Smaller score wins; ties keep insertion order.
func (c *Comparison) Best() (string, error) {
	var won []search.Result
	for _, res := range c.results {
		if res.Success {
			won = append(won, res)
		}
	}
	if len(won) == 0 {
		return "", ErrNoResults
	}

	maxCost, maxTime, maxExpanded := 1.0, 1.0, 1.0
	for _, res := range won {
		maxCost = max(maxCost, float64(res.Cost))
		maxTime = max(maxTime, res.Elapsed.Seconds())
		maxExpanded = max(maxExpanded, float64(res.Expanded))
	}

	best, bestScore := won[0].Algorithm, float64(0)
	for i, res := range won {
		score := float64(res.Cost)/maxCost*costWeight +
			res.Elapsed.Seconds()/maxTime*timeWeight +
			float64(res.Expanded)/maxExpanded*expandWeight -
			float64(len(res.Rewards))*rewardsWeight
		if i == 0 || score < bestScore {
			best, bestScore = res.Algorithm, score
		}
	}
	return best, nil
}

// SaveTo writes the full report (table plus analysis) into dir,
// creating it if needed, and returns the file path. The file name
// embeds the run ID.
func (c *Comparison) SaveTo(dir string) (string, error) {
	if len(c.results) == 0 {
		return "", ErrNoResults
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create dir: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("SEARCH STRATEGY REPORT\n")
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", c.RunID))
	sb.WriteString(c.Table())
	sb.WriteString("\n")
	sb.WriteString(c.Analysis())
	if best, err := c.Best(); err == nil {
		sb.WriteString(fmt.Sprintf("\n\nOVERALL PICK: %s\n", best))
	}
	sb.WriteString("\n--- END OF REPORT ---\n")

	path := filepath.Join(dir, fmt.Sprintf("report-%s.txt", c.RunID))
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("report: write file: %w", err)
	}
	return path, nil
}
