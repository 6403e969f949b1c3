// Command wayfind generates a procedurally varied weighted grid world
// and compares four search strategies over it through an interactive
// terminal menu.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/wayfind/agent"
	"github.com/katalvlaran/wayfind/render"
	"github.com/katalvlaran/wayfind/report"
	"github.com/katalvlaran/wayfind/search"
	"github.com/katalvlaran/wayfind/world"
	"github.com/katalvlaran/wayfind/worldconfig"
)

// session holds everything the menu operates on.
type session struct {
	cfg     worldconfig.Config
	seed    int64
	graph   *world.Graph
	results []search.Result
	in      *bufio.Reader
	speed   time.Duration
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[wayfind] ")

	cfg := worldconfig.Load()
	seedFlag := flag.Int64("seed", cfg.Seed, "generation seed (0 = from the clock)")
	width := flag.Int("width", cfg.Width, "world width in cells")
	height := flag.Int("height", cfg.Height, "world height in cells")
	speed := flag.Duration("speed", time.Second, "walk animation delay per step")
	demo := flag.Bool("demo", false, "run one full comparison non-interactively and exit")
	flag.Parse()
	cfg.Width, cfg.Height = *width, *height

	s := &session{
		cfg:   cfg,
		in:    bufio.NewReader(os.Stdin),
		speed: *speed,
	}
	if err := s.regenerate(*seedFlag); err != nil {
		log.Fatalf("world generation failed: %v", err)
	}

	if *demo {
		s.runComparison()
		if _, err := s.saveReport(); err != nil {
			log.Fatalf("saving report: %v", err)
		}
		return
	}

	banner()
	s.menuLoop()
}

func banner() {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("     WAYFIND - SEARCH STRATEGY PLAYGROUND")
	fmt.Println(strings.Repeat("=", 50))
}

// regenerate builds a fresh world. A zero seed is replaced by the
// clock; generation failures on a too-tight maze are retried once at
// enlarged dimensions before giving up.
func (s *session) regenerate(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.seed = seed
	s.results = nil

	opts := func(w, h int) []world.GenOption {
		return []world.GenOption{
			world.WithDimensions(w, h),
			world.WithMinNodes(s.cfg.MinNodes),
			world.WithBiomeScale(s.cfg.BiomeScale),
			world.WithBiomeOctaves(s.cfg.BiomeOctaves),
			world.WithMinRewards(s.cfg.MinRewards),
			world.WithRewardRadius(s.cfg.RewardRadius),
			world.WithWarnf(log.Printf),
		}
	}

	g, err := world.Generate(seed, opts(s.cfg.Width, s.cfg.Height)...)
	if errors.Is(err, world.ErrNoPath) {
		log.Printf("no start-goal route at %dx%d; retrying larger", s.cfg.Width, s.cfg.Height)
		g, err = world.Generate(seed+1,
			opts(s.cfg.Width*3/2, s.cfg.Height*6/5)...)
	}
	if err != nil {
		return err
	}
	s.graph = g
	log.Printf("world ready: %d nodes, %d rewards, seed %d",
		g.NodeCount(), len(g.RewardNodes()), seed)
	return nil
}

func (s *session) menuLoop() {
	for {
		fmt.Println("\n" + strings.Repeat("=", 50))
		fmt.Println("               MAIN MENU")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("1. Run full comparison")
		fmt.Println("2. View current map")
		fmt.Println("3. Walk an algorithm's path")
		fmt.Println("4. Generate new world")
		fmt.Println("5. Save report")
		fmt.Println("6. Quit")
		fmt.Println(strings.Repeat("=", 50))

		switch s.prompt("Pick an option (1-6): ") {
		case "1":
			s.runComparison()
		case "2":
			s.showMap()
		case "3":
			s.walkPath()
		case "4":
			if err := s.regenerate(0); err != nil {
				log.Printf("generation failed: %v", err)
			}
		case "5":
			if path, err := s.saveReport(); err != nil {
				log.Printf("saving report: %v", err)
			} else {
				fmt.Printf("report saved to %s\n", path)
			}
		case "6", "q", "quit":
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("invalid option, pick 1-6")
		}
	}
}

func (s *session) prompt(msg string) string {
	fmt.Print(msg)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return "6"
	}
	return strings.TrimSpace(line)
}

func (s *session) runComparison() {
	fmt.Println("\nRunning all strategies...")
	results, err := search.RunAll(s.graph, s.graph.Start(), s.graph.Goal(),
		search.WithMaxExpansions(s.cfg.MaxExpansions))
	if err != nil {
		log.Printf("search failed: %v", err)
		return
	}
	s.results = results

	c := s.comparison()
	fmt.Println()
	fmt.Println(c.Table())
	fmt.Println(c.Analysis())
	if best, err := c.Best(); err == nil {
		fmt.Printf("\nOverall pick: %s\n", best)
	}
}

func (s *session) comparison() *report.Comparison {
	c := report.New()
	c.SetEnvironment(s.graph, s.seed)
	for _, res := range s.results {
		c.Add(res)
	}
	return c
}

func (s *session) showMap() {
	fmt.Println("\nCURRENT WORLD")
	fmt.Println(render.Map(s.graph,
		render.WithPath(s.graph.GuaranteedPath()),
		render.WithLegend(),
	))
}

// walkPath replays one strategy's route step by step with a live map.
func (s *session) walkPath() {
	if len(s.results) == 0 {
		fmt.Println("run a comparison first")
		return
	}
	fmt.Println("\nPick a strategy to walk:")
	for i, res := range s.results {
		status := "failed"
		if res.Success {
			status = fmt.Sprintf("cost %d, %d steps", res.Cost, len(res.Path)-1)
		}
		fmt.Printf("%d. %s (%s)\n", i+1, res.Algorithm, status)
	}
	choice := s.prompt(fmt.Sprintf("Choose (1-%d): ", len(s.results)))

	var picked *search.Result
	for i := range s.results {
		if choice == fmt.Sprintf("%d", i+1) {
			picked = &s.results[i]
			break
		}
	}
	if picked == nil || !picked.Success {
		fmt.Println("nothing to walk")
		return
	}

	a, err := agent.New(s.graph, s.graph.Start(), s.graph.Goal())
	if err != nil {
		log.Printf("agent: %v", err)
		return
	}
	for i, id := range picked.Path {
		if i > 0 {
			if _, err = a.MoveTo(id); err != nil {
				log.Printf("walk aborted: %v", err)
				return
			}
			time.Sleep(s.speed)
		}
		fmt.Printf("\nSTEP %d/%d  %s\n", i+1, len(picked.Path), a)
		fmt.Println(render.Map(s.graph,
			render.WithPath(picked.Path),
			render.WithAgentAt(a.Position()),
			render.WithRewardState(a.Rewards()),
		))
	}
	st := a.Stats()
	fmt.Printf("\nGoal reached: cost %d, %d rewards collected\n", st.Cost, st.Collected)
}

func (s *session) saveReport() (string, error) {
	if len(s.results) == 0 {
		s.runComparison()
	}
	return s.comparison().SaveTo(s.cfg.ReportDir)
}
