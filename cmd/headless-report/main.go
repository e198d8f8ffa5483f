package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/memory-cards/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	session    game.SessionStats
	picks      int
	matches    int
	mismatches int
	frames     int
	reasons    map[string]int
}

func main() {
	var runs int
	var rounds int
	var maxFrames int
	var seedBase int64
	var seedStep int64
	var playerName string
	var forget float64
	var clickEvery int
	var rehide, guard, endOnClear, verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&rounds, "rounds", 10, "rounds per session")
	flag.IntVar(&maxFrames, "max-frames", 200000, "frame budget per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&playerName, "player", "memory", "scripted player (random|memory)")
	flag.Float64Var(&forget, "forget", 0.3, "memory player: chance to forget a seen card")
	flag.IntVar(&clickEvery, "click-every", 10, "frames between clicks")
	flag.BoolVar(&rehide, "rehide", false, "flip mismatched pairs back face-down")
	flag.BoolVar(&guard, "guard", false, "ignore clicks on matched or selected cards")
	flag.BoolVar(&endOnClear, "end-on-clear", false, "end a round once every pair is matched")
	flag.BoolVar(&verbose, "v", false, "print the event log of every run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if rounds <= 0 {
		fmt.Println("error: -rounds must be > 0")
		return
	}
	if _, err := newPlayer(playerName, forget, 0); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	cfg := game.DefaultConfig()
	cfg.Rules = game.Rules{RehideMismatch: rehide, GuardRevealed: guard, EndOnClear: endOnClear}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("player=%s forget=%.2f runs=%d rounds=%d seed_base=%d seed_step=%d rules=%+v\n\n",
		playerName, forget, runs, rounds, seedBase, seedStep, cfg.Rules)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, log, err := runSession(i+1, seed, cfg, playerName, forget, clickEvery, rounds, maxFrames)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		if verbose {
			fmt.Print(log)
		}
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func newPlayer(name string, forget float64, seed int64) (game.Player, error) {
	switch name {
	case "random":
		return game.RandomPlayer{}, nil
	case "memory":
		if forget < 0 || forget > 1 {
			return nil, fmt.Errorf("forget %.2f must be within 0..1", forget)
		}
		return game.NewMemoryPlayer(forget, rand.New(rand.NewSource(seed^0x5eed))), nil // #nosec G404 -- report only
	default:
		return nil, fmt.Errorf("unsupported player %q (supported: random, memory)", name)
	}
}

func runSession(runIndex int, seed int64, cfg game.Config, playerName string, forget float64, clickEvery, rounds, maxFrames int) (runStats, string, error) {
	p, err := newPlayer(playerName, forget, seed)
	if err != nil {
		return runStats{}, "", err
	}
	sim, err := game.NewSim(
		game.WithConfig(cfg),
		game.WithSeed(seed),
		game.WithPlayer(p),
		game.WithClickEvery(clickEvery),
	)
	if err != nil {
		return runStats{}, "", err
	}
	if err := sim.RunRounds(rounds, maxFrames); err != nil {
		return runStats{}, "", err
	}

	reasons := map[string]int{}
	for _, r := range sim.Results {
		reasons[r.Reason.String()]++
	}
	return runStats{
		runIndex:   runIndex,
		seed:       seed,
		session:    sim.Stats,
		picks:      sim.Log.Count(game.EventPick),
		matches:    sim.Log.Count(game.EventMatch),
		mismatches: sim.Log.Count(game.EventMismatch),
		frames:     sim.Machine.Frame(),
		reasons:    reasons,
	}, sim.Log.Format(), nil
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("%s\n", rs.session.Summary())
	fmt.Printf("clicks: picks=%d matches=%d mismatches=%d accuracy=%.2f frames=%d\n",
		rs.picks, rs.matches, rs.mismatches, accuracy(rs.matches, rs.mismatches), rs.frames)
	fmt.Printf("end_reasons: %s\n\n", joinCounts(rs.reasons))
}

type aggregate struct {
	session    game.SessionStats
	matches    int
	mismatches int
	reasons    map[string]int
}

func aggregateRuns(all []runStats) aggregate {
	agg := aggregate{reasons: map[string]int{}}
	for _, rs := range all {
		agg.session.Merge(rs.session)
		agg.matches += rs.matches
		agg.mismatches += rs.mismatches
		for k, v := range rs.reasons {
			agg.reasons[k] += v
		}
	}
	return agg
}

func printAggregate(all []runStats) {
	agg := aggregateRuns(all)
	fmt.Printf("=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("%s\n", agg.session.Summary())
	fmt.Printf("accuracy=%.2f end_reasons: %s\n", accuracy(agg.matches, agg.mismatches), joinCounts(agg.reasons))
}

// accuracy is the share of completed pairs that matched.
func accuracy(matches, mismatches int) float64 {
	total := matches + mismatches
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total)
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "(none)"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}
