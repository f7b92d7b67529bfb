package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"takeiteasy/engine"
	"takeiteasy/experiments"
	"takeiteasy/meta"
	"takeiteasy/player"
	"takeiteasy/searcher"
	"takeiteasy/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	mode := flag.String("mode", "auto", "auto, human or experiment")
	depth := flag.Int("depth", meta.DEPTH, "Expectimax search depth")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines ranking root placements")
	duration := flag.Duration("duration", 0, "Time budget per move, 0 searches to full depth")
	cache := flag.Int("cache", meta.CACHE_ENTRIES, "Memo table entries, 0 disables memoization")
	seed := flag.Uint64("seed", 0, "Tile draw seed, 0 picks a random one")
	games := flag.Int("games", meta.GAMES, "Games per agent in experiment mode")
	experiment := flag.String("experiment", "depth", "Built-in match-up for experiment mode: depth or parallel")
	config := flag.String("config", "", "YAML agent configs for experiment mode, overrides -experiment")
	out := flag.String("out", meta.OUTPUT_DIR, "Directory for experiment results")
	verbose := flag.Bool("verbose", false, "Log every move and render the board")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	if *seed == 0 {
		*seed = frand.Uint64n(math.MaxUint64) + 1
	}

	switch *mode {
	case "auto":
		options := []searcher.Option{searcher.WithDepth(*depth), searcher.WithGoroutines(*goroutines)}
		if *duration > 0 {
			options = append(options, searcher.WithDuration(*duration))
		}
		if *cache > 0 {
			options = append(options, searcher.WithCache(*cache))
		}
		var engineOptions []engine.Option
		var agentOptions []agent.EvaluationOption
		if *verbose {
			engineOptions = append(engineOptions, engine.WithVerbose())
			agentOptions = append(agentOptions, agent.WithCandidateLogging())
		}
		a := agent.NewEvaluationAgent(searcher.NewExpectimax(options...), agentOptions...)
		e := engine.LocalEngine(a, *seed, engineOptions...)
		score, _, _, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		fmt.Printf("%s\nFinal score: %d\n", e.Board(), score)

	case "human":
		e := engine.LocalEngine(player.NewConsole(os.Stdin, os.Stdout), *seed)
		score, _, _, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		fmt.Printf("%s\nFinal score: %d\n", e.Board(), score)

	case "experiment":
		name := *experiment
		configs, err := experiments.Builtin(name)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to select experiment")
		}
		if *config != "" {
			configs, err = experiments.LoadConfigs(*config)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load configs")
			}
			name = "custom"
		}
		if _, err := experiments.Run(name, configs, *games, *seed, *out); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}

	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}
