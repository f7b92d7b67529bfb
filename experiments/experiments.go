package experiments

import (
	"fmt"
	"os"
	"sort"
	"time"

	"takeiteasy/engine"
	"takeiteasy/experiments/metrics"
	"takeiteasy/meta"
	"takeiteasy/searcher"
	"takeiteasy/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

const TimeBudget = 100 * time.Millisecond

// DepthConfigs compares search depths against the random baseline.
var DepthConfigs = []metrics.AgentConfig{
	{ID: 0, Kind: metrics.Random},
	{ID: 1, Kind: metrics.Expectimax, Depth: 0},
	{ID: 2, Kind: metrics.Expectimax, Depth: 1, Goroutines: meta.GO_ROUTINES},
	{ID: 3, Kind: metrics.Expectimax, Depth: 2, Goroutines: meta.GO_ROUTINES, CacheEntries: meta.CACHE_ENTRIES},
	{ID: 4, Kind: metrics.Sampling, Depth: 1, Goroutines: meta.GO_ROUTINES, Temperature: 0.1},
}

// ParallelConfigs compares root parallelism under a fixed time budget.
var ParallelConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.Expectimax, Depth: 3, Goroutines: 1, Duration: TimeBudget, CacheEntries: meta.CACHE_ENTRIES},
	{ID: 2, Kind: metrics.Expectimax, Depth: 3, Goroutines: 4, Duration: TimeBudget, CacheEntries: meta.CACHE_ENTRIES},
	{ID: 3, Kind: metrics.Expectimax, Depth: 3, Goroutines: 8, Duration: TimeBudget, CacheEntries: meta.CACHE_ENTRIES},
	{ID: 4, Kind: metrics.Expectimax, Depth: 3, Goroutines: 16, Duration: TimeBudget, CacheEntries: meta.CACHE_ENTRIES},
}

// Builtins are the named match-ups the CLI can run without a config file.
var Builtins = map[string][]metrics.AgentConfig{
	"depth":    DepthConfigs,
	"parallel": ParallelConfigs,
}

// Builtin returns the match-up registered under name.
func Builtin(name string) ([]metrics.AgentConfig, error) {
	configs, ok := Builtins[name]
	if !ok {
		names := lo.Keys(Builtins)
		sort.Strings(names)
		return nil, fmt.Errorf("unknown experiment %q, expected one of %v", name, names)
	}
	return configs, nil
}

type file struct {
	Agents []metrics.AgentConfig `yaml:"agents"`
}

// LoadConfigs reads agent configs from a YAML file with a top level agents list.
func LoadConfigs(path string) ([]metrics.AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configs: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse configs: %w", err)
	}
	if err := validate(f.Agents); err != nil {
		return nil, fmt.Errorf("invalid configs in %s: %w", path, err)
	}
	return f.Agents, nil
}

// SaveConfigs writes configs in the format LoadConfigs reads.
func SaveConfigs(path string, configs []metrics.AgentConfig) error {
	data, err := yaml.Marshal(file{Agents: configs})
	if err != nil {
		return fmt.Errorf("failed to encode configs: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func validate(configs []metrics.AgentConfig) error {
	if len(configs) == 0 {
		return fmt.Errorf("no agents")
	}
	ids := lo.Map(configs, func(c metrics.AgentConfig, _ int) int { return c.ID })
	if duplicates := lo.FindDuplicates(ids); len(duplicates) > 0 {
		return fmt.Errorf("duplicate agent ids %v", duplicates)
	}
	for _, config := range configs {
		switch config.Kind {
		case metrics.Expectimax, metrics.Random:
		case metrics.Sampling:
			if config.Temperature <= 0 {
				return fmt.Errorf("agent %d: sampling needs a positive temperature", config.ID)
			}
		default:
			return fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
		}
		if config.Depth < 0 {
			return fmt.Errorf("agent %d: negative depth", config.ID)
		}
	}
	return nil
}

// Run plays games games with every config. All configs see the same tile
// sequences, derived from seed, so their scores compare pairwise. Records are
// written below dir/name and the mean score per config ID is returned.
func Run(name string, configs []metrics.AgentConfig, games int, seed uint64, dir string) (map[int]float64, error) {
	if err := validate(configs); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, games)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting agent %d of %d: %+v", ci+1, len(configs), config)

		for i, gameSeed := range seeds {
			e := engine.LocalEngine(createAgent(config, gameSeed), gameSeed)
			score, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return nil, fmt.Errorf("agent %d game %d: %w", config.ID, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("agent %d game %d of %d scored %d", config.ID, i+1, games, score)
		}
		log.Info().Msgf("completed agent %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := store(name, dir, configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}

	means := make(map[int]float64, len(configs))
	for id, records := range lo.GroupBy(gameRecords, func(r metrics.GameRecord) int { return r.Agent }) {
		total := lo.SumBy(records, func(r metrics.GameRecord) int { return r.Score })
		means[id] = float64(total) / float64(len(records))
		log.Info().Msgf("agent %d mean score: %.2f", id, means[id])
	}
	return means, nil
}

func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case metrics.Random:
		return agent.NewRandomAgent(seed)
	case metrics.Sampling:
		return agent.NewSamplingAgent(createExpectimax(config), config.Temperature, seed)
	default:
		return agent.NewEvaluationAgent(createExpectimax(config))
	}
}

func createExpectimax(config metrics.AgentConfig) *searcher.Expectimax {
	options := []searcher.Option{searcher.WithDepth(config.Depth)}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.CacheEntries > 0 {
		options = append(options, searcher.WithCache(config.CacheEntries))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewExpectimax(options...)
}
