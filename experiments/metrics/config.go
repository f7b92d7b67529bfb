package metrics

import "time"

type AgentKind string

const (
	Expectimax AgentKind = "expectimax"
	Sampling   AgentKind = "sampling"
	Random     AgentKind = "random"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID           int           `yaml:"id"`
	Kind         AgentKind     `yaml:"kind"`
	Depth        int           `yaml:"depth"`
	Goroutines   int           `yaml:"goroutines"`
	Duration     time.Duration `yaml:"duration"`
	CacheEntries int           `yaml:"cache_entries"`
	Temperature  float64       `yaml:"temperature"` // Sampling only
}
