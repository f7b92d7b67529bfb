package agent

import (
	"math"
	"sort"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
	"takeiteasy/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	expectimax  *searcher.Expectimax
	temperature float64
	rng         *rand.Rand
}

// NewSamplingAgent returns an agent that samples a field in proportion to its expectimax estimate
// raised to 1/temperature. Low temperatures approach the evaluation agent, high ones approach
// uniform play.
func NewSamplingAgent(expectimax *searcher.Expectimax, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &samplingAgent{
		expectimax:  expectimax,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *samplingAgent) FindField(board *game.Board, tile game.Tile) (game.Field, float64, metrics.SearchMetric, error) {
	scores, metric, err := a.expectimax.Rank(board, tile)
	if err != nil {
		return game.Field{}, 0, metric, err
	}
	if len(scores) == 0 {
		return game.Field{}, 0, metric, searcher.ErrEmptyScoreMapping
	}
	field := a.sample(adjustTemperature(scores, a.temperature))
	return field, scores[field], metric, nil
}

func adjustTemperature(scores map[game.Field]float64, temperature float64) map[game.Field]float64 {
	// Compute temperature-adjusted field probabilities, scaling scores to [0, 1] first
	exponent := 1.0 / temperature
	best := lo.Max(lo.Values(scores))
	adjusted := make(map[game.Field]float64, len(scores))
	for field, score := range scores {
		if best > 0 {
			adjusted[field] = math.Pow(score/best, exponent)
		} else {
			adjusted[field] = 1 // Every estimate is zero: play uniformly
		}
	}
	sum := lo.Sum(lo.Values(adjusted))
	// Normalize
	for field := range adjusted {
		adjusted[field] /= sum
	}
	return adjusted
}

// sample walks the fields in index order so a seeded agent is reproducible.
func (a *samplingAgent) sample(probabilities map[game.Field]float64) game.Field {
	fields := lo.Keys(probabilities)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Index() < fields[j].Index()
	})

	sampled := a.rng.Float64()
	cumulative := 0.0
	for _, field := range fields {
		cumulative += probabilities[field]
		if sampled < cumulative {
			return field
		}
	}
	return fields[len(fields)-1] // Fallback in case of rounding errors
}
