package agent

import (
	"sort"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
	"takeiteasy/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type EvaluationOption func(a *evaluationAgent)

// WithCandidateLogging logs the score of every candidate field at info level instead of debug.
func WithCandidateLogging() EvaluationOption {
	return func(a *evaluationAgent) {
		a.level = zerolog.InfoLevel
	}
}

type evaluationAgent struct {
	expectimax *searcher.Expectimax
	level      zerolog.Level
}

// NewEvaluationAgent returns an agent that always plays the best field found by expectimax.
func NewEvaluationAgent(expectimax *searcher.Expectimax, options ...EvaluationOption) Agent {
	a := &evaluationAgent{expectimax: expectimax, level: zerolog.DebugLevel}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *evaluationAgent) FindField(board *game.Board, tile game.Tile) (game.Field, float64, metrics.SearchMetric, error) {
	scores, metric, err := a.expectimax.Rank(board, tile)
	if err != nil {
		return game.Field{}, 0, metric, err
	}
	a.logCandidates(tile, scores)

	field, err := searcher.BestField(scores)
	if err != nil {
		return game.Field{}, 0, metric, err
	}
	return field, scores[field], metric, nil
}

func (a *evaluationAgent) logCandidates(tile game.Tile, scores map[game.Field]float64) {
	event := log.WithLevel(a.level)
	if !event.Enabled() {
		return
	}
	fields := lo.Keys(scores)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Index() < fields[j].Index()
	})
	candidates := zerolog.Dict()
	for _, field := range fields {
		candidates.Float64(field.String(), scores[field])
	}
	event.Dict("candidates", candidates).Msgf("ranked %d fields for %v", len(fields), tile)
}
