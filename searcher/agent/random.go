package agent

import (
	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
	"takeiteasy/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random empty field.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindField(board *game.Board, tile game.Tile) (game.Field, float64, metrics.SearchMetric, error) {
	fields := board.EmptyFields()
	if len(fields) == 0 {
		return game.Field{}, 0, metrics.SearchMetric{}, ErrNoEmptyField
	}
	field := fields[a.rng.Intn(len(fields))]

	child, err := board.PlaceTileOnNewBoard(field, tile)
	if err != nil {
		return game.Field{}, 0, metrics.SearchMetric{}, err
	}
	return field, searcher.EvalPosition(child), metrics.SearchMetric{Candidates: len(fields)}, nil
}
