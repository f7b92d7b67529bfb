package agent

import (
	"errors"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
)

var ErrNoEmptyField = errors.New("board has no empty field")

type Agent interface {
	// FindField returns the field to place tile on, the agent's estimate of the final score and
	// performance metrics (if collected) from the search
	FindField(board *game.Board, tile game.Tile) (game.Field, float64, metrics.SearchMetric, error)
}
