package engine

import "takeiteasy/experiments/metrics"

type Engine interface {
	// Run plays a game till the board is full and returns its final score
	Run() (score int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
