package searcher

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"

	"github.com/samber/lo"
)

var ErrEmptyScoreMapping = errors.New("no candidate fields to choose from")

// EvalPosition is the leaf heuristic: the exact score of a full board,
// otherwise the optimistic MaxScore as a stand-in for the expected final score.
func EvalPosition(b *game.Board) float64 {
	if b.IsFull() {
		return float64(b.Score())
	}
	return float64(b.MaxScore())
}

// EstimatedScore is the depth-limited expectimax value of b. Every remaining
// tile is taken as equally likely to be drawn next and is played on its best
// empty field; the result is the mean of those best values. b is not modified.
func EstimatedScore(b *game.Board, depth int) float64 {
	return search{metrics: metrics.NewDummyCollector()}.estimate(b, depth)
}

// BestField returns the field with the largest score. Ties go to the field
// with the lowest index.
func BestField(scores map[game.Field]float64) (game.Field, error) {
	if len(scores) == 0 {
		return game.Field{}, ErrEmptyScoreMapping
	}
	fields := lo.Keys(scores)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Index() < fields[j].Index()
	})

	best := fields[0]
	for _, field := range fields[1:] {
		if scores[field] > scores[best] {
			best = field
		}
	}
	return best, nil
}

// search holds what the recursion shares: an optional memo table and the
// metrics sink. Both are safe for concurrent use.
type search struct {
	table   *table
	metrics metrics.Collector
}

func (s search) estimate(b *game.Board, depth int) float64 {
	if depth <= 0 || b.IsFull() {
		s.metrics.AddLeaf()
		return EvalPosition(b)
	}

	key := entryKey{board: b.Key(), depth: depth}
	if v, ok := s.table.get(key); ok {
		s.metrics.AddCacheHit()
		return v
	}
	s.metrics.AddNode()

	tiles := b.RemainingTiles()
	fields := b.EmptyFields()
	total := 0.0
	for _, tile := range tiles {
		best := math.Inf(-1)
		for _, field := range fields {
			child, err := b.PlaceTileOnNewBoard(field, tile)
			if err != nil {
				panic(fmt.Sprintf("placing a remaining tile on an empty field: %v", err))
			}
			if v := s.estimate(child, depth-1); v > best {
				best = v
			}
		}
		total += best
	}
	v := total / float64(len(tiles))

	s.table.put(key, v)
	return v
}
