package searcher

import (
	"context"
	"errors"
	"time"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
	"takeiteasy/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(e *Expectimax)

// Expectimax ranks placements of a drawn tile by the expected final score
// after each. It keeps no game state between calls; Rank must not be called
// concurrently on one Expectimax.
type Expectimax struct {
	depth      int
	goroutines int
	duration   time.Duration
	table      *table
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(e *Expectimax) {
		if depth >= 0 {
			e.depth = depth
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(e *Expectimax) {
		if goroutines > 0 {
			e.goroutines = goroutines
		}
	}
}

// WithDuration bounds each Rank call: depths 0, 1, ... are searched in turn
// and the deepest ranking finished in time is returned. The deadline is only
// checked before a root candidate starts, so a call can overrun the budget by
// the time of the candidates already in flight at that depth, at most
// goroutines of them.
func WithDuration(duration time.Duration) Option {
	return func(e *Expectimax) {
		if duration > 0 {
			e.duration = duration
		}
	}
}

// WithCache memoizes position values, keeping at most entries of them.
func WithCache(entries int) Option {
	return func(e *Expectimax) {
		if entries > 0 {
			e.table = newTable(entries)
		}
	}
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.metrics = metrics.NewCollector()
	}
}

func NewExpectimax(options ...Option) *Expectimax {
	e := &Expectimax{ // Default values
		depth:      meta.DEPTH,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Expectimax) Depth() int {
	return e.depth
}

func (e *Expectimax) search() search {
	return search{table: e.table, metrics: e.metrics}
}

// EstimatedScore equals the package-level EstimatedScore, served from the memo
// table when one is configured.
func (e *Expectimax) EstimatedScore(b *game.Board, depth int) float64 {
	return e.search().estimate(b, depth)
}

// Rank scores placing tile on every empty field of b with the estimated
// score of the resulting board.
func (e *Expectimax) Rank(b *game.Board, tile game.Tile) (map[game.Field]float64, metrics.SearchMetric, error) {
	e.metrics.Start(e.goroutines, e.depth)

	var scores map[game.Field]float64
	var err error
	if e.duration > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.duration)
		scores, err = e.deepen(ctx, b, tile)
		cancel()
	} else {
		scores, err = e.rank(context.Background(), b, tile, e.depth)
		e.metrics.SetCompletedDepth(e.depth)
	}
	if err == nil {
		e.metrics.AddCandidates(len(scores))
	}

	return scores, e.metrics.Complete(), err
}

// FindField returns the best field for tile and its estimated score.
func (e *Expectimax) FindField(b *game.Board, tile game.Tile) (game.Field, float64, metrics.SearchMetric, error) {
	scores, metric, err := e.Rank(b, tile)
	if err != nil {
		return game.Field{}, 0, metric, err
	}
	field, err := BestField(scores)
	if err != nil {
		return game.Field{}, 0, metric, err
	}
	return field, scores[field], metric, nil
}

// rank evaluates the root candidates concurrently. Each candidate owns its
// board, so the only shared state is the memo table and the metrics.
func (e *Expectimax) rank(ctx context.Context, b *game.Board, tile game.Tile, depth int) (map[game.Field]float64, error) {
	fields := b.EmptyFields()
	values := make([]float64, len(fields))
	s := e.search()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.goroutines)
	for i, field := range fields {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child, err := b.PlaceTileOnNewBoard(field, tile)
			if err != nil {
				return err
			}
			values[i] = s.estimate(child, depth)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make(map[game.Field]float64, len(fields))
	for i, field := range fields {
		scores[field] = values[i]
	}
	return scores, nil
}

// deepen ranks at increasing depths until the configured depth or the
// deadline of ctx is reached. Depth 0 always completes; an interrupted depth is
// discarded.
func (e *Expectimax) deepen(ctx context.Context, b *game.Board, tile game.Tile) (map[game.Field]float64, error) {
	scores, err := e.rank(context.Background(), b, tile, 0)
	if err != nil {
		return nil, err
	}
	e.metrics.SetCompletedDepth(0)

	for depth := 1; depth <= e.depth; depth++ {
		next, err := e.rank(ctx, b, tile, depth)
		if errors.Is(err, context.DeadlineExceeded) {
			log.Debug().Msgf("deadline reached during depth %d", depth)
			break
		}
		if err != nil {
			return nil, err
		}
		scores = next
		e.metrics.SetCompletedDepth(depth)
	}
	return scores, nil
}
