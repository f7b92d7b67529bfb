package engine

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
	"takeiteasy/searcher"
	"takeiteasy/searcher/agent"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

type Option func(e *Local)

// WithVerbose logs every move at info level and renders the board after it.
func WithVerbose() Option {
	return func(e *Local) {
		e.verbose = true
	}
}

// WithOutput sets where verbose boards are rendered. Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(e *Local) {
		e.out = out
	}
}

// Local plays one game of a single agent against a live, seeded tile
// reservoir.
type Local struct {
	seed    uint64
	game    *game.Game
	agent   agent.Agent
	verbose bool
	out     io.Writer
}

func LocalEngine(a agent.Agent, seed uint64, options ...Option) *Local {
	e := &Local{
		seed:  seed,
		game:  game.NewGame(seed),
		agent: a,
		out:   os.Stdout,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the live board. Callers must not modify it.
func (e *Local) Board() *game.Board {
	return e.game.Board
}

// Run asks the agent for a field for every drawn tile until the board is full.
// The agent only ever sees a copy of the live board.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{Seed: e.seed, StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("game with seed %d is starting", e.seed)

	for step := 1; !e.game.Finished(); step++ {
		tile, ok := e.game.CurrentTile()
		if !ok {
			panic("no tile drawn for an unfinished game")
		}

		field, estimate, searchMetric, err := e.agent.FindField(e.game.Board.Copy(), tile)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("finding a field for %v at move %d: %w", tile, step, err)
		}
		if err := e.game.PlaceTile(field); err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("playing %v on %v at move %d: %w", tile, field, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Tile:         tile,
			Field:        field,
			Estimate:     estimate,
			SearchMetric: searchMetric,
		})

		event := log.Debug()
		if e.verbose {
			event = log.Info()
		}
		event.Msgf("move %d: %v on %v, estimated score %.2f", step, tile, field, estimate)
		if e.verbose {
			fmt.Fprintln(e.out, e.game.Board)
		}
	}

	score := e.game.Score()
	gameMetric.Score = score
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game with seed %d is over with score %d", e.seed, score)

	return score, gameMetric, moveMetrics, nil
}

// PlayGame plays a game with a fresh random seed, always placing the drawn
// tile on the best field found by an expectimax search of the given depth.
// Verbose games log the candidate scores of every move and render the board
// after it.
func PlayGame(depth int, verbose bool) int {
	options := []Option{}
	agentOptions := []agent.EvaluationOption{}
	if verbose {
		options = append(options, WithVerbose())
		agentOptions = append(agentOptions, agent.WithCandidateLogging())
	}
	expectimax := searcher.NewExpectimax(searcher.WithDepth(depth))
	e := LocalEngine(agent.NewEvaluationAgent(expectimax, agentOptions...), frand.Uint64n(math.MaxUint64), options...)

	score, _, _, err := e.Run()
	if err != nil {
		panic(fmt.Sprintf("expectimax game failed: %v", err))
	}
	return score
}
