package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"takeiteasy/experiments/metrics"
	"takeiteasy/game"
	"takeiteasy/searcher"
)

var errNotANumber = errors.New("not a number")

// Console is a human agent: it shows the board and the drawn tile and reads
// the chosen column and row, one per line.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// FindField prompts until a valid empty field is entered. It fails only when
// the input ends or cannot be read.
func (c *Console) FindField(board *game.Board, tile game.Tile) (game.Field, float64, metrics.SearchMetric, error) {
	fmt.Fprintf(c.out, "%s\nYour tile: %d %d %d\n", board, tile.Top, tile.Left, tile.Right)
	for {
		field, err := c.readField()
		if errors.Is(err, errNotANumber) || errors.Is(err, game.ErrInvalidField) {
			fmt.Fprintf(c.out, "%v, try again\n", err)
			continue
		}
		if err != nil {
			return game.Field{}, 0, metrics.SearchMetric{}, err
		}
		if _, ok := board.At(field); ok {
			fmt.Fprintf(c.out, "%v is already taken, try again\n", field)
			continue
		}
		child, err := board.PlaceTileOnNewBoard(field, tile)
		if err != nil {
			return game.Field{}, 0, metrics.SearchMetric{}, err
		}
		return field, searcher.EvalPosition(child), metrics.SearchMetric{}, nil
	}
}

func (c *Console) readField() (game.Field, error) {
	column, err := c.readInt("Column (1-5): ")
	if err != nil {
		return game.Field{}, err
	}
	row, err := c.readInt("Row: ")
	if err != nil {
		return game.Field{}, err
	}
	return game.NewField(column, row)
}

func (c *Console) readInt(prompt string) (int, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return 0, fmt.Errorf("reading field: %w", err)
		}
		return 0, fmt.Errorf("reading field: %w", io.ErrUnexpectedEOF)
	}
	line := strings.TrimSpace(c.in.Text())
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, errNotANumber)
	}
	return n, nil
}
