package game

import "fmt"

// Game is a live game: a board, the bag of undrawn tiles and the tile that
// must be placed next.
type Game struct {
	Board     *Board
	reservoir *Reservoir
	current   Tile
}

// NewGame starts an empty board and draws the first tile.
func NewGame(seed uint64) *Game {
	g := &Game{
		Board:     NewBoard(),
		reservoir: NewReservoir(seed),
	}
	g.draw()
	return g
}

func (g *Game) draw() {
	tile, err := g.reservoir.Draw()
	if err != nil {
		g.current = Tile{}
		return
	}
	g.current = tile
}

// CurrentTile is the tile to place next; false once the board is full.
func (g *Game) CurrentTile() (Tile, bool) {
	return g.current, !g.current.IsZero()
}

// PlaceTile puts the current tile on field and draws the next one. On error
// the game is unchanged.
func (g *Game) PlaceTile(field Field) error {
	if g.Finished() {
		return fmt.Errorf("cannot place at %v: game is finished", field)
	}
	if err := g.Board.PlaceTile(field, g.current); err != nil {
		return err
	}
	if g.Finished() {
		g.current = Tile{}
		return nil
	}
	g.draw()
	return nil
}

func (g *Game) Finished() bool {
	return g.Board.IsFull()
}

func (g *Game) Score() int {
	return g.Board.Score()
}
