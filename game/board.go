package game

import (
	"fmt"

	"github.com/samber/lo"
)

// Key identifies a board position: per field index, the placed tile's ID+1,
// or 0 for an empty field. Two boards with equal keys are equal.
type Key [NumFields]uint8

// Board is a partial placement of tiles onto fields. Its zero value is an
// empty board. A Board only grows; there is no removal.
type Board struct {
	cells  [NumFields]Tile
	used   uint32 // Bit set by Tile.ID
	filled int
}

func NewBoard() *Board {
	return &Board{}
}

// PlaceTile records tile on field, or reports why it cannot.
func (b *Board) PlaceTile(field Field, tile Tile) error {
	if !field.Valid() {
		return fmt.Errorf("cannot place %v: %w: %v", tile, ErrInvalidField, field)
	}
	if !tile.Valid() {
		return fmt.Errorf("cannot place at %v: %w: %v", field, ErrInvalidTile, tile)
	}
	i := field.Index()
	if !b.cells[i].IsZero() {
		return fmt.Errorf("cannot place %v: %w: %v holds %v", tile, ErrFieldOccupied, field, b.cells[i])
	}
	if b.used&(1<<tile.ID()) != 0 {
		return fmt.Errorf("cannot place at %v: %w: %v", field, ErrTileAlreadyUsed, tile)
	}
	b.cells[i] = tile
	b.used |= 1 << tile.ID()
	b.filled++
	return nil
}

// PlaceTileOnNewBoard returns a copy of b with the placement applied. b is
// never modified.
func (b *Board) PlaceTileOnNewBoard(field Field, tile Tile) (*Board, error) {
	next := b.Copy()
	if err := next.PlaceTile(field, tile); err != nil {
		return nil, err
	}
	return next, nil
}

func (b *Board) Copy() *Board {
	next := *b
	return &next
}

// At returns the tile on field, if any.
func (b *Board) At(field Field) (Tile, bool) {
	if !field.Valid() {
		return Tile{}, false
	}
	t := b.cells[field.Index()]
	return t, !t.IsZero()
}

// Tiles returns the placed tiles by field.
func (b *Board) Tiles() map[Field]Tile {
	out := make(map[Field]Tile, b.filled)
	for i, t := range b.cells {
		if !t.IsZero() {
			out[allFields[i]] = t
		}
	}
	return out
}

// Len is the number of occupied fields.
func (b *Board) Len() int {
	return b.filled
}

func (b *Board) IsFull() bool {
	return b.filled == NumFields
}

// EmptyFields returns the unoccupied fields in index order.
func (b *Board) EmptyFields() []Field {
	return lo.Filter(AllFields(), func(field Field, i int) bool {
		return b.cells[i].IsZero()
	})
}

// RemainingTiles returns the tiles not yet placed, ordered by ID.
func (b *Board) RemainingTiles() []Tile {
	return lo.Filter(AllTiles(), func(t Tile, id int) bool {
		return b.used&(1<<id) == 0
	})
}

// Used reports whether tile is already on the board.
func (b *Board) Used(tile Tile) bool {
	return tile.Valid() && b.used&(1<<tile.ID()) != 0
}

func (b *Board) Key() Key {
	var k Key
	for i, t := range b.cells {
		if !t.IsZero() {
			k[i] = uint8(t.ID() + 1)
		}
	}
	return k
}
