package game

import (
	"fmt"
	"math"
)

type TopValue uint8
type LeftValue uint8
type RightValue uint8

// Edge values in ascending order.
var (
	TopValues   = [3]TopValue{1, 5, 9}
	LeftValues  = [3]LeftValue{2, 6, 7}
	RightValues = [3]RightValue{3, 4, 8}
)

// Tile is an immutable triple of edge values. The zero Tile means "no tile".
type Tile struct {
	Top   TopValue
	Left  LeftValue
	Right RightValue
}

// NewTile validates each edge against its value set.
func NewTile(top, left, right int) (Tile, error) {
	err := fmt.Errorf("%w: (%d %d %d)", ErrInvalidTile, top, left, right)
	for _, v := range [...]int{top, left, right} {
		if v < 0 || v > math.MaxUint8 {
			return Tile{}, err
		}
	}
	t := Tile{Top: TopValue(top), Left: LeftValue(left), Right: RightValue(right)}
	if !t.Valid() {
		return Tile{}, err
	}
	return t, nil
}

// MustTile is NewTile for static tables and tests.
func MustTile(top, left, right int) Tile {
	t, err := NewTile(top, left, right)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tile) Valid() bool {
	return indexOf(TopValues, t.Top) >= 0 &&
		indexOf(LeftValues, t.Left) >= 0 &&
		indexOf(RightValues, t.Right) >= 0
}

func (t Tile) IsZero() bool {
	return t == Tile{}
}

// ID is the tile's position 0..26 in the universe returned by AllTiles.
func (t Tile) ID() int {
	return indexOf(TopValues, t.Top)*9 + indexOf(LeftValues, t.Left)*3 + indexOf(RightValues, t.Right)
}

// Edge reads the value the tile shows in orientation o.
func (t Tile) Edge(o Orientation) int {
	switch o {
	case Top:
		return int(t.Top)
	case Left:
		return int(t.Left)
	case Right:
		return int(t.Right)
	default:
		panic("unexpected orientation")
	}
}

func (t Tile) String() string {
	return fmt.Sprintf("Tile(%d %d %d)", t.Top, t.Left, t.Right)
}

var allTiles = func() [NumTiles]Tile {
	var tiles [NumTiles]Tile
	i := 0
	for _, top := range TopValues {
		for _, left := range LeftValues {
			for _, right := range RightValues {
				tiles[i] = Tile{Top: top, Left: left, Right: right}
				i++
			}
		}
	}
	return tiles
}()

// AllTiles returns the 27-tile universe ordered by ID.
func AllTiles() []Tile {
	tiles := allTiles
	return tiles[:]
}

func indexOf[T comparable](values [3]T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
