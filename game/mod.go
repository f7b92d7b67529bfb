package game

import "errors"

const (
	NumFields   = 3 + 4 + 5 + 4 + 3
	NumTiles    = 3 * 3 * 3
	NumSections = 15
)

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidField       = errors.New("invalid field")
	ErrInvalidTile        = errors.New("invalid tile")
	ErrFieldOccupied      = errors.New("field already occupied")
	ErrTileAlreadyUsed    = errors.New("tile already used")
	ErrReservoirExhausted = errors.New("tile reservoir exhausted")
)

// Orientation selects which edge of a tile a section reads.
type Orientation int

const (
	Top Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// MaxValue is the largest edge value any tile carries in this orientation.
func (o Orientation) MaxValue() int {
	switch o {
	case Top:
		return int(TopValues[len(TopValues)-1])
	case Left:
		return int(LeftValues[len(LeftValues)-1])
	case Right:
		return int(RightValues[len(RightValues)-1])
	default:
		panic("unexpected orientation")
	}
}
