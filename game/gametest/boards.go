// Package gametest provides board fixtures for tests.
package gametest

import "takeiteasy/game"

// Placement is a field and the tile placed on it.
type Placement struct {
	Field game.Field
	Tile  game.Tile
}

func place(column, row, top, left, right int) Placement {
	return Placement{Field: game.MustField(column, row), Tile: game.MustTile(top, left, right)}
}

// Perfect is a full board on which all 15 sections agree, scoring 307.
var Perfect = []Placement{
	place(1, 1, 5, 6, 3), place(1, 2, 5, 7, 8), place(1, 3, 5, 2, 4),
	place(2, 1, 5, 6, 8), place(2, 2, 5, 7, 3), place(2, 3, 5, 2, 8), place(2, 4, 5, 6, 4),
	place(3, 1, 1, 6, 4), place(3, 2, 1, 7, 8), place(3, 3, 1, 2, 3), place(3, 4, 1, 6, 8), place(3, 5, 1, 7, 4),
	place(4, 1, 9, 7, 4), place(4, 2, 9, 2, 8), place(4, 3, 9, 6, 3), place(4, 4, 9, 7, 8),
	place(5, 1, 9, 2, 4), place(5, 2, 9, 6, 8), place(5, 3, 9, 7, 3),
}

// PerfectScore is the score of Perfect:
// tops 3·5+4·5+5·1+4·9+3·9, lefts 3·6+4·7+5·2+4·6+3·7, rights 3·4+4·8+5·3+4·8+3·4.
const PerfectScore = 307

// Mixed is a full board on which only some sections agree, scoring 137.
var Mixed = []Placement{
	place(1, 1, 9, 7, 3), place(1, 2, 9, 2, 4), place(1, 3, 9, 2, 3),
	place(2, 1, 5, 6, 8), place(2, 2, 5, 2, 8), place(2, 3, 1, 2, 4), place(2, 4, 5, 6, 3),
	place(3, 1, 1, 6, 3), place(3, 2, 1, 2, 8), place(3, 3, 9, 6, 4), place(3, 4, 1, 7, 4), place(3, 5, 1, 7, 3),
	place(4, 1, 1, 2, 3), place(4, 2, 1, 6, 8), place(4, 3, 1, 7, 8), place(4, 4, 5, 7, 4),
	place(5, 1, 5, 2, 3), place(5, 2, 5, 7, 8), place(5, 3, 5, 7, 3),
}

// MixedScore is the score of Mixed: column 1 (3·9), column 5 (3·5), left 2
// (4·2), left 5 (3·7), right 1 (3·3), right 2 (4·8), right 4 (4·4), right 5 (3·3).
const MixedScore = 137

// EmptyMaxScore is the bound of an empty board: every section at its
// orientation's maximum value.
const EmptyMaxScore = 19*9 + 19*7 + 19*8

// Board builds a board from placements, skipping any field in without.
func Board(placements []Placement, without ...game.Field) *game.Board {
	b := game.NewBoard()
	skip := map[game.Field]bool{}
	for _, field := range without {
		skip[field] = true
	}
	for _, p := range placements {
		if skip[p.Field] {
			continue
		}
		if err := b.PlaceTile(p.Field, p.Tile); err != nil {
			panic(err)
		}
	}
	return b
}
