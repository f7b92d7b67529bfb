package game_test

import (
	"testing"

	"takeiteasy/game"
	"takeiteasy/game/gametest"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := game.NewBoard()

	require.Zero(t, b.Len(), "New board should have no tiles")
	require.False(t, b.IsFull())
	require.Equal(t, game.AllFields(), b.EmptyFields(), "All fields should be empty")
	require.Equal(t, game.AllTiles(), b.RemainingTiles(), "All tiles should remain")
	for _, field := range game.AllFields() {
		_, ok := b.At(field)
		require.False(t, ok, "Field %v should be empty", field)
	}
}

func TestPlaceTile(t *testing.T) {
	t.Run("placing on a valid empty field", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(1, 3), game.MustTile(1, 2, 3)))

		got, ok := b.At(game.MustField(1, 3))
		require.True(t, ok)
		require.Equal(t, game.MustTile(1, 2, 3), got)
		require.Equal(t, 1, b.Len())
		require.NotContains(t, b.EmptyFields(), game.MustField(1, 3))
		require.NotContains(t, b.RemainingTiles(), game.MustTile(1, 2, 3))
		require.True(t, b.Used(game.MustTile(1, 2, 3)))
	})

	t.Run("placing on an invalid field", func(t *testing.T) {
		b := game.NewBoard()
		err := b.PlaceTile(game.Field{Column: 1, Row: 4}, game.MustTile(1, 2, 3))

		require.ErrorIs(t, err, game.ErrInvalidField)
		require.Zero(t, b.Len(), "Board should not change")
	})

	t.Run("placing a zero tile", func(t *testing.T) {
		b := game.NewBoard()
		err := b.PlaceTile(game.MustField(1, 1), game.Tile{})

		require.ErrorIs(t, err, game.ErrInvalidTile)
		require.Zero(t, b.Len(), "Board should not change")
	})

	t.Run("placing on an occupied field", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(2, 2), game.MustTile(1, 2, 3)))
		err := b.PlaceTile(game.MustField(2, 2), game.MustTile(5, 6, 4))

		require.ErrorIs(t, err, game.ErrFieldOccupied)
		got, _ := b.At(game.MustField(2, 2))
		require.Equal(t, game.MustTile(1, 2, 3), got, "Original tile should stay")
		require.Equal(t, 1, b.Len())
		require.Contains(t, b.RemainingTiles(), game.MustTile(5, 6, 4), "Rejected tile should remain unused")
	})

	t.Run("placing the same tile twice", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(1, 1), game.MustTile(9, 7, 8)))
		err := b.PlaceTile(game.MustField(5, 3), game.MustTile(9, 7, 8))

		require.ErrorIs(t, err, game.ErrTileAlreadyUsed)
		require.Equal(t, map[game.Field]game.Tile{game.MustField(1, 1): game.MustTile(9, 7, 8)}, b.Tiles(),
			"Only the first placement should be recorded")
	})

	t.Run("filling the board", func(t *testing.T) {
		b := gametest.Board(gametest.Perfect)

		require.True(t, b.IsFull())
		require.Empty(t, b.EmptyFields())
		require.Len(t, b.RemainingTiles(), game.NumTiles-game.NumFields)
	})
}

func TestPlaceTileOnNewBoard(t *testing.T) {
	t.Run("success leaves the receiver unchanged", func(t *testing.T) {
		b := gametest.Board(gametest.Mixed, game.MustField(3, 3), game.MustField(1, 1))
		before := b.Key()

		next, err := b.PlaceTileOnNewBoard(game.MustField(3, 3), game.MustTile(9, 6, 4))

		require.NoError(t, err)
		require.Equal(t, before, b.Key(), "Receiver should not change")
		require.Equal(t, b.Len()+1, next.Len())
		got, ok := next.At(game.MustField(3, 3))
		require.True(t, ok)
		require.Equal(t, game.MustTile(9, 6, 4), got)
		_, ok = b.At(game.MustField(3, 3))
		require.False(t, ok)
	})

	t.Run("failure leaves the receiver unchanged", func(t *testing.T) {
		b := gametest.Board(gametest.Mixed, game.MustField(3, 3))
		before := b.Key()

		for _, tc := range []struct {
			field game.Field
			tile  game.Tile
			err   error
		}{
			{game.Field{Column: 5, Row: 5}, game.MustTile(9, 6, 4), game.ErrInvalidField},
			{game.MustField(1, 1), game.MustTile(9, 6, 4), game.ErrFieldOccupied},
			{game.MustField(3, 3), game.MustTile(9, 7, 3), game.ErrTileAlreadyUsed},
		} {
			next, err := b.PlaceTileOnNewBoard(tc.field, tc.tile)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, next)
			require.Equal(t, before, b.Key(), "Receiver should not change")
		}
	})
}

func TestRemainingTilesPartitionUniverse(t *testing.T) {
	boards := []*game.Board{
		game.NewBoard(),
		gametest.Board(gametest.Mixed, game.MustField(1, 1), game.MustField(4, 2), game.MustField(5, 3)),
		gametest.Board(gametest.Perfect),
	}
	for _, b := range boards {
		placed := map[game.Tile]bool{}
		for _, tile := range b.Tiles() {
			placed[tile] = true
		}
		remaining := b.RemainingTiles()
		require.Len(t, remaining, game.NumTiles-len(placed))
		for _, tile := range remaining {
			require.False(t, placed[tile], "Remaining tile %v is on the board", tile)
		}
		union := append([]game.Tile{}, remaining...)
		for tile := range placed {
			union = append(union, tile)
		}
		require.ElementsMatch(t, game.AllTiles(), union)
	}
}

func TestBoardKey(t *testing.T) {
	a := game.NewBoard()
	b := game.NewBoard()
	require.Equal(t, a.Key(), b.Key())

	require.NoError(t, a.PlaceTile(game.MustField(1, 1), game.MustTile(1, 2, 3)))
	require.NoError(t, a.PlaceTile(game.MustField(2, 1), game.MustTile(5, 2, 3)))
	require.NoError(t, b.PlaceTile(game.MustField(2, 1), game.MustTile(5, 2, 3)))
	require.NotEqual(t, a.Key(), b.Key())

	require.NoError(t, b.PlaceTile(game.MustField(1, 1), game.MustTile(1, 2, 3)))
	require.Equal(t, a.Key(), b.Key(), "Placement order should not matter")
}

func TestBoardString(t *testing.T) {
	empty := game.NewBoard().String()
	require.NotContains(t, empty, "%!", "Template should consume every argument")

	b := game.NewBoard()
	require.NoError(t, b.PlaceTile(game.MustField(3, 5), game.MustTile(9, 7, 8)))
	got := b.String()
	require.Contains(t, got, "    9    ")
	require.Contains(t, got, "  7   8  ")
	require.Equal(t, len(empty), len(got), "Rendering should keep its shape")
}
