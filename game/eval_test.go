package game_test

import (
	"testing"

	"takeiteasy/game"
	"takeiteasy/game/gametest"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, 0, game.NewBoard().Score())
	})

	t.Run("completed column of equal tops", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(1, 1), game.MustTile(1, 2, 3)))
		require.NoError(t, b.PlaceTile(game.MustField(1, 2), game.MustTile(1, 2, 4)))
		require.NoError(t, b.PlaceTile(game.MustField(1, 3), game.MustTile(1, 2, 8)))

		require.Equal(t, 3, b.Score(), "Only column 1 is complete, agreeing on 1")
	})

	t.Run("completed column of different tops", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(5, 1), game.MustTile(1, 2, 3)))
		require.NoError(t, b.PlaceTile(game.MustField(5, 2), game.MustTile(5, 2, 4)))
		require.NoError(t, b.PlaceTile(game.MustField(5, 3), game.MustTile(1, 2, 8)))

		require.Equal(t, 0, b.Score())
	})

	t.Run("completed left diagonal", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(3, 5), game.MustTile(1, 7, 3)))
		require.NoError(t, b.PlaceTile(game.MustField(4, 4), game.MustTile(5, 7, 4)))
		require.NoError(t, b.PlaceTile(game.MustField(5, 3), game.MustTile(9, 7, 8)))

		require.Equal(t, 3*7, b.Score())
	})

	t.Run("completed right diagonal", func(t *testing.T) {
		b := game.NewBoard()
		for _, p := range []gametest.Placement{
			{Field: game.MustField(1, 1), Tile: game.MustTile(1, 2, 8)},
			{Field: game.MustField(2, 2), Tile: game.MustTile(5, 2, 8)},
			{Field: game.MustField(3, 3), Tile: game.MustTile(9, 6, 8)},
			{Field: game.MustField(4, 3), Tile: game.MustTile(1, 7, 8)},
			{Field: game.MustField(5, 3), Tile: game.MustTile(5, 6, 8)},
		} {
			require.NoError(t, b.PlaceTile(p.Field, p.Tile))
		}

		require.Equal(t, 5*8, b.Score())
	})

	t.Run("full board with every section agreeing", func(t *testing.T) {
		b := gametest.Board(gametest.Perfect)
		require.Equal(t, gametest.PerfectScore, b.Score())
	})

	t.Run("full board with some sections agreeing", func(t *testing.T) {
		b := gametest.Board(gametest.Mixed)
		require.Equal(t, gametest.MixedScore, b.Score())
	})

	t.Run("one tile short of the full board", func(t *testing.T) {
		b := gametest.Board(gametest.Mixed, game.MustField(3, 1))
		require.Equal(t, gametest.MixedScore-3*3, b.Score(), "Right 1 is no longer complete")
	})
}

func TestMaxScore(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		want := 3*9 + 4*9 + 5*9 + 4*9 + 3*9 +
			3*7 + 4*7 + 5*7 + 4*7 + 3*7 +
			3*8 + 4*8 + 5*8 + 4*8 + 3*8
		require.Equal(t, want, game.NewBoard().MaxScore())
		require.Equal(t, gametest.EmptyMaxScore, want)
	})

	t.Run("single tile", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(1, 1), game.MustTile(1, 2, 3)))

		// Column 1 drops to 1s, left 1 to 2s, right 3 to 3s.
		want := gametest.EmptyMaxScore - 3*(9-1) - 3*(7-2) - 5*(8-3)
		require.Equal(t, want, b.MaxScore())
	})

	t.Run("conflicting tiles zero a section", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.PlaceTile(game.MustField(3, 1), game.MustTile(1, 7, 8)))
		require.NoError(t, b.PlaceTile(game.MustField(3, 5), game.MustTile(9, 7, 8)))

		// Column 3 conflicts, left 1, left 5, right 1 and right 5 are pinned
		// to 7 and 8 which are already the maxima.
		want := gametest.EmptyMaxScore - 5*9
		require.Equal(t, want, b.MaxScore())
	})

	t.Run("full boards equal their score", func(t *testing.T) {
		for _, placements := range [][]gametest.Placement{gametest.Perfect, gametest.Mixed} {
			b := gametest.Board(placements)
			require.Equal(t, b.Score(), b.MaxScore())
		}
	})

	t.Run("one tile short of the full board", func(t *testing.T) {
		b := gametest.Board(gametest.Mixed, game.MustField(3, 1))
		require.Equal(t, gametest.MixedScore, b.MaxScore(), "Right 1 may still complete")
	})

	t.Run("bound holds along a game", func(t *testing.T) {
		for _, placements := range [][]gametest.Placement{gametest.Perfect, gametest.Mixed} {
			b := game.NewBoard()
			for _, p := range placements {
				require.LessOrEqual(t, b.Score(), b.MaxScore())
				if !b.IsFull() {
					require.Less(t, b.Score(), b.MaxScore(), "Partial boards have unrealized sections")
				}
				require.NoError(t, b.PlaceTile(p.Field, p.Tile))
			}
			require.Equal(t, b.Score(), b.MaxScore())
		}
	})
}
