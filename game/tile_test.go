package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTile(t *testing.T) {
	t.Run("valid tile", func(t *testing.T) {
		tile, err := NewTile(9, 7, 8)
		require.NoError(t, err)
		require.Equal(t, Tile{Top: 9, Left: 7, Right: 8}, tile)
	})

	t.Run("edges from the wrong set", func(t *testing.T) {
		for _, triple := range [][3]int{{2, 2, 3}, {1, 3, 3}, {1, 2, 9}, {0, 0, 0}, {257, 2, 3}, {-1, 2, 3}} {
			_, err := NewTile(triple[0], triple[1], triple[2])
			require.ErrorIs(t, err, ErrInvalidTile, "Tile %v should be invalid", triple)
		}
	})
}

func TestAllTiles(t *testing.T) {
	tiles := AllTiles()
	require.Len(t, tiles, NumTiles)

	seen := map[Tile]bool{}
	for id, tile := range tiles {
		require.True(t, tile.Valid())
		require.Equal(t, id, tile.ID(), "AllTiles should be ordered by ID")
		seen[tile] = true
	}
	require.Len(t, seen, NumTiles, "All tiles should be distinct")
	require.Contains(t, tiles, MustTile(5, 6, 4))

	tiles[0] = Tile{}
	require.Equal(t, MustTile(1, 2, 3), AllTiles()[0], "Returned slice should be a copy")
}

func TestTileEdge(t *testing.T) {
	tile := MustTile(5, 6, 4)
	require.Equal(t, 5, tile.Edge(Top))
	require.Equal(t, 6, tile.Edge(Left))
	require.Equal(t, 4, tile.Edge(Right))
	require.Equal(t, "Tile(5 6 4)", tile.String())
}

func TestOrientationMaxValue(t *testing.T) {
	require.Equal(t, 9, Top.MaxValue())
	require.Equal(t, 7, Left.MaxValue())
	require.Equal(t, 8, Right.MaxValue())
}
