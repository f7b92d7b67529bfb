package game

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// Reservoir is the live bag of tiles not yet drawn.
type Reservoir struct {
	remaining []Tile
	rng       *rand.Rand
}

// NewReservoir holds all 27 tiles. Draws are reproducible for a given seed.
func NewReservoir(seed uint64) *Reservoir {
	return newReservoir(rand.New(rand.NewSource(seed)))
}

func newReservoir(rng *rand.Rand) *Reservoir {
	return &Reservoir{remaining: AllTiles(), rng: rng}
}

// Draw removes and returns a tile chosen uniformly from the remaining ones.
func (r *Reservoir) Draw() (Tile, error) {
	if len(r.remaining) == 0 {
		return Tile{}, ErrReservoirExhausted
	}
	i := r.rng.Intn(len(r.remaining))
	tile := r.remaining[i]
	r.remove(i)
	return tile, nil
}

// Pick removes a specific tile.
func (r *Reservoir) Pick(tile Tile) error {
	i := lo.IndexOf(r.remaining, tile)
	if i < 0 {
		return fmt.Errorf("cannot pick %v: %w", tile, ErrTileAlreadyUsed)
	}
	r.remove(i)
	return nil
}

func (r *Reservoir) remove(i int) {
	last := len(r.remaining) - 1
	r.remaining[i] = r.remaining[last]
	r.remaining = r.remaining[:last]
}

func (r *Reservoir) Remaining() []Tile {
	return append([]Tile(nil), r.remaining...)
}

func (r *Reservoir) Len() int {
	return len(r.remaining)
}
