package domain

import "math/rand"

// NewTilePool returns all 108 tiles in rank order.
func NewTilePool() []Tile {
	return AllTiles()
}

// ShuffleTiles returns a shuffled copy of the pool using rng.
func ShuffleTiles(rng *rand.Rand, pool []Tile) []Tile {
	out := make([]Tile, len(pool))
	copy(out, pool)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
