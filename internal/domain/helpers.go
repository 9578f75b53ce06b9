package domain

import "sort"

// RemoveTile removes the first occurrence of tile and returns the updated slice.
func RemoveTile(tiles []Tile, tile Tile) ([]Tile, bool) {
	for i, t := range tiles {
		if t == tile {
			out := make([]Tile, 0, len(tiles)-1)
			out = append(out, tiles[:i]...)
			return append(out, tiles[i+1:]...), true
		}
	}
	return tiles, false
}

// ContainsTile reports whether tile is present in tiles.
func ContainsTile(tiles []Tile, tile Tile) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}

// SortTiles orders tiles by ascending rank in place.
func SortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Rank() < tiles[j].Rank()
	})
}
