package domain

import "fmt"

// Board is the occupancy map of the grid. A tile present in Cells is placed;
// its value is the owning corporation or NoCorporation.
type Board struct {
	Cells map[Tile]Corporation `json:"cells"`
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{Cells: make(map[Tile]Corporation)}
}

// Neighbors returns the up to four orthogonally adjacent tiles.
func Neighbors(t Tile) []Tile {
	if !t.Valid() {
		panic(fmt.Sprintf("tile %v is outside the board", t))
	}
	out := make([]Tile, 0, 4)
	candidates := []Tile{
		{Column: t.Column, Row: t.Row - 1},
		{Column: t.Column, Row: t.Row + 1},
		{Column: t.Column - 1, Row: t.Row},
		{Column: t.Column + 1, Row: t.Row},
	}
	for _, c := range candidates {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// IsPlaced reports whether a tile is on the board.
func (b Board) IsPlaced(t Tile) bool {
	_, ok := b.Cells[t]
	return ok
}

// OwnerOf returns the corporation owning a placed tile, or NoCorporation.
func (b Board) OwnerOf(t Tile) Corporation {
	return b.Cells[t]
}

// Place puts an unowned tile on the board.
func (b *Board) Place(t Tile) {
	if b.Cells == nil {
		b.Cells = make(map[Tile]Corporation)
	}
	b.Cells[t] = NoCorporation
}

// Count returns the number of placed tiles.
func (b Board) Count() int {
	return len(b.Cells)
}

// PlacedNeighbors returns the neighbors of t that are on the board.
func (b Board) PlacedNeighbors(t Tile) []Tile {
	var out []Tile
	for _, n := range Neighbors(t) {
		if b.IsPlaced(n) {
			out = append(out, n)
		}
	}
	return out
}

// AdjacentCorporations returns the distinct corporations owning tiles next to t,
// in first-seen neighbor order.
func (b Board) AdjacentCorporations(t Tile) []Corporation {
	var out []Corporation
	seen := make(map[Corporation]bool)
	for _, n := range b.PlacedNeighbors(t) {
		owner := b.OwnerOf(n)
		if owner == NoCorporation || seen[owner] {
			continue
		}
		seen[owner] = true
		out = append(out, owner)
	}
	return out
}

// ConnectedUnowned returns the connected component of placed, unowned tiles
// containing start (start included), in rank order.
func (b Board) ConnectedUnowned(start Tile) []Tile {
	visited := map[Tile]bool{start: true}
	queue := []Tile{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.PlacedNeighbors(cur) {
			if visited[n] || b.OwnerOf(n) != NoCorporation {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	out := make([]Tile, 0, len(visited))
	for _, t := range AllTiles() {
		if visited[t] {
			out = append(out, t)
		}
	}
	return out
}

func (b Board) clone() Board {
	cells := make(map[Tile]Corporation, len(b.Cells))
	for t, c := range b.Cells {
		cells[t] = c
	}
	return Board{Cells: cells}
}
