package domain

import (
	"fmt"
	"strconv"
)

const (
	// Columns is the number of board columns, labelled 1..12.
	Columns = 12
	// Rows is the number of board rows, labelled A..I.
	Rows = 9
)

// Tile identifies a single board cell. Column is 1-based, Row is 0-based (A=0).
type Tile struct {
	Column int
	Row    int
}

// NewTile builds a tile from a column number and a row letter.
func NewTile(column int, row byte) Tile {
	return Tile{Column: column, Row: int(row - 'A')}
}

// ParseTile parses the "<column><row>" notation, e.g. "1A" or "12I".
func ParseTile(s string) (Tile, error) {
	if len(s) < 2 {
		return Tile{}, fmt.Errorf("invalid tile %q", s)
	}
	row := s[len(s)-1]
	col, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile %q: %w", s, err)
	}
	t := NewTile(col, row)
	if !t.Valid() {
		return Tile{}, fmt.Errorf("tile %q is outside the board", s)
	}
	return t, nil
}

// Valid reports whether the tile lies on the 12x9 grid.
func (t Tile) Valid() bool {
	return t.Column >= 1 && t.Column <= Columns && t.Row >= 0 && t.Row < Rows
}

func (t Tile) String() string {
	return fmt.Sprintf("%d%c", t.Column, 'A'+t.Row)
}

// Rank orders tiles by column, then row: 1A < 1B < ... < 1I < 2A.
// The lowest-ranked draw takes the first turn.
func (t Tile) Rank() int {
	return (t.Column-1)*Rows + t.Row
}

// MarshalText encodes the tile in board notation so it can be used as a JSON map key.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes board notation.
func (t *Tile) UnmarshalText(b []byte) error {
	parsed, err := ParseTile(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AllTiles returns every tile on the board in rank order.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, Columns*Rows)
	for c := 1; c <= Columns; c++ {
		for r := 0; r < Rows; r++ {
			tiles = append(tiles, Tile{Column: c, Row: r})
		}
	}
	return tiles
}
